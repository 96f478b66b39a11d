package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/feedpulse/feedpulse/pkg/domain"
)

// dbSubscription is the subscriptions table row
type dbSubscription struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	FeedID        int64     `db:"feed_id"`
	UnreadEntries int       `db:"unread_entries"`
	CreatedAt     time.Time `db:"created_at"`
}

// SubscriptionRepository handles subscriptions, per-user read state and the
// cached unread counter
type SubscriptionRepository struct {
	db *sqlx.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Subscribe creates a user-feed pair; duplicate subscriptions are a no-op
func (r *SubscriptionRepository) Subscribe(ctx context.Context, userID, feedID int64) error {
	query := `INSERT OR IGNORE INTO subscriptions (user_id, feed_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, feedID); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	return nil
}

// Subscribers returns user IDs subscribed to a feed
func (r *SubscriptionRepository) Subscribers(ctx context.Context, feedID int64) ([]int64, error) {
	var users []int64
	err := r.db.SelectContext(ctx, &users, "SELECT user_id FROM subscriptions WHERE feed_id = ? ORDER BY user_id", feedID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return users, nil
}

// GetSubscription retrieves a subscription by user and feed
func (r *SubscriptionRepository) GetSubscription(ctx context.Context, userID, feedID int64) (*domain.Subscription, error) {
	var row dbSubscription
	err := r.db.GetContext(ctx, &row, "SELECT * FROM subscriptions WHERE user_id = ? AND feed_id = ?", userID, feedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &domain.Subscription{
		ID:            row.ID,
		UserID:        row.UserID,
		FeedID:        row.FeedID,
		UnreadEntries: row.UnreadEntries,
		CreatedAt:     row.CreatedAt,
	}, nil
}

// UnreadCount returns the cached unread counter for a user-feed pair
func (r *SubscriptionRepository) UnreadCount(ctx context.Context, feedID, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT unread_entries FROM subscriptions WHERE feed_id = ? AND user_id = ?", feedID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get unread count: %w", err)
	}
	return count, nil
}

// MarkEntryRead records per-user read state for one entry; repeated marks
// are a no-op
func (r *SubscriptionRepository) MarkEntryRead(ctx context.Context, userID, entryID int64) error {
	query := `INSERT OR IGNORE INTO entry_reads (user_id, entry_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, entryID); err != nil {
		if isForeignKeyError(err) {
			return ErrNotFound
		}
		return fmt.Errorf("mark entry read: %w", err)
	}
	return nil
}

// RecalculateUnread recomputes the cached unread counter for one user-feed
// pair from actual per-entry read state. The single UPDATE keeps concurrent
// reconciliation for the same pair from losing updates; different pairs
// touch disjoint rows and need no coordination.
func (r *SubscriptionRepository) RecalculateUnread(ctx context.Context, feedID, userID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE subscriptions
			SET unread_entries = (
				SELECT COUNT(*)
				FROM entries e
				WHERE e.feed_id = subscriptions.feed_id
				  AND NOT EXISTS (
					SELECT 1 FROM entry_reads er
					WHERE er.entry_id = e.id AND er.user_id = subscriptions.user_id
				  )
			)
			WHERE feed_id = ? AND user_id = ?
		`
		_, err := r.db.ExecContext(ctx, query, feedID, userID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("recalculate unread: %w", err)}
		}
		return nil
	})
}
