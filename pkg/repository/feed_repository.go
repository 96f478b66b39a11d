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

// dbFeed is the feeds table row
type dbFeed struct {
	ID            int64        `db:"id"`
	FetchURL      string       `db:"fetch_url"`
	URL           string       `db:"url"`
	Title         string       `db:"title"`
	FetchInterval int64        `db:"fetch_interval"` // seconds
	LastFetched   sql.NullTime `db:"last_fetched"`
	FailingSince  sql.NullTime `db:"failing_since"`
	Available     bool         `db:"available"`
	ETag          string       `db:"etag"`
	LastModified  string       `db:"last_modified"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// CreateFeed inserts a new feed
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	row := &dbFeed{
		FetchURL:      feed.FetchURL,
		URL:           feed.URL,
		Title:         feed.Title,
		FetchInterval: int64(feed.FetchInterval / time.Second),
		Available:     feed.Available,
		ETag:          feed.ETag,
		LastModified:  feed.LastModified,
	}

	query := `
		INSERT INTO feeds (fetch_url, url, title, fetch_interval, available, etag, last_modified)
		VALUES (:fetch_url, :url, :title, :fetch_interval, :available, :etag, :last_modified)
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var row dbFeed
	err := r.db.GetContext(ctx, &row, "SELECT * FROM feeds WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return r.toDomainFeed(&row), nil
}

// GetFeedByFetchURL retrieves a feed by its fetch URL
func (r *FeedRepository) GetFeedByFetchURL(ctx context.Context, fetchURL string) (*domain.Feed, error) {
	var row dbFeed
	err := r.db.GetContext(ctx, &row, "SELECT * FROM feeds WHERE fetch_url = ?", fetchURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feed by fetch url: %w", err)
	}
	return r.toDomainFeed(&row), nil
}

// ListFeeds retrieves all feeds, retired ones included
func (r *FeedRepository) ListFeeds(ctx context.Context) ([]*domain.Feed, error) {
	var rows []dbFeed
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM feeds ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}

	feeds := make([]*domain.Feed, len(rows))
	for i, f := range rows {
		feeds[i] = r.toDomainFeed(&f)
	}
	return feeds, nil
}

// GetPollableFeeds retrieves feeds that still get scheduled, i.e. not retired
func (r *FeedRepository) GetPollableFeeds(ctx context.Context) ([]*domain.Feed, error) {
	var rows []dbFeed
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM feeds WHERE available = 1 ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("get pollable feeds: %w", err)
	}

	feeds := make([]*domain.Feed, len(rows))
	for i, f := range rows {
		feeds[i] = r.toDomainFeed(&f)
	}
	return feeds, nil
}

// UpdateFeedMeta updates title and site URL after a successful parse
func (r *FeedRepository) UpdateFeedMeta(ctx context.Context, feedID int64, title, siteURL string) error {
	query := `UPDATE feeds SET title = ?, url = ?, updated_at = datetime('now') WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, title, siteURL, feedID)
	if err != nil {
		return fmt.Errorf("update feed meta: %w", err)
	}
	return checkAffected(res)
}

// UpdateFetchURL repoints a feed after autodiscovery
func (r *FeedRepository) UpdateFetchURL(ctx context.Context, feedID int64, fetchURL string) error {
	query := `UPDATE feeds SET fetch_url = ?, etag = '', last_modified = '', updated_at = datetime('now') WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, fetchURL, feedID)
	if err != nil {
		return fmt.Errorf("update fetch url: %w", err)
	}
	return checkAffected(res)
}

// UpdateCacheTokens stores HTTP caching validators for the next conditional GET
func (r *FeedRepository) UpdateCacheTokens(ctx context.Context, feedID int64, etag, lastModified string) error {
	query := `UPDATE feeds SET etag = ?, last_modified = ?, updated_at = datetime('now') WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, etag, lastModified, feedID)
	if err != nil {
		return fmt.Errorf("update cache tokens: %w", err)
	}
	return checkAffected(res)
}

// UpdateFeedState persists the scheduling state computed by the escalation
// state machine: interval, failure streak, availability and last fetch time
func (r *FeedRepository) UpdateFeedState(ctx context.Context, feed *domain.Feed) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE feeds
			SET fetch_interval = ?,
			    failing_since = ?,
			    available = ?,
			    last_fetched = ?,
			    updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query,
			int64(feed.FetchInterval/time.Second),
			nullTime(feed.FailingSince),
			feed.Available,
			nullTime(feed.LastFetched),
			feed.ID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed state: %w", err)}
		}
		return nil
	})
}

// DeleteFeed removes a feed; entries, tombstones and subscriptions cascade
func (r *FeedRepository) DeleteFeed(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return checkAffected(res)
}

// toDomainFeed converts a feeds row to domain.Feed
func (r *FeedRepository) toDomainFeed(row *dbFeed) *domain.Feed {
	f := &domain.Feed{
		ID:            row.ID,
		FetchURL:      row.FetchURL,
		URL:           row.URL,
		Title:         row.Title,
		FetchInterval: time.Duration(row.FetchInterval) * time.Second,
		Available:     row.Available,
		ETag:          row.ETag,
		LastModified:  row.LastModified,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.LastFetched.Valid {
		t := row.LastFetched.Time
		f.LastFetched = &t
	}
	if row.FailingSince.Valid {
		t := row.FailingSince.Time
		f.FailingSince = &t
	}
	return f
}

// checkAffected maps zero-row updates/deletes to ErrNotFound so in-flight
// polls detect feeds deleted out-of-band
func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
