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

// dbEntry is the entries table row
type dbEntry struct {
	ID         int64     `db:"id"`
	FeedID     int64     `db:"feed_id"`
	GUID       string    `db:"guid"`
	Title      string    `db:"title"`
	Link       string    `db:"link"`
	Author     string    `db:"author"`
	Content    string    `db:"content"`
	Summary    string    `db:"summary"`
	UniqueHash string    `db:"unique_hash"`
	Published  time.Time `db:"published"`
	CreatedAt  time.Time `db:"created_at"`
}

// EntryRepository handles entry, tombstone and retention operations
type EntryRepository struct {
	db *sqlx.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// CreateEntry inserts a new entry. ErrNotFound is returned when the owning
// feed was deleted while the poll was in flight, ErrAlreadyExists when the
// feed already holds an entry with the same content hash. The unique index on
// (feed_id, unique_hash) makes the insert the authoritative dedup check;
// IsDuplicateEntry is only an advisory pre-check.
func (r *EntryRepository) CreateEntry(ctx context.Context, entry *domain.Entry) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	row := &dbEntry{
		FeedID:     entry.FeedID,
		GUID:       entry.GUID,
		Title:      entry.Title,
		Link:       entry.Link,
		Author:     entry.Author,
		Content:    entry.Content,
		Summary:    entry.Summary,
		UniqueHash: entry.UniqueHash,
		Published:  entry.Published.UTC(),
	}

	return retrier.Do(ctx, func() error {
		// OR IGNORE swallows the unique conflict only; foreign key violations
		// are not subject to conflict resolution and still error out
		query := `
			INSERT OR IGNORE INTO entries (feed_id, guid, title, link, author, content, summary, unique_hash, published)
			VALUES (:feed_id, :guid, :title, :link, :author, :content, :summary, :unique_hash, :published)
		`
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			if isForeignKeyError(err) {
				return &criticalError{err: ErrNotFound}
			}
			return &criticalError{err: fmt.Errorf("create entry: %w", err)}
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: ErrAlreadyExists}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		entry.ID = id
		return nil
	})
}

// GetEntry retrieves an entry by ID
func (r *EntryRepository) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	var row dbEntry
	err := r.db.GetContext(ctx, &row, "SELECT * FROM entries WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return r.toDomainEntry(&row), nil
}

// ListEntries returns live entries for a feed, newest first
func (r *EntryRepository) ListEntries(ctx context.Context, feedID int64, limit int) ([]*domain.Entry, error) {
	query := `
		SELECT * FROM entries
		WHERE feed_id = ?
		ORDER BY published DESC
		LIMIT ?
	`
	var rows []dbEntry
	err := r.db.SelectContext(ctx, &rows, query, feedID, limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := make([]*domain.Entry, len(rows))
	for i, e := range rows {
		entries[i] = r.toDomainEntry(&e)
	}
	return entries, nil
}

// CountEntries returns the number of live entries for a feed
func (r *EntryRepository) CountEntries(ctx context.Context, feedID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM entries WHERE feed_id = ?", feedID)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// IsDuplicateEntry reports whether a parsed entry is already represented in
// the feed: a live entry with the same content hash, or a tombstone matching
// (feed, guid, hash). Entries in other feeds never count as duplicates.
func (r *EntryRepository) IsDuplicateEntry(ctx context.Context, feedID int64, guid, uniqueHash string) (bool, error) {
	var dup bool
	query := `
		SELECT EXISTS(SELECT 1 FROM entries WHERE feed_id = ? AND unique_hash = ?)
		    OR EXISTS(SELECT 1 FROM tombstones WHERE feed_id = ? AND guid = ? AND unique_hash = ?)
	`
	err := r.db.GetContext(ctx, &dup, query, feedID, uniqueHash, feedID, guid, uniqueHash)
	if err != nil {
		return false, fmt.Errorf("check duplicate entry: %w", err)
	}
	return dup, nil
}

// TrimFeed deletes the oldest entries above the retention cap, writing a
// tombstone for each so a later re-fetch does not resurrect them. Returns
// the number of trimmed entries.
func (r *EntryRepository) TrimFeed(ctx context.Context, feedID int64, maxEntries int) (int, error) {
	count, err := r.CountEntries(ctx, feedID)
	if err != nil {
		return 0, err
	}
	if maxEntries <= 0 || count <= maxEntries {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin trim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var victims []dbEntry
	query := `
		SELECT id, feed_id, guid, unique_hash, published, created_at, title, link, author, content, summary
		FROM entries
		WHERE feed_id = ?
		ORDER BY published ASC, id ASC
		LIMIT ?
	`
	if err := tx.SelectContext(ctx, &victims, query, feedID, count-maxEntries); err != nil {
		return 0, fmt.Errorf("select trim victims: %w", err)
	}

	for _, v := range victims {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO tombstones (feed_id, guid, unique_hash) VALUES (?, ?, ?)`,
			feedID, v.GUID, v.UniqueHash)
		if err != nil {
			return 0, fmt.Errorf("write tombstone: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, v.ID); err != nil {
			return 0, fmt.Errorf("delete trimmed entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit trim: %w", err)
	}
	return len(victims), nil
}

// TombstoneExists reports whether a tombstone matches (feed, guid, hash)
func (r *EntryRepository) TombstoneExists(ctx context.Context, feedID int64, guid, uniqueHash string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM tombstones WHERE feed_id = ? AND guid = ? AND unique_hash = ?)",
		feedID, guid, uniqueHash)
	if err != nil {
		return false, fmt.Errorf("check tombstone: %w", err)
	}
	return exists, nil
}

// toDomainEntry converts an entries row to domain.Entry
func (r *EntryRepository) toDomainEntry(row *dbEntry) *domain.Entry {
	return &domain.Entry{
		ID:         row.ID,
		FeedID:     row.FeedID,
		GUID:       row.GUID,
		Title:      row.Title,
		Link:       row.Link,
		Author:     row.Author,
		Content:    row.Content,
		Summary:    row.Summary,
		UniqueHash: row.UniqueHash,
		Published:  row.Published,
		CreatedAt:  row.CreatedAt,
	}
}
