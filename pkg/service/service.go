package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedpulse/feedpulse/pkg/domain"
	"github.com/feedpulse/feedpulse/pkg/feed"
	"github.com/feedpulse/feedpulse/pkg/repository"
)

// Service is the facade over the repositories. It adapts storage errors to
// the sentinel the polling pipeline understands and owns the small amount of
// multi-step logic (subscribe on add, reconcile on read) that does not belong
// to a single repository.
type Service struct {
	repos           *repository.Repositories
	defaultInterval time.Duration
}

// NewService creates the service facade. defaultInterval is assigned to
// newly added feeds before their first poll adapts it.
func NewService(repos *repository.Repositories, defaultInterval time.Duration) *Service {
	if defaultInterval <= 0 {
		defaultInterval = time.Hour
	}
	return &Service{repos: repos, defaultInterval: defaultInterval}
}

// GetFeed retrieves a feed by ID
func (s *Service) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	f, err := s.repos.Feed.GetFeed(ctx, id)
	return f, mapNotFound(err)
}

// GetPollableFeeds returns feeds that are not retired
func (s *Service) GetPollableFeeds(ctx context.Context) ([]*domain.Feed, error) {
	return s.repos.Feed.GetPollableFeeds(ctx)
}

// UpdateFeedState persists scheduling state after a poll
func (s *Service) UpdateFeedState(ctx context.Context, f *domain.Feed) error {
	return mapNotFound(s.repos.Feed.UpdateFeedState(ctx, f))
}

// FeedByFetchURL retrieves a feed by its fetch URL
func (s *Service) FeedByFetchURL(ctx context.Context, fetchURL string) (*domain.Feed, error) {
	f, err := s.repos.Feed.GetFeedByFetchURL(ctx, fetchURL)
	return f, mapNotFound(err)
}

// DeleteFeed removes a feed with all its entries, tombstones and subscriptions
func (s *Service) DeleteFeed(ctx context.Context, feedID int64) error {
	return mapNotFound(s.repos.Feed.DeleteFeed(ctx, feedID))
}

// UpdateFeedMeta updates feed title and site URL
func (s *Service) UpdateFeedMeta(ctx context.Context, feedID int64, title, siteURL string) error {
	return mapNotFound(s.repos.Feed.UpdateFeedMeta(ctx, feedID, title, siteURL))
}

// UpdateFetchURL repoints a feed to a discovered URL
func (s *Service) UpdateFetchURL(ctx context.Context, feedID int64, fetchURL string) error {
	return mapNotFound(s.repos.Feed.UpdateFetchURL(ctx, feedID, fetchURL))
}

// UpdateCacheTokens stores conditional GET validators
func (s *Service) UpdateCacheTokens(ctx context.Context, feedID int64, etag, lastModified string) error {
	return mapNotFound(s.repos.Feed.UpdateCacheTokens(ctx, feedID, etag, lastModified))
}

// IsDuplicateEntry checks live entries and tombstones of one feed
func (s *Service) IsDuplicateEntry(ctx context.Context, feedID int64, guid, uniqueHash string) (bool, error) {
	return s.repos.Entry.IsDuplicateEntry(ctx, feedID, guid, uniqueHash)
}

// CreateEntry stores a new entry. A unique-hash collision with an entry
// written by a concurrent poll surfaces as feed.ErrDuplicateEntry.
func (s *Service) CreateEntry(ctx context.Context, entry *domain.Entry) error {
	err := s.repos.Entry.CreateEntry(ctx, entry)
	if errors.Is(err, repository.ErrAlreadyExists) {
		return feed.ErrDuplicateEntry
	}
	return mapNotFound(err)
}

// TrimFeed enforces the retention cap, tombstoning the victims
func (s *Service) TrimFeed(ctx context.Context, feedID int64, maxEntries int) (int, error) {
	return s.repos.Entry.TrimFeed(ctx, feedID, maxEntries)
}

// Subscribers returns users subscribed to a feed
func (s *Service) Subscribers(ctx context.Context, feedID int64) ([]int64, error) {
	return s.repos.Subscription.Subscribers(ctx, feedID)
}

// RecalculateUnread recomputes the cached unread counter for one user-feed pair
func (s *Service) RecalculateUnread(ctx context.Context, feedID, userID int64) error {
	return mapNotFound(s.repos.Subscription.RecalculateUnread(ctx, feedID, userID))
}

// ListFeeds returns all feeds, retired ones included
func (s *Service) ListFeeds(ctx context.Context) ([]*domain.Feed, error) {
	return s.repos.Feed.ListFeeds(ctx)
}

// AddFeed registers a feed URL for a user. If the URL is already known the
// user is subscribed to the existing feed, otherwise a new feed is created
// with the default interval and no metadata; the first poll fills it in.
func (s *Service) AddFeed(ctx context.Context, fetchURL string, userID int64) (*domain.Feed, bool, error) {
	existing, err := s.repos.Feed.GetFeedByFetchURL(ctx, fetchURL)
	if err == nil {
		if subErr := s.repos.Subscription.Subscribe(ctx, userID, existing.ID); subErr != nil {
			return nil, false, subErr
		}
		if recErr := s.repos.Subscription.RecalculateUnread(ctx, existing.ID, userID); recErr != nil {
			return nil, false, recErr
		}
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	f := &domain.Feed{
		FetchURL:      fetchURL,
		FetchInterval: s.defaultInterval,
		Available:     true,
	}
	if err := s.repos.Feed.CreateFeed(ctx, f); err != nil {
		return nil, false, fmt.Errorf("create feed: %w", err)
	}
	if err := s.repos.Subscription.Subscribe(ctx, userID, f.ID); err != nil {
		return nil, false, err
	}
	lgr.Printf("[INFO] added feed %d (%s) for user %d", f.ID, fetchURL, userID)
	return f, true, nil
}

// ListEntries returns live entries of a feed, newest first
func (s *Service) ListEntries(ctx context.Context, feedID int64, limit int) ([]*domain.Entry, error) {
	return s.repos.Entry.ListEntries(ctx, feedID, limit)
}

// UnreadCount returns the cached unread counter for a user-feed pair
func (s *Service) UnreadCount(ctx context.Context, feedID, userID int64) (int, error) {
	count, err := s.repos.Subscription.UnreadCount(ctx, feedID, userID)
	return count, mapNotFound(err)
}

// MarkEntryRead records per-user read state and reconciles the cached unread
// counter of the entry's feed
func (s *Service) MarkEntryRead(ctx context.Context, userID, entryID int64) error {
	entry, err := s.repos.Entry.GetEntry(ctx, entryID)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.repos.Subscription.MarkEntryRead(ctx, userID, entryID); err != nil {
		return mapNotFound(err)
	}
	return mapNotFound(s.repos.Subscription.RecalculateUnread(ctx, entry.FeedID, userID))
}

// Ping verifies database connectivity
func (s *Service) Ping(ctx context.Context) error {
	return s.repos.Ping(ctx)
}

// mapNotFound converts the storage not-found sentinel into the one the
// polling pipeline treats as "feed removed out-of-band"
func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return feed.ErrFeedRemoved
	}
	return err
}
