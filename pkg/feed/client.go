package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedpulse/feedpulse/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the narrow persistence surface the orchestrator needs. All
// operations commit independently; there is no multi-step transaction
// spanning a poll.
type Store interface {
	FeedByFetchURL(ctx context.Context, fetchURL string) (*domain.Feed, error)
	DeleteFeed(ctx context.Context, feedID int64) error
	UpdateFeedMeta(ctx context.Context, feedID int64, title, siteURL string) error
	UpdateFetchURL(ctx context.Context, feedID int64, fetchURL string) error
	UpdateCacheTokens(ctx context.Context, feedID int64, etag, lastModified string) error
	IsDuplicateEntry(ctx context.Context, feedID int64, guid, uniqueHash string) (bool, error)
	CreateEntry(ctx context.Context, entry *domain.Entry) error
	TrimFeed(ctx context.Context, feedID int64, maxEntries int) (int, error)
	Subscribers(ctx context.Context, feedID int64) ([]int64, error)
	RecalculateUnread(ctx context.Context, feedID, userID int64) error
}

// Options control a single refresh invocation
type Options struct {
	// ForceDiscovery bypasses stored cache tokens so the fetch sees the
	// full document and can fall back to autodiscovery instead of a 304.
	// Set by the scheduler once a failure streak outlives its threshold.
	ForceDiscovery bool
}

// Result reports what a refresh changed
type Result struct {
	NewEntries  int
	Trimmed     int
	NotModified bool
	Feed        *domain.Feed // surviving feed row; differs from the input after merge-by-url
	Merged      bool         // the polled feed row was abandoned in favor of an existing one
}

// Client is the fetch orchestrator: fetch, parse, optionally autodiscover
// once, deduplicate and persist entries, trim retention, reconcile unread
// counts. The autodiscovery fallback is an explicit two-step pipeline, never
// unbounded recursion.
type Client struct {
	fetcher    *Fetcher
	parser     *Parser
	store      Store
	maxEntries int // retention cap per feed
}

// NewClient creates a fetch orchestrator
func NewClient(fetcher *Fetcher, parser *Parser, store Store, maxEntries int) *Client {
	if maxEntries <= 0 {
		maxEntries = 500
	}
	return &Client{fetcher: fetcher, parser: parser, store: store, maxEntries: maxEntries}
}

// Refresh executes one poll of the given feed
func (c *Client) Refresh(ctx context.Context, f *domain.Feed, opts Options) (*Result, error) {
	tokens := CacheTokens{ETag: f.ETag, LastModified: f.LastModified}
	if opts.ForceDiscovery {
		tokens = CacheTokens{}
	}

	doc, err := c.fetcher.Fetch(ctx, f.FetchURL, tokens)
	if err != nil {
		return nil, err
	}

	if doc.NotModified {
		lgr.Printf("[DEBUG] feed not modified: %s", f.FetchURL)
		return &Result{NotModified: true, Feed: f}, nil
	}

	parsed, err := c.parser.Parse(doc, f.FetchURL)
	if err == nil {
		return c.persist(ctx, f, doc, parsed)
	}

	// not a feed: one autodiscovery hop over the HTML body
	candidate, found := Discover(doc.Body, f.FetchURL)
	if !found {
		return nil, &DiscoveryError{URL: f.FetchURL}
	}
	lgr.Printf("[INFO] discovered feed url %s for %s", candidate, f.FetchURL)
	return c.refreshDiscovered(ctx, f, candidate)
}

// refreshDiscovered fetches the discovered URL with autodiscovery disabled.
// When another feed already owns that URL the current row is abandoned and
// the established feed is updated instead (merge-by-url).
func (c *Client) refreshDiscovered(ctx context.Context, f *domain.Feed, candidate string) (*Result, error) {
	merged := false
	existing, err := c.store.FeedByFetchURL(ctx, candidate)
	switch {
	case err == nil && existing.ID != f.ID:
		if delErr := c.store.DeleteFeed(ctx, f.ID); delErr != nil {
			return nil, fmt.Errorf("abandon feed %d: %w", f.ID, delErr)
		}
		lgr.Printf("[INFO] merged feed %d into existing feed %d (%s)", f.ID, existing.ID, candidate)
		f = existing
		merged = true
	case err == nil:
		// discovered our own URL, nothing to merge
	case errors.Is(err, ErrFeedRemoved):
		// no feed owns the discovered URL yet, repoint this one
		if upErr := c.store.UpdateFetchURL(ctx, f.ID, candidate); upErr != nil {
			return nil, fmt.Errorf("update fetch url for feed %d: %w", f.ID, upErr)
		}
		f.FetchURL = candidate
	default:
		return nil, fmt.Errorf("lookup feed by url %s: %w", candidate, err)
	}

	doc, err := c.fetcher.Fetch(ctx, candidate, CacheTokens{})
	if err != nil {
		return nil, err
	}
	if doc.NotModified {
		return &Result{NotModified: true, Feed: f, Merged: merged}, nil
	}

	parsed, err := c.parser.Parse(doc, candidate)
	if err != nil {
		// autodiscovery already spent, no second hop
		return nil, &DiscoveryError{URL: f.FetchURL}
	}

	res, err := c.persist(ctx, f, doc, parsed)
	if err != nil {
		return nil, err
	}
	res.Merged = merged
	return res, nil
}

// persist stores feed metadata, new entries, retention trim and unread
// reconciliation. Each step commits on its own so a crash mid-poll leaves
// the feed queryable.
func (c *Client) persist(ctx context.Context, f *domain.Feed, doc *Document, parsed *domain.ParsedFeed) (*Result, error) {
	// blank parsed values never overwrite stored non-blank ones
	title, siteURL := f.Title, f.URL
	if parsed.Title != "" {
		title = parsed.Title
	}
	if parsed.SiteURL != "" {
		siteURL = parsed.SiteURL
	}
	if title != f.Title || siteURL != f.URL {
		if err := c.store.UpdateFeedMeta(ctx, f.ID, title, siteURL); err != nil {
			return nil, fmt.Errorf("update feed meta: %w", err)
		}
		f.Title, f.URL = title, siteURL
	}

	etag := chooseToken(doc.ETag, f.ETag)
	lastModified := chooseToken(doc.LastModified, f.LastModified)
	if etag != f.ETag || lastModified != f.LastModified {
		if err := c.store.UpdateCacheTokens(ctx, f.ID, etag, lastModified); err != nil {
			return nil, fmt.Errorf("update cache tokens: %w", err)
		}
		f.ETag, f.LastModified = etag, lastModified
	}

	newCount := 0
	for _, pe := range parsed.Entries {
		hash := domain.EntryHash(pe.Title, pe.Summary, pe.Content)

		dup, err := c.store.IsDuplicateEntry(ctx, f.ID, pe.GUID, hash)
		if err != nil {
			return nil, fmt.Errorf("check duplicate entry: %w", err)
		}
		if dup {
			continue
		}

		published := time.Now()
		if pe.Published != nil {
			published = *pe.Published
		}

		entry := &domain.Entry{
			FeedID:     f.ID,
			GUID:       pe.GUID,
			Title:      pe.Title,
			Link:       pe.Link,
			Author:     pe.Author,
			Content:    pe.Content,
			Summary:    pe.Summary,
			UniqueHash: hash,
			Published:  published,
		}
		if err := c.store.CreateEntry(ctx, entry); err != nil {
			if errors.Is(err, ErrFeedRemoved) {
				// feed deleted out-of-band mid-poll, abort without resurrecting
				return nil, ErrFeedRemoved
			}
			if errors.Is(err, ErrDuplicateEntry) {
				// a concurrent writer stored it between the check and the insert
				continue
			}
			return nil, fmt.Errorf("create entry: %w", err)
		}
		newCount++
	}

	res := &Result{NewEntries: newCount, Feed: f}

	if newCount > 0 {
		trimmed, err := c.store.TrimFeed(ctx, f.ID, c.maxEntries)
		if err != nil {
			return nil, fmt.Errorf("trim feed: %w", err)
		}
		res.Trimmed = trimmed

		if err := c.reconcileUnread(ctx, f.ID); err != nil {
			return nil, err
		}
		lgr.Printf("[INFO] stored %d new entries for feed %s (trimmed %d)", newCount, f.FetchURL, trimmed)
	}

	return res, nil
}

// reconcileUnread recomputes cached unread counts for every subscriber of
// the feed after its entry set changed
func (c *Client) reconcileUnread(ctx context.Context, feedID int64) error {
	users, err := c.store.Subscribers(ctx, feedID)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}
	for _, userID := range users {
		if err := c.store.RecalculateUnread(ctx, feedID, userID); err != nil {
			return fmt.Errorf("recalculate unread for user %d: %w", userID, err)
		}
	}
	return nil
}

func chooseToken(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	return fallback
}
