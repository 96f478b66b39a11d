package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedpulse/feedpulse/pkg/domain"
)

func TestFeedRepository_CreateAndGet(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	f := makeFeed(t, repos, "https://example.com/feed.xml")

	got, err := repos.Feed.GetFeed(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/feed.xml", got.FetchURL)
	assert.Equal(t, time.Hour, got.FetchInterval)
	assert.True(t, got.Available)
	assert.Nil(t, got.LastFetched)
	assert.Nil(t, got.FailingSince)
}

func TestFeedRepository_GetNotFound(t *testing.T) {
	repos := setupTestDB(t)

	_, err := repos.Feed.GetFeed(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedRepository_GetByFetchURL(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	f := makeFeed(t, repos, "https://example.com/rss")

	got, err := repos.Feed.GetFeedByFetchURL(ctx, "https://example.com/rss")
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)

	_, err = repos.Feed.GetFeedByFetchURL(ctx, "https://example.com/other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedRepository_GetPollableFeeds(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	active := makeFeed(t, repos, "https://a.example.com/feed")
	retired := makeFeed(t, repos, "https://b.example.com/feed")

	retired.Available = false
	require.NoError(t, repos.Feed.UpdateFeedState(ctx, retired))

	feeds, err := repos.Feed.GetPollableFeeds(ctx)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, active.ID, feeds[0].ID)

	all, err := repos.Feed.ListFeeds(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "retired feeds stay listed")
}

func TestFeedRepository_UpdateFeedState(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	f := makeFeed(t, repos, "https://example.com/feed")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	failing := now.Add(-2 * time.Hour)
	f.FetchInterval = 3960 * time.Second
	f.FailingSince = &failing
	f.LastFetched = &now
	require.NoError(t, repos.Feed.UpdateFeedState(ctx, f))

	got, err := repos.Feed.GetFeed(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 3960*time.Second, got.FetchInterval)
	require.NotNil(t, got.FailingSince)
	assert.Equal(t, failing.Unix(), got.FailingSince.Unix())
	require.NotNil(t, got.LastFetched)
	assert.Equal(t, now.Unix(), got.LastFetched.Unix())

	// clearing the streak persists as NULL
	f.FailingSince = nil
	require.NoError(t, repos.Feed.UpdateFeedState(ctx, f))
	got, err = repos.Feed.GetFeed(ctx, f.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FailingSince)
}

func TestFeedRepository_UpdateFeedMeta(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	f := makeFeed(t, repos, "https://example.com/feed")

	require.NoError(t, repos.Feed.UpdateFeedMeta(ctx, f.ID, "Example Blog", "https://example.com"))
	got, err := repos.Feed.GetFeed(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Example Blog", got.Title)
	assert.Equal(t, "https://example.com", got.URL)

	assert.ErrorIs(t, repos.Feed.UpdateFeedMeta(ctx, 999, "x", "y"), ErrNotFound)
}

func TestFeedRepository_UpdateFetchURL_ClearsCacheTokens(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	f := makeFeed(t, repos, "https://example.com/old")
	require.NoError(t, repos.Feed.UpdateCacheTokens(ctx, f.ID, `"etag-1"`, "Mon, 02 Jun 2025 00:00:00 GMT"))

	require.NoError(t, repos.Feed.UpdateFetchURL(ctx, f.ID, "https://example.com/new"))

	got, err := repos.Feed.GetFeed(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new", got.FetchURL)
	assert.Empty(t, got.ETag, "validators belong to the old URL")
	assert.Empty(t, got.LastModified)
}

func TestFeedRepository_DeleteFeedCascades(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	f := makeFeed(t, repos, "https://example.com/feed")
	e := makeEntry(t, repos, f.ID, "guid-1", "hash-1", time.Now())
	require.NoError(t, repos.Subscription.Subscribe(ctx, 1, f.ID))

	require.NoError(t, repos.Feed.DeleteFeed(ctx, f.ID))

	_, err := repos.Feed.GetFeed(ctx, f.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repos.Entry.GetEntry(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	users, err := repos.Subscription.Subscribers(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.ErrorIs(t, repos.Feed.DeleteFeed(ctx, f.ID), ErrNotFound)
}

func TestFeedRepository_DuplicateFetchURL(t *testing.T) {
	repos := setupTestDB(t)

	makeFeed(t, repos, "https://example.com/feed")
	err := repos.Feed.CreateFeed(context.Background(), &domain.Feed{
		FetchURL:      "https://example.com/feed",
		FetchInterval: time.Hour,
		Available:     true,
	})
	assert.Error(t, err, "fetch_url is unique")
}
