package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedpulse/feedpulse/pkg/domain"
	"github.com/feedpulse/feedpulse/pkg/feed/mocks"
)

const clientRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Client Blog</title>
    <link>https://example.com</link>
    <item>
      <guid>post-1</guid>
      <title>One</title>
      <link>https://example.com/1</link>
      <description>first</description>
      <pubDate>Sun, 01 Jun 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <guid>post-2</guid>
      <title>Two</title>
      <link>https://example.com/2</link>
      <description>second</description>
      <pubDate>Sun, 01 Jun 2025 11:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

// passthroughStore returns a StoreMock with no-op implementations for the
// persistence calls a successful refresh makes
func passthroughStore() *mocks.StoreMock {
	return &mocks.StoreMock{
		UpdateFeedMetaFunc:    func(ctx context.Context, feedID int64, title, siteURL string) error { return nil },
		UpdateCacheTokensFunc: func(ctx context.Context, feedID int64, etag, lastModified string) error { return nil },
		IsDuplicateEntryFunc: func(ctx context.Context, feedID int64, guid, uniqueHash string) (bool, error) {
			return false, nil
		},
		CreateEntryFunc: func(ctx context.Context, entry *domain.Entry) error { return nil },
		TrimFeedFunc:    func(ctx context.Context, feedID int64, maxEntries int) (int, error) { return 0, nil },
		SubscribersFunc: func(ctx context.Context, feedID int64) ([]int64, error) { return nil, nil },
		RecalculateUnreadFunc: func(ctx context.Context, feedID, userID int64) error { return nil },
	}
}

func newTestClient(store Store) *Client {
	return NewClient(NewFetcher(5*time.Second, "TestAgent/1.0"), NewParser(), store, 500)
}

func TestClient_Refresh_NewEntries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"v2"`)
		w.Write([]byte(clientRSS))
	}))
	defer ts.Close()

	store := passthroughStore()
	store.SubscribersFunc = func(ctx context.Context, feedID int64) ([]int64, error) { return []int64{1, 2}, nil }
	client := newTestClient(store)

	f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
	res, err := client.Refresh(context.Background(), f, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.NewEntries)
	assert.False(t, res.Merged)
	assert.Equal(t, f, res.Feed)

	// metadata and validators picked up from the response
	require.Len(t, store.UpdateFeedMetaCalls(), 1)
	assert.Equal(t, "Client Blog", store.UpdateFeedMetaCalls()[0].Title)
	require.Len(t, store.UpdateCacheTokensCalls(), 1)
	assert.Equal(t, `"v2"`, store.UpdateCacheTokensCalls()[0].ETag)

	// entries got hashed and stored
	require.Len(t, store.CreateEntryCalls(), 2)
	created := store.CreateEntryCalls()[0].Entry
	assert.Equal(t, "post-1", created.GUID)
	assert.Equal(t, domain.EntryHash("One", "first", ""), created.UniqueHash)

	// retention and reconciliation ran for every subscriber
	require.Len(t, store.TrimFeedCalls(), 1)
	assert.Equal(t, 500, store.TrimFeedCalls()[0].MaxEntries)
	assert.Len(t, store.RecalculateUnreadCalls(), 2)
}

func TestClient_Refresh_AllDuplicates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(clientRSS))
	}))
	defer ts.Close()

	store := passthroughStore()
	store.IsDuplicateEntryFunc = func(ctx context.Context, feedID int64, guid, uniqueHash string) (bool, error) {
		return true, nil
	}
	client := newTestClient(store)

	f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
	res, err := client.Refresh(context.Background(), f, Options{})
	require.NoError(t, err)

	assert.Zero(t, res.NewEntries)
	assert.Empty(t, store.CreateEntryCalls())
	assert.Empty(t, store.TrimFeedCalls(), "nothing new, nothing to trim")
	assert.Empty(t, store.RecalculateUnreadCalls())
}

func TestClient_Refresh_NotModified(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, `"v1"`, r.Header.Get("If-None-Match"))
		w.WriteHeader(http.StatusNotModified)
	}))
	defer ts.Close()

	client := newTestClient(&mocks.StoreMock{})

	f := &domain.Feed{ID: 1, FetchURL: ts.URL, ETag: `"v1"`, FetchInterval: time.Hour, Available: true}
	res, err := client.Refresh(context.Background(), f, Options{})
	require.NoError(t, err)
	assert.True(t, res.NotModified)
	assert.Zero(t, res.NewEntries)
}

func TestClient_Refresh_ForceDiscoveryBypassesTokens(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("If-None-Match"), "forced refresh must be unconditional")
		w.Write([]byte(clientRSS))
	}))
	defer ts.Close()

	store := passthroughStore()
	client := newTestClient(store)

	f := &domain.Feed{ID: 1, FetchURL: ts.URL, ETag: `"v1"`, FetchInterval: time.Hour, Available: true}
	res, err := client.Refresh(context.Background(), f, Options{ForceDiscovery: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.NewEntries)
}

func TestClient_Refresh_BlankMetaDoesNotOverwrite(t *testing.T) {
	feedNoTitle := `<?xml version="1.0"?><rss version="2.0"><channel><title></title><link></link>
		<item><guid>p1</guid><title>X</title><link>https://example.com/x</link></item></channel></rss>`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedNoTitle))
	}))
	defer ts.Close()

	store := passthroughStore()
	client := newTestClient(store)

	f := &domain.Feed{ID: 1, FetchURL: ts.URL, Title: "Kept Title", URL: "https://example.com", FetchInterval: time.Hour, Available: true}
	_, err := client.Refresh(context.Background(), f, Options{})
	require.NoError(t, err)

	assert.Empty(t, store.UpdateFeedMetaCalls(), "blank parsed values never overwrite stored ones")
	assert.Equal(t, "Kept Title", f.Title)
}

func TestClient_Refresh_Autodiscovery(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><link rel="alternate" type="application/rss+xml" href="/feed.xml"></head></html>`))
	})
	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(clientRSS))
	})

	t.Run("unclaimed url repoints the feed", func(t *testing.T) {
		store := passthroughStore()
		store.FeedByFetchURLFunc = func(ctx context.Context, fetchURL string) (*domain.Feed, error) {
			return nil, ErrFeedRemoved
		}
		store.UpdateFetchURLFunc = func(ctx context.Context, feedID int64, fetchURL string) error { return nil }
		client := newTestClient(store)

		f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
		res, err := client.Refresh(context.Background(), f, Options{})
		require.NoError(t, err)

		assert.Equal(t, 2, res.NewEntries)
		assert.False(t, res.Merged)
		require.Len(t, store.UpdateFetchURLCalls(), 1)
		assert.Equal(t, ts.URL+"/feed.xml", store.UpdateFetchURLCalls()[0].FetchURL)
		assert.Equal(t, ts.URL+"/feed.xml", f.FetchURL)
	})

	t.Run("claimed url merges into the existing feed", func(t *testing.T) {
		existing := &domain.Feed{ID: 7, FetchURL: ts.URL + "/feed.xml", FetchInterval: time.Hour, Available: true}
		store := passthroughStore()
		store.FeedByFetchURLFunc = func(ctx context.Context, fetchURL string) (*domain.Feed, error) {
			return existing, nil
		}
		store.DeleteFeedFunc = func(ctx context.Context, feedID int64) error { return nil }
		client := newTestClient(store)

		f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
		res, err := client.Refresh(context.Background(), f, Options{})
		require.NoError(t, err)

		assert.True(t, res.Merged)
		assert.Equal(t, int64(7), res.Feed.ID, "surviving feed is the established one")
		require.Len(t, store.DeleteFeedCalls(), 1)
		assert.Equal(t, int64(1), store.DeleteFeedCalls()[0].FeedID, "the duplicate row is abandoned")

		// entries landed on the surviving feed
		for _, call := range store.CreateEntryCalls() {
			assert.Equal(t, int64(7), call.Entry.FeedID)
		}
	})
}

func TestClient_Refresh_DiscoveryFailures(t *testing.T) {
	t.Run("page without feed links", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><head><title>nothing here</title></head></html>`))
		}))
		defer ts.Close()

		client := newTestClient(&mocks.StoreMock{})
		f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
		_, err := client.Refresh(context.Background(), f, Options{})

		var derr *DiscoveryError
		require.ErrorAs(t, err, &derr)
		assert.True(t, IsTransient(err))
	})

	t.Run("discovered url is not a feed either", func(t *testing.T) {
		mux := http.NewServeMux()
		ts := httptest.NewServer(mux)
		defer ts.Close()

		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><head><link rel="alternate" type="application/rss+xml" href="/fake.xml"></head></html>`))
		})
		mux.HandleFunc("/fake.xml", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body>still not a feed</body></html>`))
		})

		store := &mocks.StoreMock{
			FeedByFetchURLFunc: func(ctx context.Context, fetchURL string) (*domain.Feed, error) {
				return nil, ErrFeedRemoved
			},
			UpdateFetchURLFunc: func(ctx context.Context, feedID int64, fetchURL string) error { return nil },
		}
		client := newTestClient(store)

		f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
		_, err := client.Refresh(context.Background(), f, Options{})

		// one hop only, no recursive discovery
		var derr *DiscoveryError
		require.ErrorAs(t, err, &derr)
	})
}

func TestClient_Refresh_LostInsertRace(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(clientRSS))
	}))
	defer ts.Close()

	store := passthroughStore()
	store.CreateEntryFunc = func(ctx context.Context, entry *domain.Entry) error {
		if entry.GUID == "post-1" {
			return ErrDuplicateEntry
		}
		return nil
	}
	client := newTestClient(store)

	f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
	res, err := client.Refresh(context.Background(), f, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.NewEntries, "an entry another writer stored first is not counted")
	assert.Len(t, store.CreateEntryCalls(), 2, "the rest of the batch still runs")
}

func TestClient_Refresh_FeedRemovedMidPoll(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(clientRSS))
	}))
	defer ts.Close()

	store := passthroughStore()
	store.CreateEntryFunc = func(ctx context.Context, entry *domain.Entry) error { return ErrFeedRemoved }
	client := newTestClient(store)

	f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
	_, err := client.Refresh(context.Background(), f, Options{})
	assert.ErrorIs(t, err, ErrFeedRemoved)
	assert.Len(t, store.CreateEntryCalls(), 1, "abort on the first failed insert")
}

func TestClient_Refresh_FetchErrorPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := newTestClient(&mocks.StoreMock{})
	f := &domain.Feed{ID: 1, FetchURL: ts.URL, FetchInterval: time.Hour, Available: true}
	_, err := client.Refresh(context.Background(), f, Options{})

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
}
