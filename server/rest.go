package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain"
	"github.com/feedpulse/feedpulse/pkg/feed"
)

// feedInfo is the API representation of a feed
type feedInfo struct {
	ID            int64      `json:"id"`
	FetchURL      string     `json:"fetch_url"`
	URL           string     `json:"url,omitempty"`
	Title         string     `json:"title,omitempty"`
	FetchInterval int64      `json:"fetch_interval"` // seconds
	LastFetched   *time.Time `json:"last_fetched,omitempty"`
	FailingSince  *time.Time `json:"failing_since,omitempty"`
	Available     bool       `json:"available"`
}

// entryInfo is the API representation of an entry
type entryInfo struct {
	ID        int64     `json:"id"`
	FeedID    int64     `json:"feed_id"`
	GUID      string    `json:"guid"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Author    string    `json:"author,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Content   string    `json:"content,omitempty"`
	Published time.Time `json:"published"`
}

func toFeedInfo(f *domain.Feed) feedInfo {
	return feedInfo{
		ID:            f.ID,
		FetchURL:      f.FetchURL,
		URL:           f.URL,
		Title:         f.Title,
		FetchInterval: int64(f.FetchInterval / time.Second),
		LastFetched:   f.LastFetched,
		FailingSince:  f.FailingSince,
		Available:     f.Available,
	}
}

func toEntryInfo(e *domain.Entry) entryInfo {
	return entryInfo{
		ID:        e.ID,
		FeedID:    e.FeedID,
		GUID:      e.GUID,
		Title:     e.Title,
		Link:      e.Link,
		Author:    e.Author,
		Summary:   e.Summary,
		Content:   e.Content,
		Published: e.Published,
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if err := s.store.Ping(r.Context()); err != nil {
		status["status"] = "degraded"
		status["error"] = err.Error()
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listFeedsHandler returns all feeds, retired ones included
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.store.ListFeeds(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	infos := make([]feedInfo, len(feeds))
	for i, f := range feeds {
		infos[i] = toFeedInfo(f)
	}
	renderJSON(w, r, http.StatusOK, infos)
}

// addFeedHandler registers a feed URL for a user and schedules its first poll
func (s *Server) addFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL    string `json:"url"`
		UserID int64  `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}
	if u, err := url.Parse(req.URL); err != nil || u.Scheme == "" || u.Host == "" {
		renderError(w, r, fmt.Errorf("invalid feed url"), http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		req.UserID = 1 // single-user setups skip the field
	}

	f, created, err := s.store.AddFeed(r.Context(), req.URL, req.UserID)
	if err != nil {
		log.Printf("[ERROR] failed to add feed %s: %v", req.URL, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
		s.poller.EnqueueNow(f.ID)
	}
	renderJSON(w, r, code, toFeedInfo(f))
}

// deleteFeedHandler removes a feed and stops polling it
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteFeed(r.Context(), id); err != nil {
		if errors.Is(err, feed.ErrFeedRemoved) {
			renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to delete feed %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.poller.Unschedule(id)
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// pollFeedHandler runs one poll synchronously and reports its outcome
func (s *Server) pollFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.poller.Poll(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to poll feed %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if res.Outcome == domain.OutcomeGone {
		renderError(w, r, fmt.Errorf("feed not found"), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// listEntriesHandler returns live entries of a feed, newest first
func (s *Server) listEntriesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, convErr := strconv.Atoi(limitStr); convErr == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	entries, err := s.store.ListEntries(r.Context(), id, limit)
	if err != nil {
		log.Printf("[ERROR] failed to list entries for feed %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	infos := make([]entryInfo, len(entries))
	for i, e := range entries {
		infos[i] = toEntryInfo(e)
	}
	renderJSON(w, r, http.StatusOK, infos)
}

// unreadCountHandler returns the cached unread counter for a user-feed pair
func (s *Server) unreadCountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	userID := int64(1)
	if userStr := r.URL.Query().Get("user_id"); userStr != "" {
		if userID, err = strconv.ParseInt(userStr, 10, 64); err != nil {
			renderError(w, r, fmt.Errorf("invalid user_id"), http.StatusBadRequest)
			return
		}
	}

	count, err := s.store.UnreadCount(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, feed.ErrFeedRemoved) {
			renderError(w, r, fmt.Errorf("subscription not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get unread count for feed %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"feed_id": id, "user_id": userID, "unread": count})
}

// markReadHandler records per-user read state for an entry
func (s *Server) markReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		req.UserID = 1
	}

	if err := s.store.MarkEntryRead(r.Context(), req.UserID, id); err != nil {
		if errors.Is(err, feed.ErrFeedRemoved) {
			renderError(w, r, fmt.Errorf("entry not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to mark entry %d read: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "read"})
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}
