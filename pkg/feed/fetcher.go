package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CacheTokens holds the HTTP caching validators stored per feed
type CacheTokens struct {
	ETag         string
	LastModified string
}

// Document is a raw fetched response, before parsing
type Document struct {
	Body         []byte
	ETag         string
	LastModified string
	NotModified  bool // server answered 304, body is empty
	StatusCode   int
}

// Fetcher performs conditional GET requests against feed URLs
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a fetcher with a bounded request timeout so a single
// unresponsive server cannot starve the worker pool
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves a document from the given URL. When cache tokens are known
// the request is conditional: If-None-Match for a stored ETag, otherwise
// If-Modified-Since for a stored Last-Modified value. A 304 answer maps to
// Document{NotModified: true}.
func (f *Fetcher) Fetch(ctx context.Context, url string, tokens CacheTokens) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	switch {
	case tokens.ETag != "":
		req.Header.Set("If-None-Match", tokens.ETag)
	case tokens.LastModified != "":
		req.Header.Set("If-Modified-Since", tokens.LastModified)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	doc := &Document{
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
		StatusCode:   resp.StatusCode,
	}

	if resp.StatusCode == http.StatusNotModified {
		doc.NotModified = true
		return doc, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("fetch %s: %w", url, ErrEmptyResponse)
	}

	doc.Body = body
	return doc, nil
}
