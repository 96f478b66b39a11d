package feed

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/feedpulse/feedpulse/pkg/domain"
)

// Parser converts raw RSS/Atom documents into the canonical feed representation
type Parser struct {
	sanitizer *bluemonday.Policy
}

// NewParser creates a feed parser. Entry HTML passes through a UGC
// sanitization policy before it is stored.
func NewParser() *Parser {
	return &Parser{sanitizer: bluemonday.UGCPolicy()}
}

// Parse parses a fetched document. A failure means "this response is not a
// feed" and is reported as *ParseError so the orchestrator can fall back to
// autodiscovery.
func (p *Parser) Parse(doc *Document, url string) (*domain.ParsedFeed, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(doc.Body))
	if err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	result := &domain.ParsedFeed{
		Title:   parsed.Title,
		SiteURL: parsed.Link,
		Entries: make([]domain.ParsedEntry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		entry := domain.ParsedEntry{
			Title:   item.Title,
			Link:    item.Link,
			Content: p.sanitizer.Sanitize(item.Content),
			Summary: p.sanitizer.Sanitize(item.Description),
		}

		// guid defaults to the entry link when the format omits one
		entry.GUID = item.GUID
		if entry.GUID == "" {
			entry.GUID = item.Link
		}

		if item.Author != nil {
			entry.Author = item.Author.Name
		}

		if item.PublishedParsed != nil {
			entry.Published = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = item.UpdatedParsed
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}
