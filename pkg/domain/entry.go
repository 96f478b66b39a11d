package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Entry represents a single feed entry
type Entry struct {
	ID         int64
	FeedID     int64
	GUID       string
	Title      string
	Link       string
	Author     string
	Content    string
	Summary    string
	UniqueHash string
	Published  time.Time
	CreatedAt  time.Time
}

// Tombstone records an entry that was trimmed from a feed so a later
// re-fetch of the same content does not resurrect it
type Tombstone struct {
	FeedID     int64
	GUID       string
	UniqueHash string
}

// EntryHash computes the content fingerprint used for deduplication,
// independent of guid reliability
func EntryHash(title, summary, content string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte("\n"))
	h.Write([]byte(summary))
	h.Write([]byte("\n"))
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

// ParsedFeed is the canonical in-memory representation of a fetched document
type ParsedFeed struct {
	Title   string
	SiteURL string
	Entries []ParsedEntry
}

// ParsedEntry is a single entry as extracted from a raw RSS/Atom document
type ParsedEntry struct {
	GUID      string
	Title     string
	Link      string
	Author    string
	Content   string
	Summary   string
	Published *time.Time // nil when the source omits a publish date
}
