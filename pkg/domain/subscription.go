package domain

import "time"

// Subscription is a user-feed pair with a cached unread counter,
// kept consistent by the unread-count reconciler
type Subscription struct {
	ID            int64
	UserID        int64
	FeedID        int64
	UnreadEntries int
	CreatedAt     time.Time
}
