package domain

import "time"

// Feed represents a syndication feed tracked by the engine
type Feed struct {
	ID            int64
	FetchURL      string // address polled for the raw document
	URL           string // human-facing site URL
	Title         string
	FetchInterval time.Duration
	LastFetched   *time.Time
	FailingSince  *time.Time // start of the current unbroken failure streak, nil when healthy
	Available     bool       // false means permanently retired, never polled again
	ETag          string
	LastModified  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Failing reports whether the feed is in an unbroken failure streak
func (f *Feed) Failing() bool { return f.FailingSince != nil }

// FailingFor returns the duration of the current failure streak, zero when healthy
func (f *Feed) FailingFor(now time.Time) time.Duration {
	if f.FailingSince == nil {
		return 0
	}
	return now.Sub(*f.FailingSince)
}

// PollOutcome classifies the result of a single poll
type PollOutcome string

// poll outcomes reported to callers of Poll
const (
	OutcomeNewEntries PollOutcome = "new_entries" // fetch succeeded, at least one new entry stored
	OutcomeNoChange   PollOutcome = "no_change"   // fetch succeeded, nothing new (incl. 304)
	OutcomeFailed     PollOutcome = "failed"      // transient failure, feed still available
	OutcomeRetired    PollOutcome = "retired"     // feed marked unavailable, polling stopped
	OutcomeGone       PollOutcome = "gone"        // feed deleted out-of-band, poll unscheduled
)

// PollResult is returned from the single externally callable poll operation
type PollResult struct {
	NewEntries int         `json:"new_entries"`
	Outcome    PollOutcome `json:"outcome"`
}
