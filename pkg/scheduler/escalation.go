package scheduler

import (
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain"
)

// interval adaptation factors: shrink when a poll found new entries, grow
// when it found nothing or failed
const (
	speedUpFactor  = 0.9
	slowDownFactor = 1.1
)

// Limits bounds the adaptive fetch interval and the failure thresholds
type Limits struct {
	MinInterval        time.Duration
	MaxInterval        time.Duration
	AutodiscoveryAfter time.Duration // failure streak length forcing an autodiscovery retry
	UnavailableAfter   time.Duration // failure streak length retiring the feed
}

// PollClass classifies a finished poll for the state machine
type PollClass int

// poll classes fed into Advance
const (
	ClassNewEntries PollClass = iota // success, at least one new entry
	ClassNoChange                    // success, nothing new (incl. 304)
	ClassFailure                     // transient fetch/parse/discovery failure
)

// Advance is the single transition function of the failure escalation state
// machine. Given the feed's current scheduling state and the class of the
// poll that just finished, it returns the next state: adapted interval,
// failure streak and availability. It never touches storage.
func Advance(f domain.Feed, class PollClass, now time.Time, lim Limits) domain.Feed {
	switch class {
	case ClassNewEntries:
		f.FetchInterval = clampInterval(time.Duration(float64(f.FetchInterval)*speedUpFactor), lim)
		f.FailingSince = nil
		t := now
		f.LastFetched = &t

	case ClassNoChange:
		f.FetchInterval = clampInterval(time.Duration(float64(f.FetchInterval)*slowDownFactor), lim)
		f.FailingSince = nil
		t := now
		f.LastFetched = &t

	case ClassFailure:
		// a failure backs off like an empty poll but keeps last_fetched as is
		f.FetchInterval = clampInterval(time.Duration(float64(f.FetchInterval)*slowDownFactor), lim)
		if f.FailingSince == nil {
			t := now
			f.FailingSince = &t
		}
		if now.Sub(*f.FailingSince) > lim.UnavailableAfter {
			f.Available = false
		}
	}

	return f
}

// NeedsDiscovery reports whether the feed's failure streak outlived the
// autodiscovery threshold, so the next poll should bypass cache tokens and
// force the autodiscovery fallback
func NeedsDiscovery(f *domain.Feed, now time.Time, lim Limits) bool {
	return f.FailingSince != nil && now.Sub(*f.FailingSince) > lim.AutodiscoveryAfter
}

func clampInterval(interval time.Duration, lim Limits) time.Duration {
	if interval < lim.MinInterval {
		return lim.MinInterval
	}
	if interval > lim.MaxInterval {
		return lim.MaxInterval
	}
	return interval
}
