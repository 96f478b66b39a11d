package feed

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse signals a server that answered with no body at all
var ErrEmptyResponse = errors.New("empty response body")

// ErrFeedRemoved signals that the feed row disappeared while a poll was in
// flight; callers treat it as a normal outcome, not a failure
var ErrFeedRemoved = errors.New("feed removed")

// ErrDuplicateEntry signals that the store already holds an entry with the
// same content hash, stored by a concurrent writer between the dedup check
// and the insert. The orchestrator skips the entry without counting it.
var ErrDuplicateEntry = errors.New("duplicate entry")

// TransportError is a network-level fetch failure: timeout, connection
// refused, DNS, TLS or an unexpected HTTP status. Always transient.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means the response was not recognizable feed XML; the
// orchestrator interprets it as "try autodiscovery"
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DiscoveryError means no feed could be found via HTML autodiscovery.
// Terminal for the current poll, transient across polls.
type DiscoveryError struct {
	URL string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("no feed discovered at %s", e.URL)
}

// IsTransient reports whether an error belongs to the taxonomy handled by
// the failure escalation state machine. Anything else (storage unavailable,
// programming errors) must propagate instead of marking the feed as failing.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var te *TransportError
	var pe *ParseError
	var de *DiscoveryError
	return errors.As(err, &te) || errors.As(err, &pe) || errors.As(err, &de) ||
		errors.Is(err, ErrEmptyResponse)
}
