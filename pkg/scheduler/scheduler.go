package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedpulse/feedpulse/pkg/domain"
	"github.com/feedpulse/feedpulse/pkg/feed"
)

//go:generate moq -out mocks/feed_manager.go -pkg mocks -skip-ensure -fmt goimports . FeedManager
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher

// FeedManager is the storage surface the scheduler needs
type FeedManager interface {
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	GetPollableFeeds(ctx context.Context) ([]*domain.Feed, error)
	UpdateFeedState(ctx context.Context, f *domain.Feed) error
}

// Refresher executes the fetch/parse/dedup pipeline for one feed
type Refresher interface {
	Refresh(ctx context.Context, f *domain.Feed, opts feed.Options) (*feed.Result, error)
}

// Scheduler runs one independent recurring poll per feed, dispatched to a
// bounded worker pool. A feed is never polled concurrently with itself: every
// poll, timer-driven or manual, takes the feed's lock, so an overlapping
// request waits for the in-flight poll instead of racing it. Interval
// adaptation and failure escalation happen through the Advance transition
// function after every poll.
type Scheduler struct {
	feeds      FeedManager
	refresher  Refresher
	limits     Limits
	maxWorkers int
	nowFn      func() time.Time

	mu     sync.Mutex
	timers map[int64]*time.Timer
	locks  map[int64]*sync.Mutex // per-feed poll serialization
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

// Params holds scheduler construction parameters
type Params struct {
	Feeds      FeedManager
	Refresher  Refresher
	Limits     Limits
	MaxWorkers int
	Now        func() time.Time // defaults to time.Now, injectable for tests
}

// NewScheduler creates a scheduler instance
func NewScheduler(p Params) *Scheduler {
	if p.MaxWorkers <= 0 {
		p.MaxWorkers = 8
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	group := &errgroup.Group{}
	group.SetLimit(p.MaxWorkers)
	return &Scheduler{
		feeds:      p.Feeds,
		refresher:  p.Refresher,
		limits:     p.Limits,
		maxWorkers: p.MaxWorkers,
		nowFn:      p.Now,
		timers:     make(map[int64]*time.Timer),
		locks:      make(map[int64]*sync.Mutex),
		group:      group,
	}
}

// Start schedules a poll for every pollable feed. Feeds overdue by their
// interval run right away, the rest at last_fetched + interval.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	feeds, err := s.feeds.GetPollableFeeds(ctx)
	if err != nil {
		return fmt.Errorf("load pollable feeds: %w", err)
	}

	now := s.nowFn()
	for _, f := range feeds {
		runAt := now
		if f.LastFetched != nil {
			runAt = f.LastFetched.Add(f.FetchInterval)
		}
		if runAt.Before(now) {
			runAt = now
		}
		s.Schedule(f.ID, runAt)
	}

	lgr.Printf("[INFO] scheduler started, %d feeds scheduled, %d workers", len(feeds), s.maxWorkers)
	return nil
}

// Stop cancels all timers and waits for in-flight polls
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
	_ = s.group.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Schedule (re)sets the single recurring timer for a feed
func (s *Scheduler) Schedule(feedID int64, runAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil || s.ctx.Err() != nil {
		return
	}
	if timer, ok := s.timers[feedID]; ok {
		timer.Stop()
	}
	delay := time.Until(runAt)
	if delay < 0 {
		delay = 0
	}
	s.timers[feedID] = time.AfterFunc(delay, func() { s.run(feedID) })
}

// Unschedule cancels future polls for a feed
func (s *Scheduler) Unschedule(feedID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[feedID]; ok {
		timer.Stop()
		delete(s.timers, feedID)
	}
}

// EnqueueNow triggers an immediate poll for a feed
func (s *Scheduler) EnqueueNow(feedID int64) {
	s.Schedule(feedID, s.nowFn())
}

// run executes one scheduled poll through the bounded worker group
func (s *Scheduler) run(feedID int64) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}

	s.group.Go(func() error {
		if ctx.Err() != nil {
			return nil
		}
		if _, err := s.Poll(ctx, feedID); err != nil {
			lgr.Printf("[ERROR] poll feed %d: %v", feedID, err)
		}
		return nil
	})
}

// Poll executes one poll of a feed and applies the escalation state machine.
// It is the single externally callable entry point: the recurring timers and
// the manual "poll now" operation both land here, serialized per feed by its
// lock. A second poll of the same feed waits for the first and then runs; the
// wasted fetch is cheap (conditional GET) and dedup suppresses its entries.
func (s *Scheduler) Poll(ctx context.Context, feedID int64) (*domain.PollResult, error) {
	lock := s.feedLock(feedID)
	lock.Lock()
	defer lock.Unlock()

	f, err := s.feeds.GetFeed(ctx, feedID)
	if err != nil {
		if isGone(err) {
			// deleted out-of-band, a normal outcome
			s.Unschedule(feedID)
			return &domain.PollResult{Outcome: domain.OutcomeGone}, nil
		}
		return nil, fmt.Errorf("get feed %d: %w", feedID, err)
	}

	if !f.Available {
		s.Unschedule(feedID)
		return &domain.PollResult{Outcome: domain.OutcomeRetired}, nil
	}

	now := s.nowFn()
	opts := feed.Options{ForceDiscovery: NeedsDiscovery(f, now, s.limits)}
	if opts.ForceDiscovery {
		lgr.Printf("[INFO] feed %d failing since %s, forcing autodiscovery", f.ID, f.FailingSince.Format(time.RFC3339))
	}

	res, refreshErr := s.refresher.Refresh(ctx, f, opts)

	var class PollClass
	newEntries := 0
	switch {
	case refreshErr == nil && res.NewEntries > 0:
		class, newEntries = ClassNewEntries, res.NewEntries
	case refreshErr == nil:
		class = ClassNoChange
	case isGone(refreshErr):
		s.Unschedule(feedID)
		return &domain.PollResult{Outcome: domain.OutcomeGone}, nil
	case feed.IsTransient(refreshErr):
		class = ClassFailure
		lgr.Printf("[WARN] feed %d poll failed: %v", f.ID, refreshErr)
	default:
		// storage or programming error: not the feed's fault, keep the
		// current cadence and surface the error
		s.Schedule(f.ID, now.Add(f.FetchInterval))
		return nil, refreshErr
	}

	target := f
	if res != nil && res.Feed != nil {
		target = res.Feed
		if res.Merged {
			// the polled row is gone, the surviving feed takes over its slot
			s.Unschedule(f.ID)
		}
	}

	next := Advance(*target, class, now, s.limits)
	if err := s.feeds.UpdateFeedState(ctx, &next); err != nil {
		if isGone(err) {
			s.Unschedule(next.ID)
			return &domain.PollResult{Outcome: domain.OutcomeGone}, nil
		}
		s.Schedule(next.ID, now.Add(next.FetchInterval))
		return nil, fmt.Errorf("update feed state: %w", err)
	}

	if !next.Available {
		s.Unschedule(next.ID)
		lgr.Printf("[WARN] feed %d failing since %s, marked unavailable", next.ID, next.FailingSince.Format(time.RFC3339))
		return &domain.PollResult{Outcome: domain.OutcomeRetired}, nil
	}

	s.Schedule(next.ID, now.Add(next.FetchInterval))

	outcome := domain.OutcomeNoChange
	switch class {
	case ClassNewEntries:
		outcome = domain.OutcomeNewEntries
	case ClassFailure:
		outcome = domain.OutcomeFailed
	}
	return &domain.PollResult{NewEntries: newEntries, Outcome: outcome}, nil
}

// feedLock returns the poll lock for a feed, creating it on first use. Locks
// are never removed: a goroutine may hold a reference across an Unschedule,
// and a fresh mutex for the same id would break serialization.
func (s *Scheduler) feedLock(feedID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[feedID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[feedID] = lock
	}
	return lock
}

// isGone reports whether an error means the feed row no longer exists
func isGone(err error) bool {
	return errors.Is(err, feed.ErrFeedRemoved)
}
