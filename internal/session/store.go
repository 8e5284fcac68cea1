// Package session owns the navigation Trackers of live page views.
//
// A session is created when the landing page is rendered and disposed when
// the browser reports the page unloading, or when it has been idle longer
// than the configured TTL.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trexgame/landing/internal/logger"
	"github.com/trexgame/landing/internal/navstate"
)

// ErrStoreFull is returned by Create when no slot is free after sweeping.
var ErrStoreFull = errors.New("navigation session store is full")

// Options configures a Store.
type Options struct {
	TTL         time.Duration
	MaxSessions int
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Store holds live sessions keyed by id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	sections []navstate.Section
	ttl      time.Duration
	max      int
	now      func() time.Time
	log      *slog.Logger

	// OnChange, when set, is called with the live session count after every
	// create, dispose and sweep.
	OnChange func(live int)
}

// NewStore creates an empty Store for the given sections.
func NewStore(sections []navstate.Section, opts Options, log *slog.Logger) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[string]*Session),
		sections: append([]navstate.Section(nil), sections...),
		ttl:      opts.TTL,
		max:      opts.MaxSessions,
		now:      now,
		log:      log.With(logger.Scope("session")),
	}
}

// Create registers a new session with a fresh Tracker.
func (s *Store) Create() (*Session, error) {
	s.mu.Lock()
	if s.max > 0 && len(s.sessions) >= s.max {
		s.sweepLocked()
	}
	if s.max > 0 && len(s.sessions) >= s.max {
		s.mu.Unlock()
		return nil, ErrStoreFull
	}

	queue := &scrollQueue{}
	sess := &Session{
		ID:       uuid.NewString(),
		tracker:  navstate.NewTracker(s.sections, queue),
		scroll:   queue,
		lastSeen: s.now(),
	}
	s.sessions[sess.ID] = sess
	live := len(s.sessions)
	s.mu.Unlock()

	s.log.Debug("session created", slog.String("session_id", sess.ID))
	s.notify(live)
	return sess, nil
}

// Get returns a live session and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, false
	}
	if s.expired(sess) {
		s.removeLocked(sess)
		live := len(s.sessions)
		s.mu.Unlock()

		s.log.Debug("session expired", slog.String("session_id", id))
		s.notify(live)
		return nil, false
	}
	sess.lastSeen = s.now()
	s.mu.Unlock()
	return sess, true
}

// Dispose ends a session. It reports whether the session existed.
func (s *Store) Dispose(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		s.removeLocked(sess)
	}
	live := len(s.sessions)
	s.mu.Unlock()

	if ok {
		s.log.Debug("session disposed", slog.String("session_id", id))
		s.notify(live)
	}
	return ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep disposes idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	removed := s.sweepLocked()
	live := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		s.log.Debug("idle sessions swept", slog.Int("removed", removed), slog.Int("live", live))
		s.notify(live)
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) sweepLocked() int {
	removed := 0
	for _, sess := range s.sessions {
		if s.expired(sess) {
			s.removeLocked(sess)
			removed++
		}
	}
	return removed
}

func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.lastSeen) > s.ttl
}

func (s *Store) removeLocked(sess *Session) {
	delete(s.sessions, sess.ID)
	sess.mu.Lock()
	sess.tracker.Dispose()
	sess.mu.Unlock()
}

func (s *Store) notify(live int) {
	if s.OnChange != nil {
		s.OnChange(live)
	}
}

// Session is one page view's navigation state.
type Session struct {
	ID string

	mu       sync.Mutex
	tracker  *navstate.Tracker
	scroll   *scrollQueue
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's Tracker, so events for
// one page are applied one at a time. It returns the anchor the Tracker
// asked the rendering layer to scroll to during fn, if any.
func (sess *Session) Do(fn func(t *navstate.Tracker)) (scrollTo string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	fn(sess.tracker)
	return sess.scroll.take()
}

// State returns a snapshot of the session's navigation state.
func (sess *Session) State() navstate.State {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.tracker.State()
}

// scrollQueue is the Scroller handed to each Tracker. It keeps the most
// recent request until the handler forwards it to the browser.
type scrollQueue struct {
	anchor string
}

func (q *scrollQueue) ScrollTo(anchor string) {
	q.anchor = anchor
}

func (q *scrollQueue) take() string {
	a := q.anchor
	q.anchor = ""
	return a
}
