package app

import (
	"sync"
	"time"

	"roadmap/domain/quarter"
	"roadmap/internal"
	"roadmap/internal/errors"

	"github.com/google/uuid"
)

// Change describes one Select call.
type Change struct {
	From quarter.ID `json:"from"`
	To   quarter.ID `json:"to"`
}

// Changed is false when the already-active quarter was selected again.
func (c Change) Changed() bool {
	return c.From != c.To
}

// SelectListener is told about every Select call, including no-op ones.
type SelectListener func(Change)

// Selection owns the active quarter. Exactly one quarter is active at a time.
type Selection struct {
	mu        sync.Mutex
	active    quarter.ID
	listeners []SelectListener
}

// NewSelection starts with initial active.
func NewSelection(initial quarter.ID) (*Selection, error) {
	if !initial.Valid() {
		return nil, errors.InvalidInput("initial quarter must be between 1 and 4")
	}
	return &Selection{active: initial}, nil
}

// Active returns the active quarter.
func (s *Selection) Active() quarter.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Select makes q active and notifies listeners.
func (s *Selection) Select(q quarter.ID) (Change, error) {
	if !q.Valid() {
		return Change{}, errors.InvalidInput("quarter must be between 1 and 4")
	}

	s.mu.Lock()
	change := Change{From: s.active, To: q}
	s.active = q
	listeners := make([]SelectListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(change)
	}
	return change, nil
}

// OnSelect registers l for future Select calls.
func (s *Selection) OnSelect(l SelectListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// SessionLimits bounds a SessionStore. Zero fields take the defaults.
type SessionLimits struct {
	// TTL drops a session this long after its last request.
	TTL time.Duration
	// Max caps live sessions; the least recently seen one is evicted first.
	Max int
}

// DefaultSessionLimits matches the 30 day session cookie.
var DefaultSessionLimits = SessionLimits{TTL: 30 * 24 * time.Hour, Max: 10000}

// pruneInterval is how often new sessions trigger a sweep of expired ones.
const pruneInterval = time.Minute

type session struct {
	sel      *Selection
	lastSeen time.Time
}

// SessionStore keeps one Selection per browser session.
type SessionStore struct {
	mu        sync.Mutex
	initial   quarter.ID
	limits    SessionLimits
	sessions  map[string]*session
	lastPrune time.Time
	now       func() time.Time
	log       *internal.Logger
}

// NewSessionStore creates a store whose new sessions start on initial.
func NewSessionStore(initial quarter.ID, limits SessionLimits) (*SessionStore, error) {
	if !initial.Valid() {
		return nil, errors.InvalidInput("initial quarter must be between 1 and 4")
	}
	if limits.TTL <= 0 {
		limits.TTL = DefaultSessionLimits.TTL
	}
	if limits.Max <= 0 {
		limits.Max = DefaultSessionLimits.Max
	}
	return &SessionStore{
		initial:  initial,
		limits:   limits,
		sessions: make(map[string]*session),
		now:      time.Now,
		log:      internal.DefaultLogger.With("sessions"),
	}, nil
}

// TTL is how long an idle session is kept.
func (s *SessionStore) TTL() time.Duration {
	return s.limits.TTL
}

// Resolve returns the selection for id. Unknown, expired or malformed ids
// get a fresh session; the returned id is the one to hand back to the client.
func (s *SessionStore) Resolve(id string) (string, *Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()

	if _, err := uuid.Parse(id); err == nil {
		if sess, ok := s.sessions[id]; ok {
			if now.Sub(sess.lastSeen) < s.limits.TTL {
				sess.lastSeen = now
				return id, sess.sel
			}
			delete(s.sessions, id)
		}
	}

	if len(s.sessions) >= s.limits.Max || now.Sub(s.lastPrune) >= pruneInterval {
		s.pruneLocked(now)
	}
	if len(s.sessions) >= s.limits.Max {
		s.evictOldestLocked()
	}

	sel := &Selection{active: s.initial}
	id = uuid.NewString()
	s.sessions[id] = &session{sel: sel, lastSeen: now}

	s.log.Debug("new session %s starting on %s", id, s.initial)
	return id, sel
}

// Prune drops expired sessions and reports how many it removed.
func (s *SessionStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pruneLocked(s.now())
}

func (s *SessionStore) pruneLocked(now time.Time) int {
	s.lastPrune = now
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.limits.TTL {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.Debug("pruned %d expired sessions", removed)
	}
	return removed
}

func (s *SessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
		s.log.Debug("session limit %d reached, evicted %s", s.limits.Max, oldestID)
	}
}

// Len is the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Forget drops a session.
func (s *SessionStore) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
