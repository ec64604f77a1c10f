package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var ErrTooManySessions = errors.New("too many booking sessions")

type session struct {
	view     *BookingView
	lastSeen time.Time
}

// SessionStore keeps one BookingView per browser session in memory
type SessionStore struct {
	predictor   Predictor
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionStore creates an empty store whose views use predictor. A
// maxSessions of zero or less means no cap.
func NewSessionStore(predictor Predictor, idleTimeout time.Duration, maxSessions int) *SessionStore {
	return &SessionStore{
		predictor:   predictor,
		idleTimeout: idleTimeout,
		maxSessions: maxSessions,
		now:         time.Now,
		sessions:    make(map[string]*session),
	}
}

// Get returns the view for id and marks it as seen
func (s *SessionStore) Get(id string) (*BookingView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.view, true
}

// Create starts a new session with a fresh view
func (s *SessionStore) Create() (string, *BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return "", nil, ErrTooManySessions
	}

	id := uuid.NewString()
	view := NewBookingView(s.predictor)
	s.sessions[id] = &session{view: view, lastSeen: s.now()}
	return id, view, nil
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the idle timeout. Busy views
// are kept until their call resolves.
func (s *SessionStore) Sweep() int {
	cutoff := s.now().Add(-s.idleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) && !sess.view.Busy() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given cron schedule. Stop the returned
// cron on shutdown.
func (s *SessionStore) StartSweeper(schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if n := s.Sweep(); n > 0 {
			log.Printf("Removed %d idle booking sessions (%d left)", n, s.Len())
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
