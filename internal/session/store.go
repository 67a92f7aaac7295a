// Package session keeps per-browser UI preferences keyed by a session token.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
)

// Preferences is the state held for one session.
type Preferences struct {
	Theme    domain.Theme
	Language string // empty until the visitor picks one
}

type record struct {
	prefs    Preferences
	flashes  []domain.Flash
	created  time.Time
	lastUsed time.Time
}

// Store manages session preferences in memory.
type Store struct {
	sessions map[string]*record
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = domain.SessionTTL
	}
	store := &Store{
		sessions: make(map[string]*record),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	// Start cleanup goroutine
	go store.cleanupLoop(time.Hour)

	return store
}

// NewID returns a random 256-bit hex session id.
func NewID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Create starts a new session with default preferences and returns its id.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := NewID()
	for _, exists := s.sessions[id]; exists; _, exists = s.sessions[id] {
		id = NewID()
	}
	now := s.now()
	s.sessions[id] = &record{
		prefs:    Preferences{Theme: domain.DefaultTheme},
		created:  now,
		lastUsed: now,
	}
	return id
}

// Valid reports whether id names a live session and refreshes its idle timer.
func (s *Store) Valid(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.touch(id)
	return ok
}

// touch returns the live record for id, dropping it when expired.
// Callers hold s.mu.
func (s *Store) touch(id string) (*record, bool) {
	rec, exists := s.sessions[id]
	if !exists {
		return nil, false
	}
	now := s.now()
	if now.Sub(rec.lastUsed) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	rec.lastUsed = now
	return rec, true
}

// Preferences returns the session's preferences, or defaults for unknown or
// expired sessions. Stored values are re-normalized on read.
func (s *Store) Preferences(id string) Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.touch(id)
	if !ok {
		return Preferences{Theme: domain.DefaultTheme}
	}
	prefs := rec.prefs
	prefs.Theme = domain.NormalizeTheme(string(prefs.Theme))
	return prefs
}

// SetTheme stores the theme, coercing unknown values to the default.
// It returns the stored theme and false when the session is unknown.
func (s *Store) SetTheme(id, theme string) (domain.Theme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := domain.NormalizeTheme(theme)
	rec, ok := s.touch(id)
	if !ok {
		return normalized, false
	}
	rec.prefs.Theme = normalized
	return normalized, true
}

// SetLanguage stores an already-validated locale code.
func (s *Store) SetLanguage(id, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.touch(id)
	if !ok {
		return false
	}
	rec.prefs.Language = code
	return true
}

// AddFlash queues a notice for the next rendered page. Only the newest
// domain.MaxFlashes notices are kept.
func (s *Store) AddFlash(id string, flash domain.Flash) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.touch(id)
	if !ok {
		return false
	}
	rec.flashes = append(rec.flashes, flash)
	if over := len(rec.flashes) - domain.MaxFlashes; over > 0 {
		rec.flashes = rec.flashes[over:]
	}
	return true
}

// PopFlashes returns and clears queued notices.
func (s *Store) PopFlashes(id string) []domain.Flash {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.touch(id)
	if !ok || len(rec.flashes) == 0 {
		return nil
	}
	flashes := rec.flashes
	rec.flashes = nil
	return flashes
}

// Remove deletes a session.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// cleanupLoop periodically removes expired sessions
func (s *Store) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stop:
			return
		}
	}
}

// cleanup removes expired sessions
func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, rec := range s.sessions {
		if now.Sub(rec.lastUsed) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// Close stops the cleanup loop.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Count returns the number of stored sessions
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
