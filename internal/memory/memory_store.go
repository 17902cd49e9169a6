package memory

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps contexts in process. Used when no Redis URL is
// configured and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	hc      *HealthContext
	expires time.Time
}

// NewMemoryStore creates a store whose entries expire after ttl (0 disables
// expiry).
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (*HealthContext, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok || s.expired(e) {
		return NewHealthContext(sessionID, s.now().UTC()), nil
	}
	return e.hc.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, hc *HealthContext) error {
	if hc.SessionID == "" {
		return ErrNoSession
	}
	e := memoryEntry{hc: hc.Clone()}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.sessions[hc.SessionID] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	return ok && !s.expired(e), nil
}

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expires.IsZero() && s.now().After(e.expires)
}
