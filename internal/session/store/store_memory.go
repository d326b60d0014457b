package store

import (
	"context"
	"sync"
	"time"

	"ftts-booking/internal/session"
	"ftts-booking/pkg/domain"
	"ftts-booking/pkg/platform/sentinel"
)

type memoryEntry struct {
	state     session.State
	expiresAt time.Time
}

// MemoryStore is an in-memory session store for development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore constructs an in-memory store. Sessions expire ttl after
// their last write.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[domain.SessionID]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, id domain.SessionID) (session.State, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return session.State{}, sentinel.ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return session.State{}, sentinel.ErrNotFound
	}
	return entry.state, nil
}

func (s *MemoryStore) Put(_ context.Context, state session.State) error {
	if state.SessionID.IsZero() {
		return sentinel.ErrInvalidState
	}
	s.mu.Lock()
	s.sessions[state.SessionID] = memoryEntry{
		state:     state,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id domain.SessionID) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
