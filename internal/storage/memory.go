package storage

import (
	"context"
	"sync"
)

// MemoryStore implements [Store] on a plain map. Used in tests and as a
// degraded fallback when the database cannot be opened: the app keeps
// working for the session, nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Snapshot returns a copy of the current contents. Tests use it to simulate
// a process restart by seeding a fresh store with the old state.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Seed replaces the store contents wholesale.
func (s *MemoryStore) Seed(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string, len(values))
	for k, v := range values {
		s.values[k] = v
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

func (s *MemoryStore) Remove(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}

func (s *MemoryStore) Clear(ctx context.Context, keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}
}
