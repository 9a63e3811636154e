package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count   int
	resetAt time.Time
}

// MemoryStore keeps counters in process memory. Counters are lost on restart
// and are not shared between replicas.
type MemoryStore struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*memoryEntry
	now     func() time.Time
}

type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

func NewMemoryStore(window time.Duration, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		window:  window,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Increment(_ context.Context, key string) (int, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &memoryEntry{resetAt: now.Add(s.window)}
		s.entries[key] = e
	}
	e.count++

	return e.count, e.resetAt, nil
}

// Cleanup drops every counter whose window has ended and returns how many
// were removed.
func (s *MemoryStore) Cleanup() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, e := range s.entries {
		if !now.Before(e.resetAt) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of live counters.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
