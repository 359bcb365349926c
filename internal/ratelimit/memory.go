package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	windowStart time.Time
	count       int
}

// MemoryStore keeps fixed-window counters in a mutex-guarded map. The
// check-then-increment happens under one lock so concurrent requests from
// the same IP cannot lose updates.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || now.Sub(e.windowStart) > window {
		s.entries[key] = &entry{windowStart: now, count: 1}
		return 1, nil
	}

	e.count++
	return e.count, nil
}

func (s *MemoryStore) Sweep(_ context.Context, maxAge time.Duration) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if now.Sub(e.windowStart) > maxAge {
			delete(s.entries, key)
		}
	}
	return nil
}
