package ratelimit

import (
	"context"
	"sync"
	"time"
)

// CounterStore is the fixed-window counter surface shared by the Redis client
// and the in-process store below.
type CounterStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// MemoryStore is a process-wide, concurrency-safe fixed-window counter used
// when no Redis endpoint is configured. Windows reset lazily on access, so no
// background sweeper is needed at this scale.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

type window struct {
	count   int64
	resetAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// IncrWithTTL increments the counter at key, starting a fresh window with the
// supplied TTL when none is active.
func (s *MemoryStore) IncrWithTTL(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(ttl)}
		s.windows[key] = w
	}
	w.count++
	return w.count, nil
}
