package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry is one cached value.
type entry[V any] struct {
	value V
	built time.Time
}

// Store is a TTL cache keyed by string. Concurrent misses for the same key
// share one load.
type Store[V any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
	sf      singleflight.Group
}

// New creates a store whose entries live for ttl. A zero ttl disables caching:
// every Get loads, but concurrent loads for one key are still shared.
func New[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
}

// WithClock replaces the store's clock. Intended for tests.
func (s *Store[V]) WithClock(now func() time.Time) *Store[V] {
	s.now = now
	return s
}

// Get returns the cached value for key, or calls load and caches its result.
// Errors are returned to every waiting caller and are never cached.
// The store keeps its own copy of key.
func (s *Store[V]) Get(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	// Fast path: fresh entry
	if v, ok := s.lookup(key); ok {
		return v, nil
	}

	key = strings.Clone(key)
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot
		if v, ok := s.lookup(key); ok {
			return v, nil
		}

		v, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if s.ttl > 0 {
			s.mu.Lock()
			s.entries[key] = entry[V]{value: v, built: s.now()}
			s.mu.Unlock()
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	v, _ := result.(V)
	return v, nil
}

// Invalidate removes key from the store.
func (s *Store[V]) Invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of entries, fresh or not.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store[V]) lookup(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || s.ttl <= 0 || s.now().Sub(e.built) > s.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}
