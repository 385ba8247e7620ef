// Package cache provides a small in-process TTL cache used by the resolvers.
package cache

import (
	"sync"
	"time"

	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/timeutil"
)

// Entry is a cached value and the time it was stored.
type Entry[T any] struct {
	Value      T
	InsertedAt time.Time
}

// TTL is a mutex-guarded map whose entries expire lazily on read once
// now - InsertedAt >= ttl. Safe for concurrent use.
type TTL[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   timeutil.Clock
	entries map[string]Entry[T]
}

// New creates a TTL cache. A nil clock uses the system clock.
func New[T any](ttl time.Duration, clock timeutil.Clock) *TTL[T] {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TTL[T]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]Entry[T]),
	}
}

// Get returns the value for key if present and fresh. Expired entries are evicted.
func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.clock.Now().Sub(e.InsertedAt) >= c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return e.Value, true
}

// Set stores value under key, replacing any previous entry.
func (c *TTL[T]) Set(key string, value T) {
	c.mu.Lock()
	c.entries[key] = Entry[T]{Value: value, InsertedAt: c.clock.Now()}
	c.mu.Unlock()
}

// Len returns the number of stored entries, including ones not yet evicted.
func (c *TTL[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// TTL returns the configured lifetime.
func (c *TTL[T]) TTL() time.Duration {
	return c.ttl
}
