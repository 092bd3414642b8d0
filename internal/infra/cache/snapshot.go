// Package cache provides small in-memory TTL caches used to memoize
// assembled screen snapshots and generated horoscopes.
package cache

import (
	"sync"
	"time"
)

// Snapshot is a single-slot TTL cache. Unlike a UI-thread-confined cache it
// is guarded by a mutex: request handlers touch it from many goroutines.
type Snapshot[T any] struct {
	mu        sync.Mutex
	value     T
	expiresAt time.Time
	populated bool

	now func() time.Time // injectable for tests
}

// NewSnapshot returns an empty snapshot cache.
func NewSnapshot[T any]() *Snapshot[T] {
	return &Snapshot[T]{now: time.Now}
}

// Put stores a value that expires after ttl.
func (s *Snapshot[T]) Put(value T, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.expiresAt = s.now().Add(ttl)
	s.populated = true
}

// Get returns the cached value. A value is a miss once the current time has
// reached expiresAt, and after Clear.
func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if !s.populated || !s.now().Before(s.expiresAt) {
		return zero, false
	}

	return s.value, true
}

// Clear drops any cached value.
func (s *Snapshot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value = zero
	s.populated = false
	s.expiresAt = time.Time{}
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLMap is a keyed TTL cache. Expired entries are pruned lazily on access.
type TTLMap[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]entry[V]

	now func() time.Time
}

// NewTTLMap returns an empty keyed TTL cache.
func NewTTLMap[K comparable, V any]() *TTLMap[K, V] {
	return &TTLMap[K, V]{
		entries: make(map[K]entry[V]),
		now:     time.Now,
	}
}

// Put stores a value under key that expires after ttl.
func (m *TTLMap[K, V]) Put(key K, value V, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry[V]{value: value, expiresAt: m.now().Add(ttl)}
}

// Get returns the value under key if present and not expired.
func (m *TTLMap[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	e, ok := m.entries[key]
	if !ok {
		return zero, false
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, key)

		return zero, false
	}

	return e.value, true
}

// Clear drops all entries.
func (m *TTLMap[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[K]entry[V])
}
