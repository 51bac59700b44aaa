package session

import (
	"context"
	"sync"
	"time"
)

// entry holds a stored value with its expiration time.
type entry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
}

func (e *entry[V]) isExpired() bool {
	if e.expiresAt.IsZero() {
		return false
	}
	return time.Now().After(e.expiresAt)
}

// Memory is an in-memory session store with TTL-based expiration and a
// background janitor that removes expired entries.
type Memory[V any] struct {
	items    map[string]*entry[V]
	ttl      time.Duration
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
	interval time.Duration
}

// MemoryOption configures the memory store.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	cleanupInterval time.Duration
}

// WithCleanupInterval sets how often the janitor sweeps expired entries.
// A non-positive interval disables the janitor.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// NewMemory creates an in-memory store. Entries expire ttl after their last
// Put; a zero ttl means entries never expire.
//
// Example:
//
//	store := session.NewMemory[*workflow.State](2 * time.Hour)
//	defer store.Close()
func NewMemory[V any](ttl time.Duration, opts ...MemoryOption) *Memory[V] {
	o := &memoryOptions{cleanupInterval: time.Minute}
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items:    make(map[string]*entry[V]),
		ttl:      ttl,
		done:     make(chan struct{}),
		interval: o.cleanupInterval,
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves the state for a token.
func (m *Memory[V]) Get(_ context.Context, token string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[token]
	if !ok || e.isExpired() {
		if ok {
			delete(m.items, token)
		}
		var zero V
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Put stores state under a token and resets its TTL.
func (m *Memory[V]) Put(_ context.Context, token string, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expiresAt time.Time
	if m.ttl > 0 {
		expiresAt = time.Now().Add(m.ttl)
	}
	m.items[token] = &entry[V]{value: value, expiresAt: expiresAt}
	return nil
}

// Delete removes the state for a token.
func (m *Memory[V]) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, token)
	return nil
}

// Close stops the janitor and clears all entries.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	m.items = make(map[string]*entry[V])
	return nil
}

// janitor periodically removes expired entries.
func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mu.Lock()
			for token, e := range m.items {
				if e.isExpired() {
					delete(m.items, token)
				}
			}
			m.mu.Unlock()
		}
	}
}
