package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/carebridge/medtour-backend/internal/domain/providers"
)

// MemoryAdapter is an in-process CacheProvider with TTL expiry. It backs
// deployments without Redis and lets tests inject a deterministic clock.
type MemoryAdapter struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryAdapter creates an in-memory cache using the wall clock.
func NewMemoryAdapter() *MemoryAdapter {
	return NewMemoryAdapterWithClock(time.Now)
}

// NewMemoryAdapterWithClock creates an in-memory cache with an injected
// clock.
func NewMemoryAdapterWithClock(now func() time.Time) *MemoryAdapter {
	return &MemoryAdapter{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

var _ providers.CacheProvider = (*MemoryAdapter)(nil)

// Get retrieves a value from cache
func (a *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	entry, ok := a.entries[key]
	a.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("key not found: %s", key)
	}
	if a.now().After(entry.expiresAt) {
		a.mu.Lock()
		delete(a.entries, key)
		a.mu.Unlock()
		return nil, fmt.Errorf("key expired: %s", key)
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, nil
}

// Set stores a value in cache with a TTL
func (a *MemoryAdapter) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	a.mu.Lock()
	a.entries[key] = memoryEntry{
		value:     stored,
		expiresAt: a.now().Add(ttl),
	}
	a.mu.Unlock()
	return nil
}

// Delete removes a value from cache
func (a *MemoryAdapter) Delete(_ context.Context, key string) error {
	a.mu.Lock()
	delete(a.entries, key)
	a.mu.Unlock()
	return nil
}

// Clear removes every cached value
func (a *MemoryAdapter) Clear(_ context.Context) error {
	a.mu.Lock()
	a.entries = make(map[string]memoryEntry)
	a.mu.Unlock()
	return nil
}
