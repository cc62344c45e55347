package providers

import (
	"context"
	"time"
)

// CacheProvider defines the interface for the ephemeral TTL cache. Values are
// pure functions of their keys, so concurrent last-writer-wins overwrites are
// acceptable.
type CacheProvider interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear removes every cached value
	Clear(ctx context.Context) error
}
