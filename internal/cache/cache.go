// Package cache stores normalized directory responses so repeated searches and
// episode lookups can skip the network round trip.
package cache

import "context"

// EvictCallback is called when an entry is evicted from the cache.
// Only the memory provider reports evictions; Redis expires keys server-side.
type EvictCallback func(key string, value []byte)

// Cache is a key-value store with a bounded lifetime per entry.
type Cache interface {
	// Get returns the value stored under key and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte)

	// Len returns the number of live entries.
	Len(ctx context.Context) int

	// Close releases connections held by the provider.
	Close() error
}

// Logger receives the errors a provider swallows to keep cache failures non-fatal.
type Logger interface {
	Error(msg string, err error)
}
