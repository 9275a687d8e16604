// Package cache stores fit reports between CLI runs.
//
// Fitting is deterministic: the same workbook bytes and the same fit options
// always settle on the same row heights. A report can therefore be reused
// verbatim as long as its key — the SHA-256 of the workbook content combined
// with the options (see Keyer) — still matches. Entries carry a TTL only to
// bound disk growth, never for correctness.
//
// The fitting engine itself stays I/O-free; only the CLI talks to a Cache.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for fit report caches.
type Cache interface {
	// Get retrieves a stored report. The second return value reports
	// whether the key was found and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a report. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// NullCache never stores anything. It backs --no-cache and tests: every Get
// is a miss and every write succeeds without effect.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the report.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
