// Package cache provides byte-level caching for expensive render inputs.
//
// The only hot path worth memoizing in plotrna is the Graphviz layout:
// embedding a large RNA graph takes seconds while everything downstream is
// milliseconds. Entries are keyed by a SHA-256 over the structure string
// and layout scheme, so identical renders hit the cache regardless of
// sequence, colors, or theme.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTLs.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
