package cache

import (
	"context"
	"time"
)

// NullCache discards everything. It backs --no-cache runs and keeps the
// layout caching wrapper free of nil checks.
type NullCache struct{}

// NewNullCache returns a cache that never stores and never hits.
func NewNullCache() Cache {
	return NullCache{}
}

// Get implements [Cache]; always a miss.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set implements [Cache]; the data is dropped.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete implements [Cache].
func (NullCache) Delete(context.Context, string) error { return nil }

// Close implements [Cache].
func (NullCache) Close() error { return nil }
