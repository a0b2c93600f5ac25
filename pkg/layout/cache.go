package layout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/timoleistner/plotrna/pkg/cache"
	"github.com/timoleistner/plotrna/pkg/rna"
)

// layoutTTL bounds how long memoized coordinates stay valid. Layouts are
// deterministic per graphviz version, so the TTL mostly limits disk growth.
const layoutTTL = 30 * 24 * time.Hour

// Cached wraps a provider with a byte cache keyed by structure and scheme.
// Cache failures are treated as misses; the render must not fail because a
// cache directory is unwritable.
type Cached struct {
	inner Provider
	store cache.Cache
}

// NewCached returns a caching wrapper around inner. A nil store disables
// caching (NullCache).
func NewCached(inner Provider, store cache.Cache) *Cached {
	if store == nil {
		store = cache.NewNullCache()
	}
	return &Cached{inner: inner, store: store}
}

// Layout implements [Provider].
func (c *Cached) Layout(ctx context.Context, structure string, pairs rna.PairList, scheme Scheme) (Coordinates, error) {
	key := cache.LayoutKey(structure, string(scheme))

	if data, hit, err := c.store.Get(ctx, key); err == nil && hit {
		var coords Coordinates
		if json.Unmarshal(data, &coords) == nil && coords.Len() == len(structure) {
			return coords, nil
		}
		// Corrupt entry: fall through and recompute.
		_ = c.store.Delete(ctx, key)
	}

	coords, err := c.inner.Layout(ctx, structure, pairs, scheme)
	if err != nil {
		return Coordinates{}, err
	}

	if data, err := json.Marshal(coords); err == nil {
		_ = c.store.Set(ctx, key, data, layoutTTL)
	}
	return coords, nil
}
