// Package cache stores justified documents keyed by input content and options.
//
// Justification is a pure function of (input, width, whitespace policy,
// normalization), so its output can be cached indefinitely. The cache layer is
// shared by the CLI and the HTTP server through [pipeline.Runner].
//
// # Backends
//
//   - [NullCache]: never stores anything (--no-cache, tests)
//   - [MemoryCache]: process-local map, used by the server when no backend is configured
//   - [FileCache]: JSON files under ~/.cache/justify, the CLI default
//   - [RedisCache]: shared cache for multi-instance deployments
//   - [MongoCache]: durable document store with a TTL index
//
// All backends implement [Cache]. Wrap any of them with [Observe] to report
// hits, misses and writes to the observability hooks.
//
// # Keys
//
// A [Keyer] turns an input hash plus [DocumentKeyOpts] into a cache key.
// [DefaultKeyer] hashes the options so that keys stay short and fixed-size;
// [ScopedKeyer] adds a prefix for tenant isolation.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.DocumentKey(cache.Hash(input), cache.DocumentKeyOpts{Width: 72})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// TTLDocument is how long a justified document stays cached.
const TTLDocument = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); an error means the backend itself
// failed. A ttl of zero in Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
