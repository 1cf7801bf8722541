package cache

import (
	"context"
	"time"

	"github.com/matzehuels/justify/pkg/observability"
)

// KeyTypeDocument labels document cache events in the observability hooks.
const KeyTypeDocument = "document"

// Observed reports every Get and Set of the wrapped cache to
// observability.Cache(). Backend errors are not reported as misses.
type Observed struct {
	Cache
	keyType string
}

// Observe wraps c so its traffic shows up in the cache hooks under keyType.
func Observe(c Cache, keyType string) Cache {
	return &Observed{Cache: c, keyType: keyType}
}

// Get forwards to the wrapped cache and records a hit or a miss.
func (o *Observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := o.Cache.Get(ctx, key)
	if err != nil {
		return data, hit, err
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, o.keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, o.keyType)
	}
	return data, hit, nil
}

// Set forwards to the wrapped cache and records the write size.
func (o *Observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := o.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, o.keyType, len(data))
	return nil
}
