package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	errs "github.com/matzehuels/justify/pkg/errors"
)

// RedisConfig configures a RedisCache.
type RedisConfig struct {
	Addr        string        // host:port, e.g. "localhost:6379"
	Password    string        // optional AUTH password
	DB          int           // logical database number
	DialTimeout time.Duration // zero uses the go-redis default
}

// RedisCache stores entries in redis using SET with an expiry.
// It is safe for concurrent use; the underlying client pools connections.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to redis and pings it, retrying with backoff.
// The returned error carries code NETWORK_ERROR when the server is unreachable.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	err := RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return Retryable(errs.Wrap(errs.ErrCodeNetwork, err, "ping redis at %s", cfg.Addr))
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

// NewRedisCacheFromClient wraps an existing client without pinging it.
func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get retrieves a value. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(errs.ErrCodeNetwork, err, "redis GET")
	}
	return data, true, nil
}

// Set stores a value. A zero ttl stores the key without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return errs.Wrap(errs.ErrCodeNetwork, err, "redis SET")
	}
	return nil
}

// Delete removes a value.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errs.Wrap(errs.ErrCodeNetwork, err, "redis DEL")
	}
	return nil
}

// Close closes the client and its connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
