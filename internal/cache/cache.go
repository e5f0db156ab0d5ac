package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a read-through TTL cache over Redis. A nil *Cache (or one built
// with an empty address) is a no-op, so callers never branch on whether
// caching is configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a cache against the given Redis address. Returns nil when
// addr is empty, disabling caching.
func New(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// GetJSON loads a cached value into dest. Returns false on miss or any
// Redis/decode error; errors are logged and treated as misses.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("cache get error for %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("cache decode error for %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON stores a value under key with the cache TTL. Failures are logged
// and ignored; the database remains the source of truth.
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache encode error for %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("cache set error for %s: %v", key, err)
	}
}

// Close releases the underlying Redis connection
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
