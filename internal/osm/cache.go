package osm

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arrival-spring/osm-phones-sub000/platform/config"
	"github.com/arrival-spring/osm-phones-sub000/platform/logger"
)

// Cache is a Redis-backed response cache for Overpass queries. A nil Cache
// is valid and never hits; cache failures degrade to a network fetch.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCache creates the response cache, or nil when caching is not
// configured.
func NewCache(cfg config.CacheConfig, log *logger.Logger) *Cache {
	if !cfg.IsCacheEnabled() {
		return nil
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: cfg.GetRedisAddr()}),
		ttl:    cfg.GetCacheTTL(),
		log:    log,
	}
}

// Ping verifies connectivity to the cache backend.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the cached payload for key, if present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.CacheError("get", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a payload under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.CacheError("set", err)
	}
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
