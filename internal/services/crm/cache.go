package crm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// Cache is a short-TTL Redis cache for CRM GET responses. It only ever
// stores upstream payloads, never computed results, so every request
// still recomputes its qualification from fresh inputs once the TTL
// lapses. Cache failures degrade to direct CRM calls.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a response cache against a Redis address.
func NewCache(addr string, ttl time.Duration) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// NewCacheWithClient wraps an existing Redis client, used in tests.
func NewCacheWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(path string) string {
	return "crm:" + path
}

// Get returns a cached payload for a CRM path, if present.
func (c *Cache) Get(ctx context.Context, path string) (json.RawMessage, bool) {
	data, err := c.client.Get(ctx, cacheKey(path)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("cache read failed", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Set stores a payload for a CRM path with the configured TTL.
func (c *Cache) Set(ctx context.Context, path string, data json.RawMessage) {
	if err := c.client.Set(ctx, cacheKey(path), []byte(data), c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("cache write failed", zap.String("path", path), zap.Error(err))
	}
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
