// Package cache provides a small typed read-through cache over redis.
// Every operation degrades to a no-op when no redis client is
// configured, so callers never branch on cache availability.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values of type T under a key prefix.
type Cache[T any] struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCache creates a cache for type T. A nil client yields a cache
// that misses on every Get and discards every Set.
func NewCache[T any](rc *redis.Client, prefix string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{rc: rc, prefix: prefix, ttl: ttl}
}

func (c *Cache[T]) key(id string) string {
	return fmt.Sprintf("%s:%s", c.prefix, id)
}

// Get retrieves a cached value. A miss, a decode failure, or an
// unavailable redis all report (nil, nil): the caller falls through to
// storage either way.
func (c *Cache[T]) Get(ctx context.Context, id string) (*T, error) {
	if c.rc == nil {
		return nil, nil
	}
	raw, err := c.rc.Get(ctx, c.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, nil
	}
	var row T
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		return nil, nil
	}
	return &row, nil
}

// Set stores a value under the configured TTL.
func (c *Cache[T]) Set(ctx context.Context, id string, data *T) error {
	if c.rc == nil {
		return nil
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("cache: failed to marshal value: %w", err)
	}
	if err := c.rc.Set(ctx, c.key(id), bytes, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set %s: %w", c.key(id), err)
	}
	return nil
}

// Delete invalidates a cached value.
func (c *Cache[T]) Delete(ctx context.Context, id string) error {
	if c.rc == nil {
		return nil
	}
	if err := c.rc.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache: failed to delete %s: %w", c.key(id), err)
	}
	return nil
}
