// Package cache implements a Redis cache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/go-redis/redis/v8"
)

// Cache stores short-lived lookups such as organization names.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any) error
	Close() error
}

type RedisCache struct {
	conn *redis.Client
	ttl  time.Duration
}

// NewRedisCache connects to the Redis server at addr. Entries expire after
// ttl; a zero ttl keeps them forever.
func NewRedisCache(ctx context.Context, addr string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &RedisCache{conn: client, ttl: ttl}, nil
}

// Set stores a value in the cache.
func (rc *RedisCache) Set(ctx context.Context, key string, value any) error {
	return rc.conn.Set(ctx, key, value, rc.ttl).Err()
}

// Get retrieves a value from the cache. A missing key yields an empty string.
func (rc *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := rc.conn.Get(ctx, key).Result()
	if err == nil || errors.Is(err, redis.Nil) {
		return value, nil
	}

	return "", err
}

// Close closes the underlying Redis client.
func (rc *RedisCache) Close() error {
	return rc.conn.Close()
}
