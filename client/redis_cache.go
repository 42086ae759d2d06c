package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisQueryCache implements QueryCache using Redis. Suitable for
// clients that share cached reads across process instances.
type RedisQueryCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisCacheConfig holds Redis connection configuration
type RedisCacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisQueryCache creates a Redis-backed query cache
func NewRedisQueryCache(cfg RedisCacheConfig) (*RedisQueryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisQueryCache{
		client:    client,
		keyPrefix: "client:query:",
	}, nil
}

// NewRedisQueryCacheWithClient creates a cache with an existing Redis client
func NewRedisQueryCacheWithClient(client *redis.Client, keyPrefix string) *RedisQueryCache {
	if keyPrefix == "" {
		keyPrefix = "client:query:"
	}
	return &RedisQueryCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached value for key if present
func (c *RedisQueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached query: %w", err)
	}
	return value, true, nil
}

// Set stores value under key with the given TTL
func (c *RedisQueryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache query: %w", err)
	}
	return nil
}

// InvalidatePrefix deletes every entry whose key starts with prefix
func (c *RedisQueryCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	pattern := c.keyPrefix + prefix + "*"

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to invalidate cached query: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached queries: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisQueryCache) Close() error {
	return c.client.Close()
}

// Ensure RedisQueryCache implements QueryCache
var _ QueryCache = (*RedisQueryCache)(nil)
