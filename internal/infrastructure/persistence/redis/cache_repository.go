// Package redis provides a Redis-backed cache repository implementation
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forkful/v2/internal/infrastructure/config"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/redis/go-redis/v9"
)

// CacheRepository implements the cache repository interface using Redis
type CacheRepository struct {
	client *redis.Client
}

// NewClient creates a Redis client from configuration and verifies the
// connection
func NewClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewCacheRepository creates a new Redis cache repository
func NewCacheRepository(client *redis.Client) outbound.CacheRepository {
	return &CacheRepository{client: client}
}

// Get retrieves a value from cache; a miss is (nil, nil)
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// Set stores a value in cache with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Exists checks if a key exists in cache
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
