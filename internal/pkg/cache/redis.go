package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small read-through cache used to shave repeated aggregation
// queries off the running-total endpoint. Callers must treat every error
// as a miss and fall back to the source — the cache is never authoritative.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

type redisCache struct {
	client  *redis.Client
	appName string
}

// NewRedisCache connects to the Redis instance at addr. Keys are
// namespaced under appName so several apps can share the instance.
func NewRedisCache(addr, appName string) Cache {
	return &redisCache{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		appName: appName,
	}
}

func (r redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get returns the cached value, or "" on a miss.
func (r redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r redisCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.appName, operation, key)
}
