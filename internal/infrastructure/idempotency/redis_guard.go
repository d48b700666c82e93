// Package idempotency stores mutation keys in Redis so a repeated request
// inside the duplicate window is acknowledged without a second write.
package idempotency

import (
	"context"
	"time"

	"seguros_xpto/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idem:"

// KeyStore is the subset of redis.Cmdable used by the guard.
type KeyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

var _ KeyStore = (*redis.Client)(nil)

type RedisGuard struct {
	store KeyStore
}

var _ interfaces.IDuplicateGuard = (*RedisGuard)(nil)

func NewRedisGuard(store KeyStore) *RedisGuard {
	return &RedisGuard{store: store}
}

// Acquire records key with SET NX; false means it was already present.
func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if key == "" {
		return true, nil
	}
	return g.store.SetNX(ctx, keyPrefix+key, "1", ttl).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return g.store.Del(ctx, keyPrefix+key).Err()
}
