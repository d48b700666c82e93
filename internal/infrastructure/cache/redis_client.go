// Package cache connects to the Redis instance backing the change feed and
// the duplicate guard.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 3 * time.Second

// NewRedisClient parses url and pings the server. It returns nil, nil when
// url is empty: the service then runs without live lists or dedupe.
func NewRedisClient(url string, logger *zap.Logger) (*redis.Client, error) {
	if url == "" {
		logger.Warn("[cache][redis] REDIS_URL not set, live updates and duplicate guard disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("[cache][redis] connected", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return client, nil
}
