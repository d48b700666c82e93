package interfaces

import (
	"context"
	"time"
)

// IDuplicateGuard records idempotency keys of mutating requests.
//
// Acquire returns false when key was already recorded within ttl. Release
// forgets key so a request whose write failed can be retried at once.
type IDuplicateGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
