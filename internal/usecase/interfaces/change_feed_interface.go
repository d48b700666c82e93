package interfaces

import (
	"context"
	"seguros_xpto/internal/domain/entities"
)

// IChangeFeed publishes and subscribes to entity change events.
//
// Subscribe with an empty ownerID receives changes for every owner.
type IChangeFeed interface {
	Publish(ctx context.Context, ev entities.ChangeEvent) error
	Subscribe(ctx context.Context, kind entities.EntityKind, ownerID string) (ISubscription, error)
}

// ISubscription is a live change stream. Events is closed when the
// subscription drops.
type ISubscription interface {
	Events() <-chan entities.ChangeEvent
	Close() error
}
