package usecase

import (
	"context"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

// duplicateWindow bounds how long a mutation key is remembered. Keys are
// already minute-bucketed, so two minutes covers a bucket boundary.
const duplicateWindow = 2 * time.Minute

type noopMetrics struct{}

func (noopMetrics) SimulationSubmitted(string, string) {}
func (noopMetrics) PolicyTransition(string, string)    {}
func (noopMetrics) DocumentUploaded(string, string)    {}
func (noopMetrics) DuplicateSuppressed(string)         {}
func (noopMetrics) NotificationFailed(string)          {}
func (noopMetrics) ListDegraded(string)                {}

// lifecycle bundles the side channels shared by the lifecycle usecases.
// Every field may be left nil.
type lifecycle struct {
	feed    interfaces.IChangeFeed
	guard   interfaces.IDuplicateGuard
	metrics interfaces.IMetrics
	logger  *zap.Logger
}

func (l lifecycle) withDefaults() lifecycle {
	if l.metrics == nil {
		l.metrics = noopMetrics{}
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	return l
}

func (l lifecycle) publish(ctx context.Context, kind entities.EntityKind, id, ownerID, action string, at time.Time) {
	if l.feed == nil {
		return
	}
	ev := entities.ChangeEvent{Kind: kind, ID: id, OwnerID: ownerID, Action: action, OccurredAt: at}
	if err := l.feed.Publish(ctx, ev); err != nil {
		l.logger.Warn("[lifecycle][usecase] change event not published",
			zap.String("kind", string(kind)), zap.String("id", id), zap.Error(err))
	}
}

// acquire reports whether key is new. Guard failures let the write through.
func (l lifecycle) acquire(ctx context.Context, operation, key string) bool {
	if l.guard == nil {
		return true
	}
	ok, err := l.guard.Acquire(ctx, key, duplicateWindow)
	if err != nil {
		l.logger.Warn("[lifecycle][usecase] duplicate guard unavailable",
			zap.String("operation", operation), zap.Error(err))
		return true
	}
	if !ok {
		l.metrics.DuplicateSuppressed(operation)
		l.logger.Info("[lifecycle][usecase] duplicate request suppressed", zap.String("operation", operation))
	}
	return ok
}

// settle records key for the state a successful write produced, so an
// identical replay against that state is suppressed.
func (l lifecycle) settle(ctx context.Context, key string) {
	if l.guard == nil {
		return
	}
	if _, err := l.guard.Acquire(ctx, key, duplicateWindow); err != nil {
		l.logger.Warn("[lifecycle][usecase] duplicate guard settle failed", zap.Error(err))
	}
}

func (l lifecycle) release(ctx context.Context, key string) {
	if l.guard == nil {
		return
	}
	if err := l.guard.Release(ctx, key); err != nil {
		l.logger.Warn("[lifecycle][usecase] duplicate guard release failed", zap.Error(err))
	}
}
