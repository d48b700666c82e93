package usecase

import (
	"context"
	"errors"
	"fmt"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrUnknownListKind = errors.New("unknown list kind")

type ListMode string

const (
	ListModeLive     ListMode = "live"
	ListModeDegraded ListMode = "degraded"
)

// DegradedNotice is shown with a point-in-time snapshot.
const DegradedNotice = "degraded: showing a one-time snapshot, updates are not live"

var errFeedUnavailable = errors.New("change feed not configured")

// ListSnapshot is one rendering of a list view. Only the slice matching
// Kind is populated. Err is set when the fetch itself failed.
type ListSnapshot struct {
	Kind        entities.EntityKind
	Mode        ListMode
	Notice      string
	Simulations []entities.Simulation
	Policies    []entities.Policy
	Err         error
}

// IListObserver streams list snapshots to a client.
type IListObserver interface {
	Watch(ctx context.Context, p entities.Principal, kind entities.EntityKind) (<-chan ListSnapshot, error)
}

// ListObserver runs in one of two explicit modes. Live: an initial fetch
// followed by a refetch per change event. Degraded: exactly one fetch, sent
// with DegradedNotice, then the channel closes. A live observer whose
// subscription drops falls back to degraded once and never resubscribes.
type ListObserver struct {
	simulations ISimulationUseCase
	policies    IPolicyUseCase
	feed        interfaces.IChangeFeed
	lc          lifecycle
}

var _ IListObserver = (*ListObserver)(nil)

func NewListObserver(
	simulations ISimulationUseCase,
	policies IPolicyUseCase,
	feed interfaces.IChangeFeed,
	metrics interfaces.IMetrics,
	logger *zap.Logger,
) *ListObserver {
	return &ListObserver{
		simulations: simulations,
		policies:    policies,
		feed:        feed,
		lc:          lifecycle{metrics: metrics, logger: logger}.withDefaults(),
	}
}

// Watch starts observing the caller's list of kind. The returned channel is
// closed when ctx ends or the observer gives up.
func (o *ListObserver) Watch(ctx context.Context, p entities.Principal, kind entities.EntityKind) (<-chan ListSnapshot, error) {
	if kind != entities.EntityKindSimulation && kind != entities.EntityKindPolicy {
		return nil, fmt.Errorf("%w: %s", ErrUnknownListKind, kind)
	}
	if err := authorize(p, resourceFor(kind), actionList, ""); err != nil {
		return nil, err
	}

	ownerFilter := p.UserID
	if p.IsAdmin() {
		ownerFilter = ""
	}

	out := make(chan ListSnapshot, 1)

	var (
		sub interfaces.ISubscription
		err = errFeedUnavailable
	)
	if o.feed != nil {
		sub, err = o.feed.Subscribe(ctx, kind, ownerFilter)
	}
	if err != nil {
		o.degrade(kind, err)
		go func() {
			defer close(out)
			o.emit(ctx, out, o.fetch(ctx, p, kind, ListModeDegraded))
		}()
		return out, nil
	}

	go o.run(ctx, p, kind, sub, out)
	return out, nil
}

func (o *ListObserver) run(ctx context.Context, p entities.Principal, kind entities.EntityKind, sub interfaces.ISubscription, out chan<- ListSnapshot) {
	defer close(out)
	defer sub.Close()

	if !o.emit(ctx, out, o.fetch(ctx, p, kind, ListModeLive)) {
		return
	}

	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					return
				}
				o.degrade(kind, errors.New("subscription closed"))
				o.emit(ctx, out, o.fetch(ctx, p, kind, ListModeDegraded))
				return
			}
			if !drain(events) {
				o.degrade(kind, errors.New("subscription closed"))
				o.emit(ctx, out, o.fetch(ctx, p, kind, ListModeDegraded))
				return
			}
			if !o.emit(ctx, out, o.fetch(ctx, p, kind, ListModeLive)) {
				return
			}
		}
	}
}

// drain discards events already queued so a burst causes one refetch. It
// returns false when the channel was closed.
func drain(events <-chan entities.ChangeEvent) bool {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return false
			}
		default:
			return true
		}
	}
}

func (o *ListObserver) degrade(kind entities.EntityKind, cause error) {
	o.lc.metrics.ListDegraded(string(kind))
	o.lc.logger.Warn("[list][usecase] live updates unavailable, serving one-time snapshot",
		zap.String("kind", string(kind)), zap.Error(cause))
}

func (o *ListObserver) fetch(ctx context.Context, p entities.Principal, kind entities.EntityKind, mode ListMode) ListSnapshot {
	snap := ListSnapshot{Kind: kind, Mode: mode}
	if mode == ListModeDegraded {
		snap.Notice = DegradedNotice
	}
	switch kind {
	case entities.EntityKindSimulation:
		snap.Simulations, snap.Err = o.simulations.List(ctx, p, "")
	case entities.EntityKindPolicy:
		snap.Policies, snap.Err = o.policies.List(ctx, p, "")
	}
	return snap
}

func (o *ListObserver) emit(ctx context.Context, out chan<- ListSnapshot, snap ListSnapshot) bool {
	select {
	case out <- snap:
		return true
	case <-ctx.Done():
		return false
	}
}
