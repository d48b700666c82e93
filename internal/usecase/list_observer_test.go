package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
)

func nextSnapshot(t *testing.T, ch <-chan ListSnapshot) (ListSnapshot, bool) {
	t.Helper()
	select {
	case snap, ok := <-ch:
		return snap, ok
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for snapshot")
	}
	return ListSnapshot{}, false
}

func newObserverFixture(feed *fakeFeed) (*ListObserver, *memSimulationRepo) {
	sims := newMemSimulationRepo(entities.Simulation{ID: "s1", OwnerID: "uid-1"})
	simUC := NewSimulationUseCase(sims, nil, nil, nil, nil)
	polUC := NewPolicyUseCase(newMemPolicyRepo(), sims, nil, nil, nil, nil)
	if feed == nil {
		return NewListObserver(simUC, polUC, nil, nil, nil), sims
	}
	return NewListObserver(simUC, polUC, feed, nil, nil), sims
}

func TestListObserver_DegradedWhenSubscribeFails(t *testing.T) {
	obs, _ := newObserverFixture(&fakeFeed{subscribeErr: errors.New("redis down")})

	ch, err := obs.Watch(context.Background(), customerPrincipal, entities.EntityKindSimulation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, ok := nextSnapshot(t, ch)
	if !ok {
		t.Fatalf("expected one snapshot")
	}
	if snap.Mode != ListModeDegraded || snap.Notice != DegradedNotice || len(snap.Simulations) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if _, ok := nextSnapshot(t, ch); ok {
		t.Fatalf("degraded observer must close after one snapshot")
	}
}

func TestListObserver_DegradedWithoutFeed(t *testing.T) {
	obs, _ := newObserverFixture(nil)
	ch, err := obs.Watch(context.Background(), adminPrincipal, entities.EntityKindPolicy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, _ := nextSnapshot(t, ch)
	if snap.Mode != ListModeDegraded || snap.Kind != entities.EntityKindPolicy {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestListObserver_LiveThenDrop(t *testing.T) {
	feed := &fakeFeed{}
	obs, sims := newObserverFixture(feed)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := obs.Watch(ctx, customerPrincipal, entities.EntityKindSimulation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := nextSnapshot(t, ch)
	if first.Mode != ListModeLive || first.Notice != "" || len(first.Simulations) != 1 {
		t.Fatalf("unexpected initial snapshot %+v", first)
	}

	sims.Upsert(ctx, entities.Simulation{ID: "s2", OwnerID: "uid-1"})
	feed.sub.events <- entities.ChangeEvent{Kind: entities.EntityKindSimulation, ID: "s2", OwnerID: "uid-1"}
	second, _ := nextSnapshot(t, ch)
	if second.Mode != ListModeLive || len(second.Simulations) != 2 {
		t.Fatalf("unexpected live snapshot %+v", second)
	}

	feed.sub.Close()
	last, ok := nextSnapshot(t, ch)
	if !ok || last.Mode != ListModeDegraded || last.Notice != DegradedNotice {
		t.Fatalf("expected degraded fallback, got %+v ok=%v", last, ok)
	}
	if _, ok := nextSnapshot(t, ch); ok {
		t.Fatalf("observer must not resubscribe")
	}
}

func TestListObserver_CancelClosesChannel(t *testing.T) {
	feed := &fakeFeed{}
	obs, _ := newObserverFixture(feed)
	ctx, cancel := context.WithCancel(context.Background())

	ch, _ := obs.Watch(ctx, customerPrincipal, entities.EntityKindSimulation)
	nextSnapshot(t, ch)
	cancel()
	if _, ok := nextSnapshot(t, ch); ok {
		t.Fatalf("expected channel closed after cancel")
	}
}

func TestListObserver_Rejects(t *testing.T) {
	obs, _ := newObserverFixture(&fakeFeed{})
	if _, err := obs.Watch(context.Background(), entities.Principal{}, entities.EntityKindSimulation); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := obs.Watch(context.Background(), customerPrincipal, "claims"); !errors.Is(err, ErrUnknownListKind) {
		t.Fatalf("expected ErrUnknownListKind, got %v", err)
	}
}
