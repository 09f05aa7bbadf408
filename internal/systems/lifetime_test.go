package systems

import (
	"testing"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

func TestRunLifetimesDestroysOnTimeoutExpiry(t *testing.T) {
	reg := ecs.NewRegistry(4)
	stores := LifetimeStores{AutoDestroys: ecs.NewStore[components.AutoDestroy](4)}
	e := reg.Create()
	stores.AutoDestroys.Set(e, components.AutoDestroy{Reason: components.AutoDestroyOnTimeout, FramesLeft: 2})

	var destroyed []ecs.Entity
	destroy := func(e ecs.Entity) { destroyed = append(destroyed, e) }

	RunLifetimes(stores, destroy)
	if len(destroyed) != 0 {
		t.Fatalf("expected no destruction before the countdown elapses")
	}
	RunLifetimes(stores, destroy)
	if len(destroyed) != 1 || destroyed[0] != e {
		t.Fatalf("expected the entity to be destroyed once its countdown reaches zero, got %v", destroyed)
	}
}

func TestRunLifetimesIgnoresEventDrivenEntries(t *testing.T) {
	reg := ecs.NewRegistry(4)
	stores := LifetimeStores{AutoDestroys: ecs.NewStore[components.AutoDestroy](4)}
	e := reg.Create()
	stores.AutoDestroys.Set(e, components.AutoDestroy{Reason: components.AutoDestroyOnEvent, WaitForEvent: "shootableKilled"})

	var destroyed []ecs.Entity
	RunLifetimes(stores, func(e ecs.Entity) { destroyed = append(destroyed, e) })

	if len(destroyed) != 0 {
		t.Fatalf("expected event-driven entries to be left alone by the timeout pass")
	}
}

func TestDestroyOnEventMatchesWaitForEvent(t *testing.T) {
	reg := ecs.NewRegistry(4)
	stores := LifetimeStores{AutoDestroys: ecs.NewStore[components.AutoDestroy](4)}
	a, b := reg.Create(), reg.Create()
	stores.AutoDestroys.Set(a, components.AutoDestroy{Reason: components.AutoDestroyOnEvent, WaitForEvent: "floaterDone"})
	stores.AutoDestroys.Set(b, components.AutoDestroy{Reason: components.AutoDestroyOnEvent, WaitForEvent: "otherEvent"})

	var destroyed []ecs.Entity
	DestroyOnEvent(stores, "floaterDone", []ecs.Entity{a, b}, func(e ecs.Entity) { destroyed = append(destroyed, e) })

	if len(destroyed) != 1 || destroyed[0] != a {
		t.Fatalf("expected only the matching entity to be destroyed, got %v", destroyed)
	}
}

func TestRunScoreFloatersCompletesAfterArc(t *testing.T) {
	reg := ecs.NewRegistry(4)
	stores := ScoreFloaterStores{
		Positions: ecs.NewStore[components.WorldPosition](4),
		Floaters:  ecs.NewStore[ScoreFloater](4),
	}
	e := reg.Create()
	stores.Positions.Set(e, components.WorldPosition{X: 0, Y: 100})
	stores.Floaters.Set(e, ScoreFloater{Amount: 500})

	var finished []ecs.Entity
	for i := 0; i < scoreFloaterArcFrames+1; i++ {
		finished = RunScoreFloaters(stores)
	}

	if len(finished) != 1 || finished[0] != e {
		t.Fatalf("expected the floater to finish after its arc, got %v", finished)
	}
	pos, _ := stores.Positions.Get(e)
	if pos.Y >= 100 {
		t.Fatalf("expected the floater to have drifted upward, got y=%d", pos.Y)
	}
}
