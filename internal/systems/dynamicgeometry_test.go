package systems

import (
	"testing"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

func TestDynamicGeometryImmediateVariantFallsOnFirstAdvance(t *testing.T) {
	s := &DynamicGeometrySection{Kind: DynamicGeometryFallImmediatelyThenStay}
	s.Trigger()

	if fell := s.Advance(); !fell {
		t.Fatalf("expected an immediate-fall section to fall on its first Advance")
	}
	if fell := s.Advance(); fell {
		t.Fatalf("expected Advance to report false once already Fallen")
	}
}

func TestDynamicGeometryDelayedVariantWaitsOutTheCountdown(t *testing.T) {
	s := &DynamicGeometrySection{Kind: DynamicGeometryFallAfterDelayThenSink}
	s.Trigger()

	fellEarly := false
	for i := 0; i < fallDelayFrames-1; i++ {
		if s.Advance() {
			fellEarly = true
		}
	}
	if fellEarly {
		t.Fatalf("expected no fall before the delay elapses")
	}
	if !s.Advance() {
		t.Fatalf("expected the section to fall exactly when the delay elapses")
	}
}

func TestDynamicGeometryUntriggeredSectionNeverAdvances(t *testing.T) {
	s := &DynamicGeometrySection{Kind: DynamicGeometryFallImmediatelyThenStay}
	if s.Advance() {
		t.Fatalf("expected an untriggered section not to fall")
	}
}

func TestDynamicGeometryExplodesByVariant(t *testing.T) {
	cases := map[DynamicGeometryKind]bool{
		DynamicGeometryFallAfterDelayThenSink:          false,
		DynamicGeometryFallAfterDelayThenStay:          false,
		DynamicGeometryFallImmediatelyThenStay:         false,
		DynamicGeometryFallImmediatelyThenExplode:      true,
		DynamicGeometryFallWhileEarthquakeThenExplode:  true,
		DynamicGeometryFallWhileEarthquakeThenStay:     false,
		DynamicGeometryBlueKeyDoor:                     false,
	}
	for kind, want := range cases {
		s := &DynamicGeometrySection{Kind: kind}
		if got := s.Explodes(); got != want {
			t.Fatalf("kind %v: expected Explodes()=%v, got %v", kind, want, got)
		}
	}
}

func TestDebrisYVelocityWrapsAroundTable(t *testing.T) {
	n := len(debrisYVelocityTable)
	if DebrisYVelocity(n) != DebrisYVelocity(0) {
		t.Fatalf("expected the debris velocity table to wrap around at its length")
	}
}

type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int { return f.n % n }

func TestDebrisXVelocityDerivesFromRandSource(t *testing.T) {
	v := DebrisXVelocity(fixedRand{n: 4})
	if v != 0 {
		t.Fatalf("expected Intn result 4 (midpoint of 0..8) to yield zero x-velocity, got %v", v)
	}
}

func TestLinkedRectResolvesFromMapGeometryLink(t *testing.T) {
	links := ecs.NewStore[components.MapGeometryLink](4)
	reg := ecs.NewRegistry(4)
	e := reg.Create()
	links.Set(e, components.MapGeometryLink{X: 1, Y: 2, Width: 3, Height: 4})

	x, y, w, h, ok := LinkedRect(links, e)
	if !ok || x != 1 || y != 2 || w != 3 || h != 4 {
		t.Fatalf("unexpected LinkedRect result: (%d,%d,%d,%d,%v)", x, y, w, h, ok)
	}
}

func TestLinkedRectMissingLinkReportsFalse(t *testing.T) {
	links := ecs.NewStore[components.MapGeometryLink](4)
	reg := ecs.NewRegistry(4)
	e := reg.Create()

	_, _, _, _, ok := LinkedRect(links, e)
	if ok {
		t.Fatalf("expected ok=false for an entity with no MapGeometryLink")
	}
}
