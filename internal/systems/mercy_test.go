package systems

import (
	"testing"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/physics"
)

func newPlayerDamageStores() (PlayerDamageStores, *ecs.Registry) {
	return PlayerDamageStores{
		Positions:       ecs.NewStore[components.WorldPosition](8),
		BoundingBoxes:   ecs.NewStore[components.BoundingBox](8),
		PlayerDamagings: ecs.NewStore[components.PlayerDamaging](8),
	}, ecs.NewRegistry(8)
}

func TestRunPlayerContactDamageHitsOnOverlap(t *testing.T) {
	stores, reg := newPlayerDamageStores()
	hazard := reg.Create()
	stores.Positions.Set(hazard, components.WorldPosition{X: 0, Y: 0})
	stores.PlayerDamagings.Set(hazard, components.PlayerDamaging{Damage: 2, DestroyOnContact: true})

	var mercy MercyState
	playerBox := physics.AABB{X: 0, Y: 0, W: 1, H: 1}

	hit, ok := RunPlayerContactDamage(stores, playerBox, &mercy)
	if !ok {
		t.Fatalf("expected a contact hit")
	}
	if hit.Damage != 2 || !hit.DestroyOnContact {
		t.Fatalf("unexpected hit payload: %+v", hit)
	}
}

func TestRunPlayerContactDamageSuppressedDuringMercy(t *testing.T) {
	stores, reg := newPlayerDamageStores()
	hazard := reg.Create()
	stores.Positions.Set(hazard, components.WorldPosition{X: 0, Y: 0})
	stores.PlayerDamagings.Set(hazard, components.PlayerDamaging{Damage: 1})

	mercy := MercyState{FramesLeft: MercyDurationMedium}
	playerBox := physics.AABB{X: 0, Y: 0, W: 1, H: 1}

	_, ok := RunPlayerContactDamage(stores, playerBox, &mercy)
	if ok {
		t.Fatalf("expected contact damage to be suppressed while mercy is active")
	}
}

func TestRunPlayerContactDamageSkipsNonOverlapping(t *testing.T) {
	stores, reg := newPlayerDamageStores()
	hazard := reg.Create()
	stores.Positions.Set(hazard, components.WorldPosition{X: 50, Y: 50})
	stores.PlayerDamagings.Set(hazard, components.PlayerDamaging{Damage: 1})

	var mercy MercyState
	playerBox := physics.AABB{X: 0, Y: 0, W: 1, H: 1}

	_, ok := RunPlayerContactDamage(stores, playerBox, &mercy)
	if ok {
		t.Fatalf("expected no hit for a non-overlapping hazard")
	}
}

func TestMercyStateAdvanceFlashesThenStrobes(t *testing.T) {
	var m MercyState
	m.Arm(MercyDurationMedium)

	for i := 0; i < MercyDurationMedium-MercyStrobeFrames; i++ {
		flash, hidden := m.Advance()
		if !flash || hidden {
			t.Fatalf("tick %d: expected a steady white flash, got flash=%v hidden=%v", i, flash, hidden)
		}
	}
	for i := 0; i < MercyStrobeFrames; i++ {
		flash, _ := m.Advance()
		if flash {
			t.Fatalf("strobe tick %d: expected no steady flash during the strobe tail", i)
		}
	}
	if m.Active() {
		t.Fatalf("expected mercy window to have closed")
	}
	flash, hidden := m.Advance()
	if flash || hidden {
		t.Fatalf("expected no feedback once the mercy window is closed")
	}
}
