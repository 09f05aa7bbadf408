package systems

import (
	"testing"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/physics"
)

func newPickupStores() (PickupStores, *ecs.Registry) {
	return PickupStores{
		Positions:        ecs.NewStore[components.WorldPosition](8),
		BoundingBoxes:    ecs.NewStore[components.BoundingBox](8),
		CollectableItems: ecs.NewStore[components.CollectableItem](8),
	}, ecs.NewRegistry(8)
}

func TestRunItemPickupsReturnsOverlappingItems(t *testing.T) {
	stores, reg := newPickupStores()
	item := reg.Create()
	stores.Positions.Set(item, components.WorldPosition{X: 0, Y: 0})
	stores.CollectableItems.Set(item, components.CollectableItem{Score: 100})

	hits := RunItemPickups(stores, physics.AABB{X: 0, Y: 0, W: 1, H: 1})

	if len(hits) != 1 {
		t.Fatalf("expected one pickup hit, got %d", len(hits))
	}
	if hits[0].Entity != item || hits[0].Item.Score != 100 {
		t.Fatalf("unexpected pickup hit: %+v", hits[0])
	}
}

func TestRunItemPickupsSkipsNonOverlapping(t *testing.T) {
	stores, reg := newPickupStores()
	item := reg.Create()
	stores.Positions.Set(item, components.WorldPosition{X: 50, Y: 50})
	stores.CollectableItems.Set(item, components.CollectableItem{Score: 100})

	hits := RunItemPickups(stores, physics.AABB{X: 0, Y: 0, W: 1, H: 1})

	if len(hits) != 0 {
		t.Fatalf("expected no pickup hits for a non-overlapping item, got %d", len(hits))
	}
}
