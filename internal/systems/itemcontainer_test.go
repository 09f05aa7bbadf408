package systems

import (
	"testing"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/eventbus"
)

func newItemContainerStores() (ItemContainerStores, *ecs.Registry) {
	return ItemContainerStores{
		Positions:      ecs.NewStore[components.WorldPosition](8),
		ItemContainers: ecs.NewStore[components.ItemContainer](8),
		MovingBodies:   ecs.NewStore[components.MovingBody](8),
		Physicals:      ecs.NewStore[components.Physical](8),
		Sprites:        ecs.NewStore[components.Sprite](8),
	}, ecs.NewRegistry(8)
}

func TestRunItemContainerReleaseSpawnsContentsOnKill(t *testing.T) {
	stores, reg := newItemContainerStores()
	bus := eventbus.New()
	container := reg.Create()
	stores.Positions.Set(container, components.WorldPosition{X: 3, Y: 4})
	stores.ItemContainers.Set(container, components.ItemContainer{
		Style:    components.ReleaseItemBoxBounce,
		Contents: []components.CollectableItem{{Score: 100}, {Health: 1}},
	})

	var spawnedAt []components.WorldPosition
	spawn := func(x, y int, item components.CollectableItem) ecs.Entity {
		spawnedAt = append(spawnedAt, components.WorldPosition{X: x, Y: y})
		return reg.Create()
	}

	RunItemContainerRelease(bus, stores, spawn)
	eventbus.Publish(bus, eventbus.ShootableKilled{Entity: container})

	if len(spawnedAt) != 2 {
		t.Fatalf("expected 2 spawned drops, got %d", len(spawnedAt))
	}
	for _, p := range spawnedAt {
		if p.X != 3 || p.Y != 4 {
			t.Fatalf("expected drops spawned at the container's position, got %+v", p)
		}
	}

	c, _ := stores.ItemContainers.Get(container)
	if !c.Opened {
		t.Fatalf("expected container marked Opened after release")
	}
}

func TestRunItemContainerReleaseIgnoresAlreadyOpenedContainer(t *testing.T) {
	stores, reg := newItemContainerStores()
	bus := eventbus.New()
	container := reg.Create()
	stores.Positions.Set(container, components.WorldPosition{X: 0, Y: 0})
	stores.ItemContainers.Set(container, components.ItemContainer{
		Opened:   true,
		Contents: []components.CollectableItem{{Score: 1}},
	})

	spawnCount := 0
	spawn := func(x, y int, item components.CollectableItem) ecs.Entity {
		spawnCount++
		return reg.Create()
	}

	RunItemContainerRelease(bus, stores, spawn)
	eventbus.Publish(bus, eventbus.ShootableKilled{Entity: container})

	if spawnCount != 0 {
		t.Fatalf("expected no spawns for an already-opened container, got %d", spawnCount)
	}
}

func TestReleaseVelocityByStyle(t *testing.T) {
	cases := []struct {
		style  components.ReleaseStyle
		vx, vy float32
	}{
		{components.ReleasePlain, 0, 0},
		{components.ReleaseItemBoxBounce, 0, -1.5},
		{components.ReleaseItemBoxNoBounce, 0, 0},
		{components.ReleaseNuclearWasteBarrel, 0.5, -1},
	}
	for _, tc := range cases {
		vx, vy := releaseVelocity(tc.style)
		if vx != tc.vx || vy != tc.vy {
			t.Fatalf("style %v: expected (%v,%v), got (%v,%v)", tc.style, tc.vx, tc.vy, vx, vy)
		}
	}
}
