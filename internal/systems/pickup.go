package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/physics"
)

// PickupStores bundles the stores the item-pickup system reads.
type PickupStores struct {
	Positions        *ecs.Store[components.WorldPosition]
	BoundingBoxes    *ecs.Store[components.BoundingBox]
	CollectableItems *ecs.Store[components.CollectableItem]
}

// PickupHit pairs a collected entity with the item it grants.
type PickupHit struct {
	Entity ecs.Entity
	Item   components.CollectableItem
}

// RunItemPickups returns every CollectableItem overlapping playerBox this
// tick (spec §3 CollectableItem, §4.2). It only detects overlap; the
// caller (internal/world) applies the grant to player.Model and queues the
// entity for destruction, keeping internal/systems free of a dependency on
// internal/player (the same split damage.go and mercy.go use).
func RunItemPickups(stores PickupStores, playerBox physics.AABB) []PickupHit {
	var hits []PickupHit
	stores.CollectableItems.Each(func(e ecs.Entity, item *components.CollectableItem) {
		pos, ok := stores.Positions.Get(e)
		if !ok {
			return
		}
		box := aabbOf(pos, stores.BoundingBoxes, e)
		if !boxesIntersect(playerBox, box) {
			return
		}
		hits = append(hits, PickupHit{Entity: e, Item: *item})
	})
	return hits
}
