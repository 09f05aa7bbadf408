package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/eventbus"
)

// ItemContainerStores bundles the stores item-container release reads and
// mutates.
type ItemContainerStores struct {
	Positions      *ecs.Store[components.WorldPosition]
	ItemContainers *ecs.Store[components.ItemContainer]
	MovingBodies   *ecs.Store[components.MovingBody]
	Physicals      *ecs.Store[components.Physical]
	Sprites        *ecs.Store[components.Sprite]
}

// releaseVelocity is the initial velocity a release style imparts on the
// spawned drop (spec §4.6's four release styles; the bounce styles give
// an upward kick, nuclear-waste-barrel scatters sideways too).
func releaseVelocity(style components.ReleaseStyle) (vx, vy float32) {
	switch style {
	case components.ReleaseItemBoxBounce:
		return 0, -1.5
	case components.ReleaseItemBoxNoBounce:
		return 0, 0
	case components.ReleaseNuclearWasteBarrel:
		return 0.5, -1
	default:
		return 0, 0
	}
}

// SpawnFn creates a new entity carrying the given components at (x, y)
// and returns its handle. internal/world supplies the concrete closure
// (backed by entityfactory/ecs) so this package never constructs entities
// directly.
type SpawnFn func(x, y int, item components.CollectableItem) ecs.Entity

// RunItemContainerRelease subscribes to ShootableKilled and materializes
// an ItemContainer's contents at the killed entity's position (spec §2
// step 7, §4.6 "On ShootableKilled, a new entity is created with the
// contained components and the killed entity's position").
func RunItemContainerRelease(bus *eventbus.Bus, stores ItemContainerStores, spawn SpawnFn) (unsubscribe func()) {
	return eventbus.Subscribe(bus, func(evt eventbus.ShootableKilled) {
		container, ok := stores.ItemContainers.Get(evt.Entity)
		if !ok || container.Opened {
			return
		}
		pos, ok := stores.Positions.Get(evt.Entity)
		if !ok {
			return
		}

		vx, vy := releaseVelocity(container.Style)
		for _, item := range container.Contents {
			spawned := spawn(pos.X, pos.Y, item)
			stores.MovingBodies.Set(spawned, components.MovingBody{
				VelX: vx, VelY: vy, GravityAffected: true,
			})
			stores.Physicals.Set(spawned, components.Physical{})
		}

		c := stores.ItemContainers.MustGet(evt.Entity)
		if c != nil {
			c.Opened = true
		}
	})
}
