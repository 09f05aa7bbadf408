package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/eventbus"
	"github.com/shadowledge/ledgerun/internal/physics"
)

// PhysicsStores bundles the component stores the physics system reads and
// mutates.
type PhysicsStores struct {
	Positions     *ecs.Store[components.WorldPosition]
	BoundingBoxes *ecs.Store[components.BoundingBox]
	MovingBodies  *ecs.Store[components.MovingBody]
	Physicals     *ecs.Store[components.Physical]
}

// RunPhysics applies gravity, then a horizontal/vertical sweep, to every
// entity carrying MovingBody+Physical+WorldPosition (spec §2 step 5
// "Physics system applies velocity and gravity; resolves world
// collisions; emits CollidedWithWorld").
func RunPhysics(stores PhysicsStores, query physics.TileQuery, bus *eventbus.Bus) {
	stores.Physicals.Each(func(e ecs.Entity, _ *components.Physical) {
		body := stores.MovingBodies.MustGet(e)
		pos := stores.Positions.MustGet(e)
		if body == nil || pos == nil {
			return
		}
		box := aabbOf(*pos, stores.BoundingBoxes, e)

		if body.IgnoreCollisions {
			pos.X += int(body.VelX)
			pos.Y += int(body.VelY)
			return
		}

		if body.GravityAffected {
			body.VelY = physics.ApplyGravity(body.VelY, physics.IsSupported(box, query))
		}

		after, flags := physics.Resolve(box, &body.VelX, &body.VelY, query)
		pos.X = after.X
		pos.Y = after.Y

		if flags.Any() && bus != nil {
			eventbus.Publish(bus, eventbus.CollidedWithWorld{
				Entity:     e,
				Directions: directionFlags(flags),
			})
		}
	})
}

func aabbOf(pos components.WorldPosition, boxes *ecs.Store[components.BoundingBox], e ecs.Entity) physics.AABB {
	bb, ok := boxes.Get(e)
	if !ok {
		return physics.AABB{X: pos.X, Y: pos.Y, W: 1, H: 1}
	}
	return physics.AABB{X: pos.X + bb.OffsetX, Y: pos.Y + bb.OffsetY, W: bb.Width, H: bb.Height}
}

func directionFlags(f physics.CollisionFlags) eventbus.CollisionDirection {
	var d eventbus.CollisionDirection
	if f.Top {
		d |= eventbus.CollisionTop
	}
	if f.Right {
		d |= eventbus.CollisionRight
	}
	if f.Bottom {
		d |= eventbus.CollisionBottom
	}
	if f.Left {
		d |= eventbus.CollisionLeft
	}
	return d
}
