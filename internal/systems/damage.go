package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/eventbus"
	"github.com/shadowledge/ledgerun/internal/physics"
)

// DamageStores bundles the stores the damage-infliction system reads and
// mutates.
type DamageStores struct {
	Positions         *ecs.Store[components.WorldPosition]
	BoundingBoxes     *ecs.Store[components.BoundingBox]
	Shootables        *ecs.Store[components.Shootable]
	DamageInflictings *ecs.Store[components.DamageInflicting]
	MovingBodies      *ecs.Store[components.MovingBody]
}

// RunDamageInfliction matches every (damage source, shootable) pair whose
// bounding boxes intersect, deducting HP and emitting ShootableDamaged /
// ShootableKilled (spec §2 step 6, §4.5 "DamageInfliction").
func RunDamageInfliction(stores DamageStores, bus *eventbus.Bus) {
	stores.DamageInflictings.Each(func(source ecs.Entity, inflicting *components.DamageInflicting) {
		srcBox := aabbOf(posOf(stores.Positions, source), stores.BoundingBoxes, source)

		stores.Shootables.Each(func(target ecs.Entity, sh *components.Shootable) {
			if target == source {
				return
			}
			targetBox := aabbOf(posOf(stores.Positions, target), stores.BoundingBoxes, target)
			if !boxesIntersect(srcBox, targetBox) {
				return
			}
			applyDamage(stores, bus, target, sh, inflicting.Damage)
		})
	})
}

func posOf(positions *ecs.Store[components.WorldPosition], e ecs.Entity) components.WorldPosition {
	p, _ := positions.Get(e)
	return p
}

func boxesIntersect(a, b physics.AABB) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() && a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

func applyDamage(stores DamageStores, bus *eventbus.Bus, target ecs.Entity, sh *components.Shootable, damage int) {
	if sh.Invincible {
		if sh.HitFeedback && bus != nil {
			eventbus.Publish(bus, eventbus.ShootableDamaged{Entity: target, Damage: damage, Invincible: true})
		}
		return
	}

	sh.Health -= damage
	if bus != nil {
		eventbus.Publish(bus, eventbus.ShootableDamaged{Entity: target, Damage: damage, Invincible: false})
	}
	if sh.Health > 0 {
		return
	}

	var velX, velY float32
	if body, ok := stores.MovingBodies.Get(target); ok {
		velX, velY = body.VelX, body.VelY
	}
	if bus != nil {
		eventbus.Publish(bus, eventbus.ShootableKilled{
			Entity:        target,
			KillerVelX:    velX,
			KillerVelY:    velY,
			DestroyOnKill: sh.DestroyOnKill,
		})
	}
}
