package entityfactory

import (
	"github.com/shadowledge/ledgerun/internal/behavior"
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

// withController attaches a pre-built behavior.Controller. It does not tag
// the entity Active; the active-region pass does that from the entity's
// ActivationSettings (spec §4.9 "BehaviorControllerSystem iterates all
// BehaviorController + Active entities").
func withController(c behavior.Controller) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.Controllers.Set(e, c)
	}
}

// addDefaultMovingBody attaches a MovingBody at rest, affected by gravity
// and world collisions — the common case for any actor that walks, falls,
// or is knocked around (spec §4.2 building block of the same name).
func addDefaultMovingBody(e ecs.Entity, x, y int, stores *Stores) {
	stores.MovingBodies.Set(e, components.MovingBody{GravityAffected: true})
	stores.Physicals.Set(e, components.Physical{})
}

// addProjectileBody attaches a MovingBody at the given fixed velocity;
// ignoreCollisions makes it pass through world geometry (spec §4.5 "Flame
// and laser shots pass through walls").
func addProjectileBody(velX, velY float32, ignoreCollisions bool) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.MovingBodies.Set(e, components.MovingBody{
			VelX: velX, VelY: velY, IgnoreCollisions: ignoreCollisions,
		})
	}
}

// withShootable attaches a Shootable with the given base health and
// score-on-kill (spec §4.2's difficulty offset is applied afterward by
// Factory.Spawn, on top of this base value).
func withShootable(baseHealth, scoreOnKill int, destroyOnKill bool) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.Shootables.Set(e, components.Shootable{
			Health:        baseHealth,
			ScoreOnKill:   scoreOnKill,
			HitFeedback:   true,
			DestroyOnKill: destroyOnKill,
		})
	}
}

// withPlayerDamaging attaches the damage-on-contact an enemy or hazard
// deals to the player.
func withPlayerDamaging(damage int, fatal bool) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.PlayerDamagings.Set(e, components.PlayerDamaging{Damage: damage, Fatal: fatal})
	}
}

// withDamageInflicting attaches the per-frame damage a projectile deals to
// shootables it touches.
func withDamageInflicting(damage int) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.DamageInflictings.Set(e, components.DamageInflicting{Damage: damage})
	}
}

// withActivation attaches an ActivationSettings in the given mode (spec
// §4.2/§3 "ActivationSettings").
func withActivation(mode components.ActivationMode) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.ActivationSettings.Set(e, components.ActivationSettings{Mode: mode})
	}
}

// configureItemBox makes the entity itself a pickup carrying a single
// CollectableItem (spec §4.2 building block of the same name). It attaches
// no bounce or bump-from-below behavior; release styles are spec §4.6's
// ItemContainer variants, applied via turnIntoContainer below for
// containers with more than one possible drop.
func configureItemBox(item components.CollectableItem) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.CollectableItems.Set(e, item)
	}
}

// configureBonusGlobe marks an entity as a score-only pickup (spec §4.2
// building block of the same name) — a CollectableItem with no item/weapon
// grant, just points.
func configureBonusGlobe(score int) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.CollectableItems.Set(e, components.CollectableItem{Score: score})
	}
}

// turnIntoContainer attaches an ItemContainer carrying contents, released
// in the given style when the entity's Shootable reaches zero HP (spec
// §4.2 building block of the same name; §4.6 release styles).
func turnIntoContainer(style components.ReleaseStyle, contents ...components.CollectableItem) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.ItemContainers.Set(e, components.ItemContainer{
			Contents: contents,
			Style:    style,
		})
	}
}

// withInteractable attaches an Interactable of the given kind and target.
func withInteractable(kind components.InteractableKind, targetID string) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.Interactables.Set(e, components.Interactable{Kind: kind, TargetID: targetID})
	}
}

// withMapGeometryLink ties an entity to the map rectangle erased when it
// is killed (spec §4.6 "DynamicGeometry").
func withMapGeometryLink(width, height int) Builder {
	return func(e ecs.Entity, x, y int, stores *Stores) {
		stores.MapGeometryLinks.Set(e, components.MapGeometryLink{
			X: x, Y: y, Width: width, Height: height,
		})
	}
}

// withInterpolation attaches InterpolateMotion seeded at the spawn
// position, so the very first render frame does not interpolate from
// (0,0).
func withInterpolation(e ecs.Entity, x, y int, stores *Stores) {
	stores.InterpolateMotions.Set(e, components.InterpolateMotion{PrevX: x, PrevY: y})
}
