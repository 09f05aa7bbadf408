package entityfactory

import (
	"github.com/shadowledge/ledgerun/internal/behavior"
	"github.com/shadowledge/ledgerun/internal/components"
)

// DefaultRecipes is a representative actor-ID table composed from the
// building blocks spec §4.2 names. The real game has on the order of a
// hundred actor IDs; this set exercises every building block except
// withMapGeometryLink, and every behavior.Kind variant, at least once, and is meant to be extended the
// same way — add a map entry, not a new code path.
func DefaultRecipes() map[string]Recipe {
	return map[string]Recipe{
		"laser_turret": {
			SpriteID: "laser_turret",
			ActorTag: "laser_turret",
			Builders: []Builder{
				withShootable(1, 100, true),
				withActivation(components.ActivateAfterFirstOnScreen),
				withController(behavior.NewLaserTurret(0)),
				withInterpolation,
			},
		},
		"rocket_turret": {
			SpriteID: "rocket_turret",
			ActorTag: "rocket_turret",
			Builders: []Builder{
				withShootable(3, 150, true),
				withActivation(components.ActivateAfterFirstOnScreen),
				withController(behavior.NewRocketTurret()),
				withInterpolation,
			},
		},
		"slime_pipe": {
			SpriteID: "slime_pipe",
			ActorTag: "slime_pipe",
			Builders: []Builder{
				withActivation(components.ActivateAfterFirstOnScreen),
				withController(behavior.NewSlimePipe()),
			},
		},
		"slime_drop": {
			SpriteID: "slime_drop",
			ActorTag: "slime_drop",
			Builders: []Builder{
				addDefaultMovingBody,
				withPlayerDamaging(1, false),
				withInterpolation,
			},
		},
		"laser_turret_shot": {
			SpriteID: "laser_turret_shot",
			Builders: []Builder{
				addProjectileBody(-1, 0, true),
				withDamageInflicting(1),
				withInterpolation,
			},
		},
		"rocket": {
			SpriteID: "rocket",
			Builders: []Builder{
				addProjectileBody(1.5, 0, false),
				withDamageInflicting(2),
				withInterpolation,
			},
		},
		"item_box": {
			SpriteID: "item_box",
			Builders: []Builder{
				addDefaultMovingBody,
				withShootable(1, 0, true),
				configureItemBox(components.CollectableItem{Health: 1}),
			},
		},
		"bonus_globe": {
			SpriteID: "bonus_globe",
			Builders: []Builder{
				configureBonusGlobe(100),
				withInterpolation,
			},
		},
		"nuclear_waste_barrel": {
			SpriteID: "nuclear_waste_barrel",
			Builders: []Builder{
				addDefaultMovingBody,
				withShootable(1, 500, true),
				turnIntoContainer(components.ReleaseNuclearWasteBarrel,
					components.CollectableItem{WeaponID: "FlameThrower", AmmoAmount: 99}),
			},
		},
		"letter_pickup": {
			SpriteID: "letter_pickup",
			Builders: []Builder{
				configureItemBox(components.CollectableItem{HasLetter: true}),
				withInterpolation,
			},
		},
		"rapid_fire_item": {
			SpriteID: "rapid_fire_item",
			Builders: []Builder{
				configureItemBox(components.CollectableItem{ItemID: "rapidfire"}),
				withInterpolation,
			},
		},
		"cloaking_device": {
			SpriteID: "cloaking_device",
			Builders: []Builder{
				configureItemBox(components.CollectableItem{ItemID: "cloak"}),
				withInterpolation,
			},
		},
		"teleporter": {
			SpriteID: "teleporter",
			Builders: []Builder{
				withInteractable(components.InteractableTeleporter, ""),
			},
		},
		"key_slot_door": {
			SpriteID: "key_slot_door",
			Builders: []Builder{
				withInteractable(components.InteractableKeySlot, "blue_key"),
			},
		},
	}
}
