package world

import (
	"github.com/shadowledge/ledgerun/internal/behavior"
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/entityfactory"
	"github.com/shadowledge/ledgerun/internal/render"
	"github.com/shadowledge/ledgerun/internal/systems"
)

// newEntityFactoryStores allocates one store per component kind
// entityfactory.Stores names, the single source of truth every recipe
// builder and every per-tick system reads from (spec §8 "component
// stores are allocated once at world init and threaded through, never
// reconstructed per-system").
func newEntityFactoryStores(capacityHint int) *entityfactory.Stores {
	return &entityfactory.Stores{
		Positions:          ecs.NewStore[components.WorldPosition](capacityHint),
		BoundingBoxes:      ecs.NewStore[components.BoundingBox](capacityHint),
		Orientations:       ecs.NewStore[components.Orientation](capacityHint),
		Sprites:            ecs.NewStore[components.Sprite](capacityHint),
		MovingBodies:       ecs.NewStore[components.MovingBody](capacityHint),
		Physicals:          ecs.NewStore[components.Physical](capacityHint),
		SolidBodies:        ecs.NewStore[components.SolidBody](capacityHint),
		Shootables:         ecs.NewStore[components.Shootable](capacityHint),
		PlayerDamagings:    ecs.NewStore[components.PlayerDamaging](capacityHint),
		DamageInflictings:  ecs.NewStore[components.DamageInflicting](capacityHint),
		CollectableItems:   ecs.NewStore[components.CollectableItem](capacityHint),
		ItemContainers:     ecs.NewStore[components.ItemContainer](capacityHint),
		Interactables:      ecs.NewStore[components.Interactable](capacityHint),
		ActivationSettings: ecs.NewStore[components.ActivationSettings](capacityHint),
		Actives:            ecs.NewStore[components.Active](capacityHint),
		ActorTags:          ecs.NewStore[components.ActorTag](capacityHint),
		InterpolateMotions: ecs.NewStore[components.InterpolateMotion](capacityHint),
		DestructionEffects: ecs.NewStore[components.DestructionEffects](capacityHint),
		MapGeometryLinks:   ecs.NewStore[components.MapGeometryLink](capacityHint),
		AutoDestroys:       ecs.NewStore[components.AutoDestroy](capacityHint),
		Controllers:        ecs.NewStore[behavior.Controller](capacityHint),
	}
}

// renderStores adapts entityfactory.Stores plus the draw-order stores this
// package owns into render.SpriteStores.
func (w *World) renderStores() render.SpriteStores {
	return render.SpriteStores{
		Positions:          w.Stores.Positions,
		InterpolateMotions: w.Stores.InterpolateMotions,
		Orientations:       w.Stores.Orientations,
		Sprites:            w.Stores.Sprites,
		DrawTopMosts:       w.DrawTopMosts,
		OverrideDrawOrders: w.OverrideDrawOrders,
	}
}

func (w *World) damageStores() systems.DamageStores {
	return systems.DamageStores{
		Positions:         w.Stores.Positions,
		BoundingBoxes:     w.Stores.BoundingBoxes,
		Shootables:        w.Stores.Shootables,
		DamageInflictings: w.Stores.DamageInflictings,
		MovingBodies:      w.Stores.MovingBodies,
	}
}

func (w *World) playerDamageStores() systems.PlayerDamageStores {
	return systems.PlayerDamageStores{
		Positions:       w.Stores.Positions,
		BoundingBoxes:   w.Stores.BoundingBoxes,
		PlayerDamagings: w.Stores.PlayerDamagings,
	}
}

func (w *World) pickupStores() systems.PickupStores {
	return systems.PickupStores{
		Positions:        w.Stores.Positions,
		BoundingBoxes:    w.Stores.BoundingBoxes,
		CollectableItems: w.Stores.CollectableItems,
	}
}

func (w *World) physicsStores() systems.PhysicsStores {
	return systems.PhysicsStores{
		Positions:     w.Stores.Positions,
		BoundingBoxes: w.Stores.BoundingBoxes,
		MovingBodies:  w.Stores.MovingBodies,
		Physicals:     w.Stores.Physicals,
	}
}

func (w *World) itemContainerStores() systems.ItemContainerStores {
	return systems.ItemContainerStores{
		Positions:      w.Stores.Positions,
		ItemContainers: w.Stores.ItemContainers,
		MovingBodies:   w.Stores.MovingBodies,
		Physicals:      w.Stores.Physicals,
		Sprites:        w.Stores.Sprites,
	}
}

func (w *World) activeRegionStores() systems.ActiveRegionStores {
	return systems.ActiveRegionStores{
		Positions:          w.Stores.Positions,
		ActivationSettings: w.Stores.ActivationSettings,
		Actives:            w.Stores.Actives,
	}
}

func (w *World) behaviorStores() behavior.Stores {
	return behavior.Stores{
		Positions:    w.Stores.Positions,
		Orientations: w.Stores.Orientations,
		Sprites:      w.Stores.Sprites,
		Shootables:   w.Stores.Shootables,
		Controllers:  w.Stores.Controllers,
		Actives:      w.Stores.Actives,
	}
}

func (w *World) lifetimeStores() systems.LifetimeStores {
	return systems.LifetimeStores{AutoDestroys: w.Stores.AutoDestroys}
}

func (w *World) scoreFloaterStores() systems.ScoreFloaterStores {
	return systems.ScoreFloaterStores{Positions: w.Stores.Positions, Floaters: w.ScoreFloaters}
}

func (w *World) projectileStores() systems.ProjectileStores {
	return systems.ProjectileStores{
		Positions:     w.Stores.Positions,
		BoundingBoxes: w.Stores.BoundingBoxes,
		Projectiles:   w.Projectiles,
	}
}

func (w *World) animationStores() systems.AnimationStores {
	return systems.AnimationStores{
		Sprites:            w.Stores.Sprites,
		AnimationLoops:     w.AnimationLoops,
		AnimationSequences: w.AnimationSequences,
	}
}
