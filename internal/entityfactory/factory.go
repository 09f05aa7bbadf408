// Package entityfactory resolves a numeric/string actor ID plus a spawn
// position into a fully-componented entity (spec §4.2). Per-ID
// configuration is declarative: a Recipe names a sprite, an inferred or
// overridden bounding box, and an ordered list of Builder closures that
// attach the behavior/damage/collectable components the ID implies.
package entityfactory

import (
	"github.com/shadowledge/ledgerun/internal/behavior"
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/engineerr"
	"github.com/shadowledge/ledgerun/internal/levelformat"
)

// Stores bundles every component store a recipe builder may populate.
// internal/world owns the concrete stores and constructs one Stores value
// at startup; entityfactory never constructs its own.
type Stores struct {
	Positions          *ecs.Store[components.WorldPosition]
	BoundingBoxes      *ecs.Store[components.BoundingBox]
	Orientations       *ecs.Store[components.Orientation]
	Sprites            *ecs.Store[components.Sprite]
	MovingBodies       *ecs.Store[components.MovingBody]
	Physicals          *ecs.Store[components.Physical]
	SolidBodies        *ecs.Store[components.SolidBody]
	Shootables         *ecs.Store[components.Shootable]
	PlayerDamagings    *ecs.Store[components.PlayerDamaging]
	DamageInflictings  *ecs.Store[components.DamageInflicting]
	CollectableItems   *ecs.Store[components.CollectableItem]
	ItemContainers     *ecs.Store[components.ItemContainer]
	Interactables      *ecs.Store[components.Interactable]
	ActivationSettings *ecs.Store[components.ActivationSettings]
	Actives            *ecs.Store[components.Active]
	ActorTags          *ecs.Store[components.ActorTag]
	InterpolateMotions *ecs.Store[components.InterpolateMotion]
	DestructionEffects *ecs.Store[components.DestructionEffects]
	MapGeometryLinks   *ecs.Store[components.MapGeometryLink]
	AutoDestroys       *ecs.Store[components.AutoDestroy]
	Controllers        *ecs.Store[behavior.Controller]
}

// Builder attaches one piece of configuration to a freshly-created entity
// at (x, y). Recipes compose several of these rather than writing one
// monolithic constructor per actor ID (spec §4.2 "Recipes compose smaller
// building blocks").
type Builder func(e ecs.Entity, x, y int, stores *Stores)

// Recipe is the declarative configuration for one actor ID.
type Recipe struct {
	SpriteID string
	// Width/Height size the entity's BoundingBox. When both are zero,
	// Spawn attaches no BoundingBox at all; the box is not inferred from
	// the sprite's frames.
	Width, Height int
	ActorTag      string
	Builders      []Builder
}

// Factory holds the actor-ID → Recipe table and spawns entities from it.
type Factory struct {
	recipes map[string]Recipe
	reg     *ecs.Registry
	stores  *Stores
}

// New creates a Factory backed by reg/stores with the given recipe table.
func New(reg *ecs.Registry, stores *Stores, recipes map[string]Recipe) *Factory {
	return &Factory{recipes: recipes, reg: reg, stores: stores}
}

// Spawn resolves actorID into a new entity at (x, y), applying difficulty
// HP scaling to any Shootable the recipe attaches (spec §4.2 "Difficulty
// scales enemy HP by {Easy 0, Medium +1, Hard +2}").
func (f *Factory) Spawn(actorID string, x, y int, difficulty levelformat.Difficulty) (ecs.Entity, error) {
	recipe, ok := f.recipes[actorID]
	if !ok {
		return 0, engineerr.New(engineerr.MissingAsset, "entityfactory", "unknown actor ID: "+actorID)
	}

	e := f.reg.Create()
	f.stores.Positions.Set(e, components.WorldPosition{X: x, Y: y})
	if recipe.Width > 0 || recipe.Height > 0 {
		f.stores.BoundingBoxes.Set(e, components.BoundingBox{Width: recipe.Width, Height: recipe.Height})
	}
	if recipe.SpriteID != "" {
		f.stores.Sprites.Set(e, components.Sprite{ActorID: recipe.SpriteID})
	}
	if recipe.ActorTag != "" {
		f.stores.ActorTags.Set(e, components.ActorTag{Tag: recipe.ActorTag})
	}

	for _, build := range recipe.Builders {
		build(e, x, y, f.stores)
	}

	if sh := f.stores.Shootables.MustGet(e); sh != nil {
		sh.Health += difficultyHPOffset(difficulty)
	}

	return e, nil
}

func difficultyHPOffset(d levelformat.Difficulty) int {
	switch d {
	case levelformat.DifficultyMedium:
		return 1
	case levelformat.DifficultyHard:
		return 2
	default:
		return 0
	}
}

// spawnActorAdapter lets behavior.GlobalDependencies.Factory be satisfied
// by a Factory without entityfactory depending on behavior's EntityHandle
// representation beyond the interface it already declares.
type spawnActorAdapter struct {
	factory    *Factory
	difficulty levelformat.Difficulty
}

// AsBehaviorFactory wraps f so it satisfies behavior.EntityFactory,
// spawning at the given fixed difficulty (the difficulty an AI controller
// spawns projectiles/drops at is the level's difficulty, not a per-call
// choice).
func (f *Factory) AsBehaviorFactory(difficulty levelformat.Difficulty) behavior.EntityFactory {
	return spawnActorAdapter{factory: f, difficulty: difficulty}
}

func (a spawnActorAdapter) SpawnActor(actorID string, x, y int) behavior.EntityHandle {
	e, err := a.factory.Spawn(actorID, x, y, a.difficulty)
	if err != nil {
		return 0
	}
	return behavior.EntityHandle(e)
}
