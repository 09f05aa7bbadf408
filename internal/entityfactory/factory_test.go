package entityfactory

import (
	"testing"

	"github.com/shadowledge/ledgerun/internal/behavior"
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/levelformat"
)

func newTestFactory() (*Factory, *Stores) {
	reg := ecs.NewRegistry(8)
	stores := &Stores{
		Positions:          ecs.NewStore[components.WorldPosition](8),
		BoundingBoxes:      ecs.NewStore[components.BoundingBox](8),
		Orientations:       ecs.NewStore[components.Orientation](8),
		Sprites:            ecs.NewStore[components.Sprite](8),
		MovingBodies:       ecs.NewStore[components.MovingBody](8),
		Physicals:          ecs.NewStore[components.Physical](8),
		SolidBodies:        ecs.NewStore[components.SolidBody](8),
		Shootables:         ecs.NewStore[components.Shootable](8),
		PlayerDamagings:    ecs.NewStore[components.PlayerDamaging](8),
		DamageInflictings:  ecs.NewStore[components.DamageInflicting](8),
		CollectableItems:   ecs.NewStore[components.CollectableItem](8),
		ItemContainers:     ecs.NewStore[components.ItemContainer](8),
		Interactables:      ecs.NewStore[components.Interactable](8),
		ActivationSettings: ecs.NewStore[components.ActivationSettings](8),
		Actives:            ecs.NewStore[components.Active](8),
		ActorTags:          ecs.NewStore[components.ActorTag](8),
		InterpolateMotions: ecs.NewStore[components.InterpolateMotion](8),
		DestructionEffects: ecs.NewStore[components.DestructionEffects](8),
		MapGeometryLinks:   ecs.NewStore[components.MapGeometryLink](8),
		AutoDestroys:       ecs.NewStore[components.AutoDestroy](8),
		Controllers:        ecs.NewStore[behavior.Controller](8),
	}
	return New(reg, stores, DefaultRecipes()), stores
}

func TestSpawnUnknownActorIDFails(t *testing.T) {
	f, _ := newTestFactory()
	if _, err := f.Spawn("no_such_actor", 0, 0, levelformat.DifficultyEasy); err == nil {
		t.Fatalf("expected error for unknown actor ID")
	}
}

func TestSpawnLaserTurretComposesExpectedComponents(t *testing.T) {
	f, stores := newTestFactory()
	e, err := f.Spawn("laser_turret", 5, 5, levelformat.DifficultyEasy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stores.Shootables.Has(e) {
		t.Fatalf("expected laser_turret to have a Shootable")
	}
	if !stores.Controllers.Has(e) {
		t.Fatalf("expected laser_turret to have a Controller")
	}
	c, _ := stores.Controllers.Get(e)
	if c.Kind != behavior.KindLaserTurret {
		t.Fatalf("expected Controller.Kind LaserTurret, got %v", c.Kind)
	}
	if !stores.ActivationSettings.Has(e) {
		t.Fatalf("expected laser_turret to have ActivationSettings")
	}
}

func TestDifficultyScalesShootableHealthAdditively(t *testing.T) {
	f, stores := newTestFactory()
	eEasy, _ := f.Spawn("laser_turret", 0, 0, levelformat.DifficultyEasy)
	eMedium, _ := f.Spawn("laser_turret", 0, 0, levelformat.DifficultyMedium)
	eHard, _ := f.Spawn("laser_turret", 0, 0, levelformat.DifficultyHard)

	easy, _ := stores.Shootables.Get(eEasy)
	medium, _ := stores.Shootables.Get(eMedium)
	hard, _ := stores.Shootables.Get(eHard)

	if medium.Health != easy.Health+1 {
		t.Fatalf("expected Medium to add +1 HP over Easy, got easy=%d medium=%d", easy.Health, medium.Health)
	}
	if hard.Health != easy.Health+2 {
		t.Fatalf("expected Hard to add +2 HP over Easy, got easy=%d hard=%d", easy.Health, hard.Health)
	}
}

func TestSpawnSetsPositionAndSprite(t *testing.T) {
	f, stores := newTestFactory()
	e, err := f.Spawn("bonus_globe", 7, 9, levelformat.DifficultyEasy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, ok := stores.Positions.Get(e)
	if !ok || pos.X != 7 || pos.Y != 9 {
		t.Fatalf("expected position (7,9), got %+v ok=%v", pos, ok)
	}
	spr, ok := stores.Sprites.Get(e)
	if !ok || spr.ActorID != "bonus_globe" {
		t.Fatalf("expected sprite ActorID bonus_globe, got %+v ok=%v", spr, ok)
	}
	item, ok := stores.CollectableItems.Get(e)
	if !ok || item.Score != 100 {
		t.Fatalf("expected a 100-point CollectableItem, got %+v ok=%v", item, ok)
	}
}

func TestAsBehaviorFactorySpawnsThroughAdapter(t *testing.T) {
	f, stores := newTestFactory()
	adapter := f.AsBehaviorFactory(levelformat.DifficultyEasy)
	handle := adapter.SpawnActor("rocket", 2, 3)
	if handle == 0 {
		t.Fatalf("expected non-zero entity handle")
	}
	e := ecs.Entity(handle)
	if !stores.DamageInflictings.Has(e) {
		t.Fatalf("expected spawned rocket to carry DamageInflicting")
	}
}
