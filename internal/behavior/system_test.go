package behavior

import (
	"testing"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

type fakeFactory struct {
	spawned []string
}

func (f *fakeFactory) SpawnActor(actorID string, x, y int) EntityHandle {
	f.spawned = append(f.spawned, actorID)
	return 0
}

func newStores() (Stores, *ecs.Registry) {
	reg := ecs.NewRegistry(4)
	return Stores{
		Positions:    ecs.NewStore[components.WorldPosition](4),
		Orientations: ecs.NewStore[components.Orientation](4),
		Sprites:      ecs.NewStore[components.Sprite](4),
		Shootables:   ecs.NewStore[components.Shootable](4),
		Controllers:  ecs.NewStore[Controller](4),
		Actives:      ecs.NewStore[components.Active](4),
	}, reg
}

func TestLaserTurretRotatesTowardPlayerThenFires(t *testing.T) {
	stores, reg := newStores()
	e := reg.Create()
	stores.Positions.Set(e, components.WorldPosition{X: 10, Y: 5})
	stores.Controllers.Set(e, NewLaserTurret(2))
	stores.Actives.Set(e, components.Active{})

	factory := &fakeFactory{}
	deps := GlobalDependencies{Factory: factory}
	state := GlobalState{PlayerX: 2, PlayerY: 5}

	for i := 0; i < 3; i++ {
		System(deps, state, stores)
	}
	c, _ := stores.Controllers.Get(e)
	if c.LaserTurret.Angle != 4 {
		t.Fatalf("expected turret to settle on angle 4 facing left player, got %d", c.LaserTurret.Angle)
	}
	if c.LaserTurret.Phase != LaserTurretFiring {
		t.Fatalf("expected Firing phase once angle matches target, got %v", c.LaserTurret.Phase)
	}

	for i := 0; i < laserTurretFireCountdownFrames; i++ {
		System(deps, state, stores)
	}
	if len(factory.spawned) != 1 || factory.spawned[0] != "laser_turret_shot" {
		t.Fatalf("expected one laser_turret_shot spawn, got %v", factory.spawned)
	}
	c, _ = stores.Controllers.Get(e)
	if c.LaserTurret.Phase != LaserTurretFacing {
		t.Fatalf("expected turret to return to Facing after firing, got %v", c.LaserTurret.Phase)
	}
}

func TestLaserTurretEntersSpinningModeWhenHit(t *testing.T) {
	stores, reg := newStores()
	e := reg.Create()
	stores.Positions.Set(e, components.WorldPosition{X: 0, Y: 0})
	stores.Controllers.Set(e, NewLaserTurret(0))
	stores.Actives.Set(e, components.Active{})
	stores.Shootables.Set(e, components.Shootable{Health: 1})

	deps := GlobalDependencies{}
	state := GlobalState{HitEntities: map[ecs.Entity]bool{e: true}}

	System(deps, state, stores)
	c, _ := stores.Controllers.Get(e)
	if c.LaserTurret.Phase != LaserTurretSpinning {
		t.Fatalf("expected Spinning phase after hit, got %v", c.LaserTurret.Phase)
	}
	sh, _ := stores.Shootables.Get(e)
	if !sh.Invincible {
		t.Fatalf("expected turret to become invincible while spinning")
	}

	for i := 0; i < laserTurretSpinTurns; i++ {
		System(deps, state, stores)
	}
	// The spin countdown that started on the very first hit completes
	// exactly here regardless of HitEntities still reporting a hit, since
	// a controller already Spinning does not re-arm the countdown.
	c, _ = stores.Controllers.Get(e)
	if c.LaserTurret.Phase != LaserTurretFacing {
		t.Fatalf("expected turret to finish its spin and return to Facing, got %v", c.LaserTurret.Phase)
	}
	sh, _ = stores.Shootables.Get(e)
	if sh.Invincible {
		t.Fatalf("expected invincibility to clear once spin completes")
	}
}

func TestRocketTurretFiresEveryIntervalAndPicksOrientation(t *testing.T) {
	stores, reg := newStores()
	e := reg.Create()
	stores.Positions.Set(e, components.WorldPosition{X: 10, Y: 10})
	stores.Controllers.Set(e, NewRocketTurret())
	stores.Actives.Set(e, components.Active{})

	factory := &fakeFactory{}
	deps := GlobalDependencies{Factory: factory}
	state := GlobalState{PlayerX: 2, PlayerY: 10}

	for i := 0; i < rocketTurretFireIntervalFrames; i++ {
		System(deps, state, stores)
	}
	if len(factory.spawned) != 1 || factory.spawned[0] != "rocket" {
		t.Fatalf("expected one rocket spawn after interval, got %v", factory.spawned)
	}
	c, _ := stores.Controllers.Get(e)
	if c.RocketTurret.Orientation != RocketOrientationLeft {
		t.Fatalf("expected orientation Left toward player at lower X, got %v", c.RocketTurret.Orientation)
	}
}

func TestSlimePipeDropsOneTileBelowEveryInterval(t *testing.T) {
	stores, reg := newStores()
	e := reg.Create()
	stores.Positions.Set(e, components.WorldPosition{X: 3, Y: 4})
	stores.Controllers.Set(e, NewSlimePipe())
	stores.Actives.Set(e, components.Active{})

	factory := &fakeFactory{}
	deps := GlobalDependencies{Factory: factory}

	for i := 0; i < slimePipeDropIntervalFrames; i++ {
		System(deps, GlobalState{}, stores)
	}
	if len(factory.spawned) != 1 || factory.spawned[0] != "slime_drop" {
		t.Fatalf("expected one slime_drop spawn after interval, got %v", factory.spawned)
	}
}

func TestInactiveControllerIsSkipped(t *testing.T) {
	stores, reg := newStores()
	e := reg.Create()
	stores.Positions.Set(e, components.WorldPosition{X: 0, Y: 0})
	stores.Controllers.Set(e, NewRocketTurret())

	factory := &fakeFactory{}
	deps := GlobalDependencies{Factory: factory}
	for i := 0; i < rocketTurretFireIntervalFrames+1; i++ {
		System(deps, GlobalState{}, stores)
	}
	if len(factory.spawned) != 0 {
		t.Fatalf("expected inactive controller to never fire, got %v", factory.spawned)
	}
}
