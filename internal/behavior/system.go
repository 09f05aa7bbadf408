package behavior

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

// Stores bundles the component stores a behavior controller is allowed to
// read or mutate. It deliberately does not include the full world: spec
// §4.9 limits controllers to GlobalDependencies plus "the entity's other
// components".
type Stores struct {
	Positions    *ecs.Store[components.WorldPosition]
	Orientations *ecs.Store[components.Orientation]
	Sprites      *ecs.Store[components.Sprite]
	Shootables   *ecs.Store[components.Shootable]
	Controllers  *ecs.Store[Controller]
	Actives      *ecs.Store[components.Active]
}

// GlobalState is the per-tick, read-only context every controller observes
// alongside GlobalDependencies: the player's current position and the
// frame-parity bit spec §4.9 calls out ("deterministic given... the
// current global tick parity (isOddFrame)"). HitEntities names every
// controller-bearing entity that took damage this tick (populated from
// ShootableDamaged events by internal/world before the behavior system
// runs), since a controller cannot itself subscribe to the bus mid-tick
// and still be called in deterministic iteration order.
type GlobalState struct {
	PlayerX, PlayerY int
	IsOddFrame       bool
	HitEntities      map[ecs.Entity]bool
}

// System advances every Controller+Active entity by one tick, in dense
// iteration order (spec §2 step 4 "AI behavior controllers advance
// per-actor state machines (only 'active' entities)").
func System(deps GlobalDependencies, state GlobalState, stores Stores) {
	stores.Controllers.Each(func(e ecs.Entity, c *Controller) {
		if !stores.Actives.Has(e) {
			return
		}
		onScreen := true
		hit := state.HitEntities[e]

		switch c.Kind {
		case KindLaserTurret:
			updateLaserTurret(deps, state, stores, e, &c.LaserTurret, onScreen, hit)
		case KindRocketTurret:
			updateRocketTurret(deps, state, stores, e, &c.RocketTurret)
		case KindSlimePipe:
			updateSlimePipe(deps, state, stores, e, &c.SlimePipe)
		}
	})
}

func facingTarget(entityX, playerX int) int {
	if playerX < entityX {
		return 4
	}
	return 0
}

func stepToward(angle, target int) int {
	if angle == target {
		return angle
	}
	forward := (target - angle + laserTurretAngleCount) % laserTurretAngleCount
	backward := (angle - target + laserTurretAngleCount) % laserTurretAngleCount
	if forward <= backward {
		return (angle + 1) % laserTurretAngleCount
	}
	return (angle - 1 + laserTurretAngleCount) % laserTurretAngleCount
}

func updateLaserTurret(deps GlobalDependencies, state GlobalState, stores Stores, e ecs.Entity, s *LaserTurretState, onScreen, hit bool) {
	if hit && s.Phase != LaserTurretSpinning {
		s.Phase = LaserTurretSpinning
		s.SpinTurnsLeft = laserTurretSpinTurns
		if sh := stores.Shootables.MustGet(e); sh != nil {
			sh.Invincible = true
		}
		return
	}

	switch s.Phase {
	case LaserTurretFacing:
		pos, ok := stores.Positions.Get(e)
		target := 0
		if ok {
			target = facingTarget(pos.X, state.PlayerX)
		}
		if s.Angle == target {
			s.Phase = LaserTurretFiring
			s.FireCountdown = laserTurretFireCountdownFrames
		} else {
			s.Angle = stepToward(s.Angle, target)
		}

	case LaserTurretFiring:
		if spr := stores.Sprites.MustGet(e); spr != nil {
			spr.FlashWhite = s.FireCountdown < 7 && state.IsOddFrame
		}
		s.FireCountdown--
		if s.FireCountdown <= 0 {
			if pos, ok := stores.Positions.Get(e); ok && deps.Factory != nil {
				deps.Factory.SpawnActor("laser_turret_shot", pos.X, pos.Y)
			}
			s.Phase = LaserTurretFacing
		}

	case LaserTurretSpinning:
		s.Angle = (s.Angle + 1) % laserTurretAngleCount
		s.SpinTurnsLeft--
		if s.SpinTurnsLeft <= 0 {
			s.Phase = LaserTurretFacing
			if sh := stores.Shootables.MustGet(e); sh != nil {
				sh.Invincible = false
			}
		}
	}
}

var rocketOffsets = map[RocketOrientation][2]int{
	RocketOrientationLeft:  {-1, 0},
	RocketOrientationTop:   {0, -1},
	RocketOrientationRight: {1, 0},
}

func chooseRocketOrientation(entityX, entityY, playerX, playerY int) RocketOrientation {
	dx := playerX - entityX
	dy := playerY - entityY
	if dy < 0 && (dy <= dx && dy <= -dx) {
		return RocketOrientationTop
	}
	if dx < 0 {
		return RocketOrientationLeft
	}
	return RocketOrientationRight
}

func updateRocketTurret(deps GlobalDependencies, state GlobalState, stores Stores, e ecs.Entity, s *RocketTurretState) {
	s.FramesUntilFire--
	if s.FramesUntilFire > 0 {
		return
	}
	s.FramesUntilFire = rocketTurretFireIntervalFrames

	pos, ok := stores.Positions.Get(e)
	if !ok {
		return
	}
	s.Orientation = chooseRocketOrientation(pos.X, pos.Y, state.PlayerX, state.PlayerY)
	if deps.Factory == nil {
		return
	}
	offset := rocketOffsets[s.Orientation]
	deps.Factory.SpawnActor("rocket", pos.X+offset[0], pos.Y+offset[1])
}

func updateSlimePipe(deps GlobalDependencies, state GlobalState, stores Stores, e ecs.Entity, s *SlimePipeState) {
	s.FramesUntilDrop--
	if s.FramesUntilDrop > 0 {
		return
	}
	s.FramesUntilDrop = slimePipeDropIntervalFrames

	pos, ok := stores.Positions.Get(e)
	if !ok || deps.Factory == nil {
		return
	}
	deps.Factory.SpawnActor("slime_drop", pos.X, pos.Y+1)
}
