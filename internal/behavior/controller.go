package behavior

// Kind discriminates the tagged-union Controller variants. Adding a new AI
// behavior means adding a Kind value, a state struct, and a case in
// system.go's dispatch switch — never a new interface implementation.
type Kind int

const (
	KindNone Kind = iota
	KindLaserTurret
	KindRocketTurret
	KindSlimePipe
)

// LaserTurretPhase is LaserTurretState's sub-state (spec §4.9 "LaserTurret").
type LaserTurretPhase int

const (
	LaserTurretFacing LaserTurretPhase = iota
	LaserTurretFiring
	LaserTurretSpinning
)

// LaserTurretState tracks one laser turret's angle (an octagonal facing,
// 0..7, with 0 and 4 the two horizontal firing positions), its current
// phase, and the countdown driving that phase.
type LaserTurretState struct {
	Angle         int
	Phase         LaserTurretPhase
	FireCountdown int
	SpinTurnsLeft int
}

const (
	laserTurretFireCountdownFrames = 40
	laserTurretSpinTurns           = 40
	laserTurretAngleCount          = 8
)

// RocketOrientation is the side a RocketTurret fires its rocket toward.
type RocketOrientation int

const (
	RocketOrientationLeft RocketOrientation = iota
	RocketOrientationTop
	RocketOrientationRight
)

// RocketTurretState tracks a rocket turret's fire cadence and last chosen
// orientation (spec §4.9 "RocketTurret").
type RocketTurretState struct {
	FramesUntilFire int
	Orientation     RocketOrientation
}

const rocketTurretFireIntervalFrames = 25

// SlimePipeState tracks a slime pipe's drop cadence (spec §4.9 "SlimePipe").
type SlimePipeState struct {
	FramesUntilDrop int
}

const slimePipeDropIntervalFrames = 25

// Controller is the component attached to every AI-driven actor. Exactly
// one of the variant fields is meaningful, selected by Kind; the others
// are zero value and unused. This wastes a few dozen bytes per entity in
// exchange for avoiding an interface and its allocation/indirection, which
// is the tradeoff spec §8 asks for explicitly.
type Controller struct {
	Kind Kind

	LaserTurret  LaserTurretState
	RocketTurret RocketTurretState
	SlimePipe    SlimePipeState
}

// NewLaserTurret returns a Controller for a laser turret starting in its
// facing phase at the given angle.
func NewLaserTurret(angle int) Controller {
	return Controller{
		Kind:        KindLaserTurret,
		LaserTurret: LaserTurretState{Angle: angle % laserTurretAngleCount, Phase: LaserTurretFacing},
	}
}

// NewRocketTurret returns a Controller for a rocket turret with a fresh
// fire-interval countdown.
func NewRocketTurret() Controller {
	return Controller{
		Kind:         KindRocketTurret,
		RocketTurret: RocketTurretState{FramesUntilFire: rocketTurretFireIntervalFrames},
	}
}

// NewSlimePipe returns a Controller for a slime pipe with a fresh
// drop-interval countdown.
func NewSlimePipe() Controller {
	return Controller{
		Kind:     KindSlimePipe,
		SlimePipe: SlimePipeState{FramesUntilDrop: slimePipeDropIntervalFrames},
	}
}
