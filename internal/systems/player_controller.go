package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/eventbus"
	"github.com/shadowledge/ledgerun/internal/physics"
)

// PlayerState is the player controller's tagged state (spec §4.4: "A
// tagged-state machine over {OnGround, Jumping, Falling, ClimbingLadder,
// OnPipe, PushedByFan, RecoveringFromLanding, Interacting{dur},
// Dieing{substate}, Incapacitated{visibleFrames}, UsingJetpack, InShip,
// RidingElevator, GettingSuckedIntoSpace, AirlockDeath}").
type PlayerState int

const (
	StateOnGround PlayerState = iota
	StateJumping
	StateFalling
	StateClimbingLadder
	StateOnPipe
	StatePushedByFan
	StateRecoveringFromLanding
	StateInteracting
	StateDieing
	StateIncapacitated
	StateUsingJetpack
	StateInShip
	StateRidingElevator
	StateGettingSuckedIntoSpace
	StateAirlockDeath
)

// DieingSubstate is Dieing's nested state (spec §4.4.1 "Dieing (substates
// FlyingUp, FallingDown, Exploding, Finished)").
type DieingSubstate int

const (
	DieingFlyingUp DieingSubstate = iota
	DieingFallingDown
	DieingExploding
	DieingFinished
)

const dieingFlyingUpFrames = 6

// jumpArc is the fixed 8-step upward-offset arc (spec §4.4.1).
var jumpArc = [8]int{2, 2, 1, 1, 1, 0, 0, 0}

// shortHopGateStep is where a released jump button truncates the arc
// (spec §4.4.1 "Jump height is gated at step 2 by the held-jump bit").
const shortHopGateStep = 2

// Input is the sanitized per-tick player input (spec §4.4 "Inputs are
// sanitized (opposing directions cancel)" — sanitization happens in
// internal/input before this struct is built).
type Input struct {
	Left, Right    bool
	Up, Down       bool
	JumpPressed    bool
	JumpHeld       bool
	FirePressed    bool
	FireHeld       bool
	// InteractPressed is this tick's edge-triggered interact action (spec
	// §4.6's switch/lever mechanic). Neither the controller nor
	// internal/world's tick reads it.
	InteractPressed bool
}

// Controller is the player controller's full mutable state.
type Controller struct {
	State           PlayerState
	DieingSub       DieingSubstate
	InteractFrames  int
	IncapacitatedFrames int

	jumpStep   int
	fallTicks  int
	facingLeft bool
	// rapidArmed is the toggle the original engine calls
	// mRapidFiredLastFrame: while a rapid-fire-capable weapon is held, it
	// flips every tick, producing a fire-every-other-tick cadence (spec
	// §4.4.2, scenario 4's ticks 0/2/4) rather than a per-weapon cooldown.
	rapidArmed bool

	conveyor physics.ConveyorDir
}

// NewController returns a controller starting OnGround, facing right.
func NewController() *Controller {
	return &Controller{State: StateOnGround}
}

// Deps bundles the collaborators the player controller system needs
// beyond the entity's own components: a tile query for physics, the
// event bus, and the entity factory for spawning shots/muzzle flashes.
type Deps struct {
	Query     physics.TileQuery
	Bus       *eventbus.Bus
	SpawnShot func(weaponID string, x, y int, facingLeft bool)

	// Weapon, RapidFireActive and ConsumeAmmo mirror the player's
	// player.Model state for this tick (spec §3 Player model, §4.4.2).
	// internal/world recomputes these fresh every tick rather than handing
	// this package the full Model, keeping internal/systems free of a
	// dependency on internal/player. Weapon is the selected weapon's
	// player.Weapon.String() (e.g. "Normal", "Laser"); RapidFireActive is
	// true when the weapon is rapid-fire-capable (the flame thrower) or the
	// RapidFire inventory item is active; ConsumeAmmo decrements the
	// selected weapon's ammo and reports whether a shot was available.
	Weapon          string
	RapidFireActive bool
	ConsumeAmmo     func() bool
}

// Update advances the player controller by one tick (spec §4.4's six
// numbered per-tick steps). pos/body/box are the player's own components;
// the caller is responsible for writing pos/body back to their stores
// (they are passed by pointer and mutated in place, matching the rest of
// this package's ecs.Store[T].MustGet idiom).
func (c *Controller) Update(in Input, pos *components.WorldPosition, body *components.MovingBody, box physics.AABB, deps Deps) {
	sanitize(&in)

	// Step 1: conveyor belt drift.
	if c.State != StateRidingElevator {
		c.conveyor = physics.DetectConveyor(box, deps.Query)
		switch c.conveyor {
		case physics.ConveyorLeft:
			pos.X--
		case physics.ConveyorRight:
			pos.X++
		}
	}

	// Step 2: ladder attachment.
	if in.Up && c.State != StateClimbingLadder {
		topEdge := box.Translated(0, -1)
		if deps.Query(topEdge.Left(), topEdge.Top()).Ladder {
			c.State = StateClimbingLadder
		}
	}

	// Step 3: state update.
	c.updateState(in, pos, body, box, deps)

	// Step 4: shooting.
	c.updateShooting(in, pos, deps)
}

func sanitize(in *Input) {
	if in.Left && in.Right {
		in.Left, in.Right = false, false
	}
	if in.Up && in.Down {
		in.Up, in.Down = false, false
	}
}

func (c *Controller) updateState(in Input, pos *components.WorldPosition, body *components.MovingBody, box physics.AABB, deps Deps) {
	switch c.State {
	case StateOnGround:
		c.updateOnGround(in, pos, body, box, deps)
	case StateJumping:
		c.updateJumping(in, pos, box, deps)
	case StateFalling:
		c.updateFalling(pos, box, deps)
	case StateRecoveringFromLanding:
		c.State = StateOnGround
	case StateClimbingLadder:
		c.updateClimbingLadder(in, pos, box, deps)
	case StateOnPipe:
		c.updateOnPipe(in, pos, box, deps)
	case StateInteracting:
		c.InteractFrames--
		if c.InteractFrames <= 0 {
			c.State = StateOnGround
		}
	case StateDieing:
		c.updateDieing(pos, deps)
	}
}

func (c *Controller) moveHorizontal(in Input, pos *components.WorldPosition, box physics.AABB, deps Deps) {
	vx := float32(0)
	if in.Left {
		vx = -1
		c.facingLeft = true
	} else if in.Right {
		vx = 1
		c.facingLeft = false
	}
	if vx == 0 {
		return
	}
	after, _, _ := physics.SweepHorizontal(box, vx, deps.Query)
	pos.X = after.X
}

func (c *Controller) updateOnGround(in Input, pos *components.WorldPosition, body *components.MovingBody, box physics.AABB, deps Deps) {
	c.moveHorizontal(in, pos, box.Translated(pos.X-box.X, 0), deps)
	box = box.Translated(pos.X-box.X, 0)

	if in.JumpPressed {
		_, _, _, ceilingHit := physics.SweepVertical(box, -1, deps.Query)
		if !ceilingHit {
			c.State = StateJumping
			c.jumpStep = 0
			return
		}
	}

	if !physics.IsSupported(box, deps.Query) {
		c.State = StateFalling
		c.fallTicks = 0
	}
}

func (c *Controller) updateJumping(in Input, pos *components.WorldPosition, box physics.AABB, deps Deps) {
	c.moveHorizontal(in, pos, box.Translated(pos.X-box.X, 0), deps)
	box = box.Translated(pos.X-box.X, 0)

	if c.jumpStep >= len(jumpArc) {
		c.State = StateFalling
		c.fallTicks = 0
		return
	}
	if c.jumpStep >= shortHopGateStep && !in.JumpHeld {
		c.State = StateFalling
		c.fallTicks = 0
		return
	}

	offset := jumpArc[c.jumpStep]
	after, _, _, ceilingHit := physics.SweepVertical(box, float32(-offset), deps.Query)
	pos.Y = after.Y
	if ceilingHit {
		c.State = StateFalling
		c.fallTicks = 0
		return
	}
	c.jumpStep++
}

const fallingTerminalRampTicks = 2

func (c *Controller) updateFalling(pos *components.WorldPosition, box physics.AABB, deps Deps) {
	vy := physics.ApplyGravity(minFloat(float32(c.fallTicks), physics.TerminalVelocity), false)
	after, _, landed, _ := physics.SweepVertical(box, vy, deps.Query)
	pos.Y = after.Y
	c.fallTicks++

	topEdge := after.Translated(0, -1)
	if deps.Query(topEdge.Left(), topEdge.Top()).Climbable {
		c.State = StateOnPipe
		return
	}

	if landed {
		if c.fallTicks >= fallingTerminalRampTicks {
			c.State = StateRecoveringFromLanding
		} else {
			c.State = StateOnGround
		}
	}
}

func minFloat(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func (c *Controller) updateClimbingLadder(in Input, pos *components.WorldPosition, box physics.AABB, deps Deps) {
	if in.JumpPressed {
		c.State = StateJumping
		c.jumpStep = 0
		return
	}
	dy := 0
	if in.Up {
		dy = -1
	} else if in.Down {
		dy = 1
	}
	if dy == 0 {
		return
	}
	next := box.Translated(0, dy)
	if !deps.Query(next.Left(), next.Top()).Ladder {
		return
	}
	pos.Y = next.Y
}

func (c *Controller) updateOnPipe(in Input, pos *components.WorldPosition, box physics.AABB, deps Deps) {
	if in.Down && in.JumpPressed {
		c.State = StateFalling
		c.fallTicks = 0
		return
	}
	topEdge := box.Translated(0, -1)
	if !deps.Query(topEdge.Left(), topEdge.Top()).Climbable {
		c.State = StateFalling
		c.fallTicks = 0
		return
	}
	c.moveHorizontal(in, pos, box, deps)
}

func (c *Controller) updateDieing(pos *components.WorldPosition, deps Deps) {
	switch c.DieingSub {
	case DieingFlyingUp:
		pos.Y--
		c.fallTicks++
		if c.fallTicks >= dieingFlyingUpFrames {
			c.DieingSub = DieingFallingDown
			c.fallTicks = 0
		}
	case DieingFallingDown:
		box := physics.AABB{X: pos.X, Y: pos.Y, W: 1, H: 1}
		if physics.IsSupported(box, deps.Query) {
			c.DieingSub = DieingExploding
		} else {
			pos.Y++
		}
	case DieingExploding:
		c.DieingSub = DieingFinished
	case DieingFinished:
		if deps.Bus != nil {
			eventbus.Publish(deps.Bus, eventbus.PlayerDied{})
		}
	}
}

// TriggerDeath begins the Dieing state machine (spec §4.4.1).
func (c *Controller) TriggerDeath() {
	if c.State == StateDieing {
		return
	}
	c.State = StateDieing
	c.DieingSub = DieingFlyingUp
	c.fallTicks = 0
}

// canFire reports whether shooting is permitted this tick (spec §4.4.2
// "Fire is blocked while climbing ladders, interacting, on elevator,
// looking up on pipe"). The "spider on the weapon" exclusion is a
// per-weapon-item flag the caller folds into rapidArmed eligibility
// upstream, not modeled as controller state here.
func (c *Controller) canFire(in Input) bool {
	switch c.State {
	case StateClimbingLadder, StateInteracting, StateRidingElevator:
		return false
	case StateOnPipe:
		return !in.Up
	default:
		return true
	}
}

func (c *Controller) updateShooting(in Input, pos *components.WorldPosition, deps Deps) {
	if !c.canFire(in) {
		c.rapidArmed = false
		return
	}

	// wasTriggered on the rising edge; otherwise fire only while held and
	// rapid-fire-eligible, gated by the toggle so a held trigger fires
	// every other tick rather than every tick (spec §4.4.2).
	trigger := in.FirePressed || (in.FireHeld && deps.RapidFireActive && !c.rapidArmed)
	if in.FireHeld && deps.RapidFireActive {
		c.rapidArmed = !c.rapidArmed
	} else {
		c.rapidArmed = false
	}

	if !trigger {
		return
	}
	if deps.ConsumeAmmo != nil && !deps.ConsumeAmmo() {
		// Out of ammo: the model has already reverted the selection to the
		// default weapon (spec §4.4.2 "empty reverts to default weapon");
		// this trigger press does not produce a shot.
		return
	}

	weaponID := deps.Weapon
	if weaponID == "" {
		weaponID = "Normal"
	}
	if deps.SpawnShot != nil {
		deps.SpawnShot(weaponID, pos.X, pos.Y, c.facingLeft)
	}
	if deps.Bus != nil {
		facing := 0
		if c.facingLeft {
			facing = 1
		}
		eventbus.Publish(deps.Bus, eventbus.PlayerFiredShot{
			WeaponID: weaponID, OrigX: pos.X, OrigY: pos.Y, Orientation: facing,
		})
	}
}

// FacingLeft reports the player's current facing direction.
func (c *Controller) FacingLeft() bool { return c.facingLeft }

// CameraMoveState narrows the controller's full state down to the camera's
// PlayerMoveState (spec §4.7's narrowed dead-zone/clamp states); states the
// camera doesn't distinguish fall through to PlayerMoveNormal.
func (c *Controller) CameraMoveState() PlayerMoveState {
	switch c.State {
	case StateClimbingLadder:
		return PlayerMoveClimbingLadder
	case StateUsingJetpack, StateInShip:
		return PlayerMoveJetpack
	case StateOnPipe:
		return PlayerMoveOnPipe
	case StateRidingElevator:
		return PlayerMoveElevator
	case StateGettingSuckedIntoSpace:
		return PlayerMoveSuckedIntoSpace
	default:
		return PlayerMoveNormal
	}
}
