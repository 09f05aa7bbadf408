// Package systems implements the per-tick systems spec §2 lists in its
// fixed ten-step order: player controller, camera, active-region marking,
// AI behavior ([[internal/behavior]], invoked from here), physics,
// damage/projectiles, item containers/effects, particles/life-time,
// sprite animation, and end-of-frame teleport/checkpoint/death handling.
package systems

// PlayerMoveState narrows the player's controller state down to what the
// camera needs to pick its dead-zone and clamp behavior (spec §4.7).
type PlayerMoveState int

const (
	PlayerMoveNormal PlayerMoveState = iota
	PlayerMoveClimbingLadder
	PlayerMoveJetpack
	PlayerMoveOnPipe
	PlayerMoveElevator
	PlayerMoveSuckedIntoSpace
)

const (
	cameraHorizontalDeadzoneStart = 10
	cameraHorizontalDeadzoneEnd   = 21
	cameraHorizontalMaxStep       = 2

	cameraVerticalMaxStepUp       = 2
	cameraVerticalMaxStepDown     = 2
	cameraVerticalElevatorStep    = 3
	cameraManualScrollStep        = 2
	cameraManualScrollCooldown    = 4
	cameraSpaceSuckStep           = 2
)

// Camera is the integer tile-position camera spec §4.7 describes: two
// independent dead-zones (narrower vertically in a handful of player
// states), manual vertical scroll with a post-shot cooldown, and a hard
// clamp to the map bounds.
type Camera struct {
	X, Y int

	ViewportWidth, ViewportHeight int
	MapWidth, MapHeight           int

	manualScrollCooldown int
}

// NewCamera creates a camera for the given viewport and map size.
func NewCamera(viewportW, viewportH, mapW, mapH int) *Camera {
	return &Camera{ViewportWidth: viewportW, ViewportHeight: viewportH, MapWidth: mapW, MapHeight: mapH}
}

// NotifyShotFired arms the post-shot manual-scroll cooldown (spec §4.7
// "4-tick cooldown after firing a shot"); wired to PlayerFiredShot.
func (c *Camera) NotifyShotFired() {
	c.manualScrollCooldown = cameraManualScrollCooldown
}

// Update advances the camera by one tick given the player's normalized
// bounds (center within a widened viewport, spec §4.7) and movement
// state/manual-scroll input.
func (c *Camera) Update(playerX, playerY int, state PlayerMoveState, manualDown, manualUp bool) {
	c.updateHorizontal(playerX)
	c.updateVertical(playerY, state, manualDown, manualUp)
	c.clamp()
	if c.manualScrollCooldown > 0 {
		c.manualScrollCooldown--
	}
}

func (c *Camera) updateHorizontal(playerX int) {
	relX := playerX - c.X
	delta := 0
	if relX < cameraHorizontalDeadzoneStart {
		delta = relX - cameraHorizontalDeadzoneStart
	} else if relX > cameraHorizontalDeadzoneEnd {
		delta = relX - cameraHorizontalDeadzoneEnd
	}
	c.X += clampStep(delta, cameraHorizontalMaxStep)
}

func (c *Camera) updateVertical(playerY int, state PlayerMoveState, manualDown, manualUp bool) {
	if state == PlayerMoveSuckedIntoSpace {
		c.Y -= cameraSpaceSuckStep
		return
	}

	maxUp, maxDown := cameraVerticalMaxStepUp, cameraVerticalMaxStepDown
	if state == PlayerMoveElevator {
		maxUp, maxDown = cameraVerticalElevatorStep, cameraVerticalElevatorStep
	}

	deadzoneStart, deadzoneEnd := verticalDeadzone(state)
	relY := playerY - c.Y
	delta := 0
	if relY < deadzoneStart {
		delta = relY - deadzoneStart
	} else if relY > deadzoneEnd {
		delta = relY - deadzoneEnd
	}
	if delta < 0 {
		if delta < -maxUp {
			delta = -maxUp
		}
	} else if delta > maxDown {
		delta = maxDown
	}
	c.Y += delta

	if c.manualScrollCooldown > 0 {
		return
	}
	grounded := state == PlayerMoveNormal
	onPipe := state == PlayerMoveOnPipe
	if manualDown && grounded {
		c.Y += cameraManualScrollStep
	} else if manualUp && onPipe {
		c.Y -= cameraManualScrollStep
	}
}

// verticalDeadzone narrows when climbing ladders, using the jetpack, in
// the ship (approximated here as jetpack-equivalent narrowing), or on a
// pipe (spec §4.7).
func verticalDeadzone(state PlayerMoveState) (start, end int) {
	switch state {
	case PlayerMoveClimbingLadder, PlayerMoveJetpack, PlayerMoveOnPipe:
		return cameraHorizontalDeadzoneStart - 4, cameraHorizontalDeadzoneEnd - 4
	default:
		return cameraHorizontalDeadzoneStart, cameraHorizontalDeadzoneEnd
	}
}

func (c *Camera) clamp() {
	c.X = clampInt(c.X, 0, c.MapWidth-c.ViewportWidth)
	c.Y = clampInt(c.Y, 0, c.MapHeight-c.ViewportHeight)
}

// clampStep restricts delta to [-max, max].
func clampStep(delta, max int) int {
	if delta > max {
		return max
	}
	if delta < -max {
		return -max
	}
	return delta
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
