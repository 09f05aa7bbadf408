package systems

import "testing"

func TestCameraFollowsPlayerWithinDeadzoneDoesNotMove(t *testing.T) {
	c := NewCamera(32, 24, 256, 24)
	c.X = 0
	// playerX - c.X = 15, inside [10, 21].
	c.Update(15, 0, PlayerMoveNormal, false, false)
	if c.X != 0 {
		t.Fatalf("expected camera to stay still inside dead-zone, got X=%d", c.X)
	}
}

func TestCameraHorizontalStepClampedPerTick(t *testing.T) {
	c := NewCamera(32, 24, 256, 24)
	c.X = 0
	// playerX - c.X = 50, far outside the dead-zone end (21); step capped at 2.
	c.Update(50, 0, PlayerMoveNormal, false, false)
	if c.X != cameraHorizontalMaxStep {
		t.Fatalf("expected camera X to advance by at most %d, got %d", cameraHorizontalMaxStep, c.X)
	}
}

func TestCameraClampsToMapBounds(t *testing.T) {
	c := NewCamera(32, 24, 256, 24)
	for i := 0; i < 200; i++ {
		c.Update(1000, 0, PlayerMoveNormal, false, false)
	}
	if c.X != c.MapWidth-c.ViewportWidth {
		t.Fatalf("expected camera clamped to map bound %d, got %d", c.MapWidth-c.ViewportWidth, c.X)
	}
}

func TestCameraManualScrollRequiresGroundedAndNoCooldown(t *testing.T) {
	c := NewCamera(32, 24, 256, 48)
	c.Y = 10
	c.Update(0, 10+15, PlayerMoveNormal, true, false)
	if c.Y <= 10 {
		t.Fatalf("expected grounded manual-down scroll to move camera down, got Y=%d", c.Y)
	}
}

func TestCameraManualScrollSuppressedDuringShotCooldown(t *testing.T) {
	c := NewCamera(32, 24, 256, 48)
	c.Y = 10
	c.NotifyShotFired()
	before := c.Y
	c.Update(0, 10+15, PlayerMoveNormal, true, false)
	if c.Y != before {
		t.Fatalf("expected manual scroll suppressed during cooldown, Y changed from %d to %d", before, c.Y)
	}
}

func TestCameraSpaceSuckOverridesWithFixedOutwardScroll(t *testing.T) {
	c := NewCamera(32, 24, 256, 48)
	c.Y = 20
	c.Update(10+15, 20, PlayerMoveSuckedIntoSpace, false, false)
	if c.Y != 20-cameraSpaceSuckStep {
		t.Fatalf("expected fixed %d-tile outward scroll, got Y=%d", cameraSpaceSuckStep, c.Y)
	}
}
