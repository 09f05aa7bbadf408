package physics

import "testing"

// openQuery treats every tile as empty except a solid floor at row floorY.
func openQuery(floorY int) TileQuery {
	return func(tx, ty int) TileEdges {
		if ty == floorY {
			return TileEdges{SolidTop: true, SolidBottom: true, SolidLeft: true, SolidRight: true}
		}
		return TileEdges{}
	}
}

func TestGravityAccumulatesToTerminalVelocity(t *testing.T) {
	var vy float32
	steps := 0
	for vy < TerminalVelocity {
		vy = ApplyGravity(vy, false)
		steps++
		if steps > 100 {
			t.Fatalf("gravity never reached terminal velocity")
		}
	}
	if vy != TerminalVelocity {
		t.Fatalf("expected vy == %v, got %v", TerminalVelocity, vy)
	}
}

func TestGravityKicksInAtOneWhenUnsupported(t *testing.T) {
	vy := ApplyGravity(0, false)
	if vy != 1.0 {
		t.Fatalf("expected first unsupported tick to set vy=1, got %v", vy)
	}
}

func TestSweepVerticalLandsOnSolidTop(t *testing.T) {
	q := openQuery(10)
	box := AABB{X: 0, Y: 5, W: 1, H: 4} // bottom row = 8
	result, moved, landed, ceiling := SweepVertical(box, 3, q)
	if !landed {
		t.Fatalf("expected landing on floor")
	}
	if ceiling {
		t.Fatalf("did not expect ceiling hit")
	}
	if result.Bottom() != 10 {
		t.Fatalf("expected body to rest with bottom=10, got %d (moved=%d)", result.Bottom(), moved)
	}
}

func TestSweepHorizontalBlockedByWall(t *testing.T) {
	q := func(tx, ty int) TileEdges {
		if tx == 5 {
			return TileEdges{SolidLeft: true, SolidRight: true, SolidTop: true, SolidBottom: true}
		}
		return TileEdges{}
	}
	box := AABB{X: 0, Y: 0, W: 1, H: 1}
	result, moved, collided := SweepHorizontal(box, 10, q)
	if !collided {
		t.Fatalf("expected collision with wall at column 5")
	}
	if result.Right() != 5 {
		t.Fatalf("expected body to stop with right edge at column 5, got %d (moved=%d)", result.Right(), moved)
	}
}

func TestSweepHorizontalStairSteps(t *testing.T) {
	// A one-tile-tall step: column 5, row 0 is solid on every edge; the
	// cell above it (row -1) is clear, so the sweep should climb it.
	q := func(tx, ty int) TileEdges {
		if tx == 5 && ty == 0 {
			return TileEdges{SolidTop: true, SolidLeft: true, SolidRight: true, SolidBottom: true}
		}
		return TileEdges{}
	}
	box := AABB{X: 3, Y: 0, W: 1, H: 1}
	result, moved, collided := SweepHorizontal(box, 2, q)
	if collided {
		t.Fatalf("expected stair-step climb, not a collision")
	}
	if moved != 2 {
		t.Fatalf("expected to move 2 tiles, moved %d", moved)
	}
	if result.Top() != -1 {
		t.Fatalf("expected body to be raised by the stair step, top=%d", result.Top())
	}
}

func TestDetectConveyor(t *testing.T) {
	q := func(tx, ty int) TileEdges {
		if ty == 1 {
			return TileEdges{SolidTop: true, ConveyorRight: true}
		}
		return TileEdges{}
	}
	box := AABB{X: 0, Y: 0, W: 1, H: 1}
	if dir := DetectConveyor(box, q); dir != ConveyorRight {
		t.Fatalf("expected ConveyorRight, got %v", dir)
	}
}

func TestResolveZeroesVelocityOnCollision(t *testing.T) {
	q := openQuery(2)
	box := AABB{X: 0, Y: 0, W: 1, H: 1}
	vx := float32(0)
	vy := float32(5)
	_, flags := Resolve(box, &vx, &vy, q)
	if !flags.Bottom {
		t.Fatalf("expected landing flag set")
	}
	if vy != 0 {
		t.Fatalf("expected vy zeroed after landing, got %v", vy)
	}
}
