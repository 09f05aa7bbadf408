package physics

// CollisionFlags records which edges of a body collided with the world
// during one tick's sweep, mirroring the direction flags carried by a
// CollidedWithWorld event (spec §4.3).
type CollisionFlags struct {
	Left, Right, Top, Bottom bool
}

// Any reports whether any edge collided.
func (f CollisionFlags) Any() bool {
	return f.Left || f.Right || f.Top || f.Bottom
}

// Resolve performs the per-tick horizontal-then-vertical sweep for a
// MovingBody: horizontal motion is resolved first (with stair-stepping),
// then vertical motion, zeroing the corresponding velocity component on
// collision the same way the original axis-separated resolver does.
func Resolve(box AABB, vx, vy *float32, query TileQuery) (AABB, CollisionFlags) {
	var flags CollisionFlags

	afterX, _, collidedX := SweepHorizontal(box, *vx, query)
	if collidedX {
		if *vx > 0 {
			flags.Right = true
		} else if *vx < 0 {
			flags.Left = true
		}
		*vx = 0
	}

	afterY, _, landed, ceilingHit := SweepVertical(afterX, *vy, query)
	if landed {
		flags.Bottom = true
		*vy = 0
	}
	if ceilingHit {
		flags.Top = true
		*vy = 1
	}

	return afterY, flags
}
