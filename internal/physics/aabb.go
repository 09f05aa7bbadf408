// Package physics implements the fixed-timestep collision sweep used by the
// world simulation: horizontal/vertical tile sweeps with stair-stepping,
// gravity accumulation, and conveyor-belt detection. All positions and
// bounding boxes are expressed in whole tile units — see the floating
// point vs. fixed point note in SPEC_FULL.md: velocities accumulate as
// float32, but the distance actually travelled each tick is the truncated
// integer part of the velocity.
package physics

// AABB is an axis-aligned bounding box in tile units. X, Y is the
// top-left corner.
type AABB struct {
	X, Y, W, H int
}

// Left returns the left edge tile column.
func (a AABB) Left() int { return a.X }

// Right returns the tile column one past the right edge.
func (a AABB) Right() int { return a.X + a.W }

// Top returns the top edge tile row.
func (a AABB) Top() int { return a.Y }

// Bottom returns the tile row one past the bottom edge.
func (a AABB) Bottom() int { return a.Y + a.H }

// Translated returns a copy of a offset by (dx, dy).
func (a AABB) Translated(dx, dy int) AABB {
	a.X += dx
	a.Y += dy
	return a
}

// Intersects reports whether a and b overlap.
func (a AABB) Intersects(b AABB) bool {
	if a.Right() <= b.Left() || b.Right() <= a.Left() {
		return false
	}
	if a.Bottom() <= b.Top() || b.Bottom() <= a.Top() {
		return false
	}
	return true
}

// Columns returns the inclusive tile-column range [x1, x2] the box spans.
func (a AABB) Columns() (x1, x2 int) {
	return a.X, a.Right() - 1
}

// Rows returns the inclusive tile-row range [y1, y2] the box spans.
func (a AABB) Rows() (y1, y2 int) {
	return a.Y, a.Bottom() - 1
}
