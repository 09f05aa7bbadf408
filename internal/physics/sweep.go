package physics

// SweepHorizontal advances box by the whole-tile part of vx, one unit step
// at a time, stopping at the first blocked step. A blocked step is
// retried one tile higher (the "stair-step" exception, spec §4.3): a
// one-tile-tall wall whose top edge is solid and whose cell above is
// clear is climbed instead of stopping the sweep.
func SweepHorizontal(box AABB, vx float32, query TileQuery) (result AABB, moved int, collided bool) {
	steps := int(vx)
	if steps == 0 {
		return box, 0, false
	}
	dir := 1
	if steps < 0 {
		dir = -1
	}
	n := steps * dir
	cur := box

	for i := 0; i < n; i++ {
		next := cur.Translated(dir, 0)
		col := next.Left()
		if dir > 0 {
			col = next.Right() - 1
		}
		y1, y2 := next.Rows()

		blocked := false
		for ty := y1; ty <= y2; ty++ {
			e := query(col, ty)
			if (dir > 0 && e.SolidLeft) || (dir < 0 && e.SolidRight) {
				blocked = true
				break
			}
		}
		if !blocked {
			cur = next
			moved += dir
			continue
		}

		if stepped, ok := tryStairStep(cur, dir, query); ok {
			cur = stepped
			moved += dir
			continue
		}

		collided = true
		break
	}

	return cur, moved, collided
}

// tryStairStep attempts the one-tile climb exception for a horizontal
// sweep blocked at cur moving in dir.
func tryStairStep(cur AABB, dir int, query TileQuery) (AABB, bool) {
	blockerCol := cur.Right()
	if dir < 0 {
		blockerCol = cur.Left() - 1
	}
	blockerRow := cur.Bottom() - 1
	if !query(blockerCol, blockerRow).SolidTop {
		return AABB{}, false
	}

	raised := cur.Translated(0, -1)
	aboveRow := raised.Top()
	x1, x2 := raised.Columns()
	for tx := x1; tx <= x2; tx++ {
		if query(tx, aboveRow).AnySolid() {
			return AABB{}, false
		}
	}

	stepped := raised.Translated(dir, 0)
	col := stepped.Left()
	if dir > 0 {
		col = stepped.Right() - 1
	}
	y1, y2 := stepped.Rows()
	for ty := y1; ty <= y2; ty++ {
		e := query(col, ty)
		if (dir > 0 && e.SolidLeft) || (dir < 0 && e.SolidRight) {
			return AABB{}, false
		}
	}

	return stepped, true
}

// SweepVertical advances box by the whole-tile part of vy, one unit step
// at a time. landed is true when a downward sweep is stopped by a
// solid-top tile (the caller should zero vy and set grounded); ceilingHit
// is true when an upward sweep is stopped by a solid-bottom tile (the
// caller should set vy to 1, beginning a fall, per spec §4.3).
func SweepVertical(box AABB, vy float32, query TileQuery) (result AABB, moved int, landed, ceilingHit bool) {
	steps := int(vy)
	if steps == 0 {
		return box, 0, false, false
	}
	dir := 1
	if steps < 0 {
		dir = -1
	}
	n := steps * dir
	cur := box

	for i := 0; i < n; i++ {
		next := cur.Translated(0, dir)
		row := next.Top()
		if dir > 0 {
			row = next.Bottom() - 1
		}
		x1, x2 := next.Columns()

		blocked := false
		for tx := x1; tx <= x2; tx++ {
			e := query(tx, row)
			if (dir > 0 && e.SolidTop) || (dir < 0 && e.SolidBottom) {
				blocked = true
				break
			}
		}
		if !blocked {
			cur = next
			moved += dir
			continue
		}

		if dir > 0 {
			landed = true
		} else {
			ceilingHit = true
		}
		break
	}

	return cur, moved, landed, ceilingHit
}

// IsSupported reports whether a solid-top tile sits directly beneath box.
func IsSupported(box AABB, query TileQuery) bool {
	row := box.Bottom()
	x1, x2 := box.Columns()
	for tx := x1; tx <= x2; tx++ {
		if query(tx, row).SolidTop {
			return true
		}
	}
	return false
}

// DetectConveyor reports the conveyor direction of the tile row directly
// beneath box, consumed by the player controller on the following frame
// (spec §4.3 "Conveyor reporting").
func DetectConveyor(box AABB, query TileQuery) ConveyorDir {
	row := box.Bottom()
	x1, x2 := box.Columns()
	for tx := x1; tx <= x2; tx++ {
		e := query(tx, row)
		if e.ConveyorLeft {
			return ConveyorLeft
		}
		if e.ConveyorRight {
			return ConveyorRight
		}
	}
	return ConveyorNone
}
