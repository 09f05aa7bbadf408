package physics

// TileEdges describes the solid-edge bits and terrain flags of a single
// map cell, as decoded from a tileset attribute word (see
// internal/tileset). The physics sweep never looks at a whole tile being
// "solid" — only at the specific edge it is pushing against, matching the
// four independent solid-edge bits from spec §3/§6.
type TileEdges struct {
	SolidTop    bool
	SolidRight  bool
	SolidBottom bool
	SolidLeft   bool

	Ladder        bool
	Climbable     bool
	Flammable     bool
	ConveyorLeft  bool
	ConveyorRight bool
}

// AnySolid reports whether any edge of the cell is solid.
func (e TileEdges) AnySolid() bool {
	return e.SolidTop || e.SolidRight || e.SolidBottom || e.SolidLeft
}

// TileQuery returns the edge attributes for a tile coordinate. Out-of-range
// coordinates must return a cell with all four edges solid, so sweeps
// naturally stop at the map border instead of tunnelling out of it.
type TileQuery func(tx, ty int) TileEdges

// ConveyorDir is the belt direction reported by a downward conveyor check.
type ConveyorDir int

const (
	ConveyorNone ConveyorDir = iota
	ConveyorLeft
	ConveyorRight
)
