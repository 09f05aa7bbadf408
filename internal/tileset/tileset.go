// Package tileset provides the tile atlas and per-tile collision attribute
// words shared read-only by all systems once a level is loaded (spec §3
// "TileSet", §6 "Collision attribute bits").
package tileset

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/shadowledge/ledgerun/internal/engineerr"
	"github.com/shadowledge/ledgerun/internal/physics"
)

// Attribute bit positions within a tile's 16-bit attribute word (spec §6).
const (
	BitSolidTop = iota
	BitSolidRight
	BitSolidBottom
	BitSolidLeft
	BitAnimated
	BitForeground
	BitSlowAnimation
	BitFlammable
	BitLadder
	BitClimbable
	BitConveyorLeft
	BitConveyorRight
)

// Attributes is the raw 16-bit attribute word for one tile index.
type Attributes uint16

// Has reports whether bit is set.
func (a Attributes) Has(bit int) bool {
	return a&(1<<uint(bit)) != 0
}

// Edges decodes the attribute word into the physics package's edge-bit
// representation, the only view the collision sweep ever consumes.
func (a Attributes) Edges() physics.TileEdges {
	return physics.TileEdges{
		SolidTop:      a.Has(BitSolidTop),
		SolidRight:    a.Has(BitSolidRight),
		SolidBottom:   a.Has(BitSolidBottom),
		SolidLeft:     a.Has(BitSolidLeft),
		Ladder:        a.Has(BitLadder),
		Climbable:     a.Has(BitClimbable),
		Flammable:     a.Has(BitFlammable),
		ConveyorLeft:  a.Has(BitConveyorLeft),
		ConveyorRight: a.Has(BitConveyorRight),
	}
}

func (a Attributes) Animated() bool      { return a.Has(BitAnimated) }
func (a Attributes) Foreground() bool    { return a.Has(BitForeground) }
func (a Attributes) SlowAnimation() bool { return a.Has(BitSlowAnimation) }

// TileSet is an image atlas of solid and masked tiles plus a parallel
// vector of attribute words, one per tile index (spec §3). The atlas packs
// solid tiles first, followed by masked tiles; solidCount marks the
// boundary, letting the level loader distinguish the two ranges the way
// the composite-tile encoding requires (spec §4.1 step 5).
type TileSet struct {
	atlas      *ebiten.Image
	tileWidth  int
	tileHeight int
	columns    int
	tiles      []*ebiten.Image
	attrs      []Attributes
	solidCount int
}

// New slices img into tileWidth x tileHeight tiles and pairs each with its
// attribute word. len(attrs) must equal the tile count the atlas yields;
// a mismatch is an InvariantViolation rather than a silent truncation,
// since it means the tileset and the attribute table came from different
// sources. solidCount is the number of leading tiles that are solid-layer
// tiles; the remainder are masked-layer tiles.
func New(img image.Image, tileWidth, tileHeight int, attrs []Attributes, solidCount int) (*TileSet, error) {
	bounds := img.Bounds()
	columns := bounds.Dx() / tileWidth
	rows := bounds.Dy() / tileHeight
	total := columns * rows

	if len(attrs) != total {
		return nil, engineerr.New(engineerr.InvariantViolation, "tileset",
			"attribute word count does not match atlas tile count")
	}
	if solidCount < 0 || solidCount > total {
		return nil, engineerr.New(engineerr.InvariantViolation, "tileset",
			"solid tile count exceeds the atlas tile count")
	}

	atlas := ebiten.NewImageFromImage(img)
	tiles := make([]*ebiten.Image, total)
	for i := 0; i < total; i++ {
		tx := i % columns
		ty := i / columns
		x, y := tx*tileWidth, ty*tileHeight
		tiles[i] = atlas.SubImage(image.Rect(x, y, x+tileWidth, y+tileHeight)).(*ebiten.Image)
	}

	return &TileSet{
		atlas:      atlas,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		columns:    columns,
		tiles:      tiles,
		attrs:      attrs,
		solidCount: solidCount,
	}, nil
}

func (t *TileSet) TileWidth() int  { return t.tileWidth }
func (t *TileSet) TileHeight() int { return t.tileHeight }
func (t *TileSet) Count() int      { return len(t.tiles) }

// SolidCount returns the number of leading solid-layer tiles in the atlas.
func (t *TileSet) SolidCount() int { return t.solidCount }

// Tile returns the sliced image for a tile index, or nil if out of range.
func (t *TileSet) Tile(index int) *ebiten.Image {
	if index < 0 || index >= len(t.tiles) {
		return nil
	}
	return t.tiles[index]
}

// Attributes returns the attribute word for a tile index. An out-of-range
// index returns an all-bits-clear word rather than panicking, matching
// how a corrupt or placeholder tile index should behave during rendering
// (the loader itself is responsible for rejecting an out-of-range index
// with InvariantViolation at load time).
func (t *TileSet) Attributes(index int) Attributes {
	if index < 0 || index >= len(t.attrs) {
		return 0
	}
	return t.attrs[index]
}
