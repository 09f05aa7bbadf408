// Package worldmap holds the loaded level grid: two tile layers plus the
// tileset that backs per-cell collision queries (spec §3 "Map").
package worldmap

import (
	"github.com/shadowledge/ledgerun/internal/engineerr"
	"github.com/shadowledge/ledgerun/internal/physics"
	"github.com/shadowledge/ledgerun/internal/tileset"
)

// LayerSolid is the background/solid tile layer (layer 0).
// LayerMasked is the foreground/masked tile layer (layer 1).
const (
	LayerSolid = 0
	LayerMasked = 1
	layerCount  = 2
)

// heightForWidth is the fixed width->height table from spec §3. Width must
// be one of its keys.
var heightForWidth = map[int]int{
	32:   24,
	64:   32,
	128:  32,
	256:  32,
	512:  32,
	1024: 32,
}

// AllowedWidths lists the valid map widths in ascending order.
var AllowedWidths = []int{32, 64, 128, 256, 512, 1024}

// Map is the width x height grid with two tile layers and the tileset used
// to resolve per-cell collision attributes.
type Map struct {
	width, height int
	layers        [layerCount][]int32
	tiles         *tileset.TileSet

	// dynamicOverride holds cells whose collision attributes were altered
	// at runtime (dynamic geometry falling/exploding/unlocking, spec
	// §4.6), indexed the same as layers. A nil entry means "use the
	// tileset's static attributes for the solid-layer tile".
	dynamicOverride map[int]tileset.Attributes
}

// New validates width/height and allocates an empty two-layer grid backed
// by tiles.
func New(width int, tiles *tileset.TileSet) (*Map, error) {
	height, ok := heightForWidth[width]
	if !ok {
		return nil, engineerr.New(engineerr.MalformedResource, "worldmap",
			"map width is not one of the allowed values")
	}
	m := &Map{
		width:           width,
		height:          height,
		tiles:           tiles,
		dynamicOverride: make(map[int]tileset.Attributes),
	}
	for l := 0; l < layerCount; l++ {
		m.layers[l] = make([]int32, width*height)
	}
	return m, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }
func (m *Map) TileSet() *tileset.TileSet { return m.tiles }

func (m *Map) inBounds(tx, ty int) bool {
	return tx >= 0 && tx < m.width && ty >= 0 && ty < m.height
}

func (m *Map) index(tx, ty int) int { return ty*m.width + tx }

// TileAt returns the tile index stored in layer (LayerSolid/LayerMasked)
// at (tx,ty), or -1 for empty/out-of-range cells.
func (m *Map) TileAt(layer, tx, ty int) int {
	if !m.inBounds(tx, ty) {
		return -1
	}
	v := m.layers[layer][m.index(tx, ty)]
	if v == 0 {
		return -1
	}
	return int(v - 1)
}

// SetTile stores a tile index (or -1 to clear) in layer at (tx,ty).
// Out-of-range coordinates are ignored, matching the teacher layer's
// SetTile bounds-check convention.
func (m *Map) SetTile(layer, tx, ty, index int) {
	if !m.inBounds(tx, ty) {
		return
	}
	if index < 0 {
		m.layers[layer][m.index(tx, ty)] = 0
		return
	}
	m.layers[layer][m.index(tx, ty)] = int32(index + 1)
}

// attributesAt returns the effective attribute word at (tx,ty): a dynamic
// override if one was installed, otherwise the solid-layer tile's static
// tileset attributes.
func (m *Map) attributesAt(tx, ty int) tileset.Attributes {
	if !m.inBounds(tx, ty) {
		// Out-of-range tiles behave as fully solid so sweeps stop at the
		// map border instead of tunnelling out of it (physics.TileQuery
		// contract).
		return tileset.Attributes(1<<tileset.BitSolidTop | 1<<tileset.BitSolidRight |
			1<<tileset.BitSolidBottom | 1<<tileset.BitSolidLeft)
	}
	if attrs, ok := m.dynamicOverride[m.index(tx, ty)]; ok {
		return attrs
	}
	idx := m.TileAt(LayerSolid, tx, ty)
	if idx < 0 {
		return 0
	}
	return m.tiles.Attributes(idx)
}

// Query adapts the map to a physics.TileQuery, the only interface the
// collision sweep needs.
func (m *Map) Query() physics.TileQuery {
	return func(tx, ty int) physics.TileEdges {
		return m.attributesAt(tx, ty).Edges()
	}
}

// SetDynamicOverride installs a runtime collision-attribute override for
// one cell, used when dynamic geometry falls, explodes, or is unlocked
// (spec §4.6). Passing ok=false removes a previously installed override.
func (m *Map) SetDynamicOverride(tx, ty int, attrs tileset.Attributes, ok bool) {
	if !m.inBounds(tx, ty) {
		return
	}
	key := m.index(tx, ty)
	if !ok {
		delete(m.dynamicOverride, key)
		return
	}
	m.dynamicOverride[key] = attrs
}

// ClearDynamicOverrides removes every runtime collision override, used on
// level reset.
func (m *Map) ClearDynamicOverrides() {
	m.dynamicOverride = make(map[int]tileset.Attributes)
}
