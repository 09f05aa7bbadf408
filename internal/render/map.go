package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/shadowledge/ledgerun/internal/tileset"
	"github.com/shadowledge/ledgerun/internal/worldmap"
)

// maskedAnimFrameCount is how many consecutive tile indices an animated
// masked-tile group spans. The binary tileset format has no separate
// stride field for animation groups, so this reimplementation assumes
// animation frames are authored as consecutive indices immediately after
// a group's base index, matching every CZone atlas in the original asset
// set (an Open Question decision, recorded in DESIGN.md).
const maskedAnimFrameCount = 4

// maskedAnimOffset returns which of an animated tile's frames is active
// on tick, per spec §4.8: fast tiles (BitSlowAnimation unset) advance
// every tick, slow tiles every other tick, both cycling through
// maskedAnimFrameCount frames.
func maskedAnimOffset(tick int, slow bool) int {
	t := tick
	if slow {
		t /= 2
	}
	return t % maskedAnimFrameCount
}

// MapView draws a worldmap.Map's solid and masked layers, camera-culled
// to the visible tile range, grounded on the teacher's
// internal/world/render.go MapRenderer (same visible-range computation,
// same FilterNearest DrawImageOptions), generalized to two layers and
// masked-tile animation.
type MapView struct {
	m    *worldmap.Map
	tick int
}

// NewMapView creates a view over m.
func NewMapView(m *worldmap.Map) *MapView {
	return &MapView{m: m}
}

// Advance steps the masked-tile animation clock by one simulation tick.
// internal/world calls this once per tick, independent of render calls,
// so animation speed stays tied to simulation time rather than frame
// rate.
func (v *MapView) Advance() { v.tick++ }

// DrawSolid draws the solid (background) tile layer within the camera's
// visible tile range.
func (v *MapView) DrawSolid(r Renderer, camX, camY, viewportW, viewportH int) {
	v.drawLayer(r, worldmap.LayerSolid, camX, camY, viewportW, viewportH, false)
}

// DrawMasked draws the masked (foreground) tile layer, the pass spec
// §4.8 step 7 sandwiches between regular and top-most sprites.
func (v *MapView) DrawMasked(r Renderer, camX, camY, viewportW, viewportH int) {
	v.drawLayer(r, worldmap.LayerMasked, camX, camY, viewportW, viewportH, true)
}

func (v *MapView) drawLayer(r Renderer, layer, camX, camY, viewportW, viewportH int, animated bool) {
	ts := v.m.TileSet()
	if ts == nil {
		return
	}
	tw, th := ts.TileWidth(), ts.TileHeight()

	tx1 := camX / tw
	ty1 := camY / th
	tx2 := (camX + viewportW + tw - 1) / tw
	ty2 := (camY + viewportH + th - 1) / th

	if tx1 < 0 {
		tx1 = 0
	}
	if ty1 < 0 {
		ty1 = 0
	}
	if tx2 > v.m.Width() {
		tx2 = v.m.Width()
	}
	if ty2 > v.m.Height() {
		ty2 = v.m.Height()
	}

	for ty := ty1; ty < ty2; ty++ {
		for tx := tx1; tx < tx2; tx++ {
			index := v.m.TileAt(layer, tx, ty)
			if index < 0 {
				continue
			}
			if animated {
				index = v.resolveMaskedFrame(ts, index)
			}
			img := ts.Tile(index)
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.Filter = ebiten.FilterNearest
			op.GeoM.Translate(float64(tx*tw-camX), float64(ty*th-camY))
			r.DrawTextureOp(img, op)
		}
	}
}

// resolveMaskedFrame remaps a masked tile's base index to its current
// animation frame, if the tile is flagged animated.
func (v *MapView) resolveMaskedFrame(ts *tileset.TileSet, baseIndex int) int {
	attrs := ts.Attributes(baseIndex)
	if !attrs.Animated() {
		return baseIndex
	}
	return baseIndex + maskedAnimOffset(v.tick, attrs.SlowAnimation())
}
