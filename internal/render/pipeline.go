package render

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

// SpriteStores bundles every component store the sprite pipeline reads.
// internal/world owns the concrete stores; this package never constructs
// its own, the same convention internal/entityfactory.Stores follows.
type SpriteStores struct {
	Positions          *ecs.Store[components.WorldPosition]
	InterpolateMotions *ecs.Store[components.InterpolateMotion]
	Orientations       *ecs.Store[components.Orientation]
	Sprites            *ecs.Store[components.Sprite]
	DrawTopMosts       *ecs.Store[components.DrawTopMost]
	OverrideDrawOrders *ecs.Store[components.OverrideDrawOrder]
}

// spriteDraw is one sprite's fully resolved, screen-space draw
// instruction, produced by Collect and consumed by Draw.
type spriteDraw struct {
	x, y        int
	img         *ebiten.Image
	flipX       bool
	topMost     bool
	order       int
	flash       bool
	translucent bool
}

// SpritePipeline implements the spec §4.8 per-frame sprite-draw pipeline:
// collect every Sprite+WorldPosition (+InterpolateMotion), resolve the
// real frame image for its orientation, interpolate screen position
// between the previous and current tick, cull off-screen sprites, tag
// draw order, and stable-sort by (drawTopMost, drawOrder) so internal/world
// can draw the regular group, then the foreground masked-tile layer, then
// the top-most group.
type SpritePipeline struct {
	stores       SpriteStores
	frames       *SheetCache
	tileW, tileH int
}

// NewSpritePipeline creates a pipeline over stores, resolving frame
// images through frames and converting WorldPosition tile units to
// pixels using a tileW x tileH tile size.
func NewSpritePipeline(stores SpriteStores, frames *SheetCache, tileW, tileH int) *SpritePipeline {
	return &SpritePipeline{stores: stores, frames: frames, tileW: tileW, tileH: tileH}
}

// lerpRounded blends prev->curr by alpha in [0,1] and rounds to the
// nearest pixel (spec §4.8 step 3).
func lerpRounded(prev, curr int, alpha float32) int {
	return int(math.Round(float64(prev) + float64(curr-prev)*float64(alpha)))
}

// Collect gathers every drawable sprite's screen-space draw instruction
// at interpolation factor alpha (0 = previous tick's position, 1 =
// current), culls anything entirely outside the viewportW x viewportH viewport
// positioned at (camX, camY) in pixels, and stable-sorts the result by
// (drawTopMost, drawOrder).
func (p *SpritePipeline) Collect(alpha float32, camX, camY, viewportW, viewportH int) []spriteDraw {
	var items []spriteDraw

	p.stores.Sprites.Each(func(e ecs.Entity, sprite *components.Sprite) {
		if sprite.Hidden {
			return
		}
		pos := p.stores.Positions.MustGet(e)
		if pos == nil {
			return
		}
		prevX, prevY := pos.X, pos.Y
		if im := p.stores.InterpolateMotions.MustGet(e); im != nil {
			prevX, prevY = im.PrevX, im.PrevY
		}

		curPX, curPY := pos.X*p.tileW, pos.Y*p.tileH
		prevPX, prevPY := prevX*p.tileW, prevY*p.tileH
		anchorX := lerpRounded(prevPX, curPX, alpha) - camX
		anchorY := lerpRounded(prevPY, curPY, alpha) - camY

		virtualFrame := 0
		if len(sprite.ActiveFrames) > 0 {
			virtualFrame = sprite.ActiveFrames[0]
		}
		img := p.frames.Frame(sprite.ActorID, virtualFrame)
		if img == nil {
			return
		}
		bounds := img.Bounds()
		fw, fh := bounds.Dx(), bounds.Dy()

		// WorldPosition names the sprite's bottom-left corner (spec §3);
		// the frame is drawn upward and rightward from that anchor.
		drawX, drawY := anchorX, anchorY-fh

		if drawX+fw < 0 || drawX > viewportW || drawY+fh < 0 || drawY > viewportH {
			return
		}

		flip := false
		if o := p.stores.Orientations.MustGet(e); o != nil && *o == components.Left {
			flip = true
		}

		order := 0
		if ov := p.stores.OverrideDrawOrders.MustGet(e); ov != nil {
			order = ov.Order
		}
		topMost := sprite.DrawTopMost || p.stores.DrawTopMosts.Has(e)

		items = append(items, spriteDraw{
			x: drawX, y: drawY, img: img, flipX: flip,
			topMost: topMost, order: order,
			flash: sprite.FlashWhite, translucent: sprite.Translucent,
		})
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].topMost != items[j].topMost {
			return !items[i].topMost
		}
		return items[i].order < items[j].order
	})
	return items
}

// Split returns the index where the top-most group begins within a
// Collect result, so the caller can draw items[:split], then the
// foreground masked-tile layer, then items[split:] (spec §4.8 step 7).
func Split(items []spriteDraw) int {
	for i := range items {
		if items[i].topMost {
			return i
		}
	}
	return len(items)
}

// Draw draws a slice of Collect's output (typically one side of a
// Split boundary) through r, folding in each sprite's flash-white and
// translucency blending (spec §4.8's "per-sprite flash/translucency
// blending").
func (p *SpritePipeline) Draw(r Renderer, items []spriteDraw) {
	for _, it := range items {
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		if it.flipX {
			bounds := it.img.Bounds()
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(bounds.Dx()), 0)
		}
		op.GeoM.Translate(float64(it.x), float64(it.y))
		if it.flash {
			op.ColorScale.SetR(1)
			op.ColorScale.SetG(1)
			op.ColorScale.SetB(1)
		}
		if it.translucent {
			op.ColorScale.ScaleAlpha(0.5)
		}
		r.DrawTextureOp(it.img, op)
	}
}
