// Package render implements the spec §6 renderer service and the §4.8
// sprite-draw pipeline on top of ebiten. It is grounded on the teacher's
// internal/world/render.go (MapRenderer's camera-relative tile culling)
// and internal/gfx (Sprite's ebiten.DrawImageOptions/GeoM usage), with the
// drawing-primitive surface (lines, rectangles, clip rects, global
// transforms, render targets) generalized from those narrow, map-only
// helpers into the full opaque Renderer interface spec §6 names, so the
// rest of the simulation draws through a seam rather than importing
// ebiten directly.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the spec §6 renderer service: drawTexture, drawLine,
// drawRectangle, clear, setClipRect, setGlobalTranslation/Scale,
// setOverlayColor, setColorModulation, and render-target bind/unbind,
// with Save providing the scope-guarded state save spec §6 calls for
// (state pushed before fn runs, restored after, even if fn panics).
type Renderer interface {
	DrawTexture(img *ebiten.Image, x, y float64)
	DrawTextureOp(img *ebiten.Image, op *ebiten.DrawImageOptions)
	DrawLine(x1, y1, x2, y2 float64, c color.Color)
	DrawRectangle(x, y, w, h float64, c color.Color, filled bool)
	Clear(c color.Color)
	SetClipRect(x, y, w, h int)
	ClearClipRect()
	SetGlobalTranslation(x, y float64)
	SetGlobalScale(sx, sy float64)
	SetOverlayColor(c color.Color)
	SetColorModulation(r, g, b, a float64)
	BindTarget(img *ebiten.Image)
	UnbindTarget()
	Save(fn func())
}

// state is the full set of global draw parameters Save snapshots and
// restores around a scoped block.
type state struct {
	target                 *ebiten.Image
	translationX, translationY float64
	scaleX, scaleY          float64
	overlay                 color.Color
	modR, modG, modB, modA  float64
	clip                    *image.Rectangle
}

// EbitenRenderer is the only Renderer implementation: an ebiten.Image
// draw surface plus the global translation/scale/overlay/modulation/clip
// state every drawTexture call folds in, matching how the original
// engine's renderer applies a single global transform rather than each
// draw call carrying its own.
type EbitenRenderer struct {
	screen *ebiten.Image
	state
}

// NewEbitenRenderer creates a renderer targeting screen by default.
// BindTarget/UnbindTarget switch the active draw target without losing
// track of screen.
func NewEbitenRenderer(screen *ebiten.Image) *EbitenRenderer {
	r := &EbitenRenderer{screen: screen}
	r.state = state{target: screen, scaleX: 1, scaleY: 1, modR: 1, modG: 1, modB: 1, modA: 1}
	return r
}

// SetScreen updates the default draw target ebiten hands the game loop
// each frame (the backing *ebiten.Image is recreated if the window
// resizes).
func (r *EbitenRenderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
	if r.state.target == nil {
		r.state.target = screen
	}
}

func (r *EbitenRenderer) baseOp() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(r.scaleX, r.scaleY)
	op.GeoM.Translate(r.translationX, r.translationY)
	op.ColorScale.Scale(float32(r.modR), float32(r.modG), float32(r.modB), float32(r.modA))
	if r.overlay != nil {
		cr, cg, cb, ca := r.overlay.RGBA()
		if ca > 0 {
			op.ColorScale.SetR(float32(cr) / 0xffff)
			op.ColorScale.SetG(float32(cg) / 0xffff)
			op.ColorScale.SetB(float32(cb) / 0xffff)
		}
	}
	return op
}

// DrawTexture draws img at (x, y) in the current global transform,
// folding in the overlay and modulation colors Save-scoped callers set.
func (r *EbitenRenderer) DrawTexture(img *ebiten.Image, x, y float64) {
	op := r.baseOp()
	op.GeoM.Translate(x, y)
	r.DrawTextureOp(img, op)
}

// DrawTextureOp draws img with a caller-built DrawImageOptions, still
// respecting the active clip rect. Sprite rendering uses this directly
// so it can compose its own GeoM (flip, scale) under the global one.
func (r *EbitenRenderer) DrawTextureOp(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	if r.clip == nil {
		r.target.DrawImage(img, op)
		return
	}
	sub, ok := r.target.SubImage(*r.clip).(*ebiten.Image)
	if !ok {
		r.target.DrawImage(img, op)
		return
	}
	clipped := *op
	clipped.GeoM.Translate(float64(-r.clip.Min.X), float64(-r.clip.Min.Y))
	sub.DrawImage(img, &clipped)
}

// DrawLine draws a one-pixel-wide line between two global-transformed
// points.
func (r *EbitenRenderer) DrawLine(x1, y1, x2, y2 float64, c color.Color) {
	ax, ay := r.transformPoint(x1, y1)
	bx, by := r.transformPoint(x2, y2)
	vector.StrokeLine(r.target, float32(ax), float32(ay), float32(bx), float32(by), 1, c, false)
}

// DrawRectangle draws a rectangle, filled or stroked, in global-transformed
// coordinates.
func (r *EbitenRenderer) DrawRectangle(x, y, w, h float64, c color.Color, filled bool) {
	px, py := r.transformPoint(x, y)
	pw, ph := w*r.scaleX, h*r.scaleY
	if filled {
		vector.DrawFilledRect(r.target, float32(px), float32(py), float32(pw), float32(ph), c, false)
	} else {
		vector.StrokeRect(r.target, float32(px), float32(py), float32(pw), float32(ph), 1, c, false)
	}
}

func (r *EbitenRenderer) transformPoint(x, y float64) (float64, float64) {
	return x*r.scaleX + r.translationX, y*r.scaleY + r.translationY
}

// Clear fills the active target with c.
func (r *EbitenRenderer) Clear(c color.Color) {
	r.target.Fill(c)
}

// SetClipRect restricts subsequent DrawTexture/DrawTextureOp calls to the
// given rectangle of the active target, e.g. the status-bar HUD region
// clipping world sprites.
func (r *EbitenRenderer) SetClipRect(x, y, w, h int) {
	rect := image.Rect(x, y, x+w, y+h)
	r.clip = &rect
}

// ClearClipRect removes any active clip rectangle.
func (r *EbitenRenderer) ClearClipRect() { r.clip = nil }

// SetGlobalTranslation sets the translation applied to every subsequent
// draw call, the camera offset being the canonical use. The sprite
// pipeline does not call it: SpritePipeline.Collect subtracts the camera
// position from each sprite itself.
func (r *EbitenRenderer) SetGlobalTranslation(x, y float64) {
	r.translationX, r.translationY = x, y
}

// SetGlobalScale sets the scale applied to every subsequent draw call.
func (r *EbitenRenderer) SetGlobalScale(sx, sy float64) {
	r.scaleX, r.scaleY = sx, sy
}

// SetOverlayColor tints every subsequent draw with c (alpha 0 clears the
// tint), the screen-flash transient (spec §2's "screen-flash/shake
// transients") being the canonical use.
func (r *EbitenRenderer) SetOverlayColor(c color.Color) { r.overlay = c }

// SetColorModulation scales the RGBA channels of every subsequent draw.
// SpritePipeline.Draw does not use it for flash-white/translucency; it
// sets those on each draw call's own ColorScale.
func (r *EbitenRenderer) SetColorModulation(red, green, blue, alpha float64) {
	r.modR, r.modG, r.modB, r.modA = red, green, blue, alpha
}

// BindTarget redirects subsequent draws to img instead of the screen,
// e.g. for off-screen composition.
func (r *EbitenRenderer) BindTarget(img *ebiten.Image) { r.target = img }

// UnbindTarget restores the screen as the active draw target.
func (r *EbitenRenderer) UnbindTarget() { r.target = r.screen }

// Save snapshots the full global draw state, runs fn, then restores it —
// the scope-guarded state save spec §6 requires so a system (e.g. a
// screen-flash overlay) can change translation/scale/overlay/modulation
// for a block of draws without leaking that state to the next system.
func (r *EbitenRenderer) Save(fn func()) {
	saved := r.state
	defer func() { r.state = saved }()
	fn()
}
