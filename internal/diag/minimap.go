package diag

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// minimapScale is the pixel size of one map tile in the rendered PNG.
const minimapScale = 3

// RenderMinimap draws a top-down solid-tile + entity-dot view of src,
// encoded as a PNG, the way the teacher pack's StreamManager rasterizes a
// game.GameSnapshot with gg.Context — except this is a debug aid wholly
// independent of internal/render.Renderer, never shown to a player.
func RenderMinimap(src MapSource) ([]byte, error) {
	w, h := src.MapSize()
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}

	dc := gg.NewContext(w*minimapScale, h*minimapScale)
	dc.SetColor(color.Black)
	dc.Clear()

	dc.SetColor(color.RGBA{R: 90, G: 90, B: 100, A: 255})
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			if src.IsSolid(tx, ty) {
				dc.DrawRectangle(float64(tx*minimapScale), float64(ty*minimapScale), minimapScale, minimapScale)
			}
		}
	}
	dc.Fill()

	dc.SetColor(color.RGBA{R: 255, G: 210, B: 40, A: 255})
	for _, p := range src.EntityPositions() {
		cx := float64(p.X*minimapScale) + minimapScale/2
		cy := float64(p.Y*minimapScale) + minimapScale/2
		dc.DrawCircle(cx, cy, minimapScale)
		dc.Fill()
	}

	drawLabel(dc.Image().(*image.RGBA), fmt.Sprintf("tick %d  score %d", src.Snapshot().Tick, src.Snapshot().Score))

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawLabel stamps a single line of text in the top-left corner using the
// stdlib-adjacent x/image/font.Drawer + basicfont.Face7x13 combination
// (grounded on other_examples/ccdb3314_Stoneresearch-dimalimbo's use of
// basicfont.Face7x13 as a font.Face), rather than ebiten's text package —
// this package stays independent of ebiten entirely.
func drawLabel(dst *image.RGBA, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, 12),
	}
	d.DrawString(s)
}
