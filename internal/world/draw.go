package world

import "github.com/shadowledge/ledgerun/internal/render"

// Draw renders the world's current frame through r at interpolation
// factor alpha (spec §4.8 step 7's sandwich: solid tiles, then regular
// sprites, then masked/foreground tiles, then top-most sprites).
func (w *World) Draw(r render.Renderer, alpha float32) {
	tileW := w.Level.Map.TileSet().TileWidth()
	tileH := w.Level.Map.TileSet().TileHeight()
	camX, camY := w.Camera.X*tileW, w.Camera.Y*tileH
	viewportW, viewportH := w.Camera.ViewportWidth*tileW, w.Camera.ViewportHeight*tileH

	w.MapView.DrawSolid(r, camX, camY, viewportW, viewportH)

	items := w.Pipeline.Collect(alpha, camX, camY, viewportW, viewportH)
	split := render.Split(items)
	w.Pipeline.Draw(r, items[:split])

	w.MapView.DrawMasked(r, camX, camY, viewportW, viewportH)

	w.Pipeline.Draw(r, items[split:])
}
