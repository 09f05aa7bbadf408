package world

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/shadowledge/ledgerun/internal/input"
	"github.com/shadowledge/ledgerun/internal/render"
)

// Scene adapts a World to internal/app.Scene, translating ebiten's
// Update/Draw/Layout calls into the world's Tick/Draw methods.
type Scene struct {
	world     *World
	viewportW int
	viewportH int
	renderer  *render.EbitenRenderer
}

// NewScene wraps w for use as an app.Scene at a viewportW x viewportH
// logical screen size.
func NewScene(w *World, viewportW, viewportH int) *Scene {
	return &Scene{world: w, viewportW: viewportW, viewportH: viewportH}
}

// Update satisfies app.Scene's non-physics update. internal/app calls this
// once per real frame before running the fixed-step loop, so this is where
// the world latches the input FixedUpdate's upcoming Tick calls will use.
func (s *Scene) Update(inp *input.Input) error {
	s.world.lastInput = inp.Snapshot()
	s.world.manualUp, s.world.manualDown = inp.ManualScroll()
	return nil
}

// FixedUpdate advances the simulation by one fixed tick (spec §2), using
// whatever input Update last latched.
func (s *Scene) FixedUpdate() error {
	s.world.Tick(s.world.lastInput, s.world.manualUp, s.world.manualDown)
	return nil
}

// Draw renders the world at alpha=1 (no partial-tick interpolation data
// is available to Scene; internal/app's Timestep tracks the real alpha
// but the Scene interface does not thread it through, so the sprite
// pipeline's interpolation only blends across ticks that already ran
// when Update/FixedUpdate last fired).
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.renderer == nil {
		s.renderer = render.NewEbitenRenderer(screen)
	} else {
		s.renderer.SetScreen(screen)
	}
	s.world.Draw(s.renderer, 1)
}

// Layout reports the fixed logical screen size the world was built for.
func (s *Scene) Layout(outsideW, outsideH int) (int, int) {
	return s.viewportW, s.viewportH
}

// DebugInfo reports score and tick count for the app's debug overlay.
func (s *Scene) DebugInfo() string {
	return fmt.Sprintf("Score: %d\nTick: %d\nPlayer dead: %v", s.world.Score, s.world.tick, s.world.PlayerDead)
}
