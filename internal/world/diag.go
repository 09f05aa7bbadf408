package world

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/diag"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

// Snapshot satisfies diag.Source, exposing the read-only counters the
// debug HTTP/WebSocket endpoints report.
func (w *World) Snapshot() diag.Snapshot {
	particles := 0
	w.Stores.Sprites.Each(func(_ ecs.Entity, s *components.Sprite) {
		if s.ActorID == "particle" {
			particles++
		}
	})
	return diag.Snapshot{
		Tick:          w.tick,
		Score:         w.Score,
		PlayerDead:    w.PlayerDead,
		EntityCount:   w.Reg.Count(),
		ParticleCount: particles,
	}
}

// MapSize satisfies diag.MapSource.
func (w *World) MapSize() (int, int) {
	return w.Level.Map.Width(), w.Level.Map.Height()
}

// IsSolid satisfies diag.MapSource, reporting whether any edge of the
// tile at (tx,ty) is solid — enough detail for a top-down debug view.
func (w *World) IsSolid(tx, ty int) bool {
	edges := w.tileQuery()(tx, ty)
	return edges.SolidTop || edges.SolidRight || edges.SolidBottom || edges.SolidLeft
}

// EntityPositions satisfies diag.MapSource, reporting every positioned
// entity's current tile coordinate for the minimap's entity dots.
func (w *World) EntityPositions() []diag.Point {
	pts := make([]diag.Point, 0, w.Stores.Positions.Len())
	w.Stores.Positions.Each(func(_ ecs.Entity, p *components.WorldPosition) {
		pts = append(pts, diag.Point{X: p.X, Y: p.Y})
	})
	return pts
}
