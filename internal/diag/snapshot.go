package diag

// Snapshot is the minimal read-only view of a running World the debug
// HTTP/WebSocket endpoints expose. It carries no component data, only the
// aggregate counters a spectator or operator cares about.
type Snapshot struct {
	Tick          int  `json:"tick"`
	Score         int  `json:"score"`
	PlayerDead    bool `json:"player_dead"`
	EntityCount   int  `json:"entity_count"`
	ParticleCount int  `json:"particle_count"`
}

// Point is a tile-unit coordinate, used by MapSource.EntityPositions.
type Point struct {
	X, Y int
}

// Source is the seam internal/diag uses to read a World's state without
// importing internal/world (which, as the one orchestrator package,
// imports everything else instead). internal/world.World implements this
// directly; cmd/game wires the two together.
type Source interface {
	Snapshot() Snapshot
}

// MapSource additionally exposes what Minimap needs to rasterize a
// top-down view: map dimensions, a solid-tile test, and every entity's
// current tile position.
type MapSource interface {
	Source
	MapSize() (width, height int)
	IsSolid(tx, ty int) bool
	EntityPositions() []Point
}
