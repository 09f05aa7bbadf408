package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

// DynamicGeometryKind enumerates the controller variants spec §4.6 names
// ("a controller variant over {fall-after-delay-then-sink,
// fall-after-delay-then-stay, fall-immediately-then-stay,
// fall-immediately-then-explode, fall-while-earthquake-then-explode,
// fall-while-earthquake-then-stay, blue-key-door}").
type DynamicGeometryKind int

const (
	DynamicGeometryFallAfterDelayThenSink DynamicGeometryKind = iota
	DynamicGeometryFallAfterDelayThenStay
	DynamicGeometryFallImmediatelyThenStay
	DynamicGeometryFallImmediatelyThenExplode
	DynamicGeometryFallWhileEarthquakeThenExplode
	DynamicGeometryFallWhileEarthquakeThenStay
	DynamicGeometryBlueKeyDoor
)

// fallDelayFrames is the pre-fall delay for the two delayed variants; an
// earthquake-triggered section instead waits for an external earthquake
// signal (caller-supplied), and the immediate variants wait zero frames.
const fallDelayFrames = 45

// DynamicGeometrySection is one trigger-able dynamic-geometry component.
// It is intentionally not stored in an ecs.Store[T] alongside
// MapGeometryLink: the entity carrying this also carries MapGeometryLink
// for the rectangle to erase, and this struct adds only the
// controller-variant-specific state.
type DynamicGeometrySection struct {
	Kind        DynamicGeometryKind
	Triggered   bool
	FramesLeft  int
	Fallen      bool
	RequiresKey string // non-empty only for DynamicGeometryBlueKeyDoor
}

// Trigger arms the section (spec §4.6 "On trigger"). For the two delayed
// variants this starts the fall countdown; for immediate variants the
// next Advance call falls right away; blue-key-door requires the caller
// to have already validated the key via PlayerModel.ConsumeItem.
func (s *DynamicGeometrySection) Trigger() {
	if s.Triggered {
		return
	}
	s.Triggered = true
	switch s.Kind {
	case DynamicGeometryFallAfterDelayThenSink, DynamicGeometryFallAfterDelayThenStay:
		s.FramesLeft = fallDelayFrames
	default:
		s.FramesLeft = 0
	}
}

// Advance steps a triggered section by one tick. It returns true exactly
// once, on the tick the section actually falls — the caller (internal/
// world) erases the linked map rectangle and spawns tile-debris particles
// with per-piece random x-velocity and a fixed y-velocity table at that
// point (spec §4.6 "the linked map rectangle is cleared from the map and
// replaced by tile-debris particles").
func (s *DynamicGeometrySection) Advance() (fell bool) {
	if !s.Triggered || s.Fallen {
		return false
	}
	if s.FramesLeft > 0 {
		s.FramesLeft--
		return false
	}
	s.Fallen = true
	return true
}

// Explodes reports whether this section's variant spawns an explosion
// effect on landing rather than just coming to rest (spec §4.6 "sections
// may spawn an explosion effect on landing").
func (s *DynamicGeometrySection) Explodes() bool {
	switch s.Kind {
	case DynamicGeometryFallImmediatelyThenExplode, DynamicGeometryFallWhileEarthquakeThenExplode:
		return true
	default:
		return false
	}
}

// debrisYVelocityTable is the fixed per-piece fall speed table spec §4.6
// calls for ("a fixed y-velocity table"), indexed by piece position
// within the falling rectangle so pieces separate visually as they drop.
var debrisYVelocityTable = []float32{0.4, 0.6, 0.5, 0.7, 0.45, 0.65}

// DebrisLifetimeFrames is how long a spawned debris piece survives (spec
// §9's open question: the original indexes debrisYVelocityTable past its
// end and the resulting garbage read makes debris vanish after roughly 11
// frames. DebrisYVelocity below wraps instead of reading out of bounds, so
// internal/world.spawnBurst-style debris spawning sets each piece's
// AutoDestroy.FramesLeft to this constant directly, preserving the
// observable "disappears after ~11 frames" behavior without the unsafe
// read).
const DebrisLifetimeFrames = 11

// DebrisYVelocity returns the fixed fall speed for debris piece index i,
// wrapping via modulo rather than reproducing the original's out-of-bounds
// read (see DebrisLifetimeFrames for how that behavior is preserved).
func DebrisYVelocity(i int) float32 {
	return debrisYVelocityTable[i%len(debrisYVelocityTable)]
}

// DebrisXVelocity returns a pseudorandom horizontal scatter velocity for
// debris piece i, drawn from rnd (spec §4.6 "per-piece random
// x-velocity").
func DebrisXVelocity(rnd interface{ Intn(int) int }) float32 {
	return float32(rnd.Intn(9)-4) * 0.15
}

// LinkedRect resolves a dynamic-geometry entity's erase rectangle from its
// MapGeometryLink component.
func LinkedRect(links *ecs.Store[components.MapGeometryLink], e ecs.Entity) (x, y, w, h int, ok bool) {
	link, ok := links.Get(e)
	if !ok {
		return 0, 0, 0, 0, false
	}
	return link.X, link.Y, link.Width, link.Height, true
}
