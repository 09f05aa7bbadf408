// Package behavior implements the AI behavior controllers of spec §4.9: a
// closed tagged-union component (Controller) iterated each tick by
// BehaviorControllerSystem for every entity carrying it plus
// components.Active. Variants are data, not interfaces — spec §8 calls out
// "tagged-union variants for BehaviorController state to avoid virtual
// dispatch", mirroring the teacher's own preference for small concrete
// state structs (internal/gameplay.SpawnContext, internal/entities' request
// structs) over polymorphic handler chains.
package behavior

import "github.com/shadowledge/ledgerun/internal/eventbus"

// CollisionChecker answers world-geometry queries a controller needs to
// decide its next move (e.g. RocketTurret orienting toward the player,
// SlimePipe checking the drop is clear). It is satisfied by internal/world
// once that package exists; behavior only depends on this narrow seam so it
// never imports the orchestrator.
type CollisionChecker interface {
	// SolidAt reports whether the tile at (tx, ty) blocks movement.
	SolidAt(tx, ty int) bool
}

// RandSource is the pseudorandom stream controllers draw from (spec §4.9
// "deterministic given inputs, a provided pseudorandom stream"). It is a
// single method so any *rand.Rand, or a recorded/replay stream for tests,
// satisfies it without adaptation.
type RandSource interface {
	Intn(n int) int
}

// ParticleSpawner is the seam into the particle/effects system (spec §4.5
// "Effects").
type ParticleSpawner interface {
	SpawnBurst(x, y int, spec ParticleBurstSpec)
}

// ParticleBurstSpec is the declarative particle-burst description effects
// attach (spec §4.5 "a particle burst (color, velocity bias)").
type ParticleBurstSpec struct {
	Color        uint32
	Count        int
	VelocityBias float32
}

// EntityFactory is the seam into internal/entityfactory: controllers spawn
// projectiles and drops by actor ID rather than constructing entities
// directly (spec §4.9 "RocketTurret... spawn a rocket", "SlimePipe...
// spawn a gravity-affected slime drop actor").
type EntityFactory interface {
	SpawnActor(actorID string, x, y int) EntityHandle
}

// EntityHandle is an opaque reference to a newly spawned entity. It is
// defined here rather than imported from internal/ecs so this package's
// public seam stays independent of the concrete entity representation;
// internal/world's EntityFactory implementation returns the real
// ecs.Entity value boxed behind this alias.
type EntityHandle uint32

// SoundService is the opaque audio collaborator spec §1 describes as
// external ("an opaque sound service").
type SoundService interface {
	PlaySound(id string)
}

// GlobalDependencies bundles every process-wide collaborator a controller
// may use (spec §4.9, §8 "pass them through a GlobalDependencies value
// constructed at world init; do not use module-level mutable state").
type GlobalDependencies struct {
	Collision CollisionChecker
	Rand      RandSource
	Particles ParticleSpawner
	Factory   EntityFactory
	Sound     SoundService
	Events    *eventbus.Bus
}
