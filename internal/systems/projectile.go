package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/physics"
)

// ProjectileKind distinguishes the three player-weapon projectile
// behaviors spec §4.5 names ("Player projectiles").
type ProjectileKind int

const (
	ProjectileNormal ProjectileKind = iota
	ProjectilePassThrough
	ProjectileRocket
)

// Projectile marks a DamageInflicting entity as a player-fired shot with
// wall-collision semantics beyond the generic physics sweep.
type Projectile struct {
	Kind ProjectileKind
	// SmokeTrailCooldown counts down the frames between rocket smoke
	// puffs (spec §4.5 "rockets spawn a trail of smoke puffs").
	SmokeTrailCooldown int
}

const rocketSmokeIntervalFrames = 4

// ProjectileStores bundles the stores the projectile system reads.
type ProjectileStores struct {
	Positions     *ecs.Store[components.WorldPosition]
	BoundingBoxes *ecs.Store[components.BoundingBox]
	Projectiles   *ecs.Store[Projectile]
}

// ProjectileHit describes a world collision a projectile must react to.
type ProjectileHit struct {
	Entity ecs.Entity
	X, Y   int
	Kind   ProjectileKind
}

// SmokePuff describes a rocket's trailing smoke spawn request.
type SmokePuff struct {
	Entity ecs.Entity
	X, Y   int
}

// RunProjectiles tests each projectile's fused top-edge/left-edge world
// collision (spec §4.5: "one-tile-thin shots do a fused top-edge and
// left-edge world collision test, efficient because they are 1xN or Nx1")
// and reports hits for ProjectileNormal/ProjectileRocket kinds.
// ProjectilePassThrough (flame, laser) never reports a wall hit, matching
// "flame and laser shots pass through walls". It also ticks each rocket's
// smoke-trail cooldown, returning a SmokePuff request when it fires.
func RunProjectiles(stores ProjectileStores, query physics.TileQuery) (hits []ProjectileHit, smoke []SmokePuff) {
	stores.Projectiles.Each(func(e ecs.Entity, p *Projectile) {
		pos, ok := stores.Positions.Get(e)
		if !ok {
			return
		}
		box := aabbOf(pos, stores.BoundingBoxes, e)

		if p.Kind == ProjectileRocket {
			p.SmokeTrailCooldown--
			if p.SmokeTrailCooldown <= 0 {
				p.SmokeTrailCooldown = rocketSmokeIntervalFrames
				smoke = append(smoke, SmokePuff{Entity: e, X: pos.X, Y: pos.Y})
			}
		}

		if p.Kind == ProjectilePassThrough {
			return
		}

		if fusedEdgeBlocked(box, query) {
			hits = append(hits, ProjectileHit{Entity: e, X: pos.X, Y: pos.Y, Kind: p.Kind})
		}
	})
	return hits, smoke
}

// fusedEdgeBlocked tests only the leading tile of box against the world:
// for a 1xN or Nx1 shot the leading tile's solidity is equivalent to a
// full sweep collision test but touches a single tile per tick instead of
// every tile the shot's thin dimension spans.
func fusedEdgeBlocked(box physics.AABB, query physics.TileQuery) bool {
	return query(box.Left(), box.Top()).AnySolid()
}
