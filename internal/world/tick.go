package world

import (
	"time"

	"github.com/shadowledge/ledgerun/internal/behavior"
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/diag"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/physics"
	"github.com/shadowledge/ledgerun/internal/player"
	"github.com/shadowledge/ledgerun/internal/systems"
)

// playerAABB returns the player's current collision box in tile units.
func (w *World) playerAABB() physics.AABB {
	pos, _ := w.Stores.Positions.Get(w.PlayerEntity)
	bb, ok := w.Stores.BoundingBoxes.Get(w.PlayerEntity)
	if !ok {
		return physics.AABB{X: pos.X, Y: pos.Y, W: 1, H: 1}
	}
	return physics.AABB{X: pos.X + bb.OffsetX, Y: pos.Y + bb.OffsetY, W: bb.Width, H: bb.Height}
}

// Tick advances the simulation by one fixed step (spec §2's 15Hz tick,
// spec §4's ten-system order).
func (w *World) Tick(in systems.Input, manualScrollUp, manualScrollDown bool) {
	start := time.Now()
	defer func() { diag.RecordTick(time.Since(start)) }()

	w.tick++
	w.snapshotInterpolation()

	// 1. player controller
	pos, _ := w.Stores.Positions.Get(w.PlayerEntity)
	body := w.Stores.MovingBodies.MustGet(w.PlayerEntity)
	query := w.tileQuery()
	weapon := w.PlayerModel.Weapon()
	w.PlayerCtrl.Update(in, &pos, body, w.playerAABB(), systems.Deps{
		Query: query,
		Bus:   w.Bus,
		SpawnShot: func(weaponID string, x, y int, facingLeft bool) {
			w.spawnShot(weaponID, x, y, facingLeft)
		},
		Weapon:          weapon.String(),
		RapidFireActive: weapon.RapidFireCapable() || w.PlayerModel.TemporaryItemActive(player.TemporaryItemRapidFire),
		ConsumeAmmo:     w.PlayerModel.ConsumeAmmo,
	})
	w.Stores.Positions.Set(w.PlayerEntity, pos)
	if w.PlayerCtrl.FacingLeft() {
		w.Stores.Orientations.Set(w.PlayerEntity, components.Left)
	} else {
		w.Stores.Orientations.Set(w.PlayerEntity, components.Right)
	}

	// 2. camera
	w.Camera.Update(pos.X, pos.Y, w.PlayerCtrl.CameraMoveState(), manualScrollDown, manualScrollUp)

	// 3. active-region marking, centered on the camera viewport with a
	// four-tile margin so actors just offscreen still animate in (spec
	// §4.9's "activation margin").
	w.markActiveRegion()

	// 4. AI behavior
	systems.System(w.globalDeps(), w.behaviorGlobalState(pos), w.behaviorStores())

	// 5. physics
	systems.RunPhysics(w.physicsStores(), query, w.Bus)

	// 6. damage and projectiles
	systems.RunDamageInfliction(w.damageStores(), w.Bus)
	hits, _ := systems.RunProjectiles(w.projectileStores(), query)
	w.applyProjectileHits(hits)
	w.runItemPickups()
	w.runPlayerContactDamage()
	w.advanceTemporaryItems()

	// 7. item containers / destruction effects
	// (item-container release already runs via its event-bus subscription
	// registered in New; nothing further to drive here.)

	// 8. particles / lifetimes / animation
	destroyedByTimeout := make([]ecs.Entity, 0)
	systems.RunLifetimes(w.lifetimeStores(), func(e ecs.Entity) {
		destroyedByTimeout = append(destroyedByTimeout, e)
	})
	destroyedByTimeout = append(destroyedByTimeout, systems.RunScoreFloaters(w.scoreFloaterStores())...)
	systems.RunAnimations(w.animationStores())

	// 9. end-of-frame teleport / checkpoint / death handling, plus
	// flushing every entity queued for destruction this tick.
	w.flushDestroyQueue(destroyedByTimeout)
	w.hitEntities = make(map[ecs.Entity]bool)

	w.Sound.Advance()
	w.MapView.Advance()
}

func (w *World) behaviorGlobalState(playerPos components.WorldPosition) behavior.GlobalState {
	return behavior.GlobalState{
		PlayerX:     playerPos.X,
		PlayerY:     playerPos.Y,
		IsOddFrame:  w.tick%2 == 1,
		HitEntities: w.hitEntities,
	}
}

func (w *World) snapshotInterpolation() {
	w.Stores.InterpolateMotions.Each(func(e ecs.Entity, m *components.InterpolateMotion) {
		if pos, ok := w.Stores.Positions.Get(e); ok {
			m.PrevX, m.PrevY = pos.X, pos.Y
		}
	})
}

func (w *World) markActiveRegion() {
	systems.MarkActiveRegion(w.activeRegionStores(), w.Camera.X, w.Camera.Y, w.Camera.ViewportWidth, w.Camera.ViewportHeight, 4)
}

// projectileKindForWeapon maps a fired weapon to its wall-collision
// behavior (spec §4.5 "Player projectiles": Normal/Rocket collide with
// walls, laser and flame-thrower shots pass through them).
func projectileKindForWeapon(weaponID string) systems.ProjectileKind {
	switch weaponID {
	case "Laser", "FlameThrower":
		return systems.ProjectilePassThrough
	case "Rocket":
		return systems.ProjectileRocket
	default:
		return systems.ProjectileNormal
	}
}

// spawnShot materializes a player-fired projectile. The PlayerFiredShot
// event is published once, by systems.Controller.updateShooting, which is
// the only caller of this function and already knows the weapon/orientation
// this shot was fired with; spawnShot itself stays a pure spawn path.
func (w *World) spawnShot(weaponID string, x, y int, facingLeft bool) {
	e := w.Reg.Create()
	w.Stores.Positions.Set(e, components.WorldPosition{X: x, Y: y})
	w.Stores.BoundingBoxes.Set(e, components.BoundingBox{Width: 1, Height: 1})
	vx := float32(1)
	if facingLeft {
		vx = -1
	}
	w.Stores.MovingBodies.Set(e, components.MovingBody{VelX: vx, IgnoreCollisions: true})
	w.Stores.Physicals.Set(e, components.Physical{})
	w.Stores.Sprites.Set(e, components.Sprite{ActorID: weaponID})
	w.Stores.InterpolateMotions.Set(e, components.InterpolateMotion{PrevX: x, PrevY: y})
	w.Stores.DamageInflictings.Set(e, components.DamageInflicting{Damage: 1})
	w.Projectiles.Set(e, systems.Projectile{Kind: projectileKindForWeapon(weaponID)})
}

func (w *World) applyProjectileHits(hits []systems.ProjectileHit) {
	for _, hit := range hits {
		w.pendingDestroy = append(w.pendingDestroy, hit.Entity)
	}
}

func (w *World) flushDestroyQueue(timedOut []ecs.Entity) {
	for _, e := range w.pendingDestroy {
		w.destroy(e)
	}
	w.pendingDestroy = w.pendingDestroy[:0]
	for _, e := range timedOut {
		w.destroy(e)
	}
}
