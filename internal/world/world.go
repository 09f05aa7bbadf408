// Package world is the per-tick orchestrator (spec §2): it owns the
// component stores, the entity registry, the loaded map, and every
// collaborator (rules engine, sound service, sprite pipeline, behavior
// dependencies) a tick needs, and runs the ten systems in the fixed order
// spec §2 lists: player controller, camera, active-region marking, AI
// behavior, physics, damage/projectiles, item containers/effects,
// particles/life-time, sprite animation, end-of-frame teleport/
// checkpoint/death handling.
//
// This is the one package allowed to import every other internal package;
// everything below it depends only on narrow interfaces (behavior.
// CollisionChecker, rules.Targetable, sound.Clips) so this is also the one
// place those seams get wired together, matching spec §8's "construct
// GlobalDependencies at world init; do not use module-level mutable
// state".
package world

import (
	"math/rand"

	"github.com/shadowledge/ledgerun/internal/behavior"
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/entityfactory"
	"github.com/shadowledge/ledgerun/internal/eventbus"
	"github.com/shadowledge/ledgerun/internal/levelformat"
	"github.com/shadowledge/ledgerun/internal/physics"
	"github.com/shadowledge/ledgerun/internal/player"
	"github.com/shadowledge/ledgerun/internal/render"
	"github.com/shadowledge/ledgerun/internal/resources"
	"github.com/shadowledge/ledgerun/internal/rules"
	"github.com/shadowledge/ledgerun/internal/sound"
	"github.com/shadowledge/ledgerun/internal/systems"
	"github.com/shadowledge/ledgerun/internal/worldmap"
)

const initialStoreCapacity = 256

// World bundles every simulation-wide collaborator. internal/app's Scene
// implementation (cmd/game) owns exactly one of these per loaded level.
type World struct {
	Reg    *ecs.Registry
	Stores *entityfactory.Stores

	DrawTopMosts       *ecs.Store[components.DrawTopMost]
	OverrideDrawOrders *ecs.Store[components.OverrideDrawOrder]
	AnimationLoops     *ecs.Store[components.AnimationLoop]
	AnimationSequences *ecs.Store[components.AnimationSequence]
	Projectiles        *ecs.Store[systems.Projectile]
	ScoreFloaters      *ecs.Store[systems.ScoreFloater]

	Level      *levelformat.LevelData
	Difficulty levelformat.Difficulty

	Bus      *eventbus.Bus
	Factory  *entityfactory.Factory
	Camera   *systems.Camera
	MapView  *render.MapView
	Pipeline *render.SpritePipeline
	Sound    *sound.Service
	Loader   *resources.Loader

	Rules   *rules.Engine
	Targets *rules.Registry

	dynamicGeometry map[ecs.Entity]*systems.DynamicGeometrySection

	PlayerEntity ecs.Entity
	PlayerCtrl   *systems.Controller
	// PlayerModel is the persistent run state the controller/damage path
	// reads and mutates every tick: selected weapon and ammo, score,
	// health, inventory, letters, and temporary-item counters (spec §3
	// "Player model", §4.4.2, §4.4.3).
	PlayerModel *player.Model
	mercy       systems.MercyState

	rand *rand.Rand

	tick           int
	hitEntities    map[ecs.Entity]bool
	pendingDestroy []ecs.Entity

	lastInput              systems.Input
	manualUp, manualDown bool

	Score      int
	PlayerDead bool
}

// New loads levelName via loader at the given difficulty and constructs a
// fully wired World sized for a viewportW x viewportH pixel viewport.
func New(loader *resources.Loader, recipes map[string]entityfactory.Recipe, levelName string, difficulty levelformat.Difficulty, viewportW, viewportH int) (*World, error) {
	level, err := loader.LoadLevel(levelName, difficulty)
	if err != nil {
		return nil, err
	}

	reg := ecs.NewRegistry(initialStoreCapacity)
	stores := newEntityFactoryStores(initialStoreCapacity)

	w := &World{
		Reg:                reg,
		Stores:             stores,
		DrawTopMosts:       ecs.NewStore[components.DrawTopMost](initialStoreCapacity),
		OverrideDrawOrders: ecs.NewStore[components.OverrideDrawOrder](initialStoreCapacity),
		AnimationLoops:     ecs.NewStore[components.AnimationLoop](initialStoreCapacity),
		AnimationSequences: ecs.NewStore[components.AnimationSequence](initialStoreCapacity),
		Projectiles:        ecs.NewStore[systems.Projectile](initialStoreCapacity),
		ScoreFloaters:      ecs.NewStore[systems.ScoreFloater](initialStoreCapacity),
		Level:              level,
		Difficulty:         difficulty,
		Bus:                eventbus.New(),
		Loader:             loader,
		dynamicGeometry:    make(map[ecs.Entity]*systems.DynamicGeometrySection),
		rand:               rand.New(rand.NewSource(1)),
		hitEntities:        make(map[ecs.Entity]bool),
	}

	tileW, tileH := level.Map.TileSet().TileWidth(), level.Map.TileSet().TileHeight()
	viewportTilesW := viewportW / tileW
	viewportTilesH := viewportH / tileH
	w.Camera = systems.NewCamera(viewportTilesW, viewportTilesH, level.Map.Width(), level.Map.Height())

	w.Factory = entityfactory.New(reg, stores, recipes)
	w.MapView = render.NewMapView(level.Map)
	w.Pipeline = render.NewSpritePipeline(w.renderStores(), render.NewSheetCache(loader), tileW, tileH)

	w.Sound = sound.NewService(clipAdapter(loader))
	w.PlayerModel = player.New()

	w.Targets = rules.NewRegistry()
	w.Rules = rules.NewEngine(w.Targets)

	w.spawnPlayer()
	w.spawnLevelActors()
	w.loadLevelRules(levelName)

	eventbus.Subscribe(w.Bus, func(evt eventbus.PlayerFiredShot) { w.Camera.NotifyShotFired() })
	eventbus.Subscribe(w.Bus, func(evt eventbus.ShootableDamaged) { w.hitEntities[evt.Entity] = true })
	eventbus.Subscribe(w.Bus, func(evt eventbus.ShootableKilled) { w.onShootableKilled(evt) })
	eventbus.Subscribe(w.Bus, func(evt eventbus.PlayerDied) {
		w.PlayerDead = true
		w.Rules.ProcessEvent(rules.NewEvent(rules.EventDeath, "player", nil))
	})
	systems.RunItemContainerRelease(w.Bus, w.itemContainerStores(), w.spawnContainerDrop)

	return w, nil
}

// loadLevelRules feeds levelName's optional rule sidecar (manifest.yaml's
// "rules" table) into w.Rules, so a level's switch/door/dynamic-geometry
// wiring is genuine YAML data rather than hard-coded Go (spec §4.6). A
// level with no declared rule file loads with an empty rule set.
func (w *World) loadLevelRules(levelName string) {
	data, ok, err := w.Loader.RuleSetBytes(levelName)
	if err != nil || !ok {
		return
	}
	if err := w.Rules.LoadYAML(data); err != nil {
		return
	}
}

// clipAdapter exposes loader through sound.Clips without internal/world
// depending on resources.Loader satisfying that interface by coincidence
// of method names alone — the conversion is explicit and documented here.
func clipAdapter(loader *resources.Loader) sound.Clips { return loader }

func (w *World) spawnPlayer() {
	e := w.Reg.Create()
	w.Stores.Positions.Set(e, components.WorldPosition{X: w.Level.PlayerSpawnX, Y: w.Level.PlayerSpawnY})
	w.Stores.BoundingBoxes.Set(e, components.BoundingBox{Width: 2, Height: 2})
	orientation := components.Right
	if w.Level.PlayerFacingLeft {
		orientation = components.Left
	}
	w.Stores.Orientations.Set(e, orientation)
	w.Stores.Sprites.Set(e, components.Sprite{ActorID: "player"})
	// Deliberately no Physical component: the player's entire vertical and
	// horizontal motion is owned by systems.Controller (player_controller.go),
	// which applies its own gravity/arc math directly to pos. RunPhysics
	// only drives entities carrying Physical, so the player never gets a
	// second, conflicting velocity integration from the generic system.
	// The MovingBody below exists solely because Controller.Update takes one
	// as a parameter; its VelY is never read by RunPhysics for this entity.
	w.Stores.MovingBodies.Set(e, components.MovingBody{})
	w.Stores.InterpolateMotions.Set(e, components.InterpolateMotion{
		PrevX: w.Level.PlayerSpawnX, PrevY: w.Level.PlayerSpawnY,
	})
	w.PlayerEntity = e
	w.PlayerCtrl = systems.NewController()
}

func (w *World) spawnLevelActors() {
	levelformat.SortByDrawIndex(w.Level.Actors, w.Loader.DrawIndex)

	for i, actor := range w.Level.Actors {
		name, ok := w.Loader.ActorName(actor.ID)
		if !ok {
			continue
		}
		e, err := w.Factory.Spawn(name, actor.X, actor.Y, w.Difficulty)
		if err != nil {
			continue
		}
		w.OverrideDrawOrders.Set(e, components.OverrideDrawOrder{Order: i})
		if actor.HasSection {
			w.attachDynamicGeometry(e, actor)
		}
	}
}

// attachDynamicGeometry wires a spawned dynamic-geometry actor's
// MapGeometryLink and controller-variant state, then registers it with
// the rules engine under a position-derived target ID (spec §4.6's
// trigger wiring; the binary level format carries no explicit target-ID
// field, so this reimplementation derives one deterministically — see
// DESIGN.md's Open Question decision).
func (w *World) attachDynamicGeometry(e ecs.Entity, actor levelformat.Actor) {
	w.Stores.MapGeometryLinks.Set(e, components.MapGeometryLink{
		X: actor.Section.X, Y: actor.Section.Y, Width: actor.Section.W, Height: actor.Section.H,
	})
	section := &systems.DynamicGeometrySection{Kind: systems.DynamicGeometryFallAfterDelayThenStay}
	w.dynamicGeometry[e] = section
	w.Targets.Register(dynamicGeometryTargetID(actor), &rules.GeometryTarget{
		ID: dynamicGeometryTargetID(actor), Section: section,
	})
}

// advanceDynamicGeometry steps every triggered dynamic-geometry section by
// one tick (spec §4.6). A section whose Advance reports fell=true has its
// linked map rectangle erased and replaced by tile-debris particles this
// tick; systems.DynamicGeometrySection itself holds no map or particle
// access, matching behavior.CollisionChecker's "narrow interface, wiring
// lives in internal/world" convention.
func (w *World) advanceDynamicGeometry() {
	for e, section := range w.dynamicGeometry {
		if !section.Advance() {
			continue
		}
		link, ok := w.Stores.MapGeometryLinks.Get(e)
		if !ok {
			continue
		}
		w.collapseGeometry(*link, section)
	}
}

func (w *World) collapseGeometry(link components.MapGeometryLink, section *systems.DynamicGeometrySection) {
	i := 0
	for ty := link.Y; ty < link.Y+link.Height; ty++ {
		for tx := link.X; tx < link.X+link.Width; tx++ {
			w.Level.Map.SetTile(worldmap.LayerSolid, tx, ty, -1)
			w.Level.Map.SetDynamicOverride(tx, ty, 0, true)
			w.spawnDebrisPiece(tx, ty, i)
			i++
		}
	}
	if section.Explodes() {
		cx := link.X + link.Width/2
		cy := link.Y + link.Height/2
		w.spawnBurst(cx, cy, 0xffaa00, 12, 1.5)
		if w.Sound != nil {
			w.Sound.PlaySound("explosion")
		}
	}
}

// spawnDebrisPiece materializes one tile-debris particle at (tx,ty) with
// the per-piece random x-velocity and fixed y-velocity table spec §4.6
// calls for, living exactly systems.DebrisLifetimeFrames ticks (see that
// constant's doc comment for why: the original's table-overrun read is not
// reproduced, only its observable "disappears after ~11 frames" lifetime).
func (w *World) spawnDebrisPiece(tx, ty, i int) {
	e := w.Reg.Create()
	w.Stores.Positions.Set(e, components.WorldPosition{X: tx, Y: ty})
	w.Stores.MovingBodies.Set(e, components.MovingBody{
		VelX: systems.DebrisXVelocity(w.rand),
		VelY: systems.DebrisYVelocity(i),
	})
	w.Stores.Physicals.Set(e, components.Physical{})
	w.Stores.Sprites.Set(e, components.Sprite{ActorID: "tile_debris"})
	w.Stores.InterpolateMotions.Set(e, components.InterpolateMotion{PrevX: tx, PrevY: ty})
	w.Stores.AutoDestroys.Set(e, components.AutoDestroy{
		Reason: components.AutoDestroyOnTimeout, FramesLeft: systems.DebrisLifetimeFrames,
	})
}

// interactableTargetAt returns the TargetID of an Interactable entity
// overlapping box, if any (spec §4.6's switch/lever mechanic). Tick does
// not call it.
func (w *World) interactableTargetAt(box physics.AABB) (targetID string, ok bool) {
	found := ""
	hit := false
	w.Stores.Interactables.Each(func(e ecs.Entity, in *components.Interactable) {
		if hit || in.TargetID == "" {
			return
		}
		pos, posOK := w.Stores.Positions.Get(e)
		if !posOK {
			return
		}
		other := physics.AABB{X: pos.X, Y: pos.Y, W: 1, H: 1}
		if bb, bbOK := w.Stores.BoundingBoxes.Get(e); bbOK {
			other = physics.AABB{X: pos.X + bb.OffsetX, Y: pos.Y + bb.OffsetY, W: bb.Width, H: bb.Height}
		}
		if box.Overlaps(other) {
			found, hit = in.TargetID, true
		}
	})
	return found, hit
}

func dynamicGeometryTargetID(actor levelformat.Actor) string {
	return "geom_" + itoa(actor.Section.X) + "_" + itoa(actor.Section.Y)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (w *World) tileQuery() physics.TileQuery {
	return w.Level.Map.Query()
}

// collisionChecker adapts the map query to behavior.CollisionChecker.
type collisionChecker struct{ query physics.TileQuery }

func (c collisionChecker) SolidAt(tx, ty int) bool { return c.query(tx, ty).AnySolid() }

// particleSpawner adapts behavior's burst requests into the same
// SpawnFns.SpawnBurst path destruction effects use, so a laser turret's
// death spark and an exploding crate's debris burst go through one spawn
// point.
type particleSpawner struct{ spawn func(x, y int, color uint32, count int, velocityBias float32) }

func (p particleSpawner) SpawnBurst(x, y int, spec behavior.ParticleBurstSpec) {
	if p.spawn != nil {
		p.spawn(x, y, spec.Color, spec.Count, spec.VelocityBias)
	}
}

func (w *World) globalDeps() behavior.GlobalDependencies {
	return behavior.GlobalDependencies{
		Collision: collisionChecker{query: w.tileQuery()},
		Rand:      w.rand,
		Particles: particleSpawner{spawn: w.spawnBurst},
		Factory:   w.Factory.AsBehaviorFactory(w.Difficulty),
		Sound:     w.Sound,
		Events:    w.Bus,
	}
}

// spawnBurst materializes count short-lived particle entities at (x, y),
// the shared spawn path for both behavior's death-spark bursts and
// destruction effects' debris bursts.
func (w *World) spawnBurst(x, y int, color uint32, count int, velocityBias float32) {
	for i := 0; i < count; i++ {
		e := w.Reg.Create()
		w.Stores.Positions.Set(e, components.WorldPosition{X: x, Y: y})
		vx := velocityBias * float32(i%3-1)
		w.Stores.MovingBodies.Set(e, components.MovingBody{VelX: vx, VelY: -1, GravityAffected: true})
		w.Stores.Physicals.Set(e, components.Physical{})
		w.Stores.Sprites.Set(e, components.Sprite{ActorID: "particle"})
		w.Stores.InterpolateMotions.Set(e, components.InterpolateMotion{PrevX: x, PrevY: y})
		w.Stores.AutoDestroys.Set(e, components.AutoDestroy{Reason: components.AutoDestroyOnTimeout, FramesLeft: 15})
	}
}

func (w *World) onShootableKilled(evt eventbus.ShootableKilled) {
	if sh, ok := w.Stores.Shootables.Get(evt.Entity); ok {
		w.Score += sh.ScoreOnKill
	}
	if tag, ok := w.Stores.ActorTags.Get(evt.Entity); ok {
		w.Rules.ProcessEvent(rules.NewEvent(rules.EventShootableKilled, tag.Tag, nil))
	}
	if effects, ok := w.Stores.DestructionEffects.Get(evt.Entity); ok {
		pos, _ := w.Stores.Positions.Get(evt.Entity)
		list := systems.EffectListFromDestructionEffects(effects)
		if systems.TriggerEffects(list, pos.X, pos.Y, w.effectSpawnFns()) || evt.DestroyOnKill {
			w.pendingDestroy = append(w.pendingDestroy, evt.Entity)
		}
	} else if evt.DestroyOnKill {
		w.pendingDestroy = append(w.pendingDestroy, evt.Entity)
	}
}

func (w *World) effectSpawnFns() systems.SpawnFns {
	return systems.SpawnFns{
		SpawnSprite: func(spriteID string, x, y int, movement []systems.MovementStep) {
			e := w.Reg.Create()
			w.Stores.Positions.Set(e, components.WorldPosition{X: x, Y: y})
			w.Stores.Sprites.Set(e, components.Sprite{ActorID: spriteID})
			w.Stores.InterpolateMotions.Set(e, components.InterpolateMotion{PrevX: x, PrevY: y})
			w.Stores.AutoDestroys.Set(e, components.AutoDestroy{Reason: components.AutoDestroyOnTimeout, FramesLeft: 30})
		},
		SpawnBurst: w.spawnBurst,
		SpawnScore: func(x, y, amount int) {
			e := w.Reg.Create()
			w.Stores.Positions.Set(e, components.WorldPosition{X: x, Y: y})
			w.ScoreFloaters.Set(e, systems.ScoreFloater{Amount: amount})
			w.Stores.AutoDestroys.Set(e, components.AutoDestroy{Reason: components.AutoDestroyOnTimeout, FramesLeft: 60})
		},
		PlaySound: func(soundID string) {
			if w.Sound != nil {
				w.Sound.PlaySound(soundID)
			}
		},
	}
}

// spawnContainerDrop is the systems.SpawnFn RunItemContainerRelease uses
// to materialize an opened ItemContainer's contents.
func (w *World) spawnContainerDrop(x, y int, item components.CollectableItem) ecs.Entity {
	e := w.Reg.Create()
	w.Stores.Positions.Set(e, components.WorldPosition{X: x, Y: y})
	w.Stores.CollectableItems.Set(e, item)
	w.Stores.InterpolateMotions.Set(e, components.InterpolateMotion{PrevX: x, PrevY: y})
	return e
}

// destroy removes e from every store it may appear in and marks its
// registry slot dead (ecs.Registry.Destroy does not itself enumerate
// stores, per its own doc comment).
func (w *World) destroy(e ecs.Entity) {
	w.Stores.Positions.Remove(e)
	w.Stores.BoundingBoxes.Remove(e)
	w.Stores.Orientations.Remove(e)
	w.Stores.Sprites.Remove(e)
	w.Stores.MovingBodies.Remove(e)
	w.Stores.Physicals.Remove(e)
	w.Stores.SolidBodies.Remove(e)
	w.Stores.Shootables.Remove(e)
	w.Stores.PlayerDamagings.Remove(e)
	w.Stores.DamageInflictings.Remove(e)
	w.Stores.CollectableItems.Remove(e)
	w.Stores.ItemContainers.Remove(e)
	w.Stores.Interactables.Remove(e)
	w.Stores.ActivationSettings.Remove(e)
	w.Stores.Actives.Remove(e)
	w.Stores.ActorTags.Remove(e)
	w.Stores.InterpolateMotions.Remove(e)
	w.Stores.DestructionEffects.Remove(e)
	w.Stores.MapGeometryLinks.Remove(e)
	w.Stores.AutoDestroys.Remove(e)
	w.Stores.Controllers.Remove(e)
	w.DrawTopMosts.Remove(e)
	w.OverrideDrawOrders.Remove(e)
	w.AnimationLoops.Remove(e)
	w.AnimationSequences.Remove(e)
	w.Projectiles.Remove(e)
	w.ScoreFloaters.Remove(e)
	delete(w.dynamicGeometry, e)
	w.Reg.Destroy(e)
}
