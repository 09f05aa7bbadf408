package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/shadowledge/ledgerun/internal/components"
)

// EffectKind enumerates the five declarative effect variants spec §4.5
// names ("Effects").
type EffectKind int

const (
	EffectOneShotSprite EffectKind = iota
	EffectParticleBurst
	EffectBurnSpawner
	EffectScoreFloater
	EffectSound
)

// MovementStep is one waypoint of a one-shot sprite effect's optional
// movement sequence.
type MovementStep struct {
	DX, DY int
}

// Spec is one declarative effect entry. Only the fields relevant to Kind
// are meaningful; the rest are zero.
type Spec struct {
	Kind EffectKind

	SpriteID string
	Movement []MovementStep

	BurstColor        uint32
	BurstCount        int
	BurstVelocityBias float32

	SoundID string

	ScoreAmount int

	// DestroyOnTrigger marks the source entity for destruction once this
	// effect list has fired (spec §4.5 "optionally marks for
	// destruction").
	DestroyOnTrigger bool
}

// List is the declarative effect list attached to an entity (backs
// components.DestructionEffects' richer per-effect data; that component
// stores the lightweight EffectSpec table, this is the runtime form
// triggerEffects consumes once expanded by internal/world).
type List struct {
	Effects []Spec
}

const scoreFloaterArcFrames = 60
const scoreFloaterArcSeconds = float32(scoreFloaterArcFrames) / 15.0
const tickSeconds = float32(1.0) / 15.0

// ScoreFloater is a spawned score-number effect instance, advanced by
// RunScoreFloaters via its AutoDestroy timeout. riseTween eases its
// upward drift over the fixed arc instead of a constant per-tick step, so
// the number decelerates into its rest height like the original's float-up
// digits rather than drifting at a constant rate.
type ScoreFloater struct {
	Amount    int
	baseY     int
	riseTween *gween.Tween
}

// scoreFloaterRiseTiles is the number of tile-rows the floater climbs over its arc.
const scoreFloaterRiseTiles = 2

func newScoreFloaterTween() *gween.Tween {
	return gween.New(0, float32(scoreFloaterRiseTiles), scoreFloaterArcSeconds, ease.OutQuad)
}

// SpawnFns bundles the callbacks triggerEffects uses to materialize each
// effect kind; internal/world supplies concrete implementations backed by
// the entity factory, particle pool, and sound service.
type SpawnFns struct {
	SpawnSprite func(spriteID string, x, y int, movement []MovementStep)
	SpawnBurst  func(x, y int, color uint32, count int, velocityBias float32)
	SpawnBurnFX func(box BurnBox)
	SpawnScore  func(x, y, amount int)
	PlaySound   func(soundID string)
}

// BurnBox is the source bounding box a continuously-spawning burn effect
// samples from each tick (spec §4.5 "a continuously spawning 'burn FX'
// spawner over a source bounding box").
type BurnBox struct {
	X, Y, W, H int
}

// TriggerEffects spawns every effect in list at (x, y) via fns, returning
// whether the source entity should be destroyed afterward (spec §4.5
// "triggerEffects spawns them and optionally marks for destruction").
func TriggerEffects(list List, x, y int, fns SpawnFns) (destroy bool) {
	for _, spec := range list.Effects {
		switch spec.Kind {
		case EffectOneShotSprite:
			if fns.SpawnSprite != nil {
				fns.SpawnSprite(spec.SpriteID, x, y, spec.Movement)
			}
		case EffectParticleBurst:
			if fns.SpawnBurst != nil {
				fns.SpawnBurst(x, y, spec.BurstColor, spec.BurstCount, spec.BurstVelocityBias)
			}
		case EffectBurnSpawner:
			if fns.SpawnBurnFX != nil {
				fns.SpawnBurnFX(BurnBox{X: x, Y: y, W: 1, H: 1})
			}
		case EffectScoreFloater:
			if fns.SpawnScore != nil {
				fns.SpawnScore(x, y, spec.ScoreAmount)
			}
		case EffectSound:
			if fns.PlaySound != nil {
				fns.PlaySound(spec.SoundID)
			}
		}
		if spec.DestroyOnTrigger {
			destroy = true
		}
	}
	return destroy
}

// EffectListFromDestructionEffects adapts the component-level
// DestructionEffects table (spec §3) into a runtime effect List,
// expanding each EffectSpec into a one-shot sprite plus optional sound.
func EffectListFromDestructionEffects(d components.DestructionEffects) List {
	list := List{Effects: make([]Spec, 0, len(d.Effects))}
	for _, e := range d.Effects {
		if e.SpriteID != "" {
			list.Effects = append(list.Effects, Spec{Kind: EffectOneShotSprite, SpriteID: e.SpriteID})
		}
		if e.SoundID != "" {
			list.Effects = append(list.Effects, Spec{Kind: EffectSound, SoundID: e.SoundID})
		}
	}
	return list
}
