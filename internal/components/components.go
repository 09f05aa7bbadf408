// Package components defines the concrete component types attached to
// ecs.Entity values (spec §3's "Entity" table). Each type is stored in its
// own ecs.Store[T], created and owned by internal/world.
package components

import "github.com/shadowledge/ledgerun/internal/engineerr"

// Orientation is the facing direction of a sprite or mover.
type Orientation int

const (
	Left Orientation = iota
	Right
)

// WorldPosition is an entity's position in tile units. Per spec §3 it
// refers to the sprite's bottom-left corner, not its top-left, so render
// and physics code placing a sprite must subtract its height.
type WorldPosition struct {
	X, Y int
}

// BoundingBox is a collision rectangle relative to WorldPosition.
type BoundingBox struct {
	OffsetX, OffsetY int
	Width, Height    int
}

// MovingBody carries the velocity accumulator the physics system
// integrates (spec §4.3). Velocity is float32 tile-units/tick; the sweep
// truncates it to an integer step count each tick.
type MovingBody struct {
	VelX, VelY       float32
	GravityAffected  bool
	IgnoreCollisions bool
}

// Physical marks an entity as participating in world collision. SolidBody
// additionally marks it as something other movers can stand/collide on
// (spec §3 "Physical/SolidBody").
type Physical struct{}
type SolidBody struct{}

// Shootable is a damageable entity (spec §3, §4.5).
type Shootable struct {
	Health          int
	ScoreOnKill     int
	Invincible      bool
	HitFeedback     bool
	DestroyOnKill   bool
}

// PlayerDamaging marks an entity that hurts the player on contact.
type PlayerDamaging struct {
	Damage           int
	Fatal            bool
	DestroyOnContact bool
}

// DamageInflicting is the per-frame damage a projectile or hazard deals
// to anything with Shootable (spec §4.5).
type DamageInflicting struct {
	Damage int
}

// CollectableItem is what a pickup grants when collected (spec §3).
type CollectableItem struct {
	Score      int
	Health     int
	ItemID     string
	WeaponID   string
	AmmoAmount int
	Letter     rune
	HasLetter  bool
}

// ReleaseStyle controls how an ItemContainer's contents are spawned on
// kill (spec §4.6: "one of four release styles (plain, item-box bounce,
// item-box no-bounce, nuclear-waste-barrel) affecting the spawned
// entity's initial velocity and physics").
type ReleaseStyle int

const (
	ReleasePlain ReleaseStyle = iota
	ReleaseItemBoxBounce
	ReleaseItemBoxNoBounce
	ReleaseNuclearWasteBarrel
)

// ItemContainer materializes components into new entities when opened
// (spec §3, §4.6).
type ItemContainer struct {
	Contents []CollectableItem
	Style    ReleaseStyle
	Opened   bool
}

// InteractableKind enumerates the Interactable variants (spec §3).
type InteractableKind int

const (
	InteractableTeleporter InteractableKind = iota
	InteractableKeySlot
	InteractableHintGlobe
)

// Interactable marks an entity the player can interact with.
type Interactable struct {
	Kind InteractableKind
	// TargetID names the teleporter destination or key-slot door, looked
	// up by the rules engine rather than stored as a live entity handle.
	TargetID string
}

// ActivationMode controls when an entity's BehaviorController starts
// running (spec §3 "ActivationSettings").
type ActivationMode int

const (
	ActivateAlways ActivationMode = iota
	ActivateAfterFirstOnScreen
)

// ActivationSettings gates when an entity becomes Active.
type ActivationSettings struct {
	Mode ActivationMode
}

// Active is present iff the entity is within the camera's active region
// (spec §3). Its presence, not a bool field, is the marker — systems test
// ecs.Store[Active].Has(e).
type Active struct{}

// ActorTag is a semantic tag consumed by scoring/boss-tracking logic
// (spec §3).
type ActorTag struct {
	Tag      string
	IsBoss   bool
}

// InterpolateMotion stores the previous tick's WorldPosition so the
// renderer can blend position between simulation ticks (spec §2's
// "previous->current position interpolation").
type InterpolateMotion struct {
	PrevX, PrevY int
}

// DestructionEffectTrigger selects when a DestructionEffects spec fires.
type DestructionEffectTrigger int

const (
	TriggerOnKill DestructionEffectTrigger = iota
	TriggerOnContact
	TriggerOnTimeout
)

// EffectSpec names one follow-up sprite/sound effect to spawn.
type EffectSpec struct {
	SpriteID string
	SoundID  string
	OffsetX  int
	OffsetY  int
}

// DestructionEffects is the effect-spec list fired on an entity's death
// (spec §3, §4.5 "Item containers release contents on kill").
type DestructionEffects struct {
	Effects []EffectSpec
	Trigger DestructionEffectTrigger
}

// MapGeometryLink ties an entity to a rectangle of map tiles erased when
// it is killed (spec §3, used by dynamic-geometry actors from §4.6).
type MapGeometryLink struct {
	X, Y, Width, Height int
}

// DrawTopMost forces an entity to render above every other sprite layer.
type DrawTopMost struct{}

// OverrideDrawOrder assigns an explicit draw-order key, overriding the
// default front-to-back sort (spec §3, §4.8).
type OverrideDrawOrder struct {
	Order int
}

// AutoDestroyReason distinguishes the two AutoDestroy triggers.
type AutoDestroyReason int

const (
	AutoDestroyOnTimeout AutoDestroyReason = iota
	AutoDestroyOnEvent
)

// AutoDestroy is a timeout- or event-driven lifetime (spec §3, §2 step 9
// "particles and life-time system").
type AutoDestroy struct {
	Reason       AutoDestroyReason
	FramesLeft   int
	WaitForEvent string
}

// ValidateShootable enforces the invariant that a Shootable's health
// never goes negative when constructed or scaled by difficulty
// (spec §4.2's difficulty HP offset).
func ValidateShootable(s Shootable) error {
	if s.Health < 0 {
		return engineerr.New(engineerr.InvariantViolation, "components",
			"Shootable.Health must not be negative")
	}
	return nil
}
