package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
	"github.com/shadowledge/ledgerun/internal/physics"
)

// MercyStrobeFrames is how many frames at the tail of a mercy window
// strobe the player sprite hidden/visible on alternating ticks rather than
// holding a steady white flash (spec §4.4, glossary "mercy frames").
const MercyStrobeFrames = 10

// Mercy-frame durations are difficulty-dependent (glossary "mercy frames":
// 40/30/20 frames for Easy/Medium/Hard).
const (
	MercyDurationEasy   = 40
	MercyDurationMedium = 30
	MercyDurationHard   = 20
)

// MercyState tracks the player's post-contact-damage invulnerability
// countdown.
type MercyState struct {
	FramesLeft int
}

// Active reports whether the player is currently immune to contact damage.
func (m *MercyState) Active() bool { return m.FramesLeft > 0 }

// Arm starts a mercy window of the given duration.
func (m *MercyState) Arm(duration int) { m.FramesLeft = duration }

// Advance steps the mercy window down by one tick and reports the sprite
// feedback that tick should show: a steady white flash for the bulk of the
// window, then an alternating hide/show strobe for its last
// MercyStrobeFrames (spec §8 scenario 5). Once the window closes, both
// flags are false and the sprite renders normally.
func (m *MercyState) Advance() (flashWhite, hidden bool) {
	if m.FramesLeft <= 0 {
		return false, false
	}
	m.FramesLeft--
	if m.FramesLeft < MercyStrobeFrames {
		return false, m.FramesLeft%2 == 0
	}
	return true, false
}

// PlayerDamageStores bundles the stores the player contact-damage system
// reads.
type PlayerDamageStores struct {
	Positions       *ecs.Store[components.WorldPosition]
	BoundingBoxes   *ecs.Store[components.BoundingBox]
	PlayerDamagings *ecs.Store[components.PlayerDamaging]
}

// PlayerContactHit describes a PlayerDamaging entity that touched the
// player this tick.
type PlayerContactHit struct {
	Entity           ecs.Entity
	Damage           int
	Fatal            bool
	DestroyOnContact bool
}

// RunPlayerContactDamage matches the player's bounding box against every
// PlayerDamaging source (spec §4.4/§4.5's contact-damage half of damage
// handling; damage.go's RunDamageInfliction only covers the Shootable/
// DamageInflicting half, enemies hurt by the player). While mercy is
// active, contact damage is suppressed entirely, matching the source
// engine's invulnerability window. At most one hit is reported per tick —
// stacking several simultaneous touches into one damage instance matches
// the original's single mercy-frame arm per contact.
func RunPlayerContactDamage(stores PlayerDamageStores, playerBox physics.AABB, mercy *MercyState) (hit PlayerContactHit, ok bool) {
	if mercy.Active() {
		return PlayerContactHit{}, false
	}
	stores.PlayerDamagings.Each(func(e ecs.Entity, pd *components.PlayerDamaging) {
		if ok {
			return
		}
		pos, posOK := stores.Positions.Get(e)
		if !posOK {
			return
		}
		box := aabbOf(pos, stores.BoundingBoxes, e)
		if !boxesIntersect(playerBox, box) {
			return
		}
		hit = PlayerContactHit{
			Entity: e, Damage: pd.Damage, Fatal: pd.Fatal, DestroyOnContact: pd.DestroyOnContact,
		}
		ok = true
	})
	return hit, ok
}
