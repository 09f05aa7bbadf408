// Package player implements PlayerModel, the persistent per-run state spec
// §3 calls the "Player model": score, health, ammo, inventory, and the
// handful of temporary-item counters the player controller consults every
// tick. It owns no components and no entity handle; internal/systems reads
// and mutates it alongside the player's entity.
package player

import "github.com/shadowledge/ledgerun/internal/engineerr"

const (
	// MaxScore is the score cap (spec §3 "Score capped at 9,999,999").
	MaxScore = 9_999_999

	// MinHealth and MaxHealth bound player health (spec §3 "health (1..9)").
	MinHealth = 1
	MaxHealth = 9

	// TemporaryItemDurationFrames is the shared lifetime of RapidFire and
	// Cloak (spec §4.4.3 "each have a 700-frame counter").
	TemporaryItemDurationFrames = 700

	// TemporaryItemWarningFrame is when a "timing out" message should show
	// (spec §4.4.3 "at 700-30 show a 'timing out' message").
	TemporaryItemWarningFrame = TemporaryItemDurationFrames - 30
)

// TemporaryItem names a time-limited pickup tracked by a frame counter.
type TemporaryItem int

const (
	TemporaryItemRapidFire TemporaryItem = iota
	TemporaryItemCloak
)

// Checkpoint is a saved resume point (spec §6 "Persistent state... the
// surrounding application persists PlayerModel checkpoints").
type Checkpoint struct {
	X, Y         int
	FacingLeft   bool
	Health       int
	Weapon       Weapon
	Ammo         map[Weapon]int
	Score        int
	HasCheckpoint bool
}

// Model is the player's persistent run state.
type Model struct {
	Score  int
	health int

	weapon Weapon
	ammo   map[Weapon]int

	inventory       map[string]bool
	letters         map[rune]bool
	temporaryFrames map[TemporaryItem]int
	tutorialShown   map[string]bool

	checkpoint Checkpoint
}

// New returns a Model at full health with the default weapon and no
// inventory.
func New() *Model {
	return &Model{
		health:          MaxHealth,
		weapon:          WeaponNormal,
		ammo:            map[Weapon]int{},
		inventory:       map[string]bool{},
		letters:         map[rune]bool{},
		temporaryFrames: map[TemporaryItem]int{},
		tutorialShown:   map[string]bool{},
	}
}

// Health returns the current health, always within [MinHealth, MaxHealth].
func (m *Model) Health() int { return m.health }

// SetHealth clamps and assigns health (spec §3 invariant "health ≤ max").
// Health is never allowed below MinHealth here; reaching zero HP is the
// damage system's job to translate into a PlayerDied transition before
// calling SetHealth with a sub-minimum value.
func (m *Model) SetHealth(h int) {
	if h > MaxHealth {
		h = MaxHealth
	}
	if h < MinHealth {
		h = MinHealth
	}
	m.health = h
}

// AddScore adds delta to the score, clamping at MaxScore (spec §3 "score
// capped"). Negative delta is rejected as a programming error: score never
// decreases in the source game.
func (m *Model) AddScore(delta int) error {
	if delta < 0 {
		return engineerr.New(engineerr.InvariantViolation, "player", "score delta must not be negative")
	}
	m.Score += delta
	if m.Score > MaxScore {
		m.Score = MaxScore
	}
	return nil
}

// Weapon returns the currently selected weapon.
func (m *Model) Weapon() Weapon { return m.weapon }

// Ammo returns the ammo count for w. WeaponNormal always reports
// maxAmmoUnlimited.
func (m *Model) Ammo(w Weapon) int {
	if w == WeaponNormal {
		return maxAmmoUnlimited
	}
	return m.ammo[w]
}

// GrantWeapon switches to w and tops its ammo up by amount, clamped to the
// weapon's max (spec §3 invariant "ammo ≤ weapon max").
func (m *Model) GrantWeapon(w Weapon, amount int) {
	m.weapon = w
	if w == WeaponNormal {
		return
	}
	total := m.ammo[w] + amount
	if max := w.MaxAmmo(); max != maxAmmoUnlimited && total > max {
		total = max
	}
	m.ammo[w] = total
}

// ConsumeAmmo decrements the selected weapon's ammo by one. If the weapon
// is not WeaponNormal and ammo reaches zero, it reverts the selection to
// WeaponNormal (spec §4.4.2 "empty reverts to the default weapon").
// Reports whether a shot was actually available to fire.
func (m *Model) ConsumeAmmo() bool {
	if m.weapon == WeaponNormal {
		return true
	}
	if m.ammo[m.weapon] <= 0 {
		m.weapon = WeaponNormal
		return false
	}
	m.ammo[m.weapon]--
	if m.ammo[m.weapon] <= 0 {
		m.weapon = WeaponNormal
	}
	return true
}

// HasItem reports whether the named inventory item is held (e.g. "spider"
// or an elevator key's identifier).
func (m *Model) HasItem(id string) bool { return m.inventory[id] }

// GrantItem adds id to the inventory set.
func (m *Model) GrantItem(id string) { m.inventory[id] = true }

// ConsumeItem removes id from the inventory set, e.g. a key-slot door
// spending a collected key (SPEC_FULL.md supplement, `interaction/locked_
// door.cpp`). Returns false if the item was not held.
func (m *Model) ConsumeItem(id string) bool {
	if !m.inventory[id] {
		return false
	}
	delete(m.inventory, id)
	return true
}

// HasLetter reports whether letter has been collected.
func (m *Model) HasLetter(letter rune) bool { return m.letters[letter] }

// CollectLetter marks letter as collected. Returns false if it was already
// collected (spec §8 "a 6-pack soda's 10000-point bonus is granted
// per-letter" — callers award points only on a true return).
func (m *Model) CollectLetter(letter rune) bool {
	if m.letters[letter] {
		return false
	}
	m.letters[letter] = true
	return true
}

// GrantTemporaryItem (re)arms a RapidFire or Cloak counter at full
// duration (spec §4.4.3).
func (m *Model) GrantTemporaryItem(item TemporaryItem) {
	m.temporaryFrames[item] = TemporaryItemDurationFrames
}

// TemporaryItemActive reports whether item's counter is still running.
func (m *Model) TemporaryItemActive(item TemporaryItem) bool {
	return m.temporaryFrames[item] > 0
}

// TemporaryItemFramesLeft returns the remaining frame count for item, or 0
// if inactive.
func (m *Model) TemporaryItemFramesLeft(item TemporaryItem) int {
	return m.temporaryFrames[item]
}

// TemporaryItemTick is a TemporaryItem whose counter just reached a
// tick boundary the caller should act on.
type TemporaryItemTick struct {
	Item      TemporaryItem
	Expired   bool
	Warning   bool
}

// AdvanceTemporaryItems ticks every active counter down by one frame and
// reports boundary crossings: Warning once TemporaryItemWarningFrame frames
// have elapsed (30 frames left), Expired when the counter reaches 0
// (spec §4.4.3). Only Cloak's expiry additionally raises a CloakExpired
// event; that is the caller's responsibility, not this package's — Model
// only tracks the counters.
func (m *Model) AdvanceTemporaryItems() []TemporaryItemTick {
	var ticks []TemporaryItemTick
	for item, frames := range m.temporaryFrames {
		if frames <= 0 {
			continue
		}
		frames--
		m.temporaryFrames[item] = frames
		switch frames {
		case TemporaryItemDurationFrames - TemporaryItemWarningFrame:
			ticks = append(ticks, TemporaryItemTick{Item: item, Warning: true})
		case 0:
			ticks = append(ticks, TemporaryItemTick{Item: item, Expired: true})
		}
	}
	return ticks
}

// TutorialShown reports whether the named tutorial message has already
// been displayed this playthrough.
func (m *Model) TutorialShown(id string) bool { return m.tutorialShown[id] }

// MarkTutorialShown records that the named tutorial message has now been
// displayed.
func (m *Model) MarkTutorialShown(id string) { m.tutorialShown[id] = true }

// SaveCheckpoint records a resumable checkpoint at the given position and
// facing, snapshotting current health/weapon/ammo/score.
func (m *Model) SaveCheckpoint(x, y int, facingLeft bool) {
	ammoCopy := make(map[Weapon]int, len(m.ammo))
	for w, n := range m.ammo {
		ammoCopy[w] = n
	}
	m.checkpoint = Checkpoint{
		X: x, Y: y,
		FacingLeft:    facingLeft,
		Health:        m.health,
		Weapon:        m.weapon,
		Ammo:          ammoCopy,
		Score:         m.Score,
		HasCheckpoint: true,
	}
}

// Checkpoint returns the last saved checkpoint and whether one exists.
func (m *Model) Checkpoint() (Checkpoint, bool) {
	return m.checkpoint, m.checkpoint.HasCheckpoint
}

// RestoreCheckpoint resets health/weapon/ammo/score from the saved
// checkpoint. Returns false if no checkpoint has been saved.
func (m *Model) RestoreCheckpoint() bool {
	cp := m.checkpoint
	if !cp.HasCheckpoint {
		return false
	}
	m.health = cp.Health
	m.weapon = cp.Weapon
	m.ammo = make(map[Weapon]int, len(cp.Ammo))
	for w, n := range cp.Ammo {
		m.ammo[w] = n
	}
	m.Score = cp.Score
	return true
}
