package world

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/eventbus"
	"github.com/shadowledge/ledgerun/internal/levelformat"
	"github.com/shadowledge/ledgerun/internal/player"
	"github.com/shadowledge/ledgerun/internal/sound"
	"github.com/shadowledge/ledgerun/internal/systems"
)

// letterBonusScore is the one-time award for collecting a letter that has
// not been collected already this playthrough (spec §8 "a 6-pack soda's
// 10000-point bonus is granted per-letter").
const letterBonusScore = 10000

// mercyDuration returns this world's difficulty-dependent mercy-frame
// count (glossary "mercy frames": 40/30/20 frames for Easy/Medium/Hard).
func (w *World) mercyDuration() int {
	switch w.Difficulty {
	case levelformat.DifficultyEasy:
		return systems.MercyDurationEasy
	case levelformat.DifficultyHard:
		return systems.MercyDurationHard
	default:
		return systems.MercyDurationMedium
	}
}

// runPlayerContactDamage advances the mercy-frame window's sprite
// feedback, then — only while mercy is inactive — matches the player
// against every PlayerDamaging source, deducts health through PlayerModel,
// arms a fresh mercy window, and queues a DestroyOnContact source for
// destruction (spec §4.4, §4.5, glossary "mercy frames", scenario 5).
func (w *World) runPlayerContactDamage() {
	flash, hidden := w.mercy.Advance()
	if sprite := w.Stores.Sprites.MustGet(w.PlayerEntity); sprite != nil {
		sprite.FlashWhite, sprite.Hidden = flash, hidden
	}

	hit, ok := systems.RunPlayerContactDamage(w.playerDamageStores(), w.playerAABB(), &w.mercy)
	if !ok {
		return
	}

	if hit.DestroyOnContact {
		w.pendingDestroy = append(w.pendingDestroy, hit.Entity)
	}

	if hit.Fatal || w.PlayerModel.Health()-hit.Damage <= 0 {
		w.PlayerCtrl.TriggerDeath()
		return
	}

	w.PlayerModel.SetHealth(w.PlayerModel.Health() - hit.Damage)
	w.mercy.Arm(w.mercyDuration())
	if w.Sound != nil {
		w.Sound.PlaySound(string(sound.Pain))
	}
	if w.Bus != nil {
		eventbus.Publish(w.Bus, eventbus.PlayerDamaged{
			Player: w.PlayerEntity, Damage: hit.Damage, HealthAfter: w.PlayerModel.Health(),
		})
	}
}

// runItemPickups applies every CollectableItem overlapping the player this
// tick to PlayerModel, then queues the entity for destruction (spec §3
// CollectableItem, §4.2).
func (w *World) runItemPickups() {
	for _, hit := range systems.RunItemPickups(w.pickupStores(), w.playerAABB()) {
		w.applyPickup(hit.Item)
		w.pendingDestroy = append(w.pendingDestroy, hit.Entity)
	}
}

func (w *World) applyPickup(item components.CollectableItem) {
	if item.Score > 0 {
		_ = w.PlayerModel.AddScore(item.Score)
	}
	if item.Health > 0 {
		w.PlayerModel.SetHealth(w.PlayerModel.Health() + item.Health)
	}
	if item.WeaponID != "" {
		if wp, ok := player.ParseWeapon(item.WeaponID); ok {
			w.PlayerModel.GrantWeapon(wp, item.AmmoAmount)
		}
	}
	if item.HasLetter && w.PlayerModel.CollectLetter(item.Letter) {
		_ = w.PlayerModel.AddScore(letterBonusScore)
	}
	if item.ItemID != "" {
		w.grantInventoryItem(item.ItemID)
	}
	if w.Sound != nil {
		w.Sound.PlaySound(string(sound.Pickup))
	}
}

// grantInventoryItem routes a collected item's identifier to the matching
// player.Model slot: RapidFire and Cloak are time-limited counters (spec
// §4.4.3), everything else (keys, the spider gun attachment, ...) is a
// plain inventory flag.
func (w *World) grantInventoryItem(itemID string) {
	switch itemID {
	case "rapidfire":
		w.PlayerModel.GrantTemporaryItem(player.TemporaryItemRapidFire)
	case "cloak":
		w.PlayerModel.GrantTemporaryItem(player.TemporaryItemCloak)
	default:
		w.PlayerModel.GrantItem(itemID)
	}
}

// advanceTemporaryItems ticks the RapidFire/Cloak counters down by one
// frame and raises CloakExpired when Cloak's 700-frame window closes
// (spec §4.4.3 — only Cloak's expiry raises an event, per player.Model's
// own doc comment on AdvanceTemporaryItems).
func (w *World) advanceTemporaryItems() {
	for _, t := range w.PlayerModel.AdvanceTemporaryItems() {
		if t.Expired && t.Item == player.TemporaryItemCloak && w.Bus != nil {
			eventbus.Publish(w.Bus, eventbus.CloakExpired{Player: w.PlayerEntity})
		}
	}
}
