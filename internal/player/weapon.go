package player

// Weapon identifies one of the player's four weapon types (spec §3 "Player
// model", supplemented from original_source/src/game_logic/player.cpp's
// weapon table — spec.md only says "ammo per weapon").
type Weapon int

const (
	WeaponNormal Weapon = iota
	WeaponLaser
	WeaponRocket
	WeaponFlameThrower
)

// String names the weapon for logging/debugging.
func (w Weapon) String() string {
	switch w {
	case WeaponNormal:
		return "Normal"
	case WeaponLaser:
		return "Laser"
	case WeaponRocket:
		return "Rocket"
	case WeaponFlameThrower:
		return "FlameThrower"
	default:
		return "Unknown"
	}
}

// weaponInfo is the static per-weapon table: maximum ammo capacity and
// whether the weapon supports rapid fire while the trigger is held (spec
// §4.4.2 "Rapid fire (from inventory item or flame thrower)").
type weaponInfo struct {
	maxAmmo   int
	rapidFire bool
}

// maxAmmoUnlimited marks WeaponNormal, which never runs out and is the
// weapon every empty weapon reverts to (spec §4.4.2 "empty reverts to the
// default weapon").
const maxAmmoUnlimited = -1

var weaponTable = map[Weapon]weaponInfo{
	WeaponNormal:       {maxAmmo: maxAmmoUnlimited, rapidFire: false},
	WeaponLaser:        {maxAmmo: 99, rapidFire: false},
	WeaponRocket:       {maxAmmo: 99, rapidFire: false},
	WeaponFlameThrower: {maxAmmo: 99, rapidFire: true},
}

// MaxAmmo returns w's ammo capacity, or maxAmmoUnlimited for WeaponNormal.
func (w Weapon) MaxAmmo() int {
	return weaponTable[w].maxAmmo
}

// ParseWeapon looks up the Weapon named by s, matching w.String()'s output
// (the identifier a CollectableItem's WeaponID field carries). Reports
// false for an unrecognized name.
func ParseWeapon(s string) (Weapon, bool) {
	for w := range weaponTable {
		if w.String() == s {
			return w, true
		}
	}
	return WeaponNormal, false
}

// RapidFireCapable reports whether w supports continuous fire while held
// without requiring the RapidFire inventory item.
func (w Weapon) RapidFireCapable() bool {
	return weaponTable[w].rapidFire
}
