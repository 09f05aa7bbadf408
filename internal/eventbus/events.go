package eventbus

import "github.com/shadowledge/ledgerun/internal/ecs"

// CollisionDirection flags which side(s) of a sweep produced a collision
// (spec §4.3 "Vertical/Horizontal sweep").
type CollisionDirection uint8

const (
	CollisionTop CollisionDirection = 1 << iota
	CollisionRight
	CollisionBottom
	CollisionLeft
)

// PlayerFiredShot is emitted by the player controller on every successful
// weapon discharge (spec §2 step 1, §4.4 "On fire"). The camera subscribes
// to briefly suppress manual vertical scrolling after a shot.
type PlayerFiredShot struct {
	Player    ecs.Entity
	WeaponID  string
	OrigX     int
	OrigY     int
	Orientation int
}

// PlayerDied is emitted once the Dieing state machine's Finished substate is
// reached, or when a self-correcting condition (player fell out of the map)
// forces death outside the normal damage path (spec §6 policy note).
type PlayerDied struct {
	Player ecs.Entity
}

// PlayerMessage carries a tutorial or narrative string the HUD should show
// (spec §2 step 1 lists it alongside PlayerFiredShot/PlayerDied).
type PlayerMessage struct {
	Text string
}

// CollidedWithWorld is emitted by the physics sweep for any entity that hit
// solid map geometry this tick (spec §4.3).
type CollidedWithWorld struct {
	Entity     ecs.Entity
	Directions CollisionDirection
}

// ShootableKilled is emitted when a Shootable's health reaches zero (spec
// §4.5). KillerVelocity lets item containers impart momentum onto their
// spawned contents (e.g. a bounced item box).
type ShootableKilled struct {
	Entity         ecs.Entity
	KillerVelX     float32
	KillerVelY     float32
	DestroyOnKill  bool
}

// ShootableDamaged is emitted on every successful damage application,
// lethal ones included (ShootableKilled follows those), and also when
// Invincible suppressed the HP change but feedback (hit-flash) still
// fires (spec §4.5).
type ShootableDamaged struct {
	Entity     ecs.Entity
	Damage     int
	Invincible bool
}

// CloakExpired is emitted when the player's Cloak temporary-item counter
// reaches its 700-frame limit (spec §4.4.3). RapidFire expiring does not
// emit an event; only Cloak does.
type CloakExpired struct {
	Player ecs.Entity
}

// PlayerDamaged is emitted whenever a PlayerDamaging contact deducts
// health and arms a new mercy-frame window (spec §4.4, §4.5, glossary
// "mercy frames"). HealthAfter is the player's health once the damage was
// applied.
type PlayerDamaged struct {
	Player      ecs.Entity
	Damage      int
	HealthAfter int
}
