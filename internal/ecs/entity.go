// Package ecs implements the bespoke sparse/dense entity-component store
// spec §3/§9 calls for, rather than adopting a generic reflection-based
// third-party ECS: component lookups happen every tick for every active
// entity, and the spec's component list is closed and known up front, so a
// typed store per component kind is both simpler and faster than a
// type-erased generic ECS would be.
package ecs

import "github.com/kelindar/intmap"

// Entity is an opaque handle into the entity store. The zero value is
// never issued by a Registry and can be used as a "no entity" sentinel.
type Entity uint32

// aliveMarker/deadMarker are the two values stored per entity slot.
// intmap has no delete operation, so destruction is represented by
// overwriting the stored value rather than removing the key.
const (
	deadMarker  uint32 = 0
	aliveMarker uint32 = 1
)

// Registry allocates and tracks entity handles. It does not own component
// data; component stores (Store[T]) are created independently and keyed
// by the same Entity values.
type Registry struct {
	next  uint32
	alive *intmap.Map
	count int
}

// NewRegistry creates an empty registry with room for approximately
// capacityHint live entities before the backing index grows.
func NewRegistry(capacityHint int) *Registry {
	if capacityHint < 8 {
		capacityHint = 8
	}
	return &Registry{
		next:  1,
		alive: intmap.New(capacityHint, 0.9),
	}
}

// Create allocates a fresh entity handle.
func (r *Registry) Create() Entity {
	id := r.next
	r.next++
	r.alive.Store(id, aliveMarker)
	r.count++
	return Entity(id)
}

// Destroy marks an entity as no longer alive. It does not remove the
// entity's components from any Store[T]; callers (typically
// internal/world's teardown pass) are responsible for that, since the
// registry has no way to enumerate which stores reference an entity.
func (r *Registry) Destroy(e Entity) {
	if r.Alive(e) {
		r.alive.Store(uint32(e), deadMarker)
		r.count--
	}
}

// Alive reports whether e was created and has not been destroyed.
func (r *Registry) Alive(e Entity) bool {
	v, ok := r.alive.Load(uint32(e))
	return ok && v == aliveMarker
}

// Count returns the number of currently alive entities.
func (r *Registry) Count() int {
	return r.count
}
