package ecs

import "github.com/kelindar/intmap"

// Store is a sparse-set component store for one component kind: a dense,
// cache-friendly slice of values plus an intmap-backed sparse index from
// Entity to a slot in that slice. Every system that iterates "all
// entities with component X" walks the dense slice directly instead of
// probing a generic map, which is the entire point of hand-rolling this
// instead of reaching for a reflection-based ECS (spec §9).
type Store[T any] struct {
	sparse   *intmap.Map
	dense    []T
	entities []Entity
}

// NewStore creates an empty store with room for approximately
// capacityHint components before the backing slices grow.
func NewStore[T any](capacityHint int) *Store[T] {
	if capacityHint < 8 {
		capacityHint = 8
	}
	return &Store[T]{
		sparse:   intmap.New(capacityHint, 0.9),
		dense:    make([]T, 0, capacityHint),
		entities: make([]Entity, 0, capacityHint),
	}
}

// Set attaches or overwrites the component value for e.
func (s *Store[T]) Set(e Entity, value T) {
	if slot, ok := s.slotOf(e); ok {
		s.dense[slot] = value
		return
	}
	slot := uint32(len(s.dense))
	s.dense = append(s.dense, value)
	s.entities = append(s.entities, e)
	s.sparse.Store(uint32(e), slot)
}

// Get returns the component value for e and whether it is present.
func (s *Store[T]) Get(e Entity) (T, bool) {
	slot, ok := s.slotOf(e)
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[slot], true
}

// MustGet returns a pointer to the component value for e so callers can
// mutate it in place, or nil if e has no such component. The pointer is
// only valid until the next Remove call on this store (removal may
// relocate the backing slice's tail element into the freed slot).
func (s *Store[T]) MustGet(e Entity) *T {
	slot, ok := s.slotOf(e)
	if !ok {
		return nil
	}
	return &s.dense[slot]
}

// Has reports whether e has this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.slotOf(e)
	return ok
}

// slotOf resolves e to a dense-slice index, treating a stale entry left
// behind by Remove (a slot at or beyond the current slice length) as
// absent. intmap has no delete operation, so Remove cannot evict the
// sparse entry outright; this bound check is what makes that entry
// invisible again.
func (s *Store[T]) slotOf(e Entity) (uint32, bool) {
	slot, ok := s.sparse.Load(uint32(e))
	if !ok || slot >= uint32(len(s.dense)) || s.entities[slot] != e {
		return 0, false
	}
	return slot, true
}

// Remove detaches the component from e, swapping the dense array's tail
// element into the freed slot to keep the slice contiguous. Returns false
// if e had no such component.
func (s *Store[T]) Remove(e Entity) bool {
	slot, ok := s.slotOf(e)
	if !ok {
		return false
	}

	lastIdx := uint32(len(s.dense) - 1)
	if slot != lastIdx {
		movedEntity := s.entities[lastIdx]
		s.dense[slot] = s.dense[lastIdx]
		s.entities[slot] = movedEntity
		s.sparse.Store(uint32(movedEntity), slot)
	}

	s.dense = s.dense[:lastIdx]
	s.entities = s.entities[:lastIdx]
	return true
}

// Len returns the number of entities carrying this component.
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Each calls fn for every (Entity, *T) pair in the store, in dense order.
// Mutating the component in place through the pointer is safe; adding or
// removing components on this store from within fn is not.
func (s *Store[T]) Each(fn func(Entity, *T)) {
	for i := range s.dense {
		fn(s.entities[i], &s.dense[i])
	}
}

// Entities returns the live entities carrying this component, in dense
// order. The returned slice aliases internal storage and must not be
// mutated or retained across a Set/Remove call.
func (s *Store[T]) Entities() []Entity {
	return s.entities
}
