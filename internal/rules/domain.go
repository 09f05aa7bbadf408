package rules

import "github.com/shadowledge/ledgerun/internal/ecs"

// GeometrySection is the subset of systems.DynamicGeometrySection the
// rule engine needs. Declared locally instead of importing internal/
// systems directly so internal/rules stays a leaf package any orchestrator
// can wire targets from without pulling in the whole systems package.
type GeometrySection interface {
	Trigger()
}

// GeometryTarget adapts a GeometrySection (a falling-geometry or
// blue-key-door controller, spec §4.6) to Targetable so a rule's
// ActionSpec can reference it as an activation target. Deactivate/Toggle
// both trigger too: a dynamic-geometry section has no "un-fall" state, so
// every verb means the same thing — arm it.
type GeometryTarget struct {
	ID      string
	Section GeometrySection
}

func (t *GeometryTarget) Activate()        { t.Section.Trigger() }
func (t *GeometryTarget) Deactivate()      { t.Section.Trigger() }
func (t *GeometryTarget) Toggle()          { t.Section.Trigger() }
func (t *GeometryTarget) TargetID() string { return t.ID }

// DoorTarget adapts a key-slot or switch-operated door entity to
// Targetable: activating removes its solid-collision component so the
// player can walk through, deactivating restores it, and toggling
// flips between the two. Doors are plain ecs entities (no dedicated
// component type — "door" is just an entity with Physical + BoundingBox
// that a rule can make vanish) so this target holds only the entity and
// the onOpen/onClose callbacks that remove and restore its collision.
type DoorTarget struct {
	ID      string
	Entity  ecs.Entity
	closed  bool
	onOpen  func(ecs.Entity)
	onClose func(ecs.Entity)
}

// NewDoorTarget builds a DoorTarget starting closed. onOpen/onClose are
// supplied by internal/world (typically Physicals.Remove/Set plus a
// sprite-frame swap) since this package has no component stores of its
// own to avoid a dependency on internal/components.
func NewDoorTarget(id string, e ecs.Entity, onOpen, onClose func(ecs.Entity)) *DoorTarget {
	return &DoorTarget{ID: id, Entity: e, closed: true, onOpen: onOpen, onClose: onClose}
}

func (t *DoorTarget) Activate() {
	if !t.closed {
		return
	}
	t.closed = false
	if t.onOpen != nil {
		t.onOpen(t.Entity)
	}
}

func (t *DoorTarget) Deactivate() {
	if t.closed {
		return
	}
	t.closed = true
	if t.onClose != nil {
		t.onClose(t.Entity)
	}
}

func (t *DoorTarget) Toggle() {
	if t.closed {
		t.Activate()
	} else {
		t.Deactivate()
	}
}

func (t *DoorTarget) TargetID() string { return t.ID }

// Closed reports whether the door is presently closed (blocking).
func (t *DoorTarget) Closed() bool { return t.closed }

// Registry is a simple map-backed TargetResolver: internal/world
// registers one Targetable per level-designer-assigned target ID when it
// loads a level's switches/doors/dynamic-geometry sections, then hands
// the Registry to a new Engine.
type Registry struct {
	targets map[string]Targetable
}

// NewRegistry creates an empty target registry.
func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]Targetable)}
}

// Register adds or replaces the Targetable for id.
func (r *Registry) Register(id string, target Targetable) {
	r.targets[id] = target
}

// Resolve implements TargetResolver.
func (r *Registry) Resolve(id string) Targetable {
	return r.targets[id]
}
