package ecs

import "testing"

func TestStoreSetGetHas(t *testing.T) {
	s := NewStore[int](4)
	reg := NewRegistry(4)
	e := reg.Create()

	if s.Has(e) {
		t.Fatalf("expected no component before Set")
	}
	s.Set(e, 42)
	v, ok := s.Get(e)
	if !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%d, %v)", v, ok)
	}
	s.Set(e, 43)
	v, _ = s.Get(e)
	if v != 43 {
		t.Fatalf("expected overwrite to 43, got %d", v)
	}
}

func TestStoreRemoveSwapsTail(t *testing.T) {
	s := NewStore[string](4)
	reg := NewRegistry(4)
	a, b, c := reg.Create(), reg.Create(), reg.Create()
	s.Set(a, "a")
	s.Set(b, "b")
	s.Set(c, "c")

	if !s.Remove(a) {
		t.Fatalf("expected Remove(a) to succeed")
	}
	if s.Has(a) {
		t.Fatalf("expected a to be gone after Remove")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 remaining components, got %d", s.Len())
	}
	vb, ok := s.Get(b)
	if !ok || vb != "b" {
		t.Fatalf("expected b to survive removal, got (%v, %v)", vb, ok)
	}
	vc, ok := s.Get(c)
	if !ok || vc != "c" {
		t.Fatalf("expected c to survive removal via swap, got (%v, %v)", vc, ok)
	}
}

func TestStoreReAddAfterRemoveDoesNotResurrectStaleSlot(t *testing.T) {
	s := NewStore[int](4)
	reg := NewRegistry(4)
	a, b := reg.Create(), reg.Create()
	s.Set(a, 1)
	s.Set(b, 2)
	s.Remove(a)
	s.Set(a, 99)

	v, ok := s.Get(a)
	if !ok || v != 99 {
		t.Fatalf("expected re-added a to read 99, got (%d, %v)", v, ok)
	}
	vb, ok := s.Get(b)
	if !ok || vb != 2 {
		t.Fatalf("expected b unaffected by a's re-add, got (%d, %v)", vb, ok)
	}
}

func TestStoreEachVisitsAllLiveEntities(t *testing.T) {
	s := NewStore[int](4)
	reg := NewRegistry(4)
	entities := make([]Entity, 5)
	for i := range entities {
		entities[i] = reg.Create()
		s.Set(entities[i], i)
	}
	s.Remove(entities[2])

	seen := map[Entity]int{}
	s.Each(func(e Entity, v *int) {
		seen[e] = *v
	})
	if len(seen) != 4 {
		t.Fatalf("expected 4 live entities, got %d", len(seen))
	}
	if _, ok := seen[entities[2]]; ok {
		t.Fatalf("expected removed entity to be absent from Each")
	}
}

func TestRegistryDestroyMarksNotAlive(t *testing.T) {
	reg := NewRegistry(4)
	e := reg.Create()
	if !reg.Alive(e) {
		t.Fatalf("expected freshly created entity to be alive")
	}
	reg.Destroy(e)
	if reg.Alive(e) {
		t.Fatalf("expected destroyed entity to be not alive")
	}
	if reg.Count() != 0 {
		t.Fatalf("expected count 0 after destroy, got %d", reg.Count())
	}
}
