package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

// ActiveRegionStores bundles the stores the active-region marker reads and
// mutates.
type ActiveRegionStores struct {
	Positions          *ecs.Store[components.WorldPosition]
	ActivationSettings *ecs.Store[components.ActivationSettings]
	Actives            *ecs.Store[components.Active]
}

// MarkActiveRegion tags every entity within a widened viewport as Active
// (spec §2 step 3, glossary "Active region: a widened viewport used to
// decide which entities get per-tick updates"). Only entities that carry
// ActivationSettings are visited; entities without them are left as they
// are. An ActivateAlways entity is always tagged Active. An
// ActivateAfterFirstOnScreen entity, once tagged Active, stays Active even
// after leaving the region again; until then, and for any other mode, the
// tag follows current presence inside the region.
func MarkActiveRegion(stores ActiveRegionStores, regionX, regionY, regionW, regionH, margin int) {
	x0, y0 := regionX-margin, regionY-margin
	x1, y1 := regionX+regionW+margin, regionY+regionH+margin

	stores.ActivationSettings.Each(func(e ecs.Entity, settings *components.ActivationSettings) {
		if stores.Actives.Has(e) && settings.Mode == components.ActivateAfterFirstOnScreen {
			return
		}
		pos, ok := stores.Positions.Get(e)
		if !ok {
			return
		}
		onScreen := pos.X >= x0 && pos.X < x1 && pos.Y >= y0 && pos.Y < y1
		switch {
		case settings.Mode == components.ActivateAlways:
			stores.Actives.Set(e, components.Active{})
		case onScreen:
			stores.Actives.Set(e, components.Active{})
		default:
			stores.Actives.Remove(e)
		}
	})
}
