package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

// LifetimeStores bundles the stores the particles/lifetime system reads
// and mutates (spec §2 step 9 "particles and life-time system").
type LifetimeStores struct {
	AutoDestroys *ecs.Store[components.AutoDestroy]
}

// DestroyFn removes an expired entity from every store that references
// it; internal/world supplies the concrete implementation since this
// package has no way to enumerate all stores an entity might appear in.
type DestroyFn func(e ecs.Entity)

// RunLifetimes advances every AutoDestroy-timeout entity by one tick and
// destroys it once its timer reaches zero. Event-driven AutoDestroy
// entries (WaitForEvent) are handled separately by whatever event
// triggers them; this system only owns the frame-countdown path.
func RunLifetimes(stores LifetimeStores, destroy DestroyFn) {
	var expired []ecs.Entity
	stores.AutoDestroys.Each(func(e ecs.Entity, ad *components.AutoDestroy) {
		if ad.Reason != components.AutoDestroyOnTimeout {
			return
		}
		if ad.FramesLeft <= 0 {
			expired = append(expired, e)
			return
		}
		ad.FramesLeft--
		if ad.FramesLeft == 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		destroy(e)
	}
}

// DestroyOnEvent destroys every candidate entity whose AutoDestroy is
// event-driven and waiting on eventName. This package does not subscribe
// to the event bus itself, and internal/world does not call this
// function, so only a caller that invokes it directly with an event name
// destroys event-driven AutoDestroy entities.
func DestroyOnEvent(stores LifetimeStores, eventName string, candidates []ecs.Entity, destroy DestroyFn) {
	for _, e := range candidates {
		ad, ok := stores.AutoDestroys.Get(e)
		if !ok || ad.Reason != components.AutoDestroyOnEvent || ad.WaitForEvent != eventName {
			continue
		}
		destroy(e)
	}
}

// ScoreFloaterStores bundles the stores a score-number floater effect needs:
// its own countdown plus the world position it drifts upward from.
type ScoreFloaterStores struct {
	Positions *ecs.Store[components.WorldPosition]
	Floaters  *ecs.Store[ScoreFloater]
}

// RunScoreFloaters drifts every active score floater upward over its
// fixed 60-frame arc (spec §4.5 "a score-number floater with a 60-frame
// arc"), easing the rise via a gween.Tween rather than a constant per-tick
// step, and returns the entities whose arc has completed so the caller can
// destroy them via RunLifetimes' DestroyFn.
func RunScoreFloaters(stores ScoreFloaterStores) []ecs.Entity {
	var finished []ecs.Entity
	stores.Floaters.Each(func(e ecs.Entity, floater *ScoreFloater) {
		pos := stores.Positions.MustGet(e)
		if floater.riseTween == nil {
			floater.riseTween = newScoreFloaterTween()
			if pos != nil {
				floater.baseY = pos.Y
			}
		}
		rise, done := floater.riseTween.Update(tickSeconds)
		if pos != nil {
			pos.Y = floater.baseY - int(rise)
		}
		if done {
			finished = append(finished, e)
		}
	})
	return finished
}
