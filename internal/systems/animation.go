package systems

import (
	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

// AnimationStores bundles the stores the sprite-animation system reads
// and mutates.
type AnimationStores struct {
	Sprites            *ecs.Store[components.Sprite]
	AnimationLoops     *ecs.Store[components.AnimationLoop]
	AnimationSequences *ecs.Store[components.AnimationSequence]
}

// RunAnimations advances every entity's AnimationLoop or AnimationSequence
// by one tick and writes the resulting frame index into its Sprite's
// ActiveFrames (spec §3 "AnimationLoop"/"AnimationSequence"), so
// internal/render's sprite pipeline always reads a single source of
// truth for which frame is current.
func RunAnimations(stores AnimationStores) {
	stores.AnimationLoops.Each(func(e ecs.Entity, loop *components.AnimationLoop) {
		if sprite := stores.Sprites.MustGet(e); sprite != nil {
			sprite.ActiveFrames = []int{loop.Advance()}
		}
	})
	stores.AnimationSequences.Each(func(e ecs.Entity, seq *components.AnimationSequence) {
		if sprite := stores.Sprites.MustGet(e); sprite != nil {
			sprite.ActiveFrames = []int{seq.Advance()}
		}
	})
}
