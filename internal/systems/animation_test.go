package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

func TestRunAnimations_LoopAlternatesFrames(t *testing.T) {
	reg := ecs.NewRegistry(4)
	stores := AnimationStores{
		Sprites:            ecs.NewStore[components.Sprite](4),
		AnimationLoops:     ecs.NewStore[components.AnimationLoop](4),
		AnimationSequences: ecs.NewStore[components.AnimationSequence](4),
	}

	e := reg.Create()
	stores.Sprites.Set(e, components.Sprite{ActorID: "torch"})
	stores.AnimationLoops.Set(e, components.AnimationLoop{FrameA: 0, FrameB: 1, PeriodTicks: 1})

	RunAnimations(stores)
	first := stores.Sprites.MustGet(e).ActiveFrames[0]
	RunAnimations(stores)
	second := stores.Sprites.MustGet(e).ActiveFrames[0]

	require.NotEqual(t, first, second)
}

func TestRunAnimations_SequenceFinishesAndHoldsLastFrame(t *testing.T) {
	reg := ecs.NewRegistry(4)
	stores := AnimationStores{
		Sprites:            ecs.NewStore[components.Sprite](4),
		AnimationLoops:     ecs.NewStore[components.AnimationLoop](4),
		AnimationSequences: ecs.NewStore[components.AnimationSequence](4),
	}

	e := reg.Create()
	stores.Sprites.Set(e, components.Sprite{ActorID: "explosion"})
	stores.AnimationSequences.Set(e, components.AnimationSequence{Frames: []int{3, 4, 5}})

	for i := 0; i < 5; i++ {
		RunAnimations(stores)
	}

	require.Equal(t, 5, stores.Sprites.MustGet(e).ActiveFrames[0])
	seq := stores.AnimationSequences.MustGet(e)
	require.True(t, seq.Finished)
}
