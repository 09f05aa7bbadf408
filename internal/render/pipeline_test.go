package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/ecs"
)

func TestLerpRounded(t *testing.T) {
	require.Equal(t, 0, lerpRounded(0, 10, 0))
	require.Equal(t, 10, lerpRounded(0, 10, 1))
	require.Equal(t, 5, lerpRounded(0, 10, 0.5))
}

func TestMaskedAnimOffset_FastCyclesEveryTick(t *testing.T) {
	seen := make(map[int]bool)
	for tick := 0; tick < maskedAnimFrameCount; tick++ {
		seen[maskedAnimOffset(tick, false)] = true
	}
	require.Len(t, seen, maskedAnimFrameCount)
}

func TestMaskedAnimOffset_SlowAdvancesHalfAsOften(t *testing.T) {
	require.Equal(t, maskedAnimOffset(0, true), maskedAnimOffset(1, true))
	require.NotEqual(t, maskedAnimOffset(0, true), maskedAnimOffset(2, true))
}

type fakeSheetBytes struct {
	pngData     []byte
	frameW, frameH int
}

func (f fakeSheetBytes) SheetImageBytes(spriteID string) ([]byte, error) {
	return f.pngData, nil
}

func (f fakeSheetBytes) FrameSize(spriteID string) (int, int, error) {
	return f.frameW, f.frameH, nil
}

func testSheet(t *testing.T) fakeSheetBytes {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for x := 0; x < 16; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return fakeSheetBytes{pngData: buf.Bytes(), frameW: 8, frameH: 8}
}

func newTestStores() SpriteStores {
	return SpriteStores{
		Positions:          ecs.NewStore[components.WorldPosition](8),
		InterpolateMotions: ecs.NewStore[components.InterpolateMotion](8),
		Orientations:       ecs.NewStore[components.Orientation](8),
		Sprites:            ecs.NewStore[components.Sprite](8),
		DrawTopMosts:       ecs.NewStore[components.DrawTopMost](8),
		OverrideDrawOrders: ecs.NewStore[components.OverrideDrawOrder](8),
	}
}

func TestCollect_SortsRegularBeforeTopMostThenByOrder(t *testing.T) {
	reg := ecs.NewRegistry(8)
	stores := newTestStores()
	sheet := testSheet(t)
	pipeline := NewSpritePipeline(stores, NewSheetCache(sheet), 8, 8)

	back := reg.Create()
	stores.Positions.Set(back, components.WorldPosition{X: 1, Y: 1})
	stores.Sprites.Set(back, components.Sprite{ActorID: "x"})
	stores.OverrideDrawOrders.Set(back, components.OverrideDrawOrder{Order: 5})

	front := reg.Create()
	stores.Positions.Set(front, components.WorldPosition{X: 1, Y: 1})
	stores.Sprites.Set(front, components.Sprite{ActorID: "x"})
	stores.OverrideDrawOrders.Set(front, components.OverrideDrawOrder{Order: 1})

	top := reg.Create()
	stores.Positions.Set(top, components.WorldPosition{X: 1, Y: 1})
	stores.Sprites.Set(top, components.Sprite{ActorID: "x", DrawTopMost: true})

	items := pipeline.Collect(1, 0, 0, 200, 200)
	require.Len(t, items, 3)
	require.False(t, items[0].topMost)
	require.False(t, items[1].topMost)
	require.True(t, items[0].order <= items[1].order)
	require.True(t, items[2].topMost)

	split := Split(items)
	require.Equal(t, 2, split)
}

func TestCollect_CullsOffscreenSprite(t *testing.T) {
	reg := ecs.NewRegistry(8)
	stores := newTestStores()
	sheet := testSheet(t)
	pipeline := NewSpritePipeline(stores, NewSheetCache(sheet), 8, 8)

	far := reg.Create()
	stores.Positions.Set(far, components.WorldPosition{X: 1000, Y: 1000})
	stores.Sprites.Set(far, components.Sprite{ActorID: "x"})

	items := pipeline.Collect(1, 0, 0, 100, 100)
	require.Empty(t, items)
}
