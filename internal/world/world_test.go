package world

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/shadowledge/ledgerun/internal/components"
	"github.com/shadowledge/ledgerun/internal/entityfactory"
	"github.com/shadowledge/ledgerun/internal/levelformat"
	"github.com/shadowledge/ledgerun/internal/resources"
	"github.com/shadowledge/ledgerun/internal/systems"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fixedString(s string, n int) []byte {
	buf := make([]byte, n)
	copy(buf, s)
	return buf
}

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// buildLevel mirrors internal/resources's own test fixture builder
// (duplicated rather than imported, since both are unexported and
// package-private to their own tests) to exercise World.New end to end
// against a tiny in-memory filesystem with one item_box actor.
func buildLevel(tilesetName string, width int) []byte {
	var buf []byte
	buf = append(buf, u16le(0)...)
	buf = append(buf, fixedString(tilesetName, 13)...)
	buf = append(buf, fixedString("DROP1", 13)...)
	buf = append(buf, fixedString("MUSIC1", 13)...)
	buf = append(buf, 0)
	buf = append(buf, 0)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(3)...) // one actor = 3 words (id, x, y)
	buf = append(buf, u16le(99)...)
	buf = append(buf, u16le(10)...)
	buf = append(buf, u16le(10)...)

	height := 24
	tileCount := width * height
	extraBitsLen := (tileCount + 3) / 4
	rle := levelformat.CompressRLE(make([]byte, extraBitsLen))
	buf = append(buf, u16le(uint16(len(rle)))...)
	buf = append(buf, rle...)

	for i := 0; i < tileCount; i++ {
		buf = append(buf, u16le(0)...)
	}
	return buf
}

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	manifest := `
tilesets:
  CZONE1:
    image: tilesets/czone1.png
    tile_width: 8
    tile_height: 8
    attributes: [0, 0, 0, 0]
    solid_count: 4
sprites:
  player:
    image: sprites/player.png
    frame_width: 16
    frame_height: 16
  item_box:
    image: sprites/item_box.png
    frame_width: 16
    frame_height: 16
levels:
  level1: levels/L1.MNI
sounds:
  jump: sounds/jump.wav
music:
  theme: music/theme.wav
draw_order: [10, 20]
actor_names:
  99: item_box
`
	return fstest.MapFS{
		resources.ManifestName: {Data: []byte(manifest)},
		"tilesets/czone1.png":  {Data: pngBytes(t, 16, 16)},
		"sprites/player.png":   {Data: pngBytes(t, 32, 32)},
		"sprites/item_box.png":    {Data: pngBytes(t, 16, 16)},
		"levels/L1.MNI":        {Data: buildLevel("CZONE1", 32)},
		"sounds/jump.wav":      {Data: []byte("not-really-a-wav-but-bytes-only")},
		"music/theme.wav":      {Data: []byte("also-just-bytes")},
	}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	loader, err := resources.Load(testFS(t))
	require.NoError(t, err)

	w, err := New(loader, entityfactory.DefaultRecipes(), "level1", levelformat.DifficultyEasy, 256, 192)
	require.NoError(t, err)
	return w
}

func TestNew_SpawnsPlayerAndLevelActors(t *testing.T) {
	w := newTestWorld(t)

	require.NotEqual(t, uint32(0), uint32(w.PlayerEntity))
	pos, ok := w.Stores.Positions.Get(w.PlayerEntity)
	require.True(t, ok)
	require.Equal(t, w.Level.PlayerSpawnX, pos.X)
	require.Equal(t, w.Level.PlayerSpawnY, pos.Y)

	require.Greater(t, w.Reg.Count(), 1)
}

func TestTick_AdvancesPlayerPositionWhenMovingRight(t *testing.T) {
	w := newTestWorld(t)
	start, _ := w.Stores.Positions.Get(w.PlayerEntity)

	for i := 0; i < 5; i++ {
		w.Tick(systems.Input{Right: true}, false, false)
	}

	after, _ := w.Stores.Positions.Get(w.PlayerEntity)
	require.NotEqual(t, start.X, after.X)
}

func TestTick_DoesNotPanicOverManyTicks(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 60; i++ {
		w.Tick(systems.Input{}, false, false)
	}
}

func TestTick_CollectableItemAwardsScoreAndIsDestroyed(t *testing.T) {
	w := newTestWorld(t)

	playerBox := w.playerAABB()
	item := w.Reg.Create()
	w.Stores.Positions.Set(item, componentPosition(playerBox.X, playerBox.Y))
	w.Stores.CollectableItems.Set(item, components.CollectableItem{Score: 250})

	w.Tick(systems.Input{}, false, false)

	require.Equal(t, 250, w.PlayerModel.Score)
	_, stillThere := w.Stores.Positions.Get(item)
	require.False(t, stillThere)
}

func TestTick_PlayerDamagingHitDeductsHealthAndArmsMercy(t *testing.T) {
	w := newTestWorld(t)

	playerBox := w.playerAABB()
	hazard := w.Reg.Create()
	w.Stores.Positions.Set(hazard, componentPosition(playerBox.X, playerBox.Y))
	w.Stores.PlayerDamagings.Set(hazard, components.PlayerDamaging{Damage: 1})

	startHealth := w.PlayerModel.Health()
	w.Tick(systems.Input{}, false, false)

	require.Equal(t, startHealth-1, w.PlayerModel.Health())

	// A second overlapping hit on the very next tick must be suppressed by
	// the mercy-frame window the first hit just armed.
	hazard2 := w.Reg.Create()
	w.Stores.Positions.Set(hazard2, componentPosition(playerBox.X, playerBox.Y))
	w.Stores.PlayerDamagings.Set(hazard2, components.PlayerDamaging{Damage: 1})
	w.Tick(systems.Input{}, false, false)

	require.Equal(t, startHealth-1, w.PlayerModel.Health())
}

func componentPosition(x, y int) components.WorldPosition {
	return components.WorldPosition{X: x, Y: y}
}
