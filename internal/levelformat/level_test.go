package levelformat

import (
	"encoding/binary"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shadowledge/ledgerun/internal/tileset"
)

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

func testTileset(t *testing.T) *tileset.TileSet {
	t.Helper()
	const tw, th = 8, 8
	const cols, rows = 2, 2 // 4 tiles total
	img := image.NewRGBA(image.Rect(0, 0, tw*cols, th*rows))
	attrs := make([]tileset.Attributes, cols*rows)
	attrs[0] = tileset.Attributes(1 << tileset.BitSolidTop)
	ts, err := tileset.New(img, tw, th, attrs, 4)
	require.NoError(t, err)
	return ts
}

// buildLevel assembles a minimal binary level with the given width,
// actor triples, and a uniform tile layer (index 0, simple encoding).
func buildLevel(width int, actors [][3]uint16) []byte {
	var buf []byte

	buf = append(buf, u16le(0)...)                 // dataOffset
	buf = append(buf, fixedString("CZONE1", 13)...) // tileset name
	buf = append(buf, fixedString("DROP1", 13)...)  // backdrop
	buf = append(buf, fixedString("MUSIC1", 13)...) // music
	buf = append(buf, 0)                            // flags
	buf = append(buf, 0)                             // alternative backdrop number
	buf = append(buf, u16le(0)...)                   // reserved
	buf = append(buf, u16le(uint16(len(actors)*3))...)

	for _, a := range actors {
		buf = append(buf, u16le(a[0])...)
		buf = append(buf, u16le(a[1])...)
		buf = append(buf, u16le(a[2])...)
	}

	buf = append(buf, u16le(uint16(width))...)

	height := heightForTestWidth(width)
	tileCount := width * height
	extraBitsLen := (tileCount + 3) / 4
	rle := CompressRLE(make([]byte, extraBitsLen))
	buf = append(buf, u16le(uint16(len(rle)))...)
	buf = append(buf, rle...)

	for i := 0; i < tileCount; i++ {
		buf = append(buf, u16le(0)...) // simple tile, solid index 0
	}

	return buf
}

func heightForTestWidth(width int) int {
	switch width {
	case 32:
		return 24
	default:
		return 32
	}
}

func TestPeekHeader_ResolvesTilesetNameBeforeFullDecode(t *testing.T) {
	data := buildLevel(32, [][3]uint16{{42, 5, 5}})

	header, err := PeekHeader(data)
	require.NoError(t, err)
	require.Equal(t, "CZONE1", header.TilesetName)
	require.Equal(t, "DROP1", header.BackdropName)
	require.Equal(t, "MUSIC1", header.MusicName)
}

func TestDecode_HeaderAndActors(t *testing.T) {
	ts := testTileset(t)
	data := buildLevel(32, [][3]uint16{
		{42, 5, 5},
	})

	level, err := Decode(data, ts, DifficultyEasy)
	require.NoError(t, err)
	require.Equal(t, "CZONE1", level.Header.TilesetName)
	require.Equal(t, 32, level.Map.Width())
	require.Equal(t, 24, level.Map.Height())
	require.Len(t, level.Actors, 1)
	require.Equal(t, uint16(42), level.Actors[0].ID)
}

func TestDecode_RejectsInvalidWidth(t *testing.T) {
	ts := testTileset(t)
	data := buildLevel(33, nil)
	_, err := Decode(data, ts, DifficultyEasy)
	require.Error(t, err)
}

func TestDecode_PlayerSpawnExtractedAndRemoved(t *testing.T) {
	ts := testTileset(t)
	data := buildLevel(32, [][3]uint16{
		{ActorPlayerSpawnRight, 10, 12},
		{99, 1, 1},
	})

	level, err := Decode(data, ts, DifficultyEasy)
	require.NoError(t, err)
	require.Equal(t, 10, level.PlayerSpawnX)
	require.Equal(t, 12, level.PlayerSpawnY)
	require.False(t, level.PlayerFacingLeft)
	require.Len(t, level.Actors, 1)
	require.Equal(t, uint16(99), level.Actors[0].ID)
}

func TestDecode_DifficultyMarkerRemovesTargetOnLowDifficulty(t *testing.T) {
	ts := testTileset(t)
	data := buildLevel(32, [][3]uint16{
		{ActorMetaAppearHard, 3, 3},
		{50, 4, 3}, // the gated actor, one column to the right
	})

	level, err := Decode(data, ts, DifficultyEasy)
	require.NoError(t, err)
	require.Len(t, level.Actors, 0)

	level, err = Decode(data, ts, DifficultyHard)
	require.NoError(t, err)
	require.Len(t, level.Actors, 1)
	require.Equal(t, uint16(50), level.Actors[0].ID)
}

func TestDecode_DynamicGeometrySectionResolved(t *testing.T) {
	ts := testTileset(t)
	const geometryID = 6
	data := buildLevel(32, [][3]uint16{
		{geometryID, 2, 2},
		{ActorMetaDynamicGeometryMarkerTopRight, 5, 2},
		{ActorMetaDynamicGeometryMarkerBottomRight, 5, 6},
	})

	level, err := Decode(data, ts, DifficultyEasy)
	require.NoError(t, err)
	require.Len(t, level.Actors, 1)
	a := level.Actors[0]
	require.True(t, a.HasSection)
	require.Equal(t, Rect{X: 2, Y: 2, W: 4, H: 5}, a.Section)
}
