package resources

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/shadowledge/ledgerun/internal/levelformat"
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

// buildLevel mirrors internal/levelformat's own test fixture builder; it
// is duplicated here (rather than imported, since it is unexported there)
// to exercise LoadLevel end to end against a tiny in-memory filesystem.
func buildLevel(tilesetName string, width int) []byte {
	var buf []byte
	buf = append(buf, u16le(0)...)
	buf = append(buf, fixedString(tilesetName, 13)...)
	buf = append(buf, fixedString("DROP1", 13)...)
	buf = append(buf, fixedString("MUSIC1", 13)...)
	buf = append(buf, 0)
	buf = append(buf, 0)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...) // zero actors

	buf = append(buf, u16le(uint16(width))...)

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
levels:
  level1: levels/L1.MNI
sounds:
  jump: sounds/jump.wav
music:
  theme: music/theme.wav
draw_order: [10, 20]
actor_names:
  10: player_spawn
  99: crate
`
	return fstest.MapFS{
		ManifestName:            {Data: []byte(manifest)},
		"tilesets/czone1.png":   {Data: pngBytes(t, 16, 16)},
		"sprites/player.png":    {Data: pngBytes(t, 32, 32)},
		"levels/L1.MNI":         {Data: buildLevel("CZONE1", 32)},
		"sounds/jump.wav":       {Data: []byte("not-really-a-wav-but-bytes-only")},
		"music/theme.wav":       {Data: []byte("also-just-bytes")},
	}
}

func TestLoad_ParsesManifest(t *testing.T) {
	l, err := Load(testFS(t))
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestTileset_DecodesAndCaches(t *testing.T) {
	l, err := Load(testFS(t))
	require.NoError(t, err)

	ts, err := l.Tileset("CZONE1")
	require.NoError(t, err)
	require.Equal(t, 4, ts.Count())
	require.Equal(t, 4, ts.SolidCount())

	ts2, err := l.Tileset("CZONE1")
	require.NoError(t, err)
	require.Same(t, ts, ts2)
}

func TestTileset_UnknownNameFails(t *testing.T) {
	l, err := Load(testFS(t))
	require.NoError(t, err)
	_, err = l.Tileset("NOPE")
	require.Error(t, err)
}

func TestLoadLevel_ResolvesTilesetFromPeekHeader(t *testing.T) {
	l, err := Load(testFS(t))
	require.NoError(t, err)

	level, err := l.LoadLevel("level1", levelformat.DifficultyEasy)
	require.NoError(t, err)
	require.Equal(t, "CZONE1", level.Header.TilesetName)
	require.Equal(t, 32, level.Map.Width())
}

func TestDrawIndex_ListedActorsOrderedBeforeUnlisted(t *testing.T) {
	l, err := Load(testFS(t))
	require.NoError(t, err)

	require.Equal(t, 0, l.DrawIndex(10))
	require.Equal(t, 1, l.DrawIndex(20))
	require.Greater(t, l.DrawIndex(5000), l.DrawIndex(20))
}

func TestActorName_ResolvesAndReportsUnknown(t *testing.T) {
	l, err := Load(testFS(t))
	require.NoError(t, err)

	name, ok := l.ActorName(10)
	require.True(t, ok)
	require.Equal(t, "player_spawn", name)

	_, ok = l.ActorName(404)
	require.False(t, ok)
}

func TestFrameSizeAndFrameCount(t *testing.T) {
	l, err := Load(testFS(t))
	require.NoError(t, err)

	w, h, err := l.FrameSize("player")
	require.NoError(t, err)
	require.Equal(t, 16, w)
	require.Equal(t, 16, h)

	count, err := l.FrameCount("player")
	require.NoError(t, err)
	require.Equal(t, 4, count) // 32x32 sheet sliced into 16x16 frames
}

func TestSoundBytesAndMusicBytes(t *testing.T) {
	l, err := Load(testFS(t))
	require.NoError(t, err)

	b, err := l.SoundBytes("jump")
	require.NoError(t, err)
	require.NotEmpty(t, b)

	_, err = l.SoundBytes("missing")
	require.Error(t, err)

	b, err = l.MusicBytes("theme")
	require.NoError(t, err)
	require.NotEmpty(t, b)
}
