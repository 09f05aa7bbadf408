// Package levelformat decodes the binary map file format (spec §4.1,
// §6 "Map file (binary, little-endian)"), grounded on
// original_source/src/assets/level_loader.cpp (the RigelEngine level
// loader) and original_source/src/loader/rle_compression.hpp.
package levelformat

import (
	"github.com/shadowledge/ledgerun/internal/engineerr"
	"github.com/shadowledge/ledgerun/internal/tileset"
	"github.com/shadowledge/ledgerun/internal/worldmap"
)

// Meta-actor IDs consumed during preprocessing rather than surfacing as
// spawned entities (spec §4.1 "Actor preprocessing", §6 "Actor IDs"). The
// numeric values are internal to this reimplementation; what matters is
// that the preprocessing algorithm below treats them identically to the
// original loader.
const (
	ActorPlayerSpawnLeft  uint16 = 0
	ActorPlayerSpawnRight uint16 = 1

	ActorMetaAppearMediumHard uint16 = 2
	ActorMetaAppearHard       uint16 = 3

	ActorMetaDynamicGeometryMarkerTopRight    uint16 = 4
	ActorMetaDynamicGeometryMarkerBottomRight uint16 = 5
)

// dynamicGeometryActorIDs are the actor IDs that require a tile-section
// rectangle resolved from the two marker actors above (spec:
// "Dynamic-geometry marker 1 ... producing a rectangle assigned to the
// dynamic-geometry actor").
var dynamicGeometryActorIDs = map[uint16]bool{
	6: true, 7: true, 8: true, 9: true, 10: true, 11: true, 12: true, 13: true,
}

// Difficulty selects which difficulty-gated actors survive preprocessing.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Header is the fixed-size level header (spec §4.1 step 1).
type Header struct {
	DataOffset                uint16
	TilesetName                string
	BackdropName               string
	MusicName                  string
	Flags                      uint8
	AlternativeBackdropNumber  uint8
	ActorWordCount             uint16
}

// Flag bits within Header.Flags controlling backdrop/parallax behavior.
const (
	FlagUseAlternativeBackdrop uint8 = 1 << 0
	FlagBackdropAutoScrollX    uint8 = 1 << 1
	FlagBackdropAutoScrollY    uint8 = 1 << 2
	FlagParallaxBackdrop       uint8 = 1 << 3
)

func (h Header) flagSet(bit uint8) bool { return h.Flags&bit != 0 }

// Actor is one decoded and placed map actor, after preprocessing.
type Actor struct {
	ID   uint16
	X, Y int

	// HasSection is true for dynamic-geometry actors, whose Section gives
	// the map-relative rectangle the geometry occupies (spec §4.6).
	HasSection bool
	Section    Rect
}

// Rect is an inclusive tile-coordinate rectangle.
type Rect struct {
	X, Y, W, H int
}

// LevelData is the fully decoded and preprocessed level.
type LevelData struct {
	Header Header
	Map    *worldmap.Map
	Actors []Actor

	PlayerSpawnX, PlayerSpawnY int
	PlayerFacingLeft           bool

	BackdropName string
}

// rawActor is an actor triple exactly as it appears in the file, before
// preprocessing removes meta-actors and resolves dynamic-geometry
// rectangles.
type rawActor struct {
	ID   uint16
	X, Y int
}

// PeekHeader decodes only the fixed-size header, letting the caller
// resolve Header.TilesetName to a loaded *tileset.TileSet before calling
// Decode with the same data (internal/resources' LoadLevel does exactly
// this, since resource I/O is outside this package's scope).
func PeekHeader(data []byte) (Header, error) {
	r := newLeReader(data)
	return decodeHeader(r)
}

// Decode parses a complete binary level file. tiles is the already-loaded
// tileset named by the header's CZone field (the caller is responsible for
// mapping TilesetName to a resource and loading it, since resource I/O is
// outside this package's scope). difficulty selects which difficulty-gated
// actors are kept.
func Decode(data []byte, tiles *tileset.TileSet, difficulty Difficulty) (*LevelData, error) {
	r := newLeReader(data)

	header, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	rawActors, err := decodeActors(r, header.ActorWordCount)
	if err != nil {
		return nil, err
	}

	width, err := r.readU16()
	if err != nil {
		return nil, err
	}
	m, err := worldmap.New(int(width), tiles)
	if err != nil {
		return nil, err
	}
	height := m.Height()

	extraBits, err := decodeExtraMaskedTileBits(r, int(width)*height)
	if err != nil {
		return nil, err
	}

	if err := decodeTileData(r, m, int(width), height, extraBits, tiles); err != nil {
		return nil, err
	}

	actors, spawnX, spawnY, facingLeft := preprocessActors(rawActors, int(width), height, difficulty)

	backdrop := header.BackdropName
	if header.flagSet(FlagUseAlternativeBackdrop) {
		backdrop = backdropNameFromNumber(header.AlternativeBackdropNumber)
	}

	return &LevelData{
		Header:           header,
		Map:              m,
		Actors:           actors,
		PlayerSpawnX:     spawnX,
		PlayerSpawnY:     spawnY,
		PlayerFacingLeft: facingLeft,
		BackdropName:     backdrop,
	}, nil
}

func backdropNameFromNumber(n uint8) string {
	const digits = "0123456789"
	var buf []byte
	if n == 0 {
		buf = []byte{'0'}
	} else {
		for n > 0 {
			buf = append([]byte{digits[n%10]}, buf...)
			n /= 10
		}
	}
	return "DROP" + string(buf) + ".MNI"
}

func decodeHeader(r *leReader) (Header, error) {
	var h Header
	var err error

	if h.DataOffset, err = r.readU16(); err != nil {
		return h, err
	}
	if h.TilesetName, err = r.readFixedString(13); err != nil {
		return h, err
	}
	if h.BackdropName, err = r.readFixedString(13); err != nil {
		return h, err
	}
	if h.MusicName, err = r.readFixedString(13); err != nil {
		return h, err
	}
	if h.Flags, err = r.readU8(); err != nil {
		return h, err
	}
	if h.AlternativeBackdropNumber, err = r.readU8(); err != nil {
		return h, err
	}
	if _, err = r.readU16(); err != nil { // reserved
		return h, err
	}
	if h.ActorWordCount, err = r.readU16(); err != nil {
		return h, err
	}
	return h, nil
}

func decodeActors(r *leReader, wordCount uint16) ([]rawActor, error) {
	if wordCount%3 != 0 {
		return nil, engineerr.New(engineerr.MalformedResource, "levelformat",
			"actor word count is not a multiple of 3")
	}
	n := int(wordCount) / 3
	actors := make([]rawActor, 0, n)
	for i := 0; i < n; i++ {
		id, err := r.readU16()
		if err != nil {
			return nil, err
		}
		x, err := r.readU16()
		if err != nil {
			return nil, err
		}
		y, err := r.readU16()
		if err != nil {
			return nil, err
		}
		actors = append(actors, rawActor{ID: id, X: int(x), Y: int(y)})
	}
	return actors, nil
}

func decodeExtraMaskedTileBits(r *leReader, tileCount int) ([]byte, error) {
	compressedSize, err := r.readU16()
	if err != nil {
		return nil, err
	}
	blob, err := r.bytes(int(compressedSize))
	if err != nil {
		return nil, err
	}
	outLen := (tileCount + 3) / 4
	return DecompressRLE(blob, outLen)
}

// extraBitsAt returns the 2-bit masked-tile extension for cell (x,y),
// packed 4-per-byte, shifted into position 5 for direct OR-ing with the
// 5-bit masked index (spec §4.1 step 5).
func extraBitsAt(extraBits []byte, x, y, width int) uint16 {
	index := x/4 + y*(width/4)
	if index < 0 || index >= len(extraBits) {
		return 0
	}
	pack := extraBits[index]
	shift := uint((x % 4) * 2)
	bits := (pack >> shift) & 0x03
	return uint16(bits) << 5
}

func decodeTileData(r *leReader, m *worldmap.Map, width, height int, extraBits []byte, tiles *tileset.TileSet) error {
	solidTileCount := tiles.SolidCount()
	totalTileCount := tiles.Count()

	checkIndex := func(index int) error {
		if index < 0 || index >= totalTileCount {
			return engineerr.New(engineerr.InvariantViolation, "levelformat",
				"decoded tile index does not reference a valid tileset entry")
		}
		return nil
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w, err := r.readU16()
			if err != nil {
				return err
			}

			if w&0x8000 != 0 {
				solidIndex := int(w & 0x3FF)
				maskedIndex := int((w >> 10) & 0x1F)
				maskedIndex |= int(extraBitsAt(extraBits, x, y, width))
				maskedIndex += solidTileCount

				if err := checkIndex(solidIndex); err != nil {
					return err
				}
				if err := checkIndex(maskedIndex); err != nil {
					return err
				}

				m.SetTile(worldmap.LayerSolid, x, y, solidIndex)
				m.SetTile(worldmap.LayerMasked, x, y, maskedIndex)
				continue
			}

			rawIndex := int(w) / 8
			index := rawIndex
			if rawIndex >= solidTileCount {
				index = (rawIndex-solidTileCount)/5 + solidTileCount
			}
			if err := checkIndex(index); err != nil {
				return err
			}
			m.SetTile(worldmap.LayerSolid, x, y, index)
		}
	}
	return nil
}
