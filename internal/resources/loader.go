// Package resources implements the spec §6 resource loader: the OS
// filesystem-backed service that turns named assets (tilesets, sprite
// sheets, levels, sound and music clips) into the in-memory types the
// rest of the simulation consumes. It is grounded on the teacher's
// internal/assets package (FS/SubFS OS-filesystem access,
// image.Decode-based PNG loading) generalized from ebiten-image loading
// to the broader asset surface spec §6 describes, plus a YAML manifest
// following internal/rules' ParseYAML/gopkg.in/yaml.v3 convention for the
// data-driven tables (draw order, actor-ID-to-recipe-name) that have no
// analogue in the teacher.
//
// Resources never constructs an *ebiten.Image itself: tileset.New and the
// sprite frame-size lookups below work against the standard image.Image,
// so this package stays usable from plain unit tests without an ebiten
// graphics driver. internal/render is responsible for turning the raw
// image bytes this package exposes into GPU-backed images.
package resources

import (
	"bytes"
	"image"
	_ "image/png"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shadowledge/ledgerun/internal/engineerr"
	"github.com/shadowledge/ledgerun/internal/levelformat"
	"github.com/shadowledge/ledgerun/internal/tileset"
)

// ManifestName is the fixed filename Load reads off fsys's root.
const ManifestName = "manifest.yaml"

// sheetInfo is the decoded geometry of one sprite sheet, cached after the
// first lookup so repeated FrameSize/FrameCount calls avoid re-decoding.
type sheetInfo struct {
	entry         SpriteEntry
	sheetW, sheetH int
}

// Loader is the concrete, OS-filesystem-backed resource loader. It
// implements sound.Clips and supplies the callbacks
// internal/levelformat.SortByDrawIndex and internal/entityfactory need.
type Loader struct {
	fsys     fs.FS
	manifest Manifest

	tilesets map[string]*tileset.TileSet
	sheets   map[string]sheetInfo
}

// Load reads and parses manifest.yaml from fsys and returns a ready
// Loader. fsys is typically assets.FS() or an fs.Sub of it.
func Load(fsys fs.FS) (*Loader, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return nil, engineerr.Wrap(engineerr.MissingAsset, "resources",
			"cannot read "+ManifestName, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, engineerr.Wrap(engineerr.MalformedResource, "resources",
			"cannot parse "+ManifestName, err)
	}
	return &Loader{
		fsys:     fsys,
		manifest: m,
		tilesets: make(map[string]*tileset.TileSet),
		sheets:   make(map[string]sheetInfo),
	}, nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, engineerr.Wrap(engineerr.MissingAsset, "resources",
			"cannot read "+path, err)
	}
	return data, nil
}

func (l *Loader) decodeImage(path string) (image.Image, error) {
	raw, err := l.readFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, engineerr.Wrap(engineerr.MalformedResource, "resources",
			"cannot decode image "+path, err)
	}
	return img, nil
}

// Tileset resolves name to a loaded *tileset.TileSet, decoding and
// caching it on first use.
func (l *Loader) Tileset(name string) (*tileset.TileSet, error) {
	if ts, ok := l.tilesets[name]; ok {
		return ts, nil
	}
	entry, ok := l.manifest.Tilesets[name]
	if !ok {
		return nil, engineerr.New(engineerr.MissingAsset, "resources",
			"unknown tileset "+name)
	}
	img, err := l.decodeImage(entry.Image)
	if err != nil {
		return nil, err
	}
	attrs := make([]tileset.Attributes, len(entry.Attributes))
	for i, a := range entry.Attributes {
		attrs[i] = tileset.Attributes(a)
	}
	ts, err := tileset.New(img, entry.TileWidth, entry.TileHeight, attrs, entry.SolidCount)
	if err != nil {
		return nil, err
	}
	l.tilesets[name] = ts
	return ts, nil
}

// LoadLevel reads the named level file and decodes it, first using
// levelformat.PeekHeader to resolve and load the tileset the level
// names, then handing the same bytes to levelformat.Decode. This is the
// reason PeekHeader exists: Decode needs an already-loaded tileset, but
// the tileset name only becomes known by parsing the header.
func (l *Loader) LoadLevel(name string, difficulty levelformat.Difficulty) (*levelformat.LevelData, error) {
	path, ok := l.manifest.Levels[name]
	if !ok {
		return nil, engineerr.New(engineerr.MissingAsset, "resources",
			"unknown level "+name)
	}
	raw, err := l.readFile(path)
	if err != nil {
		return nil, err
	}
	header, err := levelformat.PeekHeader(raw)
	if err != nil {
		return nil, err
	}
	ts, err := l.Tileset(strings.TrimSpace(header.TilesetName))
	if err != nil {
		return nil, err
	}
	return levelformat.Decode(raw, ts, difficulty)
}

// RuleSetBytes returns the raw YAML bytes of levelName's rule sidecar, and
// false if the manifest declares no rules for that level (not every level
// needs switch/door/dynamic-geometry rules).
func (l *Loader) RuleSetBytes(levelName string) ([]byte, bool, error) {
	path, ok := l.manifest.Rules[levelName]
	if !ok {
		return nil, false, nil
	}
	data, err := l.readFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// DrawIndex matches levelformat.SortByDrawIndex's callback signature.
// Actor IDs absent from the manifest's draw_order table sort after every
// listed ID, in a stable, arbitrary-but-fixed order derived from the ID
// itself so unlisted actors never interleave nondeterministically.
func (l *Loader) DrawIndex(actorID uint16) int {
	for i, id := range l.manifest.DrawOrder {
		if id == actorID {
			return i
		}
	}
	return len(l.manifest.DrawOrder) + int(actorID)
}

// ActorName resolves a raw level-file actor ID to the recipe name
// internal/entityfactory's Factory.Spawn expects.
func (l *Loader) ActorName(actorID uint16) (string, bool) {
	name, ok := l.manifest.ActorNames[actorID]
	return name, ok
}

func (l *Loader) sheet(spriteID string) (sheetInfo, error) {
	if s, ok := l.sheets[spriteID]; ok {
		return s, nil
	}
	entry, ok := l.manifest.Sprites[spriteID]
	if !ok {
		return sheetInfo{}, engineerr.New(engineerr.MissingAsset, "resources",
			"unknown sprite "+spriteID)
	}
	img, err := l.decodeImage(entry.Image)
	if err != nil {
		return sheetInfo{}, err
	}
	bounds := img.Bounds()
	s := sheetInfo{entry: entry, sheetW: bounds.Dx(), sheetH: bounds.Dy()}
	l.sheets[spriteID] = s
	return s, nil
}

// FrameSize returns the pixel width/height of spriteID's frames, which
// internal/render uses to slice the sheet into frames. No bounding box is
// derived from it: an entity whose recipe leaves Width/Height at zero gets
// no BoundingBox.
func (l *Loader) FrameSize(spriteID string) (width, height int, err error) {
	s, err := l.sheet(spriteID)
	if err != nil {
		return 0, 0, err
	}
	return s.entry.FrameWidth, s.entry.FrameHeight, nil
}

// FrameCount returns how many frames spriteID's sheet is sliced into.
func (l *Loader) FrameCount(spriteID string) (int, error) {
	s, err := l.sheet(spriteID)
	if err != nil {
		return 0, err
	}
	if s.entry.FrameWidth == 0 || s.entry.FrameHeight == 0 {
		return 0, nil
	}
	cols := s.sheetW / s.entry.FrameWidth
	rows := s.sheetH / s.entry.FrameHeight
	return cols * rows, nil
}

// SheetImageBytes returns the raw encoded image bytes backing spriteID's
// sheet, for internal/render to decode into a GPU-backed image.
func (l *Loader) SheetImageBytes(spriteID string) ([]byte, error) {
	entry, ok := l.manifest.Sprites[spriteID]
	if !ok {
		return nil, engineerr.New(engineerr.MissingAsset, "resources",
			"unknown sprite "+spriteID)
	}
	return l.readFile(entry.Image)
}

// SoundBytes implements sound.Clips.
func (l *Loader) SoundBytes(id string) ([]byte, error) {
	path, ok := l.manifest.Sounds[id]
	if !ok {
		return nil, engineerr.New(engineerr.MissingAsset, "resources",
			"unknown sound "+id)
	}
	return l.readFile(path)
}

// MusicBytes implements sound.Clips.
func (l *Loader) MusicBytes(name string) ([]byte, error) {
	path, ok := l.manifest.Music[name]
	if !ok {
		return nil, engineerr.New(engineerr.MissingAsset, "resources",
			"unknown music "+name)
	}
	return l.readFile(path)
}
