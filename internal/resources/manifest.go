package resources

// Manifest is the data-driven table that tells the loader where every
// named asset lives and how to interpret it (spec §6 "Resource loader
// provides: tileset/backdrop/sprite images ... sound and music clips").
// It is YAML, matching internal/rules' ParseYAML/LoadYAML convention
// (gopkg.in/yaml.v3), rather than being hard-coded in Go.
type Manifest struct {
	Tilesets map[string]TilesetEntry `yaml:"tilesets"`
	Sprites  map[string]SpriteEntry  `yaml:"sprites"`
	Levels   map[string]string       `yaml:"levels"`
	Sounds   map[string]string       `yaml:"sounds"`
	Music    map[string]string       `yaml:"music"`

	// Rules optionally maps a level name to a rules.RuleSet YAML sidecar
	// (switch/door/dynamic-geometry wiring, spec §4.6). A level absent from
	// this table simply loads with no rules.
	Rules map[string]string `yaml:"rules,omitempty"`

	// DrawOrder lists actor IDs in the fixed draw-order spec §4.1 calls
	// for ("Surviving actors are stable-sorted by a resource-provided
	// draw index"). An actor ID absent from this list sorts after every
	// listed one; absent actors are ordered among themselves by actor ID,
	// and keep file order only relative to actors with the same ID.
	DrawOrder []uint16 `yaml:"draw_order"`

	// ActorNames maps a raw level-file actor ID to the recipe name
	// internal/entityfactory's Factory.Spawn expects. The level format
	// only knows numeric IDs; entityfactory only knows recipe names, and
	// this manifest is the one place that bridges them.
	ActorNames map[uint16]string `yaml:"actor_names"`
}

// TilesetEntry describes one loadable tileset image plus its parallel
// per-tile attribute words (spec §6 "Collision attribute bits").
type TilesetEntry struct {
	Image      string   `yaml:"image"`
	TileWidth  int      `yaml:"tile_width"`
	TileHeight int      `yaml:"tile_height"`
	Attributes []uint16 `yaml:"attributes"`
	SolidCount int      `yaml:"solid_count"`
}

// SpriteEntry describes one actor's sprite sheet: a single image cut into
// fixed-size frames left to right, top to bottom (matching
// internal/assets.Sheet's slicing order).
type SpriteEntry struct {
	Image       string `yaml:"image"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
}
