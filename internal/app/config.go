// Package app provides the main application structure and scene management.
package app

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shadowledge/ledgerun/internal/engineerr"
	"github.com/shadowledge/ledgerun/internal/levelformat"
)

// Config holds application configuration settings. Beyond the window
// geometry the teacher carried, it also names the starting difficulty,
// the asset/level paths the outer application needs to boot a World, and
// an optional diag address (SPEC_FULL's "Configuration" ambient stack
// section) — loadable from a YAML file the same way internal/rules loads
// its rule files (gopkg.in/yaml.v3). The simulation rate is not part of
// Config; it is internal/time's TargetFPS constant.
type Config struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	DebugMode    bool   `yaml:"debug_mode"`

	AssetsDir  string `yaml:"assets_dir"`
	Level      string `yaml:"level"`
	Difficulty int    `yaml:"difficulty"`

	// DiagAddr, when non-empty, starts internal/diag's debug HTTP/
	// WebSocket server on this address. Empty disables it.
	DiagAddr string `yaml:"diag_addr"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  640,
		WindowHeight: 360,
		WindowTitle:  "Game",
		DebugMode:    false,
		AssetsDir:    "assets",
		Level:        "level1",
		Difficulty:   int(levelformat.DifficultyMedium),
	}
}

// LoadConfig reads a YAML config file, starting from DefaultConfig's
// values so a partial file only overrides what it names.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, engineerr.Wrap(engineerr.MissingAsset, "app", "cannot read config file", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, engineerr.Wrap(engineerr.MalformedResource, "app", "cannot parse config file", err)
	}
	return cfg, nil
}
