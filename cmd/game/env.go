package main

import (
	"io/fs"
	"os"
)

// configPathFromEnv names an optional YAML config file via $GAME_CONFIG,
// so the window/level/diag settings can be overridden without a
// recompile (e.g. for a packaged build's launcher script).
func configPathFromEnv() string {
	return os.Getenv("GAME_CONFIG")
}

// resourcesFS roots the resource loader at dir on the OS filesystem.
func resourcesFS(dir string) fs.FS {
	return os.DirFS(dir)
}
