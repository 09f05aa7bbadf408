// Command game is the playable entrypoint: it loads a Config, boots a
// resources.Loader over the assets directory, constructs a World for the
// configured level and difficulty, wraps it in a world.Scene, and runs
// internal/app's ebiten game loop. If DiagAddr is set it also starts the
// internal/diag debug server alongside the window.
package main

import (
	"context"
	"log"

	"github.com/shadowledge/ledgerun/internal/app"
	"github.com/shadowledge/ledgerun/internal/diag"
	"github.com/shadowledge/ledgerun/internal/entityfactory"
	"github.com/shadowledge/ledgerun/internal/levelformat"
	"github.com/shadowledge/ledgerun/internal/resources"
	"github.com/shadowledge/ledgerun/internal/world"
)

func main() {
	cfg := app.DefaultConfig()
	if path := configPathFromEnv(); path != "" {
		loaded, err := app.LoadConfig(path)
		if err != nil {
			log.Fatalf("[world] config load failed: %v", err)
		}
		cfg = loaded
	}

	loader, err := resources.Load(resourcesFS(cfg.AssetsDir))
	if err != nil {
		log.Fatalf("[loader] %v", err)
	}

	w, err := world.New(loader, entityfactory.DefaultRecipes(), cfg.Level,
		levelformat.Difficulty(cfg.Difficulty), cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		log.Fatalf("[loader] level load failed: %v", err)
	}

	if cfg.DiagAddr != "" {
		server := diag.NewServer(diag.Config{Addr: cfg.DiagAddr, Source: w, MinimapSource: w})
		server.Start()
		defer server.Stop(context.Background())
	}

	game := app.New(cfg)
	game.SetScene(world.NewScene(w, cfg.WindowWidth, cfg.WindowHeight))

	if err := game.Run(); err != nil {
		log.Fatalf("[world] %v", err)
	}
}
