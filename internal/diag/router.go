package diag

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the dependencies NewRouter wires into routes. The
// zero value is unusable; Source is required.
type RouterConfig struct {
	// Source is required: backs /state and the gauge refresh /metrics
	// reads from.
	Source Source
	// MinimapSource is optional; when set, /minimap.png is registered.
	MinimapSource MapSource
	// CORSOrigins defaults to localhost-only, matching the teacher's
	// "never expose the debug server" posture.
	CORSOrigins []string
}

// NewRouter builds the debug HTTP router. It has no side effects — no
// goroutines, no listeners — so it's safe to exercise with
// httptest.NewServer in tests, the same contract the teacher pack's
// api.NewRouter documents.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		snap := cfg.Source.Snapshot()
		UpdateWorldGauges(snap)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	})

	r.Handle("/metrics", promhttp.Handler())

	if cfg.MinimapSource != nil {
		r.Get("/minimap.png", func(w http.ResponseWriter, r *http.Request) {
			png, err := RenderMinimap(cfg.MinimapSource)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(png)
		})
	}

	return r
}
