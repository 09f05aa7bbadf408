package diag

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Server bundles the debug HTTP router and WebSocket hub for one running
// World. Construction has no side effects; Start opens the one listener
// and the one background goroutine this package ever runs, mirroring the
// teacher pack's "NewServer does not start workers, Start does" contract
// so tests can build a Server and hit its Router() without a live socket.
type Server struct {
	http *http.Server
	hub  *Hub
}

// DefaultAddr is the bind address used when Config.Addr is empty.
// Debug endpoints carry unthrottled per-tick internals and must never be
// exposed beyond the local machine.
const DefaultAddr = "127.0.0.1:8086"

// Config configures NewServer.
type Config struct {
	// Addr defaults to DefaultAddr (localhost-only) if empty.
	Addr string
	// Source is required.
	Source Source
	// MinimapSource is optional; enables /minimap.png.
	MinimapSource MapSource
}

// NewServer builds a Server; it does not yet listen or broadcast.
func NewServer(cfg Config) *Server {
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	hub := NewHub(cfg.Source)
	router := NewRouter(RouterConfig{Source: cfg.Source, MinimapSource: cfg.MinimapSource})
	router.Get("/ws", hub.HandleWS)

	return &Server{
		http: &http.Server{Addr: addr, Handler: router},
		hub:  hub,
	}
}

// Start launches the broadcast loop and the HTTP listener in background
// goroutines and returns immediately. Errors from the listener (other
// than a clean Shutdown) are logged, not returned, since by the time one
// occurs the caller has already moved on to running the game loop.
func (s *Server) Start() {
	go s.hub.Run()
	go func() {
		log.Printf("[diag] debug server listening on %s (/healthz, /state, /metrics, /ws, /minimap.png)", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[diag] debug server error: %v", err)
		}
	}()
}

// Stop gracefully shuts down the listener and the broadcast loop.
func (s *Server) Stop(ctx context.Context) {
	s.hub.Stop()
	shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		log.Printf("[diag] shutdown error: %v", err)
	}
}
