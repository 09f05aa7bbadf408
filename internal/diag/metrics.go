// Package diag is the ambient observability surface for a running
// simulation: Prometheus metrics, a localhost-only HTTP/WebSocket debug
// server, and a top-down minimap PNG renderer independent of the real
// Renderer interface internal/render implements. None of this is part of
// the playable core (spec §1 lists UI/tooling as external collaborators);
// it exists so the engine can be observed the way the teacher pack's
// iamvalenciia-kick-game-stream repo observes its own game loop.
package diag

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are bounded-cardinality gauges/histograms (no per-entity
// labels, mirroring the teacher's "no per-player labels to prevent DoS"
// rule) describing one running World.
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sim_tick_duration_seconds",
		Help:    "Time spent in one fixed-step simulation tick.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.02, 0.05},
	})

	entityCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_entity_count",
		Help: "Currently alive entities in the world's registry.",
	})

	particleCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_particle_count",
		Help: "Currently alive particle/score-floater entities.",
	})

	score = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_player_score",
		Help: "Current player score.",
	})

	wsConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "diag_websocket_connections_active",
		Help: "Currently active debug WebSocket connections.",
	})
)

// RecordTick observes how long a Tick call took.
func RecordTick(d time.Duration) { tickDuration.Observe(d.Seconds()) }

// UpdateWorldGauges refreshes the per-world gauges from a fresh Snapshot.
func UpdateWorldGauges(s Snapshot) {
	entityCount.Set(float64(s.EntityCount))
	particleCount.Set(float64(s.ParticleCount))
	score.Set(float64(s.Score))
}

func updateWSConnections(n int) { wsConnectionsActive.Set(float64(n)) }
