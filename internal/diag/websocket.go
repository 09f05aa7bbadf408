package diag

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// snapshotInterval is how often the hub pushes a fresh Snapshot to every
// connected client.
const snapshotInterval = 200 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 512,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub broadcasts periodic world.Snapshot updates to every connected debug
// client, grounded on the teacher pack's WebSocketHub (register/
// unregister channels plus a map of live connections) with the
// leaderboard/ragdoll-specific broadcast payload replaced by Snapshot.
type Hub struct {
	source Source

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}

	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	stop       chan struct{}
}

// NewHub creates a hub that will broadcast src's snapshots once Run is
// started.
func NewHub(src Source) *Hub {
	return &Hub{
		source:     src,
		clients:    make(map[*websocket.Conn]struct{}),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		stop:       make(chan struct{}),
	}
}

// Run drives the registration loop and the periodic broadcast ticker.
// Call it in its own goroutine; it returns when Stop is called.
func (h *Hub) Run() {
	ticker := time.NewTicker(snapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = struct{}{}
			n := len(h.clients)
			h.mu.Unlock()
			updateWSConnections(n)

		case conn := <-h.unregister:
			h.mu.Lock()
			delete(h.clients, conn)
			n := len(h.clients)
			h.mu.Unlock()
			updateWSConnections(n)
			_ = conn.Close()

		case <-ticker.C:
			h.broadcast()

		case <-h.stop:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.Close()
			}
			h.clients = make(map[*websocket.Conn]struct{})
			h.mu.Unlock()
			return
		}
	}
}

// Stop ends the broadcast loop and closes every connected client.
func (h *Hub) Stop() { close(h.stop) }

func (h *Hub) broadcast() {
	payload, err := json.Marshal(h.source.Snapshot())
	if err != nil {
		log.Printf("[diag] snapshot marshal failed: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

// HandleWS upgrades an HTTP request to a WebSocket connection and
// registers it for broadcast. Mount at e.g. "/ws".
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[diag] websocket upgrade failed: %v", err)
		return
	}
	h.register <- conn

	// Drain and discard anything the client sends; this is a push-only
	// feed. Reading is required so ping/pong control frames and the
	// client's close frame are still processed.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
