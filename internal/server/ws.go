package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ayusman/poseview/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// LandmarksHandler broadcasts the latest landmark frame and FPS to
// WebSocket clients once per broadcast tick.
type LandmarksHandler struct {
	feed    *view.Feed
	clients map[string]*websocket.Conn
	mu      sync.RWMutex
}

// NewLandmarksHandler creates a handler broadcasting from the render feed.
func NewLandmarksHandler(feed *view.Feed) *LandmarksHandler {
	h := &LandmarksHandler{
		feed:    feed,
		clients: make(map[string]*websocket.Conn),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LandmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()

	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast pushes landmark data to all connected clients.
func (h *LandmarksHandler) broadcast() {
	ticker := time.NewTicker(33 * time.Millisecond) // ~30 FPS
	defer ticker.Stop()

	for range ticker.C {
		h.mu.RLock()
		idle := len(h.clients) == 0
		h.mu.RUnlock()
		if idle {
			continue
		}

		lf := h.feed.Landmarks()
		if lf == nil {
			continue
		}

		msg, _ := json.Marshal(map[string]any{
			"groups":    lf.Groups,
			"fps":       h.feed.FPS(),
			"timestamp": time.Now().UnixMilli(),
		})

		h.mu.RLock()
		for _, conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
