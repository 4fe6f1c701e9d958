package mapserver

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 3 * time.Second

// Hub tracks websocket subscribers and fans generated snapshots out to
// them. Connections that fail a write are closed and dropped.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[*websocket.Conn]struct{})}
}

// Add registers a subscriber connection.
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.subscribers[conn] = struct{}{}
	h.mu.Unlock()
}

// Remove unregisters a subscriber connection.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.subscribers, conn)
	h.mu.Unlock()
}

// Count returns the number of active subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Broadcast writes the message to every subscriber with a per-write
// timeout.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.subscribers {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.subscribers, conn)
		}
	}
	h.mu.Unlock()
}
