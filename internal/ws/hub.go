// Package ws fans layout events out to connected websocket clients.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/mv-archer/repoworld-engine/internal/protocol"
)

// Hub tracks subscriber connections and broadcasts event envelopes.
// Dead connections are dropped on the first failed write.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	sequence uint64
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// ClientCount returns the number of live subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish wraps payload in a sequenced envelope and broadcasts it.
func (h *Hub) Publish(eventType string, payload any) error {
	h.mu.Lock()
	h.sequence++
	env := protocol.EventEnvelope{Sequence: h.sequence, Type: eventType, Payload: payload}
	h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	h.Broadcast(data)
	return nil
}

// Broadcast writes message to every subscriber.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}
