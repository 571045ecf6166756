package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans events out to the websocket connections of a restaurant.
// Delivery is best effort: a dead connection is dropped, never retried.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*websocket.Conn]bool)}
}

func (h *Hub) Register(restaurantID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[restaurantID] == nil {
		h.conns[restaurantID] = make(map[*websocket.Conn]bool)
	}
	h.conns[restaurantID][conn] = true
}

func (h *Hub) Unregister(restaurantID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns[restaurantID], conn)
	if len(h.conns[restaurantID]) == 0 {
		delete(h.conns, restaurantID)
	}
	_ = conn.Close()
}

// Broadcast sends payload as JSON to every open connection of the
// restaurant. Connections that fail to write are unregistered.
func (h *Hub) Broadcast(restaurantID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("BROADCAST_MARSHAL_FAILED restaurant=%s err=%v", restaurantID, err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns[restaurantID]))
	for conn := range h.conns[restaurantID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.Unregister(restaurantID, conn)
		}
	}
}

// ConnectionCount reports open connections for a restaurant.
func (h *Hub) ConnectionCount(restaurantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[restaurantID])
}
