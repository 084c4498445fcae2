package location

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans live-location updates out to websocket subscribers, keyed by
// booking. A subscriber whose write fails is dropped on the spot.
type Hub struct {
	subscribers map[int64]map[*websocket.Conn]bool
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Subscribe(bookingID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.subscribers[bookingID] == nil {
		h.subscribers[bookingID] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[bookingID][conn] = true
}

func (h *Hub) Unsubscribe(bookingID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, exists := h.subscribers[bookingID]; exists {
		if conns[conn] {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.subscribers, bookingID)
		}
	}
}

// Broadcast pushes the message to every subscriber of the booking and
// returns how many received it.
func (h *Hub) Broadcast(bookingID int64, message interface{}) int {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[bookingID]))
	for conn := range h.subscribers[bookingID] {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	sent := 0
	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unsubscribe(bookingID, conn)
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) SubscriberCount(bookingID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers[bookingID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for bookingID, conns := range h.subscribers {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.subscribers, bookingID)
	}
}
