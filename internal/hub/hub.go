// Package hub fans out live activity events to connected administrators.
package hub

import (
	"encoding/json"
	"sync"
	"time"
)

// Event types published on the activity feed.
const (
	EventRatingSaved    = "rating.saved"
	EventRatingDeleted  = "rating.deleted"
	EventRankingSaved   = "ranking.saved"
	EventRankingDeleted = "ranking.deleted"
	EventCatalogChanged = "catalog.changed"
	EventSyncFailed     = "catalog.sync_failed"
	EventUserChanged    = "user.changed"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

// Client is a single subscriber. The SSE handler drains it until it is closed.
type Client chan []byte

// Hub manages the activity subscribers.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

// Subscribe registers a new client with the given buffer size.
func (h *Hub) Subscribe(buffer int) Client {
	client := make(Client, buffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	return client
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Subscribers returns the number of connected clients.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends an event to every client. A nil hub drops the event.
func (h *Hub) Publish(eventType string, payload any) {
	if h == nil {
		return
	}

	messageBytes, err := json.Marshal(Event{Type: eventType, At: time.Now().UTC(), Payload: payload})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		// Slow clients miss events rather than block the publisher.
		select {
		case client <- messageBytes:
		default:
		}
	}
}
