package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of connected clients and routes notification
// payloads to them. One client per user; a new connection for the same
// user replaces the old one.
type Hub struct {
	clients map[uint]*Client
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
}

// NewHub creates a hub ready to Run
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]*Client),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
	}
}

// Run processes register/unregister events. Call in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.userID]; ok {
				old.closeSend()
			}
			h.clients[client.userID] = client
			h.mu.Unlock()
			log.Printf("📡 User %d connected for notifications", client.userID)

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.userID]; ok && current == client {
				delete(h.clients, client.userID)
			}
			h.mu.Unlock()
			client.closeSend()
			log.Printf("📡 User %d disconnected from notifications", client.userID)
		}
	}
}

// SendToUser delivers a payload to a user's open connection if there is one.
// Returns false when the user is not connected or the payload could not be
// queued. Messages to a full or already-replaced connection are dropped;
// clients recover missed pushes by polling.
func (h *Hub) SendToUser(userID uint, payload interface{}) bool {
	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("⚠️ Failed to marshal push payload for user %d: %v", userID, err)
		return false
	}

	return client.trySend(data)
}

// ConnectedUsers returns how many users currently hold a connection
func (h *Hub) ConnectedUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
