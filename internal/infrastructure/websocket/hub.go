package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"nexar/pkg/logger"
)

// Client represents one connected user.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub tracks active connections, keyed by auth uid. It exists only to push
// best-effort "message.new" notifications; the message rows in the store
// remain the source of truth.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the hub's bookkeeping loop until the context is cancelled.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.UserID] = client
				h.mutex.Unlock()
				logger.Debug("WebSocket client registered: %s", client.UserID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client.UserID]; ok {
					delete(h.clients, client.UserID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("WebSocket client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// NotifyUser pushes an event to the user if connected. Payloads to absent or
// slow clients are dropped; delivery is advisory.
func (h *Hub) NotifyUser(userID, event string, payload interface{}) {
	h.mutex.RLock()
	client, ok := h.clients[userID]
	h.mutex.RUnlock()

	if !ok {
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"payload": payload,
	})
	if err != nil {
		logger.Error("Failed to marshal websocket event: %v", err)
		return
	}

	select {
	case client.Send <- data:
	default:
	}
}

// ReadPump drains the connection until it closes, then unregisters.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error: %v", err)
			}
			break
		}
	}
}

// WritePump forwards queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
