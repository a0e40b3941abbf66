package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "nexar/internal/infrastructure/websocket"
	"nexar/pkg/errors"
	"nexar/pkg/response"
)

type WebSocketHandler struct {
	hub *ws.Hub
}

var webSocketHandler *WebSocketHandler

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the frontend origin
	},
}

func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

func SetupWebSocketHandler(hub *ws.Hub) {
	webSocketHandler = NewWebSocketHandler(hub)
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

// HandleWebSocket upgrades the connection and registers the client for
// live notifications. Requires a uid set by the auth middleware.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	userID, ok := c.Get("uid").(string)
	if !ok || userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to upgrade connection", err))
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.hub.Register <- client

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}
