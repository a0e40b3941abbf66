package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	webSocketHandler := handler.GetWebSocketHandler()

	e.GET("/ws", webSocketHandler.HandleWebSocket, authMiddleware.Authenticate)
}
