package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.GET("", messageHandler.List)
	messages.POST("", messageHandler.Send)
	messages.PUT("/:id/read", messageHandler.MarkRead)
}
