package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("", reviewHandler.Create)
}
