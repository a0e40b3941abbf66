package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", favoriteHandler.List)
	favorites.GET("/:listingId", favoriteHandler.Check)
	favorites.POST("/:listingId/toggle", favoriteHandler.Toggle)
}
