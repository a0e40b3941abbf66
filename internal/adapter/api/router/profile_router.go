package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()
	citiesHandler := handler.GetCitiesHandler()

	e.GET("/v1/profiles/:id", profileHandler.GetProfile)
	e.GET("/v1/profiles/:id/reviews", profileHandler.ListProfileReviews)
	e.GET("/v1/cities", citiesHandler.Suggest)

	profile := e.Group("/v1/profile")
	profile.Use(authMiddleware.Authenticate)
	profile.GET("", profileHandler.GetOwnProfile)
	profile.PUT("", profileHandler.UpdateProfile)
	profile.POST("/avatar", profileHandler.UploadAvatar)
}
