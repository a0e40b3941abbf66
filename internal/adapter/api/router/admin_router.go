package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/listings", adminHandler.ListListings)
	admin.PUT("/listings/:id/status", adminHandler.SetListingStatus)
	admin.PUT("/listings/:id/feature", adminHandler.SetListingFeatured)
	admin.DELETE("/listings/:id", adminHandler.DeleteListing)
	admin.PUT("/profiles/:id/verify", adminHandler.VerifyProfile)
}
