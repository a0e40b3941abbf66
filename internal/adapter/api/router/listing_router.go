package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	e.GET("/v1/listings", listingHandler.ListListings)
	e.GET("/v1/listings/search", listingHandler.SearchListings)
	// Optional auth so the view counter can tell owners from visitors.
	e.GET("/v1/listings/:id", listingHandler.GetListing, authMiddleware.OptionalAuthenticate)

	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.GET("", listingHandler.ListMyListings)
	myListings.POST("", listingHandler.CreateListing)
	myListings.PUT("/:id", listingHandler.UpdateListing)
	myListings.PUT("/:id/status", listingHandler.SetListingStatus)
	myListings.DELETE("/:id", listingHandler.DeleteListing)
}
