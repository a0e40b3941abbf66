package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimiter *middleware.RateLimiter) {
	SetupAuthRouter(e, authMiddleware, rateLimiter)
	SetupListingRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupRepairRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupWebSocketRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
