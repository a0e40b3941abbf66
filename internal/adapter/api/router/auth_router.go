package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	public := e.Group("/v1/auth")
	public.Use(rateLimiter.RateLimitMiddleware())
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.POST("/reset-password", authHandler.ResetPassword)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/logout", authHandler.Logout)
	protected.PUT("/password", authHandler.UpdatePassword)
}
