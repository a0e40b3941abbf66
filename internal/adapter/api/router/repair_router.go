package router

import (
	"github.com/labstack/echo/v4"

	"nexar/internal/adapter/api/handler"
	"nexar/internal/adapter/api/middleware"
)

func SetupRepairRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	repairHandler := handler.GetRepairHandler()

	e.GET("/v1/repair/connection", repairHandler.CheckConnection)

	protected := e.Group("/v1/repair")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/profile", repairHandler.RepairProfile)
}
