package routes

import (
	"github.com/gin-gonic/gin"

	statushandlers "deskflow/internal/interfaces/http/handlers/status"
	"deskflow/internal/interfaces/http/middleware"
)

type StatusRouteConfig struct {
	StatusHandler        *statushandlers.StatusHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupStatusRoutes(engine *gin.Engine, config *StatusRouteConfig) {
	statuses := engine.Group("/statuses")
	statuses.Use(config.AuthMiddleware.RequireAuth())
	{
		statuses.GET("", config.StatusHandler.ListStatuses)
		statuses.POST("",
			config.PermissionMiddleware.RequirePermission("status", "create"),
			config.StatusHandler.CreateStatus)
		statuses.PUT("/:id",
			config.PermissionMiddleware.RequirePermission("status", "update"),
			config.StatusHandler.UpdateStatus)
		statuses.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission("status", "delete"),
			config.StatusHandler.DeleteStatus)
	}
}
