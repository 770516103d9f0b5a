package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "deskflow/internal/interfaces/http/handlers/user"
	"deskflow/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler          *userhandlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.POST("",
			config.PermissionMiddleware.RequirePermission("user", "create"),
			config.UserHandler.CreateUser)
	}
}
