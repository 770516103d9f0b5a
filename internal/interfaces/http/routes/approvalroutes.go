package routes

import (
	"github.com/gin-gonic/gin"

	approvalhandlers "deskflow/internal/interfaces/http/handlers/approval"
	"deskflow/internal/interfaces/http/middleware"
)

type ApprovalRouteConfig struct {
	ApprovalHandler      *approvalhandlers.ApprovalHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupApprovalRoutes(engine *gin.Engine, config *ApprovalRouteConfig) {
	approvals := engine.Group("/approvals")
	approvals.Use(config.AuthMiddleware.RequireAuth())
	{
		approvals.POST("",
			config.PermissionMiddleware.RequirePermission("approval", "create"),
			config.ApprovalHandler.CreateApproval)
		approvals.GET("", config.ApprovalHandler.ListApprovals)
	}
}
