package routes

import (
	"github.com/gin-gonic/gin"

	referencehandlers "deskflow/internal/interfaces/http/handlers/reference"
	"deskflow/internal/interfaces/http/middleware"
)

type ReferenceRouteConfig struct {
	ReferenceHandler     *referencehandlers.ReferenceHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReferenceRoutes(engine *gin.Engine, config *ReferenceRouteConfig) {
	requireWrite := config.PermissionMiddleware.RequirePermission("reference", "create")
	requireUpdate := config.PermissionMiddleware.RequirePermission("reference", "update")
	requireDelete := config.PermissionMiddleware.RequirePermission("reference", "delete")

	companies := engine.Group("/companies")
	companies.Use(config.AuthMiddleware.RequireAuth())
	{
		companies.GET("", config.ReferenceHandler.ListCompanies)
		companies.POST("", requireWrite, config.ReferenceHandler.CreateCompany)
		companies.PUT("/:id", requireUpdate, config.ReferenceHandler.RenameCompany)
		companies.DELETE("/:id", requireDelete, config.ReferenceHandler.DeleteCompany)
	}

	departments := engine.Group("/departments")
	departments.Use(config.AuthMiddleware.RequireAuth())
	{
		departments.GET("", config.ReferenceHandler.ListDepartments)
		departments.POST("", requireWrite, config.ReferenceHandler.CreateDepartment)
		departments.PUT("/:id", requireUpdate, config.ReferenceHandler.RenameDepartment)
		departments.DELETE("/:id", requireDelete, config.ReferenceHandler.DeleteDepartment)
	}

	designations := engine.Group("/designations")
	designations.Use(config.AuthMiddleware.RequireAuth())
	{
		designations.GET("", config.ReferenceHandler.ListDesignations)
		designations.POST("", requireWrite, config.ReferenceHandler.CreateDesignation)
		designations.DELETE("/:id", requireDelete, config.ReferenceHandler.DeleteDesignation)
	}

	priorities := engine.Group("/priorities")
	priorities.Use(config.AuthMiddleware.RequireAuth())
	{
		priorities.GET("", config.ReferenceHandler.ListPriorities)
		priorities.POST("", requireWrite, config.ReferenceHandler.CreatePriority)
		priorities.DELETE("/:id", requireDelete, config.ReferenceHandler.DeletePriority)
	}
}
