package routes

import (
	"github.com/gin-gonic/gin"

	workanalysishandlers "deskflow/internal/interfaces/http/handlers/workanalysis"
	workloghandlers "deskflow/internal/interfaces/http/handlers/worklog"
	"deskflow/internal/interfaces/http/middleware"
)

type WorkAnalysisRouteConfig struct {
	WorkAnalysisHandler *workanalysishandlers.WorkAnalysisHandler
	WorkLogHandler      *workloghandlers.WorkLogHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupWorkAnalysisRoutes(engine *gin.Engine, config *WorkAnalysisRouteConfig) {
	analyses := engine.Group("/analyses")
	analyses.Use(config.AuthMiddleware.RequireAuth())
	{
		analyses.POST("", config.WorkAnalysisHandler.SubmitAnalysis)
		analyses.GET("", config.WorkAnalysisHandler.ListAnalyses)
		analyses.POST("/images", config.WorkAnalysisHandler.UploadImage)

		// Timer endpoints come before the plain /:id route
		analyses.POST("/:id/timer/start", config.WorkLogHandler.StartTimer)
		analyses.POST("/:id/timer/stop", config.WorkLogHandler.StopTimer)
		analyses.GET("/:id/timer", config.WorkLogHandler.GetTimer)

		analyses.PATCH("/:id/material", config.WorkAnalysisHandler.ToggleMaterial)
		analyses.GET("/:id", config.WorkAnalysisHandler.GetAnalysis)
	}

	worklogs := engine.Group("/worklogs")
	worklogs.Use(config.AuthMiddleware.RequireAuth())
	{
		worklogs.GET("", config.WorkLogHandler.ListWorkLogs)
	}

	timers := engine.Group("/timers")
	timers.Use(config.AuthMiddleware.RequireAuth())
	{
		timers.GET("", config.WorkLogHandler.ListTimers)
	}
}
