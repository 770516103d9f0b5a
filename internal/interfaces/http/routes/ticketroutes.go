package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "deskflow/internal/interfaces/http/handlers/ticket"
	"deskflow/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts

		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.GET("/number/:number", config.TicketHandler.GetTicketByNumber)

		tickets.POST("/:id/complete", config.TicketHandler.MarkWorkComplete)
		tickets.POST("/:id/close", config.TicketHandler.CloseTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission("ticket", "delete"),
			config.TicketHandler.DeleteTicket)
	}
}
