package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers"
	"mantis/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler      *handlers.TicketHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	identity := config.IdentityMiddleware

	tickets := engine.Group("/tickets")
	tickets.Use(identity.RequireIdentity())
	{
		// Register specific paths before parameterized paths to avoid
		// route conflicts.
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		tickets.POST("/:id/approve",
			identity.RequireAdmin(),
			config.TicketHandler.ApproveTicket)
		tickets.POST("/:id/reject",
			identity.RequireAdmin(),
			config.TicketHandler.RejectTicket)
		tickets.POST("/:id/claim",
			identity.RequireTech(),
			config.TicketHandler.ClaimTicket)
		tickets.POST("/:id/start",
			identity.RequireTech(),
			config.TicketHandler.StartTicket)
		tickets.POST("/:id/close",
			config.TicketHandler.CloseTicket)
		tickets.POST("/:id/report",
			config.TicketHandler.AttachReport)
		tickets.PUT("/:id/report",
			config.TicketHandler.EditReport)
		tickets.POST("/:id/reject-report",
			identity.RequireTech(),
			config.TicketHandler.AttachRejectReport)
		tickets.PATCH("/:id/spare-parts",
			identity.RequireTech(),
			config.TicketHandler.UpdateSpareParts)
		tickets.PATCH("/:id/croca",
			config.TicketHandler.FillCroca)

		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			identity.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
