package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers"
	"mantis/internal/interfaces/http/middleware"
)

type PresenceRouteConfig struct {
	PresenceHandler    *handlers.PresenceHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

func SetupPresenceRoutes(engine *gin.Engine, config *PresenceRouteConfig) {
	identity := config.IdentityMiddleware

	presence := engine.Group("/presence")
	presence.Use(identity.RequireIdentity())
	{
		presence.POST("",
			config.PresenceHandler.Register)
		presence.DELETE("",
			config.PresenceHandler.Deregister)

		presence.GET("/admins",
			identity.RequireAdmin(),
			config.PresenceHandler.ListAdmins)
	}
}
