package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers"
	"mantis/internal/interfaces/http/middleware"
)

type SparePartRouteConfig struct {
	SparePartHandler   *handlers.SparePartHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

func SetupSparePartRoutes(engine *gin.Engine, config *SparePartRouteConfig) {
	identity := config.IdentityMiddleware

	spareParts := engine.Group("/spare-parts")
	spareParts.Use(identity.RequireIdentity())
	{
		spareParts.POST("",
			identity.RequireAdmin(),
			config.SparePartHandler.CreateSparePart)
		spareParts.GET("",
			config.SparePartHandler.ListSpareParts)

		// Barcode/part-number lookup must come before /:id.
		spareParts.GET("/lookup",
			config.SparePartHandler.LookupSparePart)

		spareParts.PATCH("/:id/stock",
			identity.RequireAdmin(),
			config.SparePartHandler.UpdateStock)

		spareParts.GET("/:id",
			config.SparePartHandler.GetSparePart)
		spareParts.DELETE("/:id",
			identity.RequireAdmin(),
			config.SparePartHandler.DeleteSparePart)
	}
}
