package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers"
	"mantis/internal/interfaces/http/middleware"
)

type AssetRouteConfig struct {
	AssetHandler       *handlers.AssetHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

func SetupAssetRoutes(engine *gin.Engine, config *AssetRouteConfig) {
	identity := config.IdentityMiddleware

	assets := engine.Group("/assets")
	assets.Use(identity.RequireIdentity())
	{
		assets.POST("",
			identity.RequireAdmin(),
			config.AssetHandler.CreateAsset)
		assets.GET("",
			config.AssetHandler.ListAssets)

		assets.GET("/:id",
			config.AssetHandler.GetAsset)
		assets.DELETE("/:id",
			identity.RequireAdmin(),
			config.AssetHandler.DeleteAsset)
	}
}
