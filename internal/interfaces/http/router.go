package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	assetUsecases "mantis/internal/application/asset/usecases"
	inventoryUsecases "mantis/internal/application/inventory/usecases"
	ticketUsecases "mantis/internal/application/ticket/usecases"
	"mantis/internal/infrastructure/config"
	"mantis/internal/infrastructure/pubsub"
	"mantis/internal/infrastructure/repository"
	"mantis/internal/interfaces/http/handlers"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/interfaces/http/routes"
	"mantis/internal/shared/db"
	"mantis/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine           *gin.Engine
	ticketRoutes     *routes.TicketRouteConfig
	sparePartRoutes  *routes.SparePartRouteConfig
	assetRoutes      *routes.AssetRouteConfig
	presenceRoutes   *routes.PresenceRouteConfig
	log              logger.Interface
	databaseInstance *gorm.DB
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(database)
	workOrderRepo := repository.NewWorkOrderRepository(database)
	reportRepo := repository.NewReportRepository(database)
	sparePartRepo := repository.NewSparePartRepository(database)
	assetRepo := repository.NewAssetRepository(database)

	txMgr := db.NewTransactionManager(database)
	publisher := pubsub.NewRedisNotificationBus(redisClient, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, workOrderRepo, assetRepo, txMgr, publisher, log)
	approveTicketUC := ticketUsecases.NewApproveTicketUseCase(ticketRepo, workOrderRepo, sparePartRepo, txMgr, publisher, log)
	rejectTicketUC := ticketUsecases.NewRejectTicketUseCase(ticketRepo, publisher, log)
	claimTicketUC := ticketUsecases.NewClaimTicketUseCase(ticketRepo, log)
	startTicketUC := ticketUsecases.NewStartTicketUseCase(ticketRepo, workOrderRepo, log)
	closeTicketUC := ticketUsecases.NewCloseTicketUseCase(ticketRepo, workOrderRepo, txMgr, publisher, log)
	attachReportUC := ticketUsecases.NewAttachReportUseCase(ticketRepo, workOrderRepo, reportRepo, txMgr, publisher, log)
	editReportUC := ticketUsecases.NewEditReportUseCase(ticketRepo, workOrderRepo, reportRepo, log)
	attachRejectReportUC := ticketUsecases.NewAttachRejectReportUseCase(ticketRepo, workOrderRepo, reportRepo, txMgr, publisher, log)
	updateSparePartsUC := ticketUsecases.NewUpdateRequiredSparePartsUseCase(ticketRepo, workOrderRepo, log)
	fillCrocaUC := ticketUsecases.NewFillCrocaUseCase(ticketRepo, workOrderRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, workOrderRepo, reportRepo, txMgr, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, workOrderRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)

	createSparePartUC := inventoryUsecases.NewCreateSparePartUseCase(sparePartRepo, log)
	updateStockUC := inventoryUsecases.NewUpdateSparePartStockUseCase(sparePartRepo, log)
	getSparePartUC := inventoryUsecases.NewGetSparePartUseCase(sparePartRepo, log)
	listSparePartsUC := inventoryUsecases.NewListSparePartsUseCase(sparePartRepo, log)
	deleteSparePartUC := inventoryUsecases.NewDeleteSparePartUseCase(sparePartRepo, log)

	createAssetUC := assetUsecases.NewCreateAssetUseCase(assetRepo, log)
	getAssetUC := assetUsecases.NewGetAssetUseCase(assetRepo, log)
	listAssetsUC := assetUsecases.NewListAssetsUseCase(assetRepo, log)
	deleteAssetUC := assetUsecases.NewDeleteAssetUseCase(assetRepo, log)

	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, approveTicketUC, rejectTicketUC, claimTicketUC,
		startTicketUC, closeTicketUC, attachReportUC, editReportUC,
		attachRejectReportUC,
		updateSparePartsUC, fillCrocaUC, deleteTicketUC, getTicketUC,
		listTicketsUC, log,
	)
	sparePartHandler := handlers.NewSparePartHandler(
		createSparePartUC, updateStockUC, getSparePartUC, listSparePartsUC,
		deleteSparePartUC, log,
	)
	assetHandler := handlers.NewAssetHandler(
		createAssetUC, getAssetUC, listAssetsUC, deleteAssetUC, log,
	)

	presenceDirectory := pubsub.NewRedisPresenceDirectory(redisClient, log)
	presenceHandler := handlers.NewPresenceHandler(presenceDirectory, log)

	identityMiddleware := middleware.NewIdentityMiddleware(log)

	return &Router{
		engine: engine,
		ticketRoutes: &routes.TicketRouteConfig{
			TicketHandler:      ticketHandler,
			IdentityMiddleware: identityMiddleware,
		},
		sparePartRoutes: &routes.SparePartRouteConfig{
			SparePartHandler:   sparePartHandler,
			IdentityMiddleware: identityMiddleware,
		},
		assetRoutes: &routes.AssetRouteConfig{
			AssetHandler:       assetHandler,
			IdentityMiddleware: identityMiddleware,
		},
		presenceRoutes: &routes.PresenceRouteConfig{
			PresenceHandler:    presenceHandler,
			IdentityMiddleware: identityMiddleware,
		},
		log:              log,
		databaseInstance: database,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/health", r.healthCheck)

	routes.SetupTicketRoutes(r.engine, r.ticketRoutes)
	routes.SetupSparePartRoutes(r.engine, r.sparePartRoutes)
	routes.SetupAssetRoutes(r.engine, r.assetRoutes)
	routes.SetupPresenceRoutes(r.engine, r.presenceRoutes)
}

func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.databaseInstance.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"error":  "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
