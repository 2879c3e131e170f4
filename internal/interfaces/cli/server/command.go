package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	schedulerUsecases "mantis/internal/application/scheduler/usecases"
	"mantis/internal/infrastructure/config"
	"mantis/internal/infrastructure/database"
	"mantis/internal/infrastructure/persistence/models"
	"mantis/internal/infrastructure/pubsub"
	"mantis/internal/infrastructure/repository"
	"mantis/internal/infrastructure/scheduler"
	httpRouter "mantis/internal/interfaces/http"
	"mantis/internal/shared/biztime"
	"mantis/internal/shared/db"
	"mantis/internal/shared/goroutine"
	"mantis/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Mantis HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically apply the database schema on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Scheduler.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"timezone", cfg.Scheduler.Timezone,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := database.Get().AutoMigrate(
			&models.AssetModel{},
			&models.SparePartModel{},
			&models.TicketModel{},
			&models.WorkOrderModel{},
			&models.ReportModel{},
		); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("auto-migration completed")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	pingCancel()

	router := httpRouter.NewRouter(database.Get(), redisClient, cfg, log)
	router.SetupRoutes()

	// Mirror the cross-instance notification stream into the log so
	// operators can audit fan-out without attaching a gateway.
	subCtx, subCancel := context.WithCancel(context.Background())
	defer subCancel()
	bus := pubsub.NewRedisNotificationBus(redisClient, log)
	goroutine.SafeGo(log, "notification-audit", func() {
		err := bus.Subscribe(subCtx, func(envelope pubsub.NotificationEnvelope) {
			log.Debugw("notification observed",
				"audience", envelope.AudienceKind,
				"tech_id", envelope.TechID,
				"title", envelope.Event.Title,
			)
		})
		if err != nil && subCtx.Err() == nil {
			log.Errorw("notification subscription ended", "error", err)
		}
	})

	if cfg.Scheduler.Enabled {
		manager, err := startScheduler(cfg, redisClient, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := manager.Stop(); err != nil {
				logger.Error("failed to stop scheduler", "error", err)
			}
		}()
	} else {
		logger.Info("scheduler disabled by configuration")
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func startScheduler(cfg *config.Config, redisClient *redis.Client, log logger.Interface) (*scheduler.Manager, error) {
	assetRepo := repository.NewAssetRepository(database.Get())
	ticketRepo := repository.NewTicketRepository(database.Get())
	workOrderRepo := repository.NewWorkOrderRepository(database.Get())
	txMgr := db.NewTransactionManager(database.Get())
	publisher := pubsub.NewRedisNotificationBus(redisClient, log)

	maintenanceSweep := schedulerUsecases.NewRunMaintenanceSweepUseCase(
		assetRepo, ticketRepo, workOrderRepo, txMgr, publisher, log)
	cleaningSweep := schedulerUsecases.NewRunCleaningSweepUseCase(
		assetRepo, ticketRepo, workOrderRepo, txMgr, publisher, log)

	manager, err := scheduler.NewManager(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterSweepJobs(cfg.Scheduler.SweepCron, maintenanceSweep, cleaningSweep); err != nil {
		return nil, fmt.Errorf("failed to register sweep jobs: %w", err)
	}
	manager.Start()

	logger.Info("scheduler started", "sweep_cron", cfg.Scheduler.SweepCron)
	return manager, nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
