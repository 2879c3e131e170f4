package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"mantis/internal/infrastructure/config"
	"mantis/internal/infrastructure/database"
	"mantis/internal/infrastructure/persistence/models"
	"mantis/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the database schema: apply pending changes or inspect the current state.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema",
		Long:  `Create or update all application tables to match the current models.`,
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show schema status",
		Long:  `Report which application tables exist in the connected database.`,
		RunE:  runStatus,
	}
}

func allModels() []interface{} {
	return []interface{}{
		&models.AssetModel{},
		&models.SparePartModel{},
		&models.TicketModel{},
		&models.WorkOrderModel{},
		&models.ReportModel{},
	}
}

func initEnv() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := initEnv(); err != nil {
		return err
	}
	defer database.Close()

	logger.Info("applying schema", "environment", env)

	if err := database.Get().AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	logger.Info("schema migration completed")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := initEnv(); err != nil {
		return err
	}
	defer database.Close()

	migrator := database.Get().Migrator()
	for _, model := range allModels() {
		logger.Info("table status",
			"model", fmt.Sprintf("%T", model),
			"exists", migrator.HasTable(model))
	}

	return nil
}
