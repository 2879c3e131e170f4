package main

import (
	"os"

	"github.com/spf13/cobra"

	"mantis/internal/interfaces/cli/migrate"
	"mantis/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mantis",
		Short: "Mantis - facility maintenance ticketing",
		Long:  `Mantis manages facility maintenance tickets, spare-part inventory and asset service schedules.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
