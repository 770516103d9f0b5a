package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskflow/internal/interfaces/cli/migrate"
	"deskflow/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskflow",
		Short: "Deskflow - helpdesk ticketing service",
		Long:  `Deskflow is a helpdesk ticketing service with work analysis, material approvals, and work-log tracking.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
