package main

import (
	"fmt"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/config"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/database"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var to int32

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.NewLoggerWithConfig(cfg.Observability)

			return database.Migrate(cmd.Context(), &log, cfg, to)
		},
	}

	cmd.Flags().Int32Var(&to, "to", -1, "target schema version, -1 for latest")

	return cmd
}
