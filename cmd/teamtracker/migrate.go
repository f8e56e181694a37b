package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"team-tracker/internal/config"
	"team-tracker/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	_, closeDB, err := openStore(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	logger.Info("schema is up to date", "driver", cfg.DatabaseDriver)
	return nil
}
