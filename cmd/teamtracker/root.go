package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"team-tracker/internal/config"
	"team-tracker/internal/repository"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "teamtracker",
	Short: "Telegram bot that tracks team tasks and tardiness",
	Long: `teamtracker keeps a shared task list and a tardiness log for a team chat.
Tasks and late arrivals are reported as plain labelled messages in Telegram.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (default $"+config.EnvConfigFile+")")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(lateCmd)
}

// openStore connects to the configured database and migrates the schema.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*gorm.DB, func(), error) {
	logger.Info("opening database", "driver", cfg.DatabaseDriver)

	db, err := repository.NewDB(ctx, repository.Options{
		Driver:     cfg.DatabaseDriver,
		DSN:        cfg.DatabaseURL,
		Retries:    cfg.DatabaseRetry,
		RetryDelay: 2 * time.Second,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("db: %w", err)
	}

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, closeDB, nil
}
