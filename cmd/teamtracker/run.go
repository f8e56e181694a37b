package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"team-tracker/internal/bot"
	"team-tracker/internal/config"
	"team-tracker/internal/logging"
	"team-tracker/internal/repository"
	"team-tracker/internal/service"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Telegram bot",
	Args:  cobra.NoArgs,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.RequireToken(); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, closeDB, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	clock := service.SystemClock(loc)
	taskRepo := repository.NewTaskRepository(db)
	lateRepo := repository.NewLateEventRepository(db)

	telegramBot, err := bot.New(cfg.TelegramToken, bot.Services{
		Tasks:     service.NewTaskService(taskRepo, clock),
		Late:      service.NewLateService(lateRepo, clock),
		Reminders: service.NewReminderService(taskRepo, lateRepo),
	}, clock, logger)
	if err != nil {
		return fmt.Errorf("bot: %w", err)
	}

	if cfg.ReportChatID != 0 {
		scheduler := service.NewSchedulerService(loc)
		scheduled, err := scheduler.ScheduleReport(cfg.ReportTime, cfg.ReportInterval, func() {
			jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			if err := telegramBot.SendReport(jobCtx, cfg.ReportChatID); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("send report", "chat", cfg.ReportChatID, "err", err)
			}
		})
		if err != nil {
			return fmt.Errorf("schedule reports: %w", err)
		}
		if scheduled {
			scheduler.Start()
			defer scheduler.Stop()
			logger.Info("report scheduled", "chat", cfg.ReportChatID, "time", cfg.ReportTime, "interval", cfg.ReportInterval)
		}
	}

	logger.Info("team tracker bot started")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("bot stopped with error: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}
