package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"team-tracker/internal/config"
	"team-tracker/internal/logging"
	"team-tracker/internal/model"
	"team-tracker/internal/repository"
	"team-tracker/internal/service"
)

var (
	lateDate     string
	lateEmployee string
)

var lateCmd = &cobra.Command{
	Use:   "late",
	Short: "Print recorded late arrivals",
	Args:  cobra.NoArgs,
	RunE:  runLate,
}

func init() {
	lateCmd.Flags().StringVar(&lateDate, "date", "", "only this day (DD.MM.YYYY or DD.MM.YY)")
	lateCmd.Flags().StringVar(&lateEmployee, "employee", "", "only this employee (@handle or name)")
}

func runLate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, closeDB, err := openStore(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	late := service.NewLateService(repository.NewLateEventRepository(db), service.SystemClock(loc))
	events, err := late.List(cmd.Context(), repository.LateFilter{Date: lateDate, Employee: lateEmployee})
	if err != nil {
		return err
	}

	printLate(cmd.OutOrStdout(), events)
	return nil
}

// printLate groups events by date; events arrive newest date first.
func printLate(w io.Writer, events []model.LateEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No late arrivals found.")
		return
	}

	var currentDay string
	for _, e := range events {
		if e.Date != currentDay {
			if currentDay != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, e.Date)
			currentDay = e.Date
		}

		line := "  " + e.DisplayName()
		if e.DisplayName() != e.Employee {
			line += " (" + e.Employee + ")"
		}
		if late := model.Value(e.LateTime); late != "" {
			line += "  " + late
		}
		if by := model.Value(e.CreatedBy); by != "" {
			line += "  (by " + by + ")"
		}
		fmt.Fprintln(w, line)
	}
}
