package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tdep/internal/config"
	"tdep/internal/history"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config   *config.Config
	recorder *history.Recorder
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, recorder *history.Recorder) *HistoryCommand {
	return &HistoryCommand{
		config:   cfg,
		recorder: recorder,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	runs, err := hc.recorder.Recent(hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return nil
	}

	color.Cyan("%-6s %-22s %8s %8s %8s %9s %10s", "ID", "Started", "Total", "Passed", "Failed", "Skipped", "Duration")
	for _, run := range runs {
		line := fmt.Sprintf("%-6d %-22s %8d %8d %8d %9d %9.2fs",
			run.ID, run.StartedAt, run.TotalUnits, run.PassedUnits, run.FailedUnits, run.SkippedUnits, run.DurationSeconds)
		if run.FailedUnits > 0 {
			color.Red("%s", line)
		} else {
			fmt.Println(line)
		}
	}
	return nil
}
