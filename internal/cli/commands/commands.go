package commands

import (
	"tdep/internal/cli"
	"tdep/internal/config"
	"tdep/internal/discovery"
	"tdep/internal/execution"
	"tdep/internal/history"
	"tdep/internal/parser"
	"tdep/internal/storage"
	"tdep/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Report  *ReportCommand
	History *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg)
	executor := execution.NewExecutor(cfg, runner)
	goTestParser := parser.NewGoTestParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	recorder := history.NewRecorder(cfg)
	viewer := ui.NewReportViewer(cfg)

	return &Commands{
		Run:     NewRunCommand(cfg, scanner, filter, executor, goTestParser, jsonStorage, formatter, recorder),
		List:    NewListCommand(cfg, scanner, filter, formatter),
		Report:  NewReportCommand(cfg, jsonStorage, viewer),
		History: NewHistoryCommand(cfg, recorder),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the plan's units with dependency gating",
		Long:  "Load a test plan and execute its units in order, skipping any unit whose dependencies did not pass",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Plan, "plan", "P", "", "Path to the plan file (default: tdep.yaml in the project path)")
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter units by name pattern (supports wildcards, e.g. 'Box::*' or '*modify*')")
	runCmd.Flags().BoolVar(&flags.IgnoreUnknown, "ignore-unknown", false, "Treat dependencies with no recorded outcome as satisfied")
	runCmd.Flags().BoolVar(&flags.Reorder, "reorder", false, "Topologically sort units so dependencies run first (rejects cycles)")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first unit failure")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only units that failed or were skipped in the last run")
	runCmd.Flags().BoolVar(&flags.Record, "record", false, "Record the run summary in the history database")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the plan's units",
		Long:  "Load a test plan and list its units without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Plan, "plan", "P", "", "Path to the plan file (default: tdep.yaml in the project path)")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter units by name pattern (supports wildcards, e.g. 'Box::*' or '*modify*')")
	listCmd.Flags().BoolVarP(&flags.Deps, "deps", "d", false, "Show each unit's dependencies")
	listCmd.Flags().BoolVarP(&flags.Order, "order", "o", false, "Show the resolved execution order")
	rootCmd.AddCommand(listCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "View failed and skipped units interactively",
		Long:  "Display failed and skipped units from the last run in an interactive viewer",
		RunE:  c.Report.Execute,
	}
	rootCmd.AddCommand(reportCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long:  "List run summaries recorded in the history database with run --record",
		RunE:  c.History.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
