package commands

import (
	"errors"
	"fmt"
	"os"

	"tdep/internal/config"
	"tdep/internal/discovery"
	"tdep/internal/domain"
	"tdep/internal/execution"
	"tdep/internal/history"
	"tdep/internal/parser"
	"tdep/internal/plan"
	"tdep/internal/storage"
	"tdep/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.Executor
	parser    *parser.GoTestParser
	storage   storage.Storage
	formatter *ui.Formatter
	recorder  *history.Recorder
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.Executor,
	goTestParser *parser.GoTestParser,
	st storage.Storage,
	formatter *ui.Formatter,
	recorder *history.Recorder,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		parser:    goTestParser,
		storage:   st,
		formatter: formatter,
		recorder:  recorder,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	p, err := resolvePlan(rc.config, rc.scanner)
	if err != nil {
		return err
	}

	// Filter units
	units := rc.filter.FilterByName(p.Units, rc.config.Flags.Filter)

	// Keep only last run's non-passing units
	if rc.config.Flags.OnlyFailed {
		units, err = rc.onlyFailed(units)
		if err != nil {
			return err
		}
	}

	if len(units) == 0 {
		color.Yellow("No units to run")
		return nil
	}

	// Reorder so dependencies run first
	if rc.config.Flags.Reorder {
		units, err = execution.OrderUnits(units)
		if err != nil {
			return err
		}
	}

	// Create and set progress bar
	progressBar := ui.NewProgressBar(len(units))
	rc.executor.SetProgress(progressBar)

	// Execute units
	results, duration, err := rc.executor.Execute(cmd.Context(), p, units)
	if err != nil {
		return err
	}

	// Collect details for non-passing units
	var details []domain.UnitDetail
	for _, result := range results {
		if result.Outcome == domain.OutcomePassed {
			continue
		}
		detail := domain.UnitDetail{
			UnitID:     result.UnitID,
			Outcome:    result.Outcome,
			SkipReason: result.SkipReason,
			Output:     result.Output,
		}
		if result.Outcome == domain.OutcomeFailed {
			detail.Cases = rc.parser.ParseFailures(result)
			_, failedCases, _ := rc.parser.ParseTestCounts(result)
			detail.FailedCases = failedCases
		}
		details = append(details, detail)
	}

	// Save results
	if err := rc.storage.Save(results, details, duration); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Record run summary in history
	if rc.config.Flags.Record {
		output, err := rc.storage.Load()
		if err != nil {
			return fmt.Errorf("failed to load saved results: %w", err)
		}
		if err := rc.recorder.Record(output.Meta); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	// Print stats
	return rc.formatter.PrintMetaStats()
}

// onlyFailed keeps units whose last recorded outcome was failed or skipped.
func (rc *RunCommand) onlyFailed(units []plan.Unit) ([]plan.Unit, error) {
	output, err := rc.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("no previous run results: %w", err)
	}
	nonPassing := make(map[string]bool, len(output.Details))
	for _, d := range output.Details {
		nonPassing[d.UnitID] = true
	}

	var kept []plan.Unit
	for _, u := range units {
		if nonPassing[u.ID()] {
			kept = append(kept, u)
		}
	}
	return kept, nil
}

// resolvePlan loads the configured plan file, falling back to scanning the
// project path when the default plan file is not present.
func resolvePlan(cfg *config.Config, scanner *discovery.Scanner) (*plan.Plan, error) {
	path := cfg.GetPlanPath()
	p, err := plan.Load(path)
	if err == nil {
		return p, nil
	}
	// An explicitly chosen or malformed plan is the caller's problem; only a
	// missing default falls back to scanning.
	if cfg.Flags.Plan != "" || !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	plans, err := scanner.Scan(cfg.ProjectPath)
	if err != nil {
		return nil, err
	}
	switch len(plans) {
	case 0:
		return nil, fmt.Errorf("no plan file found under %s", cfg.ProjectPath)
	case 1:
		return plan.Load(plans[0])
	default:
		return nil, fmt.Errorf("multiple plan files found under %s, pick one with --plan: %v", cfg.ProjectPath, plans)
	}
}
