package execution

import (
	"context"
	"time"

	"tdep/internal/config"
	"tdep/internal/dependency"
	"tdep/internal/domain"
	"tdep/internal/plan"
	"tdep/internal/ui"
)

// Executor runs a plan's units one at a time, in order, consulting the
// outcome table before each unit and recording into it after. Execution is
// strictly sequential: the table has a single writer and dependents always
// observe the completed outcome of earlier units.
type Executor struct {
	config   *config.Config
	runner   *Runner
	table    *dependency.Table
	progress *ui.ProgressBar
}

// NewExecutor creates a new Executor
func NewExecutor(cfg *config.Config, runner *Runner) *Executor {
	return &Executor{
		config: cfg,
		runner: runner,
		table:  dependency.NewTable(),
	}
}

// SetProgress sets the progress bar for the executor
func (e *Executor) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// Execute runs the given units of the plan in the order supplied. The
// outcome table is cleared first, so results never leak across runs.
func (e *Executor) Execute(ctx context.Context, p *plan.Plan, units []plan.Unit) ([]domain.UnitResult, time.Duration, error) {
	if len(units) == 0 {
		return nil, 0, nil
	}

	e.table.Reset()
	ignoreUnknown := p.IgnoreUnknown || e.config.Flags.IgnoreUnknown
	resolver := dependency.NewResolver(e.table, ignoreUnknown)

	var results []domain.UnitResult
	var passed, failed, skipped int
	startTime := time.Now()

	for _, unit := range units {
		result := e.runUnit(ctx, resolver, unit)
		results = append(results, result)

		switch result.Outcome {
		case domain.OutcomePassed:
			passed++
		case domain.OutcomeSkipped:
			skipped++
		default:
			failed++
		}
		if e.progress != nil {
			e.progress.Update(passed, failed, skipped)
		}

		if e.config.Flags.FailFast && result.Outcome == domain.OutcomeFailed {
			break
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return results, time.Since(startTime), nil
}

// runUnit gates and executes a single unit, recording its phase outcomes
// when the unit is marked.
func (e *Executor) runUnit(ctx context.Context, resolver *dependency.Resolver, unit plan.Unit) domain.UnitResult {
	id := unit.ID()
	result := domain.UnitResult{UnitID: id}

	if len(unit.Record.Depends) > 0 {
		if skip := resolver.Check(id, unit.Record); skip != nil {
			result.Outcome = domain.OutcomeSkipped
			result.SkipReason = skip.Reason
			if unit.Marked {
				// The skip happens before the call phase, so the setup
				// phase carries the skipped outcome, like any dependent
				// consulting this unit would expect.
				e.table.Record(id, unit.Record.Name, domain.PhaseSetup, domain.OutcomeSkipped)
			}
			return result
		}
	}

	setup := e.runner.RunPhase(ctx, unit.Unit, unit.Setup)
	e.record(unit, domain.PhaseSetup, setup.Outcome)
	result.Duration += setup.Duration

	var call phaseResult
	if setup.Outcome == domain.OutcomePassed {
		call = e.runner.RunPhase(ctx, unit.Unit, unit.RunCmd)
	} else {
		// A failed setup means the call never happens; its outcome is
		// skipped, matching the phase model.
		call = phaseResult{Outcome: domain.OutcomeSkipped, Output: setup.Output, Err: setup.Err}
	}
	e.record(unit, domain.PhaseCall, call.Outcome)
	result.Duration += call.Duration
	result.Output = call.Output
	result.Error = call.Err

	teardown := e.runner.RunPhase(ctx, unit.Unit, unit.Teardown)
	e.record(unit, domain.PhaseTeardown, teardown.Outcome)
	result.Duration += teardown.Duration

	if setup.Outcome == domain.OutcomePassed &&
		call.Outcome == domain.OutcomePassed &&
		teardown.Outcome == domain.OutcomePassed {
		result.Outcome = domain.OutcomePassed
	} else {
		result.Outcome = domain.OutcomeFailed
	}
	return result
}

func (e *Executor) record(unit plan.Unit, phase domain.Phase, outcome domain.Outcome) {
	if unit.Marked {
		e.table.Record(unit.ID(), unit.Record.Name, phase, outcome)
	}
}
