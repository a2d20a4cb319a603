package execution

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"tdep/internal/config"
	"tdep/internal/domain"
)

// phaseResult is the outcome of one phase command.
type phaseResult struct {
	Outcome  domain.Outcome
	Output   string
	Err      error
	Duration time.Duration
}

// Runner executes a single phase command of a unit
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// RunPhase executes the given command through the shell and maps its exit
// status to an outcome. An empty command counts as passed without running
// anything.
func (r *Runner) RunPhase(ctx context.Context, unit domain.Unit, command string) phaseResult {
	if command == "" {
		return phaseResult{Outcome: domain.OutcomePassed}
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)

	// Set environment variables
	cmd.Env = os.Environ() // Start with current environment
	cmd.Env = append(cmd.Env, fmt.Sprintf("TDEP_UNIT=%s", unit.ID()))

	// Set working directory
	if unit.Dir != "" {
		cmd.Dir = unit.Dir
	} else {
		cmd.Dir = r.config.ProjectPath
	}

	start := time.Now()
	output, err := cmd.CombinedOutput()

	res := phaseResult{
		Output:   string(output),
		Err:      err,
		Duration: time.Since(start),
	}
	if err == nil {
		res.Outcome = domain.OutcomePassed
	} else {
		res.Outcome = domain.OutcomeFailed
	}
	return res
}
