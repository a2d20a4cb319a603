package domain

import "time"

// UnitResult represents the result of executing (or gating) a single unit.
type UnitResult struct {
	UnitID     string        // Identifier of the unit
	Outcome    Outcome       // Terminal outcome for the whole unit
	SkipReason string        // Set when the unit was skipped by the resolver
	Output     string        // Combined output of the call phase
	Error      error         // Error if execution itself failed
	Duration   time.Duration // Time taken across all phases
}

// RunMeta contains metadata about a run.
type RunMeta struct {
	TotalUnits      int     `json:"total_units"`
	PassedUnits     int     `json:"passed_units"`
	FailedUnits     int     `json:"failed_units"`
	SkippedUnits    int     `json:"skipped_units"`
	FailedTestCases int     `json:"failed_test_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete output structure persisted after a run.
type RunOutput struct {
	Meta    RunMeta      `json:"meta"`
	Details []UnitDetail `json:"details"`
}

// UnitDetail is the persisted view of one non-passing unit.
type UnitDetail struct {
	UnitID      string        `json:"unit_id"`
	Outcome     Outcome       `json:"outcome"`
	SkipReason  string        `json:"skip_reason,omitempty"`
	Output      string        `json:"output,omitempty"`
	Cases       []FailureCase `json:"cases,omitempty"`
	FailedCases int           `json:"failed_cases,omitempty"` // Count from the output parser, covers non-verbose output too
	Resolved    bool          `json:"resolved,omitempty"` // Marked as resolved in the report viewer
}
