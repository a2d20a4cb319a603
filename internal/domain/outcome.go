package domain

// Outcome is the terminal status of a unit or test case in the current run.
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// Phase is one stage of a unit's execution. A unit counts as passed only
// when every phase passed.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseCall     Phase = "call"
	PhaseTeardown Phase = "teardown"
)

// Phases lists the phases in execution order.
var Phases = []Phase{PhaseSetup, PhaseCall, PhaseTeardown}
