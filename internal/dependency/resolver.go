package dependency

import "fmt"

// Skip is the resolver's decision to not run a unit, naming the dependency
// that caused it.
type Skip struct {
	Dep    string
	Reason string
}

func newSkip(unitID, dep string) *Skip {
	return &Skip{Dep: dep, Reason: fmt.Sprintf("%s depends on %s", unitID, dep)}
}

// Resolver checks a unit's dependency record against the outcome table just
// before the unit would execute.
type Resolver struct {
	table *Table

	// When true, a dependency with no recorded outcome counts as satisfied
	// instead of failing.
	ignoreUnknown bool
}

// NewResolver returns a Resolver over the given outcome table.
func NewResolver(table *Table, ignoreUnknown bool) *Resolver {
	return &Resolver{table: table, ignoreUnknown: ignoreUnknown}
}

// Check resolves each dependency of the record and returns a skip decision
// when the record's mode is not satisfied, or nil when the unit may run.
func (r *Resolver) Check(unitID string, rec Record) *Skip {
	switch rec.Mode {
	case ModeAny:
		return r.checkAny(unitID, rec.Depends)
	case ModeEach:
		return r.checkEach(unitID, rec.Depends)
	default:
		return r.checkAll(unitID, rec.Depends)
	}
}

// checkAll skips unless every dependency resolved and every match passed.
func (r *Resolver) checkAll(unitID string, depends []string) *Skip {
	for _, dep := range depends {
		matches := r.table.Matches(dep)
		if len(matches) == 0 {
			if r.ignoreUnknown {
				continue
			}
			return newSkip(unitID, dep)
		}
		if !allPassed(matches) {
			return newSkip(unitID, dep)
		}
	}
	return nil
}

// checkAny runs the unit as soon as one dependency has a passing match.
// Unknown dependencies never satisfy the check on their own, so a record
// whose dependencies are all unknown is skipped under either policy.
func (r *Resolver) checkAny(unitID string, depends []string) *Skip {
	if len(depends) == 0 {
		return nil
	}
	for _, dep := range depends {
		matches := r.table.Matches(dep)
		if len(matches) > 0 && anyPassed(matches) {
			return nil
		}
	}
	return newSkip(unitID, depends[len(depends)-1])
}

// checkEach skips unless every dependency has at least one passing match.
func (r *Resolver) checkEach(unitID string, depends []string) *Skip {
	for _, dep := range depends {
		matches := r.table.Matches(dep)
		if len(matches) == 0 {
			if r.ignoreUnknown {
				continue
			}
			return newSkip(unitID, dep)
		}
		if !anyPassed(matches) {
			return newSkip(unitID, dep)
		}
	}
	return nil
}

func allPassed(statuses []*Status) bool {
	for _, s := range statuses {
		if !s.Passed() {
			return false
		}
	}
	return true
}

func anyPassed(statuses []*Status) bool {
	for _, s := range statuses {
		if s.Passed() {
			return true
		}
	}
	return false
}
