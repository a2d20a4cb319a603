package dependency

import "tdep/internal/domain"

// Status tracks the per-phase outcomes of one unit. A unit counts as passed
// only when all phases recorded a passing outcome.
type Status struct {
	phases map[domain.Phase]domain.Outcome
}

func newStatus() *Status {
	return &Status{phases: make(map[domain.Phase]domain.Outcome)}
}

// Record stores the outcome of one phase.
func (s *Status) Record(phase domain.Phase, outcome domain.Outcome) {
	s.phases[phase] = outcome
}

// Passed reports whether every phase recorded a passing outcome.
func (s *Status) Passed() bool {
	for _, phase := range domain.Phases {
		if s.phases[phase] != domain.OutcomePassed {
			return false
		}
	}
	return true
}

// Table is the outcome table for a single run: last-known status per unit,
// indexed by every component a dependency reference may use (explicit name,
// group-qualified name, bare name, params). Units run sequentially, so the
// table has a single writer and needs no locking.
type Table struct {
	statuses map[string]*Status
	byName   map[string]map[*Status]bool
}

// NewTable returns an empty outcome table.
func NewTable() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset clears the table. Called at the start of each run.
func (t *Table) Reset() {
	t.statuses = make(map[string]*Status)
	t.byName = make(map[string]map[*Status]bool)
}

// Record stores the outcome of one phase of the unit identified by id. The
// status is indexed under each component of the natural identifier, or, when
// an explicit name override is set, under that name alone: dependents must
// then reference the override.
func (t *Table) Record(id, explicitName string, phase domain.Phase, outcome domain.Outcome) {
	status, ok := t.statuses[id]
	if !ok {
		status = newStatus()
		t.statuses[id] = status

		keys := []string{explicitName}
		if explicitName == "" {
			ident := SplitIdent(id)
			keys = []string{ident.Qualified(), ident.Group, ident.Name, ident.Params}
		}
		for _, key := range keys {
			if key == "" {
				continue
			}
			if t.byName[key] == nil {
				t.byName[key] = make(map[*Status]bool)
			}
			t.byName[key][status] = true
		}
	}
	status.Record(phase, outcome)
}

// Matches returns the statuses a dependency reference resolves to. An empty
// result means the reference is unknown in this run.
func (t *Table) Matches(name string) []*Status {
	set := t.byName[name]
	if len(set) == 0 {
		return nil
	}
	matches := make([]*Status, 0, len(set))
	for status := range set {
		matches = append(matches, status)
	}
	return matches
}
