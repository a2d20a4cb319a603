package tdep

import (
	"testing"

	"tdep/internal/dependency"
	"tdep/internal/domain"
)

// Mode selects how a subtest's dependency list is checked. See the
// DependsOn documentation for the default.
type Mode = dependency.Mode

// Modes accepted by WithMode.
const (
	ModeAll  = dependency.ModeAll
	ModeAny  = dependency.ModeAny
	ModeEach = dependency.ModeEach
)

// entry is one registered subtest.
type entry struct {
	id     string
	name   string // name passed to t.Run
	fn     func(*testing.T)
	rec    dependency.Record
	marked bool
}

// Suite is an ordered collection of named subtests with declared
// dependencies. Suites are built once, then run with Run; they are not safe
// for concurrent use, matching the sequential model dependencies rely on.
type Suite struct {
	entries []entry
	ids     map[string]bool
	table   *dependency.Table

	automark      bool
	ignoreUnknown bool
}

// Option configures a Suite.
type Option func(*Suite)

// Automark records every subtest's outcome, whether or not it declares
// dependencies, so later subtests may depend on it.
func Automark(v bool) Option {
	return func(s *Suite) { s.automark = v }
}

// IgnoreUnknown treats dependencies with no recorded outcome as satisfied
// instead of failing.
func IgnoreUnknown(v bool) Option {
	return func(s *Suite) { s.ignoreUnknown = v }
}

// New constructs an empty suite.
func New(opts ...Option) *Suite {
	s := &Suite{
		ids:   make(map[string]bool),
		table: dependency.NewTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddOption configures a single subtest.
type AddOption func(*dependency.Record)

// DependsOn declares the subtest's prerequisites. The subtest is skipped
// unless the check mode is satisfied; the default mode requires every named
// dependency to have passed.
func DependsOn(names ...string) AddOption {
	return func(rec *dependency.Record) {
		rec.Depends = append(rec.Depends, names...)
	}
}

// Named overrides the identifier under which the subtest's outcome is
// recorded. Dependents must reference the override, not the natural name.
func Named(name string) AddOption {
	return func(rec *dependency.Record) { rec.Name = name }
}

// WithMode sets the dependency check mode.
func WithMode(mode Mode) AddOption {
	return func(rec *dependency.Record) { rec.Mode = mode }
}

// Add registers a subtest under the given name. Registration problems (empty
// name, nil function, duplicate name, blank dependency names) are usage
// errors and panic immediately rather than surfacing as test failures later.
func (s *Suite) Add(name string, fn func(*testing.T), opts ...AddOption) {
	s.add("", name, fn, opts...)
}

func (s *Suite) add(group, name string, fn func(*testing.T), opts ...AddOption) {
	if fn == nil {
		panic("tdep: nil test function for " + name)
	}

	var rec dependency.Record
	for _, opt := range opts {
		opt(&rec)
	}

	id := name
	if group != "" {
		id = group + "::" + name
	}
	if s.ids[id] {
		panic("tdep: " + dependency.ErrDuplicateUnit.Error() + ": " + id)
	}

	// Validate through the registrar so Add rejects what the resolver could
	// never satisfy.
	reg := dependency.NewRegistry()
	if err := reg.Register(id, rec); err != nil {
		panic("tdep: " + err.Error())
	}
	validated, _ := reg.Lookup(id)

	s.ids[id] = true
	s.entries = append(s.entries, entry{
		id:     id,
		name:   name,
		fn:     fn,
		rec:    validated,
		marked: s.automark || validated.Name != "" || len(validated.Depends) > 0 || rec.Mode != "",
	})
}

// Group registers subtests under a group name, qualifying their identifiers
// the way a class qualifies its methods.
func (s *Suite) Group(name string, fn func(*Group)) {
	fn(&Group{suite: s, name: name})
}

// Group adds subtests with group-qualified identifiers.
type Group struct {
	suite *Suite
	name  string
}

// Add registers a subtest under the group.
func (g *Group) Add(name string, fn func(*testing.T), opts ...AddOption) {
	g.suite.add(g.name, name, fn, opts...)
}

// Run executes the suite's subtests in registration order. Outcomes are
// recorded as each subtest completes; the outcome table is cleared first, so
// running a suite twice never leaks results between runs.
func (s *Suite) Run(t *testing.T) {
	s.table.Reset()

	for _, e := range s.entries {
		e := e
		t.Run(e.name, func(t *testing.T) {
			started := false
			if e.marked {
				defer func() { s.record(t, e, started) }()
			}
			s.check(t, e)
			started = true
			e.fn(t)
		})
	}
}

// check resolves the entry's dependencies and skips the subtest when they
// are not satisfied. Skipping ends the subtest, so the body never runs.
func (s *Suite) check(t *testing.T, e entry) {
	if len(e.rec.Depends) == 0 {
		return
	}
	resolver := dependency.NewResolver(s.table, s.ignoreUnknown)
	if skip := resolver.Check(e.id, e.rec); skip != nil {
		t.Skip(skip.Reason)
	}
}

// record writes the entry's phase outcomes. A subtest gated before its body
// started carries the skip in the setup phase; a body-level skip or failure
// lands in the call phase.
func (s *Suite) record(t *testing.T, e entry, started bool) {
	if !started {
		s.table.Record(e.id, e.rec.Name, domain.PhaseSetup, domain.OutcomeSkipped)
		return
	}
	s.table.Record(e.id, e.rec.Name, domain.PhaseSetup, domain.OutcomePassed)
	outcome := domain.OutcomePassed
	switch {
	case t.Failed():
		outcome = domain.OutcomeFailed
	case t.Skipped():
		outcome = domain.OutcomeSkipped
	}
	s.table.Record(e.id, e.rec.Name, domain.PhaseCall, outcome)
	s.table.Record(e.id, e.rec.Name, domain.PhaseTeardown, domain.OutcomePassed)
}

// Depends checks the named prerequisites at runtime, inside a test body, and
// skips the current test unless all of them passed. This mirrors the
// DependsOn declaration but can react to conditions only known mid-test.
func (s *Suite) Depends(t *testing.T, names ...string) {
	t.Helper()
	resolver := dependency.NewResolver(s.table, s.ignoreUnknown)
	if skip := resolver.Check(t.Name(), dependency.Record{Depends: names, Mode: dependency.ModeAll}); skip != nil {
		t.Skip(skip.Reason)
	}
}
