package tdep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdep/internal/domain"
)

// failPrerequisite seeds the suite's outcome table with a failed call phase
// for the given identifier, standing in for a prerequisite that failed
// earlier in the run.
func failPrerequisite(s *Suite, id string) {
	s.seed(id, domain.OutcomeFailed)
}

func (s *Suite) seed(id string, call domain.Outcome) {
	s.table.Record(id, "", domain.PhaseSetup, domain.OutcomePassed)
	s.table.Record(id, "", domain.PhaseCall, call)
	s.table.Record(id, "", domain.PhaseTeardown, domain.OutcomePassed)
}

// runEntries drives the suite's gating loop the way Run does, but against a
// pre-seeded table, so failing prerequisites can be exercised without
// failing the enclosing test.
func runEntries(t *testing.T, s *Suite) map[string]string {
	t.Helper()
	executed := make(map[string]string)
	for _, e := range s.entries {
		e := e
		t.Run(e.name, func(t *testing.T) {
			defer func() {
				switch {
				case t.Skipped():
					executed[e.id] = "skipped"
				case t.Failed():
					executed[e.id] = "failed"
				default:
					executed[e.id] = "ran"
				}
			}()
			s.check(t, e)
			e.fn(t)
		})
	}
	return executed
}

func noop(*testing.T) {}

func TestSuite_RunsDependentsOfPassingTests(t *testing.T) {
	s := New()
	var order []string
	s.Add("create", func(*testing.T) { order = append(order, "create") })
	s.Add("modify", func(*testing.T) { order = append(order, "modify") }, DependsOn("create"))
	s.Add("delete", func(*testing.T) { order = append(order, "delete") }, DependsOn("modify", "create"))
	s.Run(t)

	assert.Equal(t, []string{"create", "modify", "delete"}, order)
}

func TestSuite_SkipsDependentOfFailedTest(t *testing.T) {
	s := New()
	s.Add("modify", noop, DependsOn("create"))
	s.Add("audit", noop, DependsOn("modify"))
	failPrerequisite(s, "create")

	executed := runEntries(t, s)
	assert.Equal(t, "skipped", executed["modify"])
	assert.Equal(t, "skipped", executed["audit"], "skips cascade: a skipped dependency gates its dependents")
}

func TestSuite_SkippedTestGatesDependents(t *testing.T) {
	s := New()
	ran := false
	s.Add("flaky", func(t *testing.T) { t.Skip("not today") }, DependsOn(), Named("flaky"))
	s.Add("dependent", func(*testing.T) { ran = true }, DependsOn("flaky"))
	s.Run(t)

	assert.False(t, ran, "dependent of a skipped test must not run")
}

func TestSuite_UnknownDependencyPolicy(t *testing.T) {
	t.Run("strict skips", func(t *testing.T) {
		s := New()
		ran := false
		s.Add("dependent", func(*testing.T) { ran = true }, DependsOn("never_registered"))
		s.Run(t)
		assert.False(t, ran)
	})

	t.Run("ignore runs", func(t *testing.T) {
		s := New(IgnoreUnknown(true))
		ran := false
		s.Add("dependent", func(*testing.T) { ran = true }, DependsOn("never_registered"))
		s.Run(t)
		assert.True(t, ran)
	})
}

func TestSuite_ForwardReferenceIsUnknown(t *testing.T) {
	// "early" depends on "late", which has no outcome yet when "early" runs.
	s := New()
	ran := false
	s.Add("early", func(*testing.T) { ran = true }, DependsOn("late"))
	s.Add("late", noop, Named("late"))
	s.Run(t)

	assert.False(t, ran)
}

func TestSuite_UnmarkedTestRecordsNoOutcome(t *testing.T) {
	s := New()
	ran := false
	s.Add("plain", noop)
	s.Add("dependent", func(*testing.T) { ran = true }, DependsOn("plain"))
	s.Run(t)

	assert.False(t, ran, "outcome of an unmarked test is unknown to dependents")
}

func TestSuite_AutomarkRecordsEveryOutcome(t *testing.T) {
	s := New(Automark(true))
	ran := false
	s.Add("plain", noop)
	s.Add("dependent", func(*testing.T) { ran = true }, DependsOn("plain"))
	s.Run(t)

	assert.True(t, ran)
}

func TestSuite_NamedOverrideIsAuthoritative(t *testing.T) {
	s := New()
	var byOverride, byNatural bool
	s.Add("create", noop, Named("created_box"))
	s.Add("good", func(*testing.T) { byOverride = true }, DependsOn("created_box"))
	s.Add("stale", func(*testing.T) { byNatural = true }, DependsOn("create"))
	s.Run(t)

	assert.True(t, byOverride, "dependents referencing the override run")
	assert.False(t, byNatural, "the natural name is unknown once renamed")
}

func TestSuite_GroupsQualifyIdentifiers(t *testing.T) {
	s := New()
	var small, large, packed bool
	s.Group("Small", func(g *Group) {
		g.Add("open", func(*testing.T) { small = true }, DependsOn())
	})
	s.Group("Large", func(g *Group) {
		g.Add("open", func(*testing.T) { large = true }, DependsOn())
	})
	s.Add("pack", func(*testing.T) { packed = true }, DependsOn("Small::open"))
	s.Run(t)

	assert.True(t, small)
	assert.True(t, large)
	assert.True(t, packed)
}

func TestSuite_GroupCollision(t *testing.T) {
	// Same subtest name in two groups: qualified references stay distinct.
	s := New(Automark(true))
	s.Add("dependent", noop, DependsOn("Large::open"))
	s.seed("Small::open", domain.OutcomePassed)
	s.seed("Large::open", domain.OutcomeFailed)

	executed := runEntries(t, s)
	assert.Equal(t, "skipped", executed["dependent"])
}

func TestSuite_AnyMode(t *testing.T) {
	s := New()
	ran := false
	s.Add("dependent", func(*testing.T) { ran = true },
		DependsOn("primary", "fallback"), WithMode(ModeAny))
	s.seed("primary", domain.OutcomeFailed)
	s.seed("fallback", domain.OutcomePassed)

	runEntries(t, s)
	assert.True(t, ran, "one passing dependency satisfies any mode")
}

func TestSuite_AddUsageErrors(t *testing.T) {
	t.Run("nil function", func(t *testing.T) {
		require.Panics(t, func() { New().Add("x", nil) })
	})

	t.Run("duplicate name", func(t *testing.T) {
		s := New()
		s.Add("x", noop)
		require.Panics(t, func() { s.Add("x", noop) })
	})

	t.Run("blank dependency name", func(t *testing.T) {
		require.Panics(t, func() { New().Add("x", noop, DependsOn("  ")) })
	})
}

func TestSuite_DependsAtRuntime(t *testing.T) {
	s := New()
	reached := false
	s.Add("create", noop, Named("created"))
	s.Add("audit", func(t *testing.T) {
		s.Depends(t, "missing_precondition")
		reached = true
	})
	s.Run(t)

	assert.False(t, reached, "runtime Depends skips past the check point")
}

func TestSuite_RunTwiceResetsOutcomes(t *testing.T) {
	s := New()
	runs := 0
	s.Add("counted", func(*testing.T) { runs++ }, Named("counted"))
	s.Run(t)
	s.Run(t)

	assert.Equal(t, 2, runs)
	require.NotEmpty(t, s.table.Matches("counted"), "second run records outcomes afresh")
}
