package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdep/internal/domain"
)

// record fills in every phase of a unit with the given call outcome; setup
// and teardown pass unless stated otherwise.
func record(t *Table, id string, call domain.Outcome) {
	t.Record(id, "", domain.PhaseSetup, domain.OutcomePassed)
	t.Record(id, "", domain.PhaseCall, call)
	t.Record(id, "", domain.PhaseTeardown, domain.OutcomePassed)
}

func TestResolver_AllMode(t *testing.T) {
	tests := []struct {
		name     string
		outcomes map[string]domain.Outcome
		depends  []string
		skipOn   string // empty means the unit runs
	}{
		{
			name:     "single passing dependency",
			outcomes: map[string]domain.Outcome{"create": domain.OutcomePassed},
			depends:  []string{"create"},
		},
		{
			name:     "single failing dependency",
			outcomes: map[string]domain.Outcome{"create": domain.OutcomeFailed},
			depends:  []string{"create"},
			skipOn:   "create",
		},
		{
			name:     "skipped dependency gates too",
			outcomes: map[string]domain.Outcome{"create": domain.OutcomeSkipped},
			depends:  []string{"create"},
			skipOn:   "create",
		},
		{
			name: "one of several failing",
			outcomes: map[string]domain.Outcome{
				"create": domain.OutcomePassed,
				"open":   domain.OutcomeFailed,
			},
			depends: []string{"create", "open"},
			skipOn:  "open",
		},
		{
			name:     "unknown dependency is strict by default",
			outcomes: map[string]domain.Outcome{},
			depends:  []string{"never_ran"},
			skipOn:   "never_ran",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable()
			for id, outcome := range tt.outcomes {
				record(table, id, outcome)
			}

			skip := NewResolver(table, false).Check("modify", Record{Depends: tt.depends, Mode: ModeAll})
			if tt.skipOn == "" {
				assert.Nil(t, skip)
				return
			}
			require.NotNil(t, skip)
			assert.Equal(t, tt.skipOn, skip.Dep)
			assert.Equal(t, "modify depends on "+tt.skipOn, skip.Reason)
		})
	}
}

func TestResolver_IgnoreUnknown(t *testing.T) {
	table := NewTable()
	record(table, "create", domain.OutcomePassed)

	r := NewResolver(table, true)
	skip := r.Check("modify", Record{Depends: []string{"create", "never_ran"}, Mode: ModeAll})
	assert.Nil(t, skip, "unknown dependency is satisfied under the ignore policy")

	skip = r.Check("modify", Record{Depends: []string{"never_ran"}, Mode: ModeEach})
	assert.Nil(t, skip)
}

func TestResolver_AnyMode(t *testing.T) {
	table := NewTable()
	record(table, "primary", domain.OutcomeFailed)
	record(table, "fallback", domain.OutcomePassed)
	r := NewResolver(table, false)

	skip := r.Check("use", Record{Depends: []string{"primary", "fallback"}, Mode: ModeAny})
	assert.Nil(t, skip, "one passing dependency satisfies any")

	skip = r.Check("use", Record{Depends: []string{"primary"}, Mode: ModeAny})
	require.NotNil(t, skip)
	assert.Equal(t, "primary", skip.Dep)

	// All unknown: skipped under either policy, naming the last dependency.
	skip = NewResolver(table, true).Check("use", Record{Depends: []string{"ghost", "phantom"}, Mode: ModeAny})
	require.NotNil(t, skip)
	assert.Equal(t, "phantom", skip.Dep)
}

func TestResolver_EachMode(t *testing.T) {
	table := NewTable()
	// Two groups share the test name "open"; one passed, one failed.
	record(table, "Small::open", domain.OutcomePassed)
	record(table, "Large::open", domain.OutcomeFailed)
	r := NewResolver(table, false)

	// all: every match of the bare name must have passed.
	skip := r.Check("use", Record{Depends: []string{"open"}, Mode: ModeAll})
	require.NotNil(t, skip)

	// each: one passing match per dependency is enough.
	skip = r.Check("use", Record{Depends: []string{"open"}, Mode: ModeEach})
	assert.Nil(t, skip)
}

func TestResolver_SetupFailureGates(t *testing.T) {
	table := NewTable()
	table.Record("create", "", domain.PhaseSetup, domain.OutcomeFailed)
	table.Record("create", "", domain.PhaseCall, domain.OutcomePassed)
	table.Record("create", "", domain.PhaseTeardown, domain.OutcomePassed)

	skip := NewResolver(table, false).Check("modify", Record{Depends: []string{"create"}})
	require.NotNil(t, skip)
	assert.Equal(t, "create", skip.Dep)
}

func TestTable_ExplicitNameReplacesNaturalName(t *testing.T) {
	table := NewTable()
	table.Record("Box::open", "opened", domain.PhaseSetup, domain.OutcomePassed)
	table.Record("Box::open", "opened", domain.PhaseCall, domain.OutcomePassed)
	table.Record("Box::open", "opened", domain.PhaseTeardown, domain.OutcomePassed)

	assert.NotEmpty(t, table.Matches("opened"))
	for _, ref := range []string{"Box::open", "open", "Box"} {
		assert.Empty(t, table.Matches(ref), "natural reference %q must not resolve once renamed", ref)
	}
}

func TestTable_NaturalNameIndexing(t *testing.T) {
	table := NewTable()
	record(table, "Box::open", domain.OutcomePassed)

	for _, ref := range []string{"Box::open", "open", "Box"} {
		assert.NotEmpty(t, table.Matches(ref), "reference %q should resolve", ref)
	}
	assert.Empty(t, table.Matches("opened"))
}

func TestTable_GroupQualificationAvoidsCollisions(t *testing.T) {
	table := NewTable()
	record(table, "Small::open", domain.OutcomePassed)
	record(table, "Large::open", domain.OutcomeFailed)

	small := table.Matches("Small::open")
	require.Len(t, small, 1)
	assert.True(t, small[0].Passed())

	large := table.Matches("Large::open")
	require.Len(t, large, 1)
	assert.False(t, large[0].Passed())

	assert.Len(t, table.Matches("open"), 2, "bare name matches both groups")
}

func TestTable_Reset(t *testing.T) {
	table := NewTable()
	record(table, "create", domain.OutcomePassed)
	table.Reset()
	assert.Empty(t, table.Matches("create"))
}
