package execution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdep/internal/config"
	"tdep/internal/dependency"
	"tdep/internal/domain"
)

func TestOrderUnits(t *testing.T) {
	p := loadPlan(t, `
units:
  - name: modify
    run: "true"
    depends: [create]
  - name: audit
    run: "true"
    depends: [modify]
  - name: create
    run: "true"
    mark: true
`)
	ordered, err := OrderUnits(p.Units)
	require.NoError(t, err)

	var ids []string
	for _, u := range ordered {
		ids = append(ids, u.ID())
	}
	assert.Equal(t, []string{"create", "modify", "audit"}, ids)
}

func TestOrderUnits_ResolvesAliases(t *testing.T) {
	p := loadPlan(t, `
units:
  - name: modify
    run: "true"
    depends: [created_box]
  - name: create
    run: "true"
    alias: created_box
`)
	ordered, err := OrderUnits(p.Units)
	require.NoError(t, err)
	assert.Equal(t, "create", ordered[0].ID())
}

func TestOrderUnits_Cycle(t *testing.T) {
	p := loadPlan(t, `
units:
  - name: a
    run: "true"
    depends: [b]
  - name: b
    run: "true"
    depends: [a]
`)
	_, err := OrderUnits(p.Units)
	assert.ErrorIs(t, err, dependency.ErrCycle)
}

func TestOrderUnits_ReorderedRunGates(t *testing.T) {
	// With reordering, a dependency declared after its dependent still runs
	// first, so the reference is no longer unknown.
	p := loadPlan(t, `
units:
  - name: modify
    run: "true"
    depends: [create]
  - name: create
    run: "true"
    mark: true
`)
	ordered, err := OrderUnits(p.Units)
	require.NoError(t, err)

	cfg := config.New()
	e := NewExecutor(cfg, NewRunner(cfg))
	results, _, err := e.Execute(context.Background(), p, ordered)
	require.NoError(t, err)

	got := outcomes(results)
	assert.Equal(t, domain.OutcomePassed, got["modify"])
}
