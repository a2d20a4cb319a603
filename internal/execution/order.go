package execution

import (
	"tdep/internal/dependency"
	"tdep/internal/plan"
)

// OrderUnits reorders units so that every unit runs after the units its
// dependencies resolve to. A dependency reference matches a unit's explicit
// alias, its qualified identifier, its bare name or its group. References
// matching no unit are left for the resolver's unknown policy at run time.
// Returns dependency.ErrCycle when the plan's units depend on themselves.
func OrderUnits(units []plan.Unit) ([]plan.Unit, error) {
	byID := make(map[string]plan.Unit, len(units))
	byRef := make(map[string][]string)
	ids := make([]string, 0, len(units))

	for _, u := range units {
		id := u.ID()
		byID[id] = u
		ids = append(ids, id)
		refs := []string{u.Record.Name}
		if u.Record.Name == "" {
			refs = []string{id, u.Name, u.Group}
		}
		for _, ref := range refs {
			if ref != "" {
				byRef[ref] = append(byRef[ref], id)
			}
		}
	}

	edges := make(map[string][]string)
	for _, u := range units {
		id := u.ID()
		for _, dep := range u.Record.Depends {
			edges[id] = append(edges[id], byRef[dep]...)
		}
	}

	sorted, err := dependency.Order(ids, edges)
	if err != nil {
		return nil, err
	}

	ordered := make([]plan.Unit, len(sorted))
	for i, id := range sorted {
		ordered[i] = byID[id]
	}
	return ordered, nil
}
