package dependency

import "fmt"

// Order topologically sorts the given identifiers so that every identifier
// comes after the identifiers it depends on. edges maps an identifier to the
// identifiers that must run before it; edges to identifiers not present in
// ids are ignored (they stay unknown at check time). Ties keep declaration
// order. Returns ErrCycle when the identifiers indirectly depend on
// themselves.
func Order(ids []string, edges map[string][]string) ([]string, error) {
	present := make(map[string]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}

	// remaining[id] holds the not-yet-emitted identifiers id waits on.
	remaining := make(map[string]map[string]bool, len(ids))
	for _, id := range ids {
		deps := make(map[string]bool)
		for _, before := range edges[id] {
			if present[before] {
				deps[before] = true
			}
		}
		remaining[id] = deps
	}

	sorted := make([]string, 0, len(ids))
	emitted := make(map[string]bool, len(ids))
	for len(sorted) < len(ids) {
		progressed := false
		for _, id := range ids {
			if emitted[id] || len(remaining[id]) > 0 {
				continue
			}
			emitted[id] = true
			sorted = append(sorted, id)
			for _, other := range ids {
				delete(remaining[other], id)
			}
			progressed = true
		}
		if !progressed {
			for _, id := range ids {
				if !emitted[id] {
					return nil, fmt.Errorf("%w: %q", ErrCycle, id)
				}
			}
		}
	}
	return sorted, nil
}
