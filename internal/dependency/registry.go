package dependency

import (
	"fmt"
	"strings"
)

// Mode selects how a unit's dependency list is checked against the outcome
// table.
type Mode string

const (
	// ModeAll requires every dependency to have passed.
	ModeAll Mode = "all"
	// ModeAny requires at least one dependency to have passed.
	ModeAny Mode = "any"
	// ModeEach requires every dependency to have at least one passing match.
	ModeEach Mode = "each"
)

// ParseMode parses a mode string. The empty string selects ModeAll.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeAll, nil
	case ModeAll, ModeAny, ModeEach:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Record is the dependency record of a single unit: an optional explicit
// name override and the ordered list of depended-upon identifiers. Records
// are created at collection time and never mutated afterwards.
type Record struct {
	Name    string   // Explicit name override, optional
	Depends []string // Identifiers of depended-upon units, in declared order
	Mode    Mode     // Check mode, ModeAll when empty
}

// Registry associates dependency records with unit identifiers. It is the
// collection-time side of the dependency core: registration validates the
// record and has no side effect beyond storing it.
type Registry struct {
	records map[string]Record
	order   []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]Record)}
}

// Register stores the dependency record for the given unit identifier.
// Malformed records (empty identifier, blank dependency names, unknown mode)
// and duplicate identifiers are usage errors.
func (r *Registry) Register(id string, rec Record) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	if _, ok := r.records[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateUnit, id)
	}
	for _, dep := range rec.Depends {
		if strings.TrimSpace(dep) == "" {
			return fmt.Errorf("%w (unit %q)", ErrEmptyDepends, id)
		}
	}
	mode, err := ParseMode(string(rec.Mode))
	if err != nil {
		return fmt.Errorf("unit %q: %w", id, err)
	}
	rec.Mode = mode

	// Keep the stored record immutable against caller slices.
	rec.Depends = append([]string(nil), rec.Depends...)
	r.records[id] = rec
	r.order = append(r.order, id)
	return nil
}

// Lookup returns the dependency record for the given identifier.
func (r *Registry) Lookup(id string) (Record, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// IDs returns all registered identifiers in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}
