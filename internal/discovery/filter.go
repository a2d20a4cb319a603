package discovery

import (
	"path/filepath"
	"strings"

	"tdep/internal/plan"
)

// Filter filters plan units by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters units by name pattern using wildcard matching.
// Supports patterns like "Box::*" or "*modify*"; patterns are matched
// against the qualified identifier.
func (f *Filter) FilterByName(units []plan.Unit, pattern string) []plan.Unit {
	if pattern == "" {
		return units
	}

	var filtered []plan.Unit
	for _, unit := range units {
		if matchName(unit.ID(), pattern) {
			filtered = append(filtered, unit)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// For patterns like "*modify*", fall back to checking that every
	// non-wildcard piece appears in the name.
	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		hasNonEmptyPart := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// No wildcards: simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
