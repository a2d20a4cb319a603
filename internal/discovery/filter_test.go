package discovery

import (
	"testing"

	"tdep/internal/domain"
	"tdep/internal/plan"
)

func units(ids ...string) []plan.Unit {
	var out []plan.Unit
	for _, id := range ids {
		out = append(out, plan.Unit{Unit: domain.Unit{Name: id}})
	}
	return out
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		units    []plan.Unit
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			units:    units("create", "modify", "cleanup"),
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			units:    units("create", "modify", "cleanup"),
			pattern:  "c*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			units:    units("create_box", "modify_box", "cleanup"),
			pattern:  "*box*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			units:    units("create", "modify", "cleanup"),
			pattern:  "odi",
			expected: 1,
		},
		{
			name:     "no matches",
			units:    units("create", "modify"),
			pattern:  "*missing*",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.units, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_GroupQualified(t *testing.T) {
	filter := NewFilter()
	grouped := []plan.Unit{
		{Unit: domain.Unit{Name: "open", Group: "Small"}},
		{Unit: domain.Unit{Name: "open", Group: "Large"}},
		{Unit: domain.Unit{Name: "close", Group: "Small"}},
	}

	t.Run("group wildcard", func(t *testing.T) {
		result := filter.FilterByName(grouped, "Small::*")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})

	t.Run("bare name substring", func(t *testing.T) {
		result := filter.FilterByName(grouped, "open")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})
}
