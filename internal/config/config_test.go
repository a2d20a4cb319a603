package config

import (
	"testing"
)

func TestConfig_GetPlanPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				PlanFile:    "tdep.yaml",
				Flags:       Flags{},
			},
			expected: "tdep.yaml",
		},
		{
			name: "with plan flag",
			config: &Config{
				ProjectPath: "/project",
				PlanFile:    "tdep.yaml",
				Flags: Flags{
					Plan: "plans/smoke.tdep.yaml",
				},
			},
			expected: "/project/plans/smoke.tdep.yaml",
		},
		{
			name: "absolute plan flag",
			config: &Config{
				ProjectPath: "/project",
				PlanFile:    "tdep.yaml",
				Flags: Flags{
					Plan: "/absolute/tdep.yaml",
				},
			},
			expected: "/absolute/tdep.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetPlanPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.PlanFile != DefaultPlanFile {
		t.Errorf("expected PlanFile %s, got %s", DefaultPlanFile, cfg.PlanFile)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}
