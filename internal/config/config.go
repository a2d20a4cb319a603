package config

import "path/filepath"

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	PlanFile    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning for plan files
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Plan          string
	Filter        string
	IgnoreUnknown bool
	Reorder       bool
	FailFast      bool
	OnlyFailed    bool
	Record        bool
	Deps          bool
	Order         bool
	Limit         int
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		PlanFile:       DefaultPlanFile,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// GetPlanPath returns the plan file path, using the flag if provided.
func (c *Config) GetPlanPath() string {
	if c.Flags.Plan != "" {
		if filepath.IsAbs(c.Flags.Plan) {
			return c.Flags.Plan
		}
		return filepath.Join(c.ProjectPath, c.Flags.Plan)
	}
	return filepath.Join(c.ProjectPath, c.PlanFile)
}

// GetOutputPath returns the full path to the output JSON file. Resolves to an
// absolute path so run and report always read/write the same file regardless
// of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
