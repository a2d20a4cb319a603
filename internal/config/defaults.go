package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultPlanFile is the default plan file name
	DefaultPlanFile = "tdep.yaml"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".tdep"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for plan files
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"testdata",
	"bin",
	"dist",
}
