package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultSuiteDir is the default suite directory (empty disables discovery)
	DefaultSuiteDir = ""
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "check-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultHistoryLimit is the default number of history rows to list
	DefaultHistoryLimit = 10
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for suite files
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
}
