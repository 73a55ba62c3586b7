package config

import (
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	SuiteDir    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning for suite files
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Filter     string
	SuiteDir   string
	FailFast   bool
	OnlyFailed bool
	Record     bool
	Verbose    bool
	Limit      int
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		SuiteDir:       DefaultSuiteDir,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Flags:          Flags{Limit: DefaultHistoryLimit},
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.Limit <= 0 {
		cfg.Flags.Limit = DefaultHistoryLimit
	}

	return cfg
}

// GetSuiteDir returns the suite directory, using the flag if provided.
// An empty result means no suite discovery is configured; the run consists
// of the built-in checks only.
func (c *Config) GetSuiteDir() string {
	if c.Flags.SuiteDir != "" {
		// If SuiteDir is provided, make it relative to the project path if it's not absolute
		if filepath.IsAbs(c.Flags.SuiteDir) {
			return c.Flags.SuiteDir
		}
		return filepath.Join(c.ProjectPath, c.Flags.SuiteDir)
	}

	if c.SuiteDir == "" {
		return ""
	}
	return filepath.Join(c.ProjectPath, c.SuiteDir)
}

// GetOutputPath returns the full path to the output JSON file (under project so run and failures use the same file).
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
