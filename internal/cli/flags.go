package cli

import "ctr/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:     f.Filter,
		SuiteDir:   f.SuiteDir,
		FailFast:   f.FailFast,
		OnlyFailed: f.OnlyFailed,
		Record:     f.Record,
		Verbose:    f.Verbose,
		Limit:      f.Limit,
	}
}
