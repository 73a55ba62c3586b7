// Package history persists run summaries to a database so past runs can be
// compared after the JSON results file has been overwritten.
package history

import (
	"time"

	"ctr/internal/domain"
)

// RunRecord represents one recorded run summary
type RunRecord struct {
	ID              int64
	TotalCases      int
	Passed          int
	Failed          int
	Errored         int
	DurationSeconds float64
	CreatedAt       time.Time
}

// Recorder persists run summaries and lists past runs
type Recorder interface {
	Record(meta domain.ReportMeta) error
	Recent(limit int) ([]RunRecord, error)
	Close() error
}
