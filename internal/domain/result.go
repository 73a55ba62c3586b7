package domain

import (
	"fmt"
	"time"
)

// Status classifies the outcome of executing a single check
type Status string

const (
	StatusPassed  Status = "PASSED"
	StatusFailed  Status = "FAILED"
	StatusErrored Status = "ERRORED"
)

// Outcome represents the result of executing a single check.
// Outcomes are recorded once and never mutated afterwards.
type Outcome struct {
	Name       string        // Name of the executed check
	Status     Status        // Terminal status
	Message    string        // Assertion message or error description
	StackTrace []string      // Captured stack, only set for unexpected panics
	Duration   time.Duration // Time taken to execute
}

// Line renders the report line for this outcome.
func (o Outcome) Line() string {
	switch o.Status {
	case StatusFailed, StatusErrored:
		return fmt.Sprintf("%s: %s - %s", o.Name, o.Status, o.Message)
	default:
		return fmt.Sprintf("%s: %s", o.Name, o.Status)
	}
}

// ReportMeta contains metadata about a run
type ReportMeta struct {
	TotalCases      int     `json:"total_cases"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Errored         int     `json:"errored"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// ReportOutput is the complete persisted structure for run results
type ReportOutput struct {
	Meta    ReportMeta    `json:"meta"`
	Details []CaseFailure `json:"details"`
}
