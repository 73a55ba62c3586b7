package domain

import (
	"fmt"
	"time"
)

// Report represents the aggregated result of one full run.
// Outcomes are kept in execution order; Add is the only way outcomes are
// recorded, so the counters always partition the outcome sequence by status.
type Report struct {
	Outcomes []Outcome
	Passed   int
	Failed   int
	Errored  int
	Duration time.Duration
}

// Add records an outcome and updates the aggregate counters.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusPassed:
		r.Passed++
	case StatusFailed:
		r.Failed++
	case StatusErrored:
		r.Errored++
	}
}

// Total returns the number of recorded outcomes.
func (r *Report) Total() int {
	return len(r.Outcomes)
}

// AllPassed reports whether every recorded outcome passed.
func (r *Report) AllPassed() bool {
	return r.Failed == 0 && r.Errored == 0
}

// Summary renders the final line of the report text.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d passed, %d failed, %d errored", r.Passed, r.Failed, r.Errored)
}

// Meta summarizes the report for persistence.
func (r *Report) Meta() ReportMeta {
	return ReportMeta{
		TotalCases:      r.Total(),
		Passed:          r.Passed,
		Failed:          r.Failed,
		Errored:         r.Errored,
		Duration:        r.Duration.String(),
		DurationSeconds: r.Duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}

// Failures returns a persistable record for every non-passed outcome,
// in execution order.
func (r *Report) Failures() []CaseFailure {
	failures := make([]CaseFailure, 0, r.Failed+r.Errored)
	for _, o := range r.Outcomes {
		if o.Status == StatusPassed {
			continue
		}
		failures = append(failures, CaseFailure{
			Name:       o.Name,
			Status:     string(o.Status),
			Message:    o.Message,
			StackTrace: o.StackTrace,
			DurationMs: o.Duration.Milliseconds(),
		})
	}
	return failures
}
