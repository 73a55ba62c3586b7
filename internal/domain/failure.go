package domain

// CaseFailure represents a non-passed check in a persisted run
type CaseFailure struct {
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	StackTrace []string `json:"stack_trace,omitempty"`
	DurationMs int64    `json:"duration_ms"`
	Resolved   bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
