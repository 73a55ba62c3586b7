package ui

import "ctr/internal/domain"

// Viewer displays run failures in an interactive TUI
type Viewer interface {
	View(results *domain.ReportOutput) error
}
