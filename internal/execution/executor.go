package execution

import (
	"ctr/internal/domain"
)

// Executor executes checks and returns the run report
type Executor interface {
	Execute(cases []domain.TestCase) (*domain.Report, error)
}
