package execution

import (
	"time"

	"go.uber.org/zap"

	"ctr/internal/domain"
	"ctr/internal/ui"
)

// SequentialExecutor executes checks strictly one at a time, in the order
// given. A check never starts before the previous one has finished.
type SequentialExecutor struct {
	runner   *Runner
	progress *ui.ProgressBar
	logger   *zap.Logger
}

// NewSequentialExecutor creates a new SequentialExecutor
func NewSequentialExecutor(runner *Runner, logger *zap.Logger) *SequentialExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SequentialExecutor{
		runner: runner,
		logger: logger,
	}
}

// SetProgress sets the progress bar updated during execution
func (e *SequentialExecutor) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// Execute runs all checks in order (no fail-fast).
func (e *SequentialExecutor) Execute(cases []domain.TestCase) (*domain.Report, error) {
	return e.ExecuteWithOptions(cases, false)
}

// ExecuteWithOptions runs checks in order with optional fail-fast (stop
// after the first non-passed outcome).
func (e *SequentialExecutor) ExecuteWithOptions(cases []domain.TestCase, failFast bool) (*domain.Report, error) {
	report := &domain.Report{}
	if len(cases) == 0 {
		return report, nil
	}

	startTime := time.Now()
	for _, tc := range cases {
		outcome := e.runner.Run(tc)
		report.Add(outcome)

		if e.progress != nil {
			e.progress.Update(report.Total(), report.Passed, report.Failed+report.Errored)
		}

		if failFast && outcome.Status != domain.StatusPassed {
			e.logger.Debug("stopping run after first failure", zap.String("name", outcome.Name))
			break
		}
	}
	if e.progress != nil {
		e.progress.Finish()
	}
	report.Duration = time.Since(startTime)

	e.logger.Info("run complete",
		zap.Int("total", report.Total()),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Int("errored", report.Errored),
		zap.Duration("duration", report.Duration))

	return report, nil
}
