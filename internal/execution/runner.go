package execution

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"go.uber.org/zap"

	"ctr/internal/assert"
	"ctr/internal/domain"
)

// Runner executes a single check inside an isolation boundary
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a new Runner
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run executes one check and records its outcome. Nothing raised inside the
// procedure escapes past this boundary, so one broken check cannot take the
// rest of the run down with it.
func (r *Runner) Run(tc domain.TestCase) domain.Outcome {
	r.logger.Debug("running check", zap.String("name", tc.Name))
	startTime := time.Now()

	status, message, stack := invoke(tc)

	outcome := domain.Outcome{
		Name:       tc.Name,
		Status:     status,
		Message:    message,
		StackTrace: stack,
		Duration:   time.Since(startTime),
	}

	r.logger.Debug("check finished",
		zap.String("name", tc.Name),
		zap.String("status", string(status)),
		zap.Duration("duration", outcome.Duration))

	return outcome
}

// invoke runs the procedure and classifies the result. The deferred recover
// is the only place assertion failures and unexpected panics are caught.
func invoke(tc domain.TestCase) (status domain.Status, message string, stack []string) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if failure, ok := rec.(*assert.Failure); ok {
			status = domain.StatusFailed
			message = failure.Error()
			return
		}
		status = domain.StatusErrored
		message = fmt.Sprintf("panic: %v", rec)
		stack = stackLines()
	}()

	if tc.Proc == nil {
		return domain.StatusErrored, "check has no procedure", nil
	}

	if err := tc.Proc(); err != nil {
		var failure *assert.Failure
		if errors.As(err, &failure) {
			return domain.StatusFailed, failure.Error(), nil
		}
		return domain.StatusErrored, err.Error(), nil
	}

	return domain.StatusPassed, "", nil
}

// stackLines captures the current goroutine stack as trimmed lines.
func stackLines() []string {
	raw := strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines
}
