package execution

import (
	"errors"
	"fmt"
	"testing"

	"ctr/internal/assert"
	"ctr/internal/calc"
	"ctr/internal/domain"
)

func TestRunner_Run(t *testing.T) {
	runner := NewRunner(nil)

	t.Run("completed procedure passes", func(t *testing.T) {
		outcome := runner.Run(domain.TestCase{Name: "add_small_numbers", Proc: func() error {
			assert.Equal(8, calc.Add(5, 3))
			return nil
		}})

		if outcome.Status != domain.StatusPassed {
			t.Errorf("expected %s, got %s", domain.StatusPassed, outcome.Status)
		}
		if outcome.Message != "" {
			t.Errorf("expected empty message, got %q", outcome.Message)
		}
		if outcome.Name != "add_small_numbers" {
			t.Errorf("expected name add_small_numbers, got %s", outcome.Name)
		}
	})

	t.Run("assertion failure is recorded as failed", func(t *testing.T) {
		outcome := runner.Run(domain.TestCase{Name: "add_wrong", Proc: func() error {
			assert.Equal(5, calc.Add(2, 2))
			return nil
		}})

		if outcome.Status != domain.StatusFailed {
			t.Errorf("expected %s, got %s", domain.StatusFailed, outcome.Status)
		}
		expected := "expected 5, got 4"
		if outcome.Message != expected {
			t.Errorf("expected %q, got %q", expected, outcome.Message)
		}
	})

	t.Run("assertion failure returned as wrapped error still fails", func(t *testing.T) {
		outcome := runner.Run(domain.TestCase{Name: "wrapped_failure", Proc: func() error {
			return fmt.Errorf("check body: %w", &assert.Failure{Expected: "1", Actual: "2"})
		}})

		if outcome.Status != domain.StatusFailed {
			t.Errorf("expected %s, got %s", domain.StatusFailed, outcome.Status)
		}
		expected := "expected 1, got 2"
		if outcome.Message != expected {
			t.Errorf("expected %q, got %q", expected, outcome.Message)
		}
	})

	t.Run("returned error is recorded as errored", func(t *testing.T) {
		outcome := runner.Run(domain.TestCase{Name: "divide_without_guard", Proc: func() error {
			_, err := calc.Divide(10, 0)
			return err
		}})

		if outcome.Status != domain.StatusErrored {
			t.Errorf("expected %s, got %s", domain.StatusErrored, outcome.Status)
		}
		if outcome.Message != "division by zero" {
			t.Errorf("expected %q, got %q", "division by zero", outcome.Message)
		}
	})

	t.Run("unexpected panic is recorded as errored", func(t *testing.T) {
		outcome := runner.Run(domain.TestCase{Name: "panics", Proc: func() error {
			panic("boom")
		}})

		if outcome.Status != domain.StatusErrored {
			t.Errorf("expected %s, got %s", domain.StatusErrored, outcome.Status)
		}
		if outcome.Message != "panic: boom" {
			t.Errorf("expected %q, got %q", "panic: boom", outcome.Message)
		}
		if len(outcome.StackTrace) == 0 {
			t.Error("expected stack trace for unexpected panic")
		}
	})

	t.Run("nil procedure is recorded as errored", func(t *testing.T) {
		outcome := runner.Run(domain.TestCase{Name: "empty"})

		if outcome.Status != domain.StatusErrored {
			t.Errorf("expected %s, got %s", domain.StatusErrored, outcome.Status)
		}
	})

	t.Run("sentinel errors pass through unmodified", func(t *testing.T) {
		sentinel := errors.New("storage unavailable")
		outcome := runner.Run(domain.TestCase{Name: "custom_error", Proc: func() error {
			return sentinel
		}})

		if outcome.Status != domain.StatusErrored {
			t.Errorf("expected %s, got %s", domain.StatusErrored, outcome.Status)
		}
		if outcome.Message != sentinel.Error() {
			t.Errorf("expected %q, got %q", sentinel.Error(), outcome.Message)
		}
	})
}
