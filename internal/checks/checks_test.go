package checks

import (
	"errors"
	"testing"

	"ctr/internal/execution"
	"ctr/internal/registry"
)

func TestRegisterAll(t *testing.T) {
	reg := registry.New()

	if err := RegisterAll(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatal("expected built-in checks to be registered")
	}

	t.Run("names are unique", func(t *testing.T) {
		err := RegisterAll(reg)
		if !errors.Is(err, registry.ErrDuplicateTestName) {
			t.Errorf("expected duplicate registration to fail, got %v", err)
		}
	})
}

func TestBuiltinSuitePasses(t *testing.T) {
	reg := registry.New()
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var executor execution.Executor = execution.NewSequentialExecutor(execution.NewRunner(nil), nil)
	report, err := executor.Execute(reg.Cases())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.AllPassed() {
		for _, outcome := range report.Outcomes {
			t.Logf("%s", outcome.Line())
		}
		t.Errorf("expected the built-in suite to pass, got %s", report.Summary())
	}
	if report.Total() != reg.Len() {
		t.Errorf("expected %d outcomes, got %d", reg.Len(), report.Total())
	}
}
