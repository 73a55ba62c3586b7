package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ctr/internal/assert"
	"ctr/internal/calc"
)

func writeSuiteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write suite file: %v", err)
	}
	return path
}

func TestParser_ParseFile(t *testing.T) {
	parser := NewParser()

	tmpDir, err := os.MkdirTemp("", "ctr-parse-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("parses checks in file order", func(t *testing.T) {
		path := writeSuiteFile(t, tmpDir, "basic_checks.yaml", `version: 1
checks:
  - name: add_two_and_two
    op: add
    a: 2
    b: 2
    want: 4
  - name: divide_rejects_zero
    op: div
    a: 1
    b: 0
    want_err: division_by_zero
  - name: multiply_negatives
    op: mul
    a: -3
    b: -4
    want: 12
`)

		cases, err := parser.ParseFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cases) != 3 {
			t.Fatalf("expected 3 checks, got %d", len(cases))
		}

		expectedNames := []string{"add_two_and_two", "divide_rejects_zero", "multiply_negatives"}
		for i, name := range expectedNames {
			if cases[i].Name != name {
				t.Errorf("expected check %d to be %s, got %s", i, name, cases[i].Name)
			}
		}

		// Every parsed procedure should complete cleanly
		for _, tc := range cases {
			if err := tc.Proc(); err != nil {
				t.Errorf("check %s returned error: %v", tc.Name, err)
			}
		}
	})

	t.Run("mismatched expectation raises assertion failure", func(t *testing.T) {
		path := writeSuiteFile(t, tmpDir, "mismatch_checks.yaml", `checks:
  - name: add_wrong_expectation
    op: add
    a: 2
    b: 2
    want: 5
`)

		cases, err := parser.ParseFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 1 {
			t.Fatalf("expected 1 check, got %d", len(cases))
		}

		defer func() {
			rec := recover()
			if rec == nil {
				t.Fatal("expected assertion failure")
			}
			failure, ok := rec.(*assert.Failure)
			if !ok {
				t.Fatalf("expected *assert.Failure, got %T", rec)
			}
			expected := "expected 5, got 4"
			if failure.Error() != expected {
				t.Errorf("expected %q, got %q", expected, failure.Error())
			}
		}()
		cases[0].Proc()
	})

	t.Run("unguarded division by zero surfaces at run time", func(t *testing.T) {
		path := writeSuiteFile(t, tmpDir, "runtime_checks.yaml", `checks:
  - name: divide_without_guard
    op: div
    a: 10
    b: 0
    want: 0
`)

		cases, err := parser.ParseFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		procErr := cases[0].Proc()
		if !errors.Is(procErr, calc.ErrDivisionByZero) {
			t.Errorf("expected division by zero error, got %v", procErr)
		}
	})

	t.Run("rejects unknown op", func(t *testing.T) {
		path := writeSuiteFile(t, tmpDir, "badop_checks.yaml", `checks:
  - name: modulo_unsupported
    op: mod
    a: 10
    b: 3
    want: 1
`)

		_, err := parser.ParseFile(path)
		if err == nil {
			t.Error("expected error for unknown op")
		}
	})

	t.Run("rejects want_err on non-div op", func(t *testing.T) {
		path := writeSuiteFile(t, tmpDir, "baderr_checks.yaml", `checks:
  - name: add_with_want_err
    op: add
    a: 1
    b: 2
    want_err: division_by_zero
`)

		_, err := parser.ParseFile(path)
		if err == nil {
			t.Error("expected error for want_err on add")
		}
	})

	t.Run("rejects unnamed check", func(t *testing.T) {
		path := writeSuiteFile(t, tmpDir, "unnamed_checks.yaml", `checks:
  - op: add
    a: 1
    b: 2
    want: 3
`)

		_, err := parser.ParseFile(path)
		if err == nil {
			t.Error("expected error for unnamed check")
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		path := writeSuiteFile(t, tmpDir, "typo_checks.yaml", `checks:
  - name: add_with_typo
    op: add
    a: 1
    b: 2
    wnat: 3
`)

		_, err := parser.ParseFile(path)
		if err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.ParseFile("/non/existent/file.yaml")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}
