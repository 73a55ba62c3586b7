package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary directory structure for testing
	tmpDir, err := os.MkdirTemp("", "ctr-scan-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create suite directory structure
	suiteDirs := []string{
		"suites/basic",
		"suites/edge",
		"vendor",
		"node_modules",
		".hidden",
	}
	for _, dir := range suiteDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	// Create suite files
	suiteFiles := []string{
		"suites/basic/addition_checks.yaml",
		"suites/basic/division_checks.yml",
		"suites/edge/truncation_checks.yaml",
		"vendor/skipped_checks.yaml",
		"node_modules/skipped_checks.yaml",
		".hidden/skipped_checks.yaml",
		"suites/basic/notes.yaml",
		"suites/basic/readme.txt",
	}
	for _, file := range suiteFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("checks: []"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"vendor", "node_modules"})

	t.Run("scans suite files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Should find 3 suite files, not the ones in vendor/node_modules/.hidden
		if len(results) != 3 {
			t.Errorf("expected 3 suite files, got %d: %v", len(results), results)
		}
	})

	t.Run("returns files in stable lexical order", func(t *testing.T) {
		first, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("expected stable results, got %d then %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("expected %s at position %d, got %s", first[i], i, second[i])
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		suiteFile := filepath.Join(tmpDir, "suitefile.txt")
		os.WriteFile(suiteFile, []byte("checks: []"), 0644)
		_, err := scanner.Scan(suiteFile)
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}
