package discovery

import (
	"path/filepath"
	"strings"

	"ctr/internal/domain"
)

// Filter filters checks by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters checks by name pattern using wildcard matching.
// Supports patterns like "divide_*" or "*zero*". Relative order of the
// kept checks is preserved.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase

	for _, tc := range cases {
		caseName := tc.Name

		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, caseName)
		if err == nil && matched {
			filtered = append(filtered, tc)
			continue
		}

		// If pattern contains wildcards but filepath.Match didn't match,
		// try a more flexible substring match for patterns like "*zero*"
		if strings.Contains(pattern, "*") {
			// Remove wildcards and check if the remaining parts appear in the name
			patternParts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range patternParts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(caseName, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, tc)
				continue
			}
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
			if strings.Contains(caseName, pattern) {
				filtered = append(filtered, tc)
			}
		}
	}

	return filtered
}
