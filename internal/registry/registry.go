// Package registry maintains the ordered set of checks for a run.
package registry

import (
	"errors"
	"fmt"

	"ctr/internal/domain"
)

// ErrDuplicateTestName is returned by Register when a check with the same
// name was already registered.
var ErrDuplicateTestName = errors.New("duplicate test name")

// ErrEmptyTestName is returned by Register when the check name is empty.
var ErrEmptyTestName = errors.New("empty test name")

// Registry holds registered checks in registration order
type Registry struct {
	cases []domain.TestCase
	names map[string]struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds a check to the run set. Registering a name twice fails with
// ErrDuplicateTestName and leaves the first registration intact.
func (r *Registry) Register(name string, proc domain.Proc) error {
	if name == "" {
		return ErrEmptyTestName
	}
	if _, exists := r.names[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTestName, name)
	}
	r.names[name] = struct{}{}
	r.cases = append(r.cases, domain.TestCase{Name: name, Proc: proc})
	return nil
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	return len(r.cases)
}

// Cases returns the registered checks in registration order. The returned
// slice is a copy; callers may filter or reorder it freely.
func (r *Registry) Cases() []domain.TestCase {
	cases := make([]domain.TestCase, len(r.cases))
	copy(cases, r.cases)
	return cases
}
