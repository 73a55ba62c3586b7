// Package assert provides the assertion primitive used inside check
// procedures. A failed assertion panics with *Failure; the execution
// boundary is the only place that recovers it.
package assert

import (
	"fmt"
	"reflect"
)

// Failure describes a single assertion mismatch
type Failure struct {
	Expected string // Rendered expected value
	Actual   string // Rendered actual value
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("expected %s, got %s", f.Expected, f.Actual)
}

// Equal compares expected and actual for deep equality and panics with a
// *Failure when they differ.
func Equal(expected, actual any) {
	if reflect.DeepEqual(expected, actual) {
		return
	}
	panic(&Failure{
		Expected: fmt.Sprint(expected),
		Actual:   fmt.Sprint(actual),
	})
}
