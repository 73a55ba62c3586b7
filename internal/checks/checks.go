// Package checks defines the built-in verification suite for the calc
// library. Cases are registered in a fixed order so report output stays
// stable between runs.
package checks

import (
	"errors"
	"fmt"

	"ctr/internal/assert"
	"ctr/internal/calc"
	"ctr/internal/domain"
	"ctr/internal/registry"
)

// RegisterAll adds every built-in check to the registry.
func RegisterAll(reg *registry.Registry) error {
	for _, tc := range builtin() {
		if err := reg.Register(tc.Name, tc.Proc); err != nil {
			return fmt.Errorf("register builtin check %s: %w", tc.Name, err)
		}
	}
	return nil
}

// builtin returns the built-in suite in registration order.
func builtin() []domain.TestCase {
	return []domain.TestCase{
		{Name: "add_small_numbers", Proc: func() error {
			assert.Equal(8, calc.Add(5, 3))
			return nil
		}},
		{Name: "add_is_commutative", Proc: func() error {
			assert.Equal(calc.Add(2, 7), calc.Add(7, 2))
			assert.Equal(calc.Add(-4, 11), calc.Add(11, -4))
			return nil
		}},
		{Name: "add_negative_operands", Proc: func() error {
			assert.Equal(-9, calc.Add(-4, -5))
			assert.Equal(0, calc.Add(-13, 13))
			return nil
		}},
		{Name: "subtract_inverts_add", Proc: func() error {
			assert.Equal(12, calc.Subtract(calc.Add(12, 30), 30))
			return nil
		}},
		{Name: "multiply_by_zero", Proc: func() error {
			assert.Equal(0, calc.Multiply(41, 0))
			return nil
		}},
		{Name: "divide_exact", Proc: func() error {
			quotient, err := calc.Divide(10, 2)
			if err != nil {
				return err
			}
			assert.Equal(5, quotient)
			return nil
		}},
		{Name: "divide_truncates_toward_zero", Proc: func() error {
			for _, c := range []struct{ a, b, want int }{
				{7, 2, 3},
				{-7, 2, -3},
				{7, -2, -3},
				{-7, -2, 3},
			} {
				quotient, err := calc.Divide(c.a, c.b)
				if err != nil {
					return err
				}
				assert.Equal(c.want, quotient)
			}
			return nil
		}},
		{Name: "divide_by_zero_rejected", Proc: func() error {
			_, err := calc.Divide(10, 0)
			if !errors.Is(err, calc.ErrDivisionByZero) {
				assert.Equal(calc.ErrDivisionByZero, err)
			}
			return nil
		}},
	}
}
