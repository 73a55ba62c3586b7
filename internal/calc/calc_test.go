package calc

import (
	"errors"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "small numbers", a: 5, b: 3, expected: 8},
		{name: "zero operands", a: 0, b: 0, expected: 0},
		{name: "negative and positive", a: -4, b: 9, expected: 5},
		{name: "both negative", a: -2, b: -3, expected: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Add(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestAdd_Commutative(t *testing.T) {
	pairs := []struct{ a, b int }{
		{2, 7},
		{-4, 11},
		{0, 13},
		{-6, -9},
	}

	for _, pair := range pairs {
		if Add(pair.a, pair.b) != Add(pair.b, pair.a) {
			t.Errorf("expected Add(%d, %d) to equal Add(%d, %d)", pair.a, pair.b, pair.b, pair.a)
		}
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "positive result", a: 9, b: 4, expected: 5},
		{name: "negative result", a: 4, b: 9, expected: -5},
		{name: "subtract negative", a: 4, b: -9, expected: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Subtract(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "positive operands", a: 6, b: 7, expected: 42},
		{name: "by zero", a: 41, b: 0, expected: 0},
		{name: "mixed signs", a: -3, b: 5, expected: -15},
		{name: "both negative", a: -3, b: -4, expected: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Multiply(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "exact division", a: 10, b: 2, expected: 5},
		{name: "truncates positive", a: 7, b: 2, expected: 3},
		{name: "truncates toward zero with negative dividend", a: -7, b: 2, expected: -3},
		{name: "truncates toward zero with negative divisor", a: 7, b: -2, expected: -3},
		{name: "both negative", a: -7, b: -2, expected: 3},
		{name: "dividend smaller than divisor", a: 1, b: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Divide(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestDivide_ByZero(t *testing.T) {
	_, err := Divide(10, 0)
	if err == nil {
		t.Fatal("expected error for zero divisor")
	}
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}
