package otp

import (
	"strconv"
	"testing"
)

func TestNewNumeric(t *testing.T) {
	t.Run("DefaultsOutOfRangeLengths", func(t *testing.T) {
		for _, digits := range []int{-1, 0, 3, 11} {
			gen := NewNumeric(digits)
			if gen.digits != 6 {
				t.Fatalf("NewNumeric(%d): expected 6 digits, got %d", digits, gen.digits)
			}
		}
	})

	t.Run("KeepsValidLengths", func(t *testing.T) {
		gen := NewNumeric(8)
		if gen.digits != 8 {
			t.Fatalf("expected 8 digits, got %d", gen.digits)
		}
	})
}

func TestNumericGenerate(t *testing.T) {
	gen := NewNumeric(6)

	for range 200 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 characters, got %q", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code is not numeric: %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code out of range: %d", n)
		}
	}
}
