// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixed

import (
	"math"
	"testing"
)

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name      string
		a, b, den uint64
		whole     uint64
		frac      Scalar
	}{
		{"one third", 1, 1, 3, 0, 5},
		{"two thirds", 2, 1, 3, 0, 11},
		{"whole", 3, 1, 3, 1, 0},
		{"half", 1, 1, 2, 0, 8},
		{"large", 1000, 1, 7, 142, 14}, // 142.857
		{"rounds into whole", 31, 1, 32, 1, 0},
		{"just below carry", 61, 1, 64, 0, 15},
		{"zero numerator", 0, 9, 4, 0, 0},
		{"zero denominator", 5, 1, 0, 0, 0},
		{"wide product", 1 << 40, 1 << 40, 1 << 41, 1 << 39, 0},
		{"wide fraction", math.MaxUint64 / 2, 1, math.MaxUint64, 0, 8},
		{"overflow saturates", math.MaxUint64, 2, 1, math.MaxUint64, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			whole, frac := MulDiv(tt.a, tt.b, tt.den)
			if whole != tt.whole || frac != tt.frac {
				t.Errorf("MulDiv(%d, %d, %d) = %d, %d; want %d, %d",
					tt.a, tt.b, tt.den, whole, frac, tt.whole, tt.frac)
			}
		})
	}
}

func TestMulDivFractionRange(t *testing.T) {
	for den := uint64(1); den <= 50; den++ {
		for a := uint64(0); a <= den; a++ {
			whole, frac := MulDiv(a, 1, den)
			if frac < 0 || frac >= One {
				t.Fatalf("MulDiv(%d, 1, %d) fraction %d out of range", a, den, frac)
			}
			exact := float64(a) / float64(den)
			got := float64(whole) + float64(frac)/float64(One)
			if d := got - exact; d > 1.0/32+1e-12 || d < -1.0/32-1e-12 {
				t.Fatalf("MulDiv(%d, 1, %d) = %v, exact %v", a, den, got, exact)
			}
		}
	}
}
