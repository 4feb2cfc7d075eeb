// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixed

import (
	"math"
	"testing"
)

func TestSinCosCardinal(t *testing.T) {
	tests := []struct {
		name    string
		angle   int32
		wantSin int32
		wantCos int32
	}{
		{"zero", 0, 0, TrigMaxRatio},
		{"quarter", TrigMaxAngle / 4, TrigMaxRatio, 0},
		{"half", TrigMaxAngle / 2, 0, -TrigMaxRatio},
		{"three quarters", 3 * TrigMaxAngle / 4, -TrigMaxRatio, 0},
		{"full turn wraps", TrigMaxAngle, 0, TrigMaxRatio},
		{"negative quarter", -TrigMaxAngle / 4, -TrigMaxRatio, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sin(tt.angle); got != tt.wantSin {
				t.Errorf("Sin(%#x) = %d, want %d", tt.angle, got, tt.wantSin)
			}
			if got := Cos(tt.angle); got != tt.wantCos {
				t.Errorf("Cos(%#x) = %d, want %d", tt.angle, got, tt.wantCos)
			}
		})
	}
}

func TestSinMatchesMath(t *testing.T) {
	// One table step is 16 angle units; the worst-case lookup error is the
	// slope of sin over one step.
	const step = 2 * math.Pi * 16 / TrigMaxAngle
	tolerance := step*TrigMaxRatio + 1

	for a := int32(0); a < TrigMaxAngle; a += 97 {
		want := math.Sin(2*math.Pi*float64(a)/TrigMaxAngle) * TrigMaxRatio
		got := float64(Sin(a))
		if math.Abs(got-want) > tolerance {
			t.Fatalf("Sin(%d) = %v, want %v (±%v)", a, got, want, tolerance)
		}
	}
}

func TestAngleFromDegrees(t *testing.T) {
	tests := []struct {
		deg  int
		want int32
	}{
		{0, 0},
		{90, TrigMaxAngle / 4},
		{180, TrigMaxAngle / 2},
		{360, TrigMaxAngle},
		{209, 38047}, // demo start angle
	}

	for _, tt := range tests {
		if got := AngleFromDegrees(tt.deg); got != tt.want {
			t.Errorf("AngleFromDegrees(%d) = %d, want %d", tt.deg, got, tt.want)
		}
	}
}
