// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixed

import "math"

// Angle and ratio ranges of the trig lookup.
const (
	// TrigMaxAngle is one full turn. Angles are taken modulo this value.
	TrigMaxAngle = 0x10000
	// TrigMaxRatio is the value Sin and Cos return for 1.0.
	TrigMaxRatio = 0xffff

	quarterTurn = TrigMaxAngle / 4
)

// The table has 1<<trigTableBits entries per quarter turn.
const (
	trigTableBits  = 10
	trigTableSize  = 1 << trigTableBits
	trigIndexShift = 14 - trigTableBits // quarterTurn is 1<<14
)

// sinQuarter holds sin over [0, 90] degrees scaled to TrigMaxRatio.
// The extra entry makes the 90 degree sample exact.
var sinQuarter [trigTableSize + 1]int32

func init() {
	for i := range sinQuarter {
		rad := float64(i) * (math.Pi / 2) / trigTableSize
		sinQuarter[i] = int32(math.Round(math.Sin(rad) * TrigMaxRatio))
	}
}

// Sin returns the sine of angle scaled by TrigMaxRatio.
// A full turn is TrigMaxAngle; negative angles wrap.
func Sin(angle int32) int32 {
	return sinLookup(int(angle))
}

// Cos returns the cosine of angle scaled by TrigMaxRatio.
func Cos(angle int32) int32 {
	return sinLookup(int(angle) + quarterTurn)
}

func sinLookup(a int) int32 {
	a &= TrigMaxAngle - 1
	idx := (a % quarterTurn) >> trigIndexShift
	switch a / quarterTurn {
	case 0:
		return sinQuarter[idx]
	case 1:
		return sinQuarter[trigTableSize-idx]
	case 2:
		return -sinQuarter[idx]
	default:
		return -sinQuarter[trigTableSize-idx]
	}
}

// AngleFromDegrees converts whole degrees to a turn fraction.
func AngleFromDegrees(deg int) int32 {
	return int32(TrigMaxAngle * deg / 360)
}
