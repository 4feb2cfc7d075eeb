// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fixed implements the 28.4 fixed-point scalar shared by the
// rasterizer for pixel coverage, and the integer trigonometry used to
// rotate paths.
//
// Four fractional bits give sixteen coverage levels per pixel, which is
// as much as an 8-bit colour channel can usefully resolve after blending.
package fixed

import "math/bits"

// Scalar is a signed 28.4 fixed-point value. One represents 1.0.
type Scalar int32

// Scalar constants.
const (
	// Shift is the number of fractional bits in a Scalar.
	Shift = 4
	// One represents 1.0 (16). It is also full pixel coverage.
	One Scalar = 1 << Shift
	// Half represents 0.5. It is the rounding bias applied before a
	// final shift.
	Half Scalar = One / 2
)

// MulDiv returns a*b/den split into its integer part and a fraction in
// [0, One), the fraction rounded to the nearest sixteenth with halves
// rounding up. A fraction that rounds to One carries into the integer
// part.
//
// The product is formed in 128 bits, so no input overflows as long as
// the quotient fits in 64 bits. MulDiv returns 0, 0 when den is zero.
func MulDiv(a, b, den uint64) (uint64, Scalar) {
	if den == 0 {
		return 0, 0
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= den {
		// Quotient overflow; saturate.
		return ^uint64(0), 0
	}
	q, r := bits.Div64(hi, lo, den)

	hi, lo = bits.Mul64(r, uint64(One))
	var carry uint64
	lo, carry = bits.Add64(lo, den/2, 0)
	f, _ := bits.Div64(hi+carry, lo, den)
	if f == uint64(One) {
		return q + 1, 0
	}
	return q, Scalar(f)
}
