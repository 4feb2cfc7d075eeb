// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/aa/internal/fixed"

// Line draws an antialiased line from (x1, y1) to (x2, y2) with Xiaolin
// Wu's algorithm in 28.4 fixed point.
//
// The line is stepped one pixel at a time along its major axis, both
// endpoints included. At every step the minor position is recomputed from
// the endpoints, so long lines do not drift, and its coverage is split
// between the two pixels straddling it. The two coverages always sum to
// fixed.One. Endpoints get no special treatment: with integer endpoints
// the formula already gives them full coverage.
//
// The minor position is kept as an integer plus a 4-bit fraction, so any
// int coordinates are exact. When b is a Clipper, steps that cannot reach
// its rectangle are skipped.
func Line(b Blitter, x1, y1, x2, y2 int) {
	steep := absDiff(y1, y2) > absDiff(x1, x2)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	start, end := x1, x2
	if c, ok := b.(Clipper); ok {
		r := c.ClipRect()
		majorMin, majorMax, minorMin, minorMax := r.Min.X, r.Max.X, r.Min.Y, r.Max.Y
		if steep {
			majorMin, majorMax, minorMin, minorMax = r.Min.Y, r.Max.Y, r.Min.X, r.Max.X
		}
		// Coverage lands on rows [min(y1, y2), max(y1, y2)+1].
		if max(y1, y2) < minorMin-1 || min(y1, y2) >= minorMax {
			return
		}
		start = max(start, majorMin)
		end = min(end, majorMax-1)
	}
	if start > end {
		return
	}

	m := newMinorStepper(x1, y1, x2, y2)
	for x := start; ; x++ {
		iy, frac := m.at(x)

		if steep {
			b.BlitAnti(iy, x, fixed.One-frac)
			b.BlitAnti(iy+1, x, frac)
		} else {
			b.BlitAnti(x, iy, fixed.One-frac)
			b.BlitAnti(x, iy+1, frac)
		}
		if x == end {
			return
		}
	}
}

// minorStepper evaluates y1 + (x-x1)*(y2-y1)/(x2-x1) for x in [x1, x2],
// rounded half away from zero to a 4-bit fraction.
type minorStepper struct {
	x1, y1 int
	dx, dy uint64 // magnitudes
	down   bool   // y decreases as x grows
}

func newMinorStepper(x1, y1, x2, y2 int) minorStepper {
	return minorStepper{
		x1:   x1,
		y1:   y1,
		dx:   absDiff(x1, x2),
		dy:   absDiff(y1, y2),
		down: y2 < y1,
	}
}

// at returns the integer part and fraction of the minor position at x.
func (m minorStepper) at(x int) (int, fixed.Scalar) {
	// The quotient never exceeds dy, so it cannot overflow.
	q, f := fixed.MulDiv(uint64(x)-uint64(m.x1), m.dy, m.dx)

	if !m.down {
		return m.y1 + int(q), f
	}
	if f == 0 {
		return m.y1 - int(q), 0
	}
	return m.y1 - int(q) - 1, fixed.One - f
}

// absDiff returns |a-b| without overflow.
func absDiff(a, b int) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}
