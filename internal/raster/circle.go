// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"

	"github.com/gogpu/aa/internal/fixed"
)

// Bounds for the automatic number of quarter-circle samples.
const (
	minCircleSteps = 4
	maxCircleSteps = 90
)

// CircleSteps returns the default number of samples per quarter circle
// for radius r: one per pixel of radius, within [4, 90].
func CircleSteps(r int) int {
	return min(max(r, minCircleSteps), maxCircleSteps)
}

// CircleOutline draws an antialiased circle of radius r around (cx, cy).
//
// Only the first quadrant is sampled, at steps evenly spaced angles
// from the trig table. Every chord between adjacent samples is drawn
// four times, mirrored across both axes, to close the circle. steps <= 0
// selects CircleSteps(r).
func CircleOutline(b Blitter, cx, cy, r, steps int) {
	if r <= 0 {
		return
	}
	if steps <= 0 {
		steps = CircleSteps(r)
	}

	px, py := r, 0
	for i := 1; i <= steps; i++ {
		q := CirclePoint(r, i, steps)
		x, y := q.X, q.Y

		Line(b, cx+px, cy+py, cx+x, cy+y)
		Line(b, cx-px, cy+py, cx-x, cy+y)
		Line(b, cx+px, cy-py, cx+x, cy-y)
		Line(b, cx-px, cy-py, cx-x, cy-y)

		px, py = x, y
	}
}

// CirclePoint returns sample i of steps on the first quadrant of a
// circle of radius r around the origin. Sample 0 is (r, 0) and sample
// steps is (0, r).
func CirclePoint(r, i, steps int) image.Point {
	angle := int32(fixed.TrigMaxAngle / 4 * i / steps)
	return image.Point{
		X: scaleTrig(r, fixed.Cos(angle)),
		Y: scaleTrig(r, fixed.Sin(angle)),
	}
}

// FillDisk paints a solid disk of radius r around (cx, cy) with the
// midpoint circle algorithm. r == 0 paints the centre pixel only.
//
// Every pixel is painted exactly once: the rows near the centre, cy±x,
// get one span per step, and the rows near the top and bottom, cy±y, get
// one span when the walk leaves them, at their widest.
func FillDisk(b Blitter, cx, cy, r int) {
	if r < 0 {
		return
	}

	x, y := 0, r
	d := 1 - r
	for x <= y {
		b.BlitH(cx-y, cy+x, 2*y+1)
		if x > 0 {
			b.BlitH(cx-y, cy-x, 2*y+1)
		}

		if d < 0 {
			d += 2*x + 3
		} else {
			if x < y {
				b.BlitH(cx-x, cy+y, 2*x+1)
				b.BlitH(cx-x, cy-y, 2*x+1)
			}
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

// FillCircle paints a disk of radius r-1 solid and smooths its boundary
// with an antialiased outline at radius r.
func FillCircle(b Blitter, cx, cy, r, steps int) {
	if r <= 0 {
		return
	}
	FillDisk(b, cx, cy, r-1)
	CircleOutline(b, cx, cy, r, steps)
}

// scaleTrig returns round(r * v / TrigMaxRatio) for v >= 0.
func scaleTrig(r int, v int32) int {
	return int((int64(r)*int64(v) + fixed.TrigMaxRatio/2) / fixed.TrigMaxRatio)
}
