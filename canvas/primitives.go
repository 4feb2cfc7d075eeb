// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"math"
	"slices"
)

// DrawLine draws an exact one pixel line from p0 to p1 in the stroke
// colour, both endpoints included. Pixels outside the frame are skipped.
func (c *Canvas) DrawLine(p0, p1 image.Point) {
	col := c.view.Format.Quantize(c.stroke)
	bresenham(p0, p1, func(x, y int) {
		c.view.Set(x, y, col)
	})
}

// FillRect fills r, clipped to the frame, in the fill colour.
func (c *Canvas) FillRect(r image.Rectangle) {
	r = r.Canon().Intersect(c.view.Bounds())
	col := c.view.Format.Quantize(c.fill)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.view.Set(x, y, col)
		}
	}
}

// FillPolygon fills the closed polygon through pts in the fill colour
// with the even-odd rule. A pixel is filled when its centre is inside.
func (c *Canvas) FillPolygon(pts []image.Point) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	minY = max(minY, 0)
	maxY = min(maxY, c.view.Height)

	col := c.view.Format.Quantize(c.fill)
	xs := make([]float64, 0, len(pts))
	for y := minY; y < maxY; y++ {
		xs = crossings(xs[:0], pts, y)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(math.Ceil(xs[i]-0.5)), 0)
			x1 := min(int(math.Ceil(xs[i+1]-0.5)), c.view.Width)
			for x := x0; x < x1; x++ {
				c.view.Set(x, y, col)
			}
		}
	}
}

// DrawPolygonOutline draws the closed outline through pts in the stroke
// colour.
func (c *Canvas) DrawPolygonOutline(pts []image.Point) {
	switch len(pts) {
	case 0:
		return
	case 1:
		c.DrawLine(pts[0], pts[0])
		return
	}
	for i, p := range pts {
		c.DrawLine(p, pts[(i+1)%len(pts)])
	}
}

// crossings appends the sorted x positions where the row of pixel centres
// at y+0.5 crosses the polygon's edges. Edges are half open in y so a
// vertex on the row is counted once.
func crossings(xs []float64, pts []image.Point, y int) []float64 {
	yc := float64(y) + 0.5
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		if p.Y == q.Y {
			continue
		}
		lo, hi := min(p.Y, q.Y), max(p.Y, q.Y)
		if y < lo || y >= hi {
			continue
		}
		t := (yc - float64(p.Y)) / float64(q.Y-p.Y)
		xs = append(xs, float64(p.X)+t*float64(q.X-p.X))
	}
	slices.Sort(xs)
	return xs
}

// bresenham calls plot for every pixel of the integer line from p0 to p1.
func bresenham(p0, p1 image.Point, plot func(x, y int)) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	x, y := p0.X, p0.Y
	e := dx + dy
	for {
		plot(x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
