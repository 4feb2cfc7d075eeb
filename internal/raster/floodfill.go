// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "image"

// FillStats describes the work done by one FloodFill call.
type FillStats struct {
	Spans     int // spans scanned
	Pixels    int // mask pixels claimed, including clipped ones
	Painted   int // pixels handed to the blitter
	PeakQueue int // largest number of pending seeds
}

// initialSeedCapacity is the seed queue's starting size. The queue grows
// by doubling when full.
const initialSeedCapacity = 32

// SeedPoint picks the flood-fill start for a clockwise path: the midpoint
// of its first edge, moved one pixel diagonally towards the interior.
//
// The direction is chosen from the first edge alone, so the seed can land
// outside the polygon when the interior next to that edge is thinner than
// about one and a half pixels, or when the path winds counter-clockwise.
func SeedPoint(pts []image.Point) image.Point {
	switch len(pts) {
	case 0:
		return image.Point{}
	case 1:
		return pts[0]
	}

	p0, p1 := pts[0], pts[1]
	seed := image.Point{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}

	// With y growing downwards a clockwise outline keeps its interior on
	// the right of the direction of travel.
	switch {
	case p1.X >= p0.X && p1.Y <= p0.Y: // up and right
		seed = seed.Add(image.Pt(1, 1))
	case p1.X >= p0.X: // down and right
		seed = seed.Add(image.Pt(-1, 1))
	case p1.Y > p0.Y: // down and left
		seed = seed.Add(image.Pt(-1, -1))
	default: // up and left
		seed = seed.Add(image.Pt(1, -1))
	}
	return seed
}

// FloodFill paints the region of unset mask bits 4-connected to seed.
//
// seed is in absolute coordinates. Each popped seed is widened into a span
// by scanning right then left over unset bits; the bits are set as they
// are visited, which bounds the work by the mask area and guarantees no
// pixel is painted twice. The rows above and below the span are then
// scanned and every run of unset bits inside the span's columns adds
// exactly one new seed. Spans are clipped to clip, the frame rectangle,
// before they reach the blitter.
func FloodFill(b Blitter, m *Mask, seed image.Point, clip image.Rectangle) FillStats {
	var stats FillStats

	start := seed.Sub(m.origin)
	seeds := make([]image.Point, 0, initialSeedCapacity)
	seeds = append(seeds, start)
	stats.PeakQueue = 1

	for len(seeds) > 0 {
		last := len(seeds) - 1
		p := seeds[last]
		seeds = seeds[:last]

		x, y := p.X, p.Y
		if x < 0 || y < 0 || x >= m.width || y >= m.height || m.Get(x, y) {
			continue
		}

		east := x
		for east < m.width && !m.Get(east, y) {
			m.Set(east, y)
			east++
		}
		west := x - 1
		for west >= 0 && !m.Get(west, y) {
			m.Set(west, y)
			west--
		}

		stats.Spans++
		stats.Pixels += east - west - 1
		stats.Painted += paintSpan(b, clip, west+1+m.origin.X, east+m.origin.X, y+m.origin.Y)

		seeds = m.appendRuns(seeds, west+1, east, y-1)
		seeds = m.appendRuns(seeds, west+1, east, y+1)
		stats.PeakQueue = max(stats.PeakQueue, len(seeds))
	}

	return stats
}

// appendRuns appends one seed per run of unset bits in row y between
// columns x0 (inclusive) and x1 (exclusive).
func (m *Mask) appendRuns(seeds []image.Point, x0, x1, y int) []image.Point {
	if y < 0 || y >= m.height {
		return seeds
	}
	inRun := false
	for x := x0; x < x1; x++ {
		if m.Get(x, y) {
			inRun = false
			continue
		}
		if !inRun {
			seeds = append(seeds, image.Point{X: x, Y: y})
			inRun = true
		}
	}
	return seeds
}

// paintSpan paints [x0, x1) of row y, skipping pixels outside clip, and
// returns the number of pixels painted.
func paintSpan(b Blitter, clip image.Rectangle, x0, x1, y int) int {
	if y < clip.Min.Y || y >= clip.Max.Y {
		return 0
	}
	x0 = max(x0, clip.Min.X)
	x1 = min(x1, clip.Max.X)
	if x1 <= x0 {
		return 0
	}
	b.BlitH(x0, y, x1-x0)
	return x1 - x0
}
