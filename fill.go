// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aa

import (
	"image"

	"github.com/gogpu/aa/framebuffer"
	"github.com/gogpu/aa/internal/raster"
)

// FillPath fills path in c and smooths its boundary with an antialiased
// outline.
//
// The interior is found by burning the outline into a 1-bit mask and
// flood filling from a seed next to the first edge, so the path should be
// simple and wound clockwise. Paths of one or two points are drawn as
// their outline only. A nil or empty path draws nothing.
func FillPath(ctx Context, path *Path, c Color) {
	if ctx == nil || path == nil || len(path.Points) == 0 {
		return
	}
	pts, bbox := path.Transformed()
	if len(pts) < 3 {
		drawOutline(ctx, pts, c)
		return
	}

	if !Antialiased || !drawOnView(ctx, "FillPath", func(v *framebuffer.View) {
		fillInterior(v, pts, bbox, c)
	}) {
		withFill(ctx, c, func() { ctx.FillPolygon(pts) })
		return
	}
	drawOutline(ctx, pts, c)
}

// DrawPathOutline draws the closed outline of path with antialiased
// lines. A nil or empty path draws nothing.
func DrawPathOutline(ctx Context, path *Path, c Color) {
	if ctx == nil || path == nil || len(path.Points) == 0 {
		return
	}
	pts, _ := path.Transformed()
	drawOutline(ctx, pts, c)
}

// fillInterior paints the pixels strictly inside the outline through pts.
// The outline pixels themselves are left for drawOutline.
func fillInterior(v *framebuffer.View, pts []image.Point, bbox image.Rectangle, c Color) {
	m, err := raster.NewMask(bbox)
	if err != nil {
		Logger().Warn("path fill skipped", "bounds", bbox, "err", err)
		return
	}
	m.BurnPolygon(pts)

	seed := raster.SeedPoint(pts)
	if !seed.In(bbox) {
		Logger().Warn("fill seed outside path bounds", "seed", seed, "bounds", bbox)
		return
	}

	stats := raster.FloodFill(raster.NewViewBlitter(v, c), m, seed, v.Bounds())
	Logger().Debug("path filled",
		"points", len(pts),
		"bounds", bbox,
		"maskBytes", m.Stride()*m.Height(),
		"spans", stats.Spans,
		"pixels", stats.Painted,
		"peakQueue", stats.PeakQueue,
	)
}

// drawOutline draws every edge of the closed outline through pts, all in
// one capture of the frame buffer.
func drawOutline(ctx Context, pts []image.Point, c Color) {
	if Antialiased && drawOnView(ctx, "DrawPathOutline", func(v *framebuffer.View) {
		b := raster.NewViewBlitter(v, c)
		forEachEdge(pts, func(p, q image.Point) {
			raster.Line(b, p.X, p.Y, q.X, q.Y)
		})
	}) {
		return
	}
	withStroke(ctx, c, func() { ctx.DrawPolygonOutline(pts) })
}

// forEachEdge calls fn for each edge of the closed polygon through pts.
// A single point is one degenerate edge and two points are one edge, so
// no pixel is blended twice by the same edge.
func forEachEdge(pts []image.Point, fn func(p, q image.Point)) {
	switch len(pts) {
	case 0:
		return
	case 1:
		fn(pts[0], pts[0])
		return
	case 2:
		fn(pts[0], pts[1])
		return
	}
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		if p == q {
			continue
		}
		fn(p, q)
	}
}
