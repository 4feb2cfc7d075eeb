// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aa

import (
	"fmt"
	"image"

	"github.com/gogpu/aa/framebuffer"
	"github.com/gogpu/aa/internal/fixed"
	"github.com/gogpu/aa/internal/raster"
)

// DrawLine draws an antialiased one pixel line from p0 to p1 in c.
//
// Horizontal and vertical lines have nothing to smooth and go to the
// host's exact DrawLine.
func DrawLine(ctx Context, p0, p1 image.Point, c Color) {
	if ctx == nil {
		return
	}
	if Antialiased && p0.X != p1.X && p0.Y != p1.Y {
		if drawOnView(ctx, "DrawLine", func(v *framebuffer.View) {
			raster.Line(raster.NewViewBlitter(v, c), p0.X, p0.Y, p1.X, p1.Y)
		}) {
			return
		}
	}
	withStroke(ctx, c, func() { ctx.DrawLine(p0, p1) })
}

// DrawCircle draws an antialiased circle outline of the given radius.
// A radius <= 0 draws nothing.
func DrawCircle(ctx Context, center image.Point, radius int, c Color, opts ...CircleOption) {
	if ctx == nil || radius <= 0 {
		return
	}
	o := newCircleOptions(opts)
	if Antialiased && drawOnView(ctx, "DrawCircle", func(v *framebuffer.View) {
		raster.CircleOutline(raster.NewViewBlitter(v, c), center.X, center.Y, radius, o.steps)
	}) {
		return
	}
	withStroke(ctx, c, func() { exactCircle(ctx, center, radius, o.steps) })
}

// FillCircle draws a filled circle with an antialiased rim.
// A radius <= 0 draws nothing.
func FillCircle(ctx Context, center image.Point, radius int, c Color, opts ...CircleOption) {
	if ctx == nil || radius <= 0 {
		return
	}
	o := newCircleOptions(opts)
	if Antialiased && drawOnView(ctx, "FillCircle", func(v *framebuffer.View) {
		raster.FillCircle(raster.NewViewBlitter(v, c), center.X, center.Y, radius, o.steps)
	}) {
		return
	}
	withFill(ctx, c, func() { raster.FillDisk(hostBlitter{ctx}, center.X, center.Y, radius) })
}

// drawOnView captures the host frame buffer, runs draw on it and releases
// it. It reports false without drawing when the buffer cannot take
// antialiased pixels, in which case the caller uses the exact primitives.
//
// A missing or malformed buffer counts as drawn: there is nothing to draw
// on, so the call is a no-op.
func drawOnView(ctx Context, op string, draw func(v *framebuffer.View)) bool {
	v := ctx.CaptureFrameBuffer()
	defer ctx.ReleaseFrameBuffer(v)

	if v == nil {
		assertf(false, "%s: nil frame buffer", op)
		return true
	}
	if err := v.Validate(); err != nil {
		assertf(false, "%s: %v", op, err)
		return true
	}
	if !v.Format.HasColor() {
		Logger().Debug("frame buffer has no colour, using exact primitives", "op", op, "format", v.Format)
		return false
	}
	draw(v)
	return true
}

// exactCircle draws the circle's sampled chords with the host's exact
// lines, mirrored into all four quadrants.
func exactCircle(ctx Context, center image.Point, r, steps int) {
	if steps <= 0 {
		steps = raster.CircleSteps(r)
	}
	prev := image.Pt(r, 0)
	for i := 1; i <= steps; i++ {
		p := raster.CirclePoint(r, i, steps)
		for _, m := range [4]image.Point{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
			ctx.DrawLine(
				center.Add(image.Pt(prev.X*m.X, prev.Y*m.Y)),
				center.Add(image.Pt(p.X*m.X, p.Y*m.Y)),
			)
		}
		prev = p
	}
}

// hostBlitter paints through the host's FillRect, in the host's fill
// colour. Partial coverage rounds to the nearest of on and off.
type hostBlitter struct {
	ctx Context
}

func (h hostBlitter) BlitH(x, y, width int) {
	if width > 0 {
		h.ctx.FillRect(image.Rect(x, y, x+width, y+1))
	}
}

func (h hostBlitter) BlitAnti(x, y int, coverage fixed.Scalar) {
	if coverage >= fixed.Half {
		h.ctx.FillRect(image.Rect(x, y, x+1, y+1))
	}
}

func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("aa: "+format, args...))
	}
}
