// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aa

import (
	"image"

	"github.com/gogpu/aa/framebuffer"
)

// Color is an opaque RGB colour.
type Color = framebuffer.Color

// Context is the host drawing surface.
//
// The host lends its frame buffer to one drawing call at a time: each call
// pairs exactly one CaptureFrameBuffer with one ReleaseFrameBuffer, and
// never calls the host's own primitives while the buffer is captured.
// The exact primitives draw in the host's current stroke or fill colour;
// callers that change a colour restore it before returning.
type Context interface {
	// CaptureFrameBuffer lends the frame buffer to the caller. It returns
	// nil when the buffer is unavailable.
	CaptureFrameBuffer() *framebuffer.View

	// ReleaseFrameBuffer returns a buffer obtained from CaptureFrameBuffer.
	ReleaseFrameBuffer(v *framebuffer.View)

	// DrawLine draws an exact one pixel line in the stroke colour.
	DrawLine(p0, p1 image.Point)

	// FillRect fills r in the fill colour.
	FillRect(r image.Rectangle)

	// FillPolygon fills the closed polygon through pts in the fill colour.
	FillPolygon(pts []image.Point)

	// DrawPolygonOutline draws the closed outline through pts in the
	// stroke colour.
	DrawPolygonOutline(pts []image.Point)

	StrokeColor() Color
	SetStrokeColor(c Color)
	FillColor() Color
	SetFillColor(c Color)
}

// withStroke runs fn with the host stroke colour temporarily set to c.
func withStroke(ctx Context, c Color, fn func()) {
	prev := ctx.StrokeColor()
	ctx.SetStrokeColor(c)
	defer ctx.SetStrokeColor(prev)
	fn()
}

// withFill runs fn with the host fill colour temporarily set to c.
func withFill(ctx Context, c Color, fn func()) {
	prev := ctx.FillColor()
	ctx.SetFillColor(c)
	defer ctx.SetFillColor(prev)
	fn()
}
