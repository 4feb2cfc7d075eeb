// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster implements the fixed-point rasterizers: antialiased
// lines and circles, the polygon silhouette mask and the scanline flood
// fill that paints it.
//
// Rasterizers never touch memory directly. They emit pixels to a Blitter,
// which is what lets tests record exact coverage values and lets the
// frame-buffer implementation own clipping and blending.
package raster

import (
	"image"

	"github.com/gogpu/aa/framebuffer"
	"github.com/gogpu/aa/internal/fixed"
)

// Blitter receives the pixels produced by the rasterizers in a single
// colour chosen when the blitter was created.
type Blitter interface {
	// BlitH paints the span [x, x+width) of row y solid.
	BlitH(x, y, width int)

	// BlitAnti blends one pixel towards the blitter colour by coverage,
	// a value in [0, fixed.One].
	BlitAnti(x, y int, coverage fixed.Scalar)
}

// Clipper is implemented by blitters that drop every pixel outside a
// fixed rectangle. Rasterizers may skip work that cannot reach it.
type Clipper interface {
	ClipRect() image.Rectangle
}

// ViewBlitter implements Blitter for a borrowed frame buffer.
// It clips every write to the frame.
type ViewBlitter struct {
	view  *framebuffer.View
	color framebuffer.Color
}

// NewViewBlitter creates a blitter painting c into v.
func NewViewBlitter(v *framebuffer.View, c framebuffer.Color) *ViewBlitter {
	return &ViewBlitter{
		view:  v,
		color: v.Format.Quantize(c),
	}
}

// ClipRect returns the frame rectangle.
func (b *ViewBlitter) ClipRect() image.Rectangle {
	return b.view.Bounds()
}

// BlitH paints a clipped horizontal span.
func (b *ViewBlitter) BlitH(x, y, width int) {
	if y < 0 || y >= b.view.Height || width <= 0 {
		return
	}
	if x < 0 {
		width += x
		x = 0
	}
	if x+width > b.view.Width {
		width = b.view.Width - x
	}
	for i := 0; i < width; i++ {
		b.view.Set(x+i, y, b.color)
	}
}

// BlitAnti blends one pixel.
func (b *ViewBlitter) BlitAnti(x, y int, coverage fixed.Scalar) {
	Blend(b.view, x, y, b.color, coverage)
}
