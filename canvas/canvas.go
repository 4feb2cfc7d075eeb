// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/aa/framebuffer"
)

// Common errors returned by Canvas constructors.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrInvalidFormat is returned for an unknown pixel format.
	ErrInvalidFormat = errors.New("canvas: invalid pixel format")

	// ErrInvalidView is returned when a borrowed view is malformed.
	ErrInvalidView = errors.New("canvas: invalid view")
)

// Canvas is a software drawing surface.
//
// The frame buffer can be captured by one caller at a time. While it is
// captured further captures return nil.
type Canvas struct {
	view     *framebuffer.View
	stroke   framebuffer.Color
	fill     framebuffer.Color
	captured bool
}

// New creates a canvas with a cleared frame buffer of the given size and
// format. Stroke and fill colours start white.
func New(width, height int, format framebuffer.Format) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}
	v, err := framebuffer.New(width, height, format)
	if err != nil {
		return nil, fmt.Errorf("canvas: allocate frame buffer: %w", err)
	}
	return newCanvas(v), nil
}

// NewFromView creates a canvas drawing into memory owned by the caller.
func NewFromView(v *framebuffer.View) (*Canvas, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil view", ErrInvalidView)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidView, err)
	}
	return newCanvas(v), nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, format framebuffer.Format) *Canvas {
	c, err := New(width, height, format)
	if err != nil {
		panic(err)
	}
	return c
}

func newCanvas(v *framebuffer.View) *Canvas {
	return &Canvas{
		view:   v,
		stroke: framebuffer.White,
		fill:   framebuffer.White,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.view.Width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.view.Height }

// Format returns the frame buffer's pixel format.
func (c *Canvas) Format() framebuffer.Format { return c.view.Format }

// CaptureFrameBuffer lends the frame buffer out. It returns nil while a
// previous capture has not been released.
func (c *Canvas) CaptureFrameBuffer() *framebuffer.View {
	if c.captured {
		return nil
	}
	c.captured = true
	return c.view
}

// ReleaseFrameBuffer ends a capture. Views other than the canvas's own,
// including nil, are ignored.
func (c *Canvas) ReleaseFrameBuffer(v *framebuffer.View) {
	if v == c.view {
		c.captured = false
	}
}

// Captured reports whether the frame buffer is currently lent out.
func (c *Canvas) Captured() bool { return c.captured }

// StrokeColor returns the colour used by DrawLine and DrawPolygonOutline.
func (c *Canvas) StrokeColor() framebuffer.Color { return c.stroke }

// SetStrokeColor sets the stroke colour.
func (c *Canvas) SetStrokeColor(col framebuffer.Color) { c.stroke = col }

// FillColor returns the colour used by FillRect and FillPolygon.
func (c *Canvas) FillColor() framebuffer.Color { return c.fill }

// SetFillColor sets the fill colour.
func (c *Canvas) SetFillColor(col framebuffer.Color) { c.fill = col }

// Clear fills the whole frame with col.
func (c *Canvas) Clear(col framebuffer.Color) {
	c.view.Fill(col)
}

// Pixel returns the stored colour at (x, y), or black outside the frame.
func (c *Canvas) Pixel(x, y int) framebuffer.Color {
	return c.view.At(x, y)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.view.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.view.Bounds()
}

// Set implements the draw.Image interface, so text and image drawing
// from the standard library can target the canvas. Alpha is ignored.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.view.Set(x, y, framebuffer.FromColor(col))
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
