// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package framebuffer describes raw pixel storage borrowed from a host
// for the duration of a single draw call.
//
// A View is a plain description of memory: it does not own the pixels and
// performs no locking. The host hands one out through its capture call and
// takes it back on release; nothing may keep a View past that point.
package framebuffer

import (
	"errors"
	"image"
)

// Common errors for view construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("framebuffer: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("framebuffer: invalid format")

	// ErrInvalidStride is returned when stride is less than the minimum for the width.
	ErrInvalidStride = errors.New("framebuffer: stride too small for width")

	// ErrDataTooSmall is returned when the pixel slice is smaller than required.
	ErrDataTooSmall = errors.New("framebuffer: data buffer too small")
)

// View is a borrowed frame buffer.
type View struct {
	Pix    []byte
	Width  int
	Height int
	Stride int // bytes per row
	Format Format
}

// New allocates a zeroed view with the minimum stride for the format.
func New(width, height int, format Format) (*View, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	stride := format.MinStride(width)
	return &View{
		Pix:    make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}, nil
}

// Wrap describes existing pixel memory without copying it.
func Wrap(pix []byte, width, height, stride int, format Format) (*View, error) {
	v := &View{Pix: pix, Width: width, Height: height, Stride: stride, Format: format}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate reports why v cannot be drawn into, or nil.
func (v *View) Validate() error {
	switch {
	case v == nil || v.Width <= 0 || v.Height <= 0:
		return ErrInvalidDimensions
	case !v.Format.IsValid():
		return ErrInvalidFormat
	case v.Stride < v.Format.MinStride(v.Width):
		return ErrInvalidStride
	case len(v.Pix) < v.Stride*(v.Height-1)+v.Format.MinStride(v.Width):
		return ErrDataTooSmall
	}
	return nil
}

// Bounds returns the frame rectangle, always anchored at the origin.
func (v *View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// In reports whether (x, y) lies inside the frame.
func (v *View) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Width && y < v.Height
}

// At returns the colour stored at (x, y), or Black outside the frame.
func (v *View) At(x, y int) Color {
	if !v.In(x, y) {
		return Black
	}
	row := y * v.Stride
	switch v.Format {
	case FormatARGB2222:
		return FromARGB8(v.Pix[row+x])
	case FormatRGB565:
		i := row + x*2
		return decode565(uint16(v.Pix[i]) | uint16(v.Pix[i+1])<<8)
	case FormatRGBA8888:
		i := row + x*4
		return Color{R: v.Pix[i], G: v.Pix[i+1], B: v.Pix[i+2]}
	case FormatMono1:
		if v.Pix[row+x>>3]&(0x80>>(x&7)) != 0 {
			return White
		}
		return Black
	}
	return Black
}

// Set stores c at (x, y). Coordinates outside the frame are ignored.
func (v *View) Set(x, y int, c Color) {
	if !v.In(x, y) {
		return
	}
	row := y * v.Stride
	switch v.Format {
	case FormatARGB2222:
		v.Pix[row+x] = c.ARGB8()
	case FormatRGB565:
		p := encode565(c)
		i := row + x*2
		v.Pix[i] = byte(p)
		v.Pix[i+1] = byte(p >> 8)
	case FormatRGBA8888:
		i := row + x*4
		v.Pix[i+0] = c.R
		v.Pix[i+1] = c.G
		v.Pix[i+2] = c.B
		v.Pix[i+3] = 0xFF
	case FormatMono1:
		i := row + x>>3
		bit := byte(0x80) >> (x & 7)
		if monoBit(c) {
			v.Pix[i] |= bit
		} else {
			v.Pix[i] &^= bit
		}
	}
}

// Fill sets every pixel of the frame to c.
func (v *View) Fill(c Color) {
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			v.Set(x, y, c)
		}
	}
}
