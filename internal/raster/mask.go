// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"image"
	"math/bits"
)

// MaxMaskBytes bounds the memory a single silhouette mask may use.
// A path whose bounding box needs more is not filled.
const MaxMaskBytes = 32 << 20

// Mask errors.
var (
	// ErrEmptyMask is returned for a bounding box with no area.
	ErrEmptyMask = errors.New("raster: empty mask bounds")

	// ErrMaskTooLarge is returned when the mask would exceed MaxMaskBytes.
	ErrMaskTooLarge = errors.New("raster: mask too large")
)

// Mask is a 1-bit silhouette covering a bounding box.
//
// Bits are addressed in local coordinates with the box's top-left corner
// at (0, 0). Rows are padded to a whole number of bytes, most significant
// bit first. A mask belongs to one fill call and is dropped at its end.
type Mask struct {
	bits   []byte
	origin image.Point
	width  int
	height int
	stride int
}

// NewMask allocates a cleared mask covering bounds.
func NewMask(bounds image.Rectangle) (*Mask, error) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyMask
	}
	stride := (w + 7) / 8
	if int64(stride)*int64(h) > MaxMaskBytes {
		return nil, ErrMaskTooLarge
	}
	return &Mask{
		bits:   make([]byte, stride*h),
		origin: bounds.Min,
		width:  w,
		height: h,
		stride: stride,
	}, nil
}

// Bounds returns the covered rectangle in absolute coordinates.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rectangle{Min: m.origin, Max: m.origin.Add(image.Pt(m.width, m.height))}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Stride returns the number of bytes per mask row.
func (m *Mask) Stride() int { return m.stride }

// Get reports whether the local bit (x, y) is set. Bits outside the mask
// read as unset.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.bits[y*m.stride+x>>3]&(0x80>>(x&7)) != 0
}

// Set sets the local bit (x, y). Bits outside the mask are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.bits[y*m.stride+x>>3] |= 0x80 >> (x & 7)
}

// Count returns the number of set bits.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// BurnPolygon rasterizes the closed outline through pts into the mask,
// including the edge from the last point back to the first.
func (m *Mask) BurnPolygon(pts []image.Point) {
	for i, p := range pts {
		m.BurnLine(p, pts[(i+1)%len(pts)])
	}
}

// BurnLine sets exactly one bit per pixel on the integer line from p0 to
// p1, both given in absolute coordinates.
//
// It is the midpoint (Bresenham) algorithm for all eight octants: the
// signs of dx and dy choose the step directions and the larger of |dx|
// and |dy| chooses the axis stepped every iteration.
func (m *Mask) BurnLine(p0, p1 image.Point) {
	x, y := p0.X-m.origin.X, p0.Y-m.origin.Y
	x1, y1 := p1.X-m.origin.X, p1.Y-m.origin.Y

	dx, dy := x1-x, y1-y
	stepX, stepY := 1, 1
	if dx < 0 {
		stepX, dx = -1, -dx
	}
	if dy < 0 {
		stepY, dy = -1, -dy
	}

	m.Set(x, y)

	if dx >= dy {
		fraction := 2*dy - dx
		for x != x1 {
			if fraction >= 0 {
				y += stepY
				fraction -= 2 * dx
			}
			x += stepX
			fraction += 2 * dy
			m.Set(x, y)
		}
		return
	}

	fraction := 2*dx - dy
	for y != y1 {
		if fraction >= 0 {
			x += stepX
			fraction -= 2 * dy
		}
		y += stepY
		fraction += 2 * dx
		m.Set(x, y)
	}
}
