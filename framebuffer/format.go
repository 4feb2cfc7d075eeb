// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framebuffer

// Format describes how a pixel is packed into the frame buffer.
type Format uint8

const (
	// FormatARGB2222 stores one aarrggbb byte per pixel with two bits per
	// channel. Alpha is always written opaque.
	FormatARGB2222 Format = iota

	// FormatRGB565 stores a little-endian uint16 per pixel.
	FormatRGB565

	// FormatRGBA8888 stores R, G, B, A bytes per pixel, the layout of
	// image.RGBA.
	FormatRGBA8888

	// FormatMono1 stores one bit per pixel, most significant bit first.
	// A set bit is white.
	FormatMono1

	formatCount
)

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatARGB2222:
		return "ARGB2222"
	case FormatRGB565:
		return "RGB565"
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatMono1:
		return "Mono1"
	default:
		return "Unknown"
	}
}

// BitsPerPixel returns the storage size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	switch f {
	case FormatARGB2222:
		return 8
	case FormatRGB565:
		return 16
	case FormatRGBA8888:
		return 32
	case FormatMono1:
		return 1
	default:
		return 0
	}
}

// MinStride returns the minimum number of bytes per row for width pixels.
func (f Format) MinStride(width int) int {
	return (width*f.BitsPerPixel() + 7) / 8
}

// HasColor reports whether the format has real colour channels that can
// represent blended intermediate values.
func (f Format) HasColor() bool {
	return f.IsValid() && f != FormatMono1
}

// Quantize returns the colour that a pixel of this format would hold after
// storing c. Quantizing twice is the same as quantizing once.
func (f Format) Quantize(c Color) Color {
	switch f {
	case FormatARGB2222:
		return FromARGB8(c.ARGB8())
	case FormatRGB565:
		return decode565(encode565(c))
	case FormatMono1:
		if monoBit(c) {
			return White
		}
		return Black
	default:
		return c
	}
}

func encode565(c Color) uint16 {
	return quant5(c.R)<<11 | quant6(c.G)<<5 | quant5(c.B)
}

func decode565(p uint16) Color {
	return Color{
		R: expand5(p >> 11),
		G: expand6((p >> 5) & 0x3F),
		B: expand5(p & 0x1F),
	}
}

func monoBit(c Color) bool {
	return c.Luma() >= 0x80
}
