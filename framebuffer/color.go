// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framebuffer

import "image/color"

// Color is an opaque RGB colour with 8 bits per channel.
//
// Frame buffers with fewer bits per channel store the nearest
// representable level; see Format.Quantize.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
)

// RGB returns the colour with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts any color.Color, ignoring alpha.
func FromColor(c color.Color) Color {
	if c == nil {
		return Black
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// FromARGB8 decodes a packed 8-bit aarrggbb colour. Alpha is ignored.
func FromARGB8(argb uint8) Color {
	return Color{
		R: expand2((argb >> 4) & 0x3),
		G: expand2((argb >> 2) & 0x3),
		B: expand2(argb & 0x3),
	}
}

// ARGB8 packs c into an opaque aarrggbb byte, rounding each channel to
// the nearest of its four levels.
func (c Color) ARGB8() uint8 {
	return 0xC0 | quant2(c.R)<<4 | quant2(c.G)<<2 | quant2(c.B)
}

// RGBA implements color.Color. The colour is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Luma returns the Rec. 601 luminance of c.
func (c Color) Luma() uint8 {
	return uint8((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000)
}

// quant2 rounds an 8-bit channel to 2 bits.
func quant2(v uint8) uint8 { return uint8((uint16(v) + 42) / 85) }

func expand2(v uint8) uint8 { return v * 0x55 }

func quant5(v uint8) uint16 { return (uint16(v)*31 + 127) / 255 }

func expand5(v uint16) uint8 { return uint8((uint32(v)*255 + 15) / 31) }

func quant6(v uint8) uint16 { return (uint16(v)*63 + 127) / 255 }

func expand6(v uint16) uint8 { return uint8((uint32(v)*255 + 31) / 63) }
