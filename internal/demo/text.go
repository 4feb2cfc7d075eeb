// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/aa/framebuffer"
)

var printer = message.NewPrinter(language.English)

// baseline returns the baseline that centres one line of face vertically
// in a labelBand strip starting at top.
func baseline(face font.Face, top int) int {
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	return top + (labelBand-ascent-descent)/2 + ascent
}

func drawText(dst draw.Image, s string, x, top int, c framebuffer.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline(basicfont.Face7x13, top)),
	}
	d.DrawString(s)
}

// drawTextLeft draws s flush with the left edge of dst.
func drawTextLeft(dst draw.Image, s string, top int, c framebuffer.Color) {
	drawText(dst, s, dst.Bounds().Min.X, top, c)
}

// drawTextRight draws s flush with the right edge of dst.
func drawTextRight(dst draw.Image, s string, top int, c framebuffer.Color) {
	width := font.MeasureString(basicfont.Face7x13, s).Ceil()
	drawText(dst, s, dst.Bounds().Max.X-width, top, c)
}

func formatFPS(fps int) string {
	return printer.Sprintf("%d fps", fps)
}

// FormatStats summarizes a rendering run.
func FormatStats(frames int, pixels int64, seconds float64) string {
	if seconds <= 0 {
		return printer.Sprintf("%d frames, %d pixels", frames, pixels)
	}
	return printer.Sprintf("%d frames, %d pixels in %.3f s (%.1f frames/s)",
		frames, pixels, seconds, float64(frames)/seconds)
}
