// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ToImage converts the frame buffer to an opaque image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(c.view.Bounds())
	for y := 0; y < c.view.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < c.view.Width; x++ {
			p := c.view.At(x, y)
			i := x * 4
			row[i+0] = p.R
			row[i+1] = p.G
			row[i+2] = p.B
			row[i+3] = 0xff
		}
	}
	return img
}

// WritePNG encodes the frame buffer as PNG to w.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.ToImage()); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the frame buffer to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return c.WritePNG(f)
}
