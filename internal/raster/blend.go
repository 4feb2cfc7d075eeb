// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/aa/framebuffer"
	"github.com/gogpu/aa/internal/fixed"
)

// Blend writes c at (x, y) weighted by coverage.
//
// Full coverage overwrites the pixel. Partial coverage moves each channel
// from its stored value towards c by coverage/16, adding half a unit
// before the final shift so truncation does not darken the result.
// Coordinates outside the frame are ignored.
func Blend(v *framebuffer.View, x, y int, c framebuffer.Color, coverage fixed.Scalar) {
	if coverage <= 0 || !v.In(x, y) {
		return
	}
	if coverage >= fixed.One {
		v.Set(x, y, c)
		return
	}
	if !v.Format.HasColor() {
		// One bit per pixel: nearest of old and new.
		if coverage >= fixed.Half {
			v.Set(x, y, c)
		}
		return
	}

	target := v.Format.Quantize(c)
	old := v.At(x, y)
	v.Set(x, y, framebuffer.Color{
		R: mixChannel(old.R, target.R, coverage),
		G: mixChannel(old.G, target.G, coverage),
		B: mixChannel(old.B, target.B, coverage),
	})
}

// mixChannel returns old + round((target-old) * coverage / One).
// The result always lies between old and target.
func mixChannel(old, target uint8, coverage fixed.Scalar) uint8 {
	d := int32(target) - int32(old)
	return uint8(int32(old) + (d*int32(coverage)+int32(fixed.Half))>>fixed.Shift)
}
