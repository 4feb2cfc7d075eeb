// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"math"

	"github.com/gogpu/aa/internal/fixed"
)

// Transform rotates pts by angle around the local origin, then translates
// them by offset. It returns the new points and their bounding box, with
// Max exclusive so that a single point has a 1x1 box.
//
// Rotated coordinates are divided by fixed.TrigMaxRatio with Go's
// truncating division, which biases results towards the local origin by
// less than one pixel.
func Transform(pts []image.Point, angle int32, offset image.Point) ([]image.Point, image.Rectangle) {
	if len(pts) == 0 {
		return nil, image.Rectangle{}
	}

	sin := int64(fixed.Sin(angle))
	cos := int64(fixed.Cos(angle))

	out := make([]image.Point, len(pts))
	bbox := image.Rectangle{Min: image.Point{X: math.MaxInt, Y: math.MaxInt}, Max: image.Point{X: math.MinInt, Y: math.MinInt}}

	for i, p := range pts {
		x, y := int64(p.X), int64(p.Y)
		q := image.Point{
			X: int((x*cos-y*sin)/fixed.TrigMaxRatio) + offset.X,
			Y: int((x*sin+y*cos)/fixed.TrigMaxRatio) + offset.Y,
		}
		out[i] = q

		bbox.Min.X = min(bbox.Min.X, q.X)
		bbox.Min.Y = min(bbox.Min.Y, q.Y)
		bbox.Max.X = max(bbox.Max.X, q.X+1)
		bbox.Max.Y = max(bbox.Max.Y, q.Y+1)
	}

	return out, bbox
}
