// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aa

import (
	"image"

	"github.com/gogpu/aa/internal/fixed"
	"github.com/gogpu/aa/internal/raster"
)

// FullTurn is one full rotation in path angle units.
const FullTurn = fixed.TrigMaxAngle

// Path is a closed polygon in local coordinates, placed on screen by a
// rotation around the local origin followed by a translation.
//
// The last point connects back to the first. Points should wind
// clockwise on screen.
type Path struct {
	Points []image.Point

	// Rotation is a fraction of FullTurn, applied before Offset.
	Rotation int32

	// Offset moves the rotated path.
	Offset image.Point
}

// NewPath creates a path through a copy of pts.
func NewPath(pts ...image.Point) *Path {
	return &Path{Points: append([]image.Point(nil), pts...)}
}

// MoveTo sets the path's offset.
func (p *Path) MoveTo(offset image.Point) {
	p.Offset = offset
}

// MoveBy adds delta to the path's offset.
func (p *Path) MoveBy(delta image.Point) {
	p.Offset = p.Offset.Add(delta)
}

// RotateTo sets the path's rotation.
func (p *Path) RotateTo(angle int32) {
	p.Rotation = angle
}

// Transformed returns the path's points in screen coordinates and their
// bounding box.
func (p *Path) Transformed() ([]image.Point, image.Rectangle) {
	return raster.Transform(p.Points, p.Rotation, p.Offset)
}

// Degrees converts whole degrees to path angle units.
func Degrees(deg int) int32 {
	return fixed.AngleFromDegrees(deg)
}
