// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package aa draws antialiased lines, circles and filled polygons straight
// into a host's frame buffer using integer arithmetic only.
//
// # Overview
//
// The host owns the pixels. It implements [Context]: it lends out its
// frame buffer as a [framebuffer.View] and offers exact, non-antialiased
// primitives. Every drawing call in this package captures the frame
// buffer, draws and releases it before returning, so no state survives
// between calls.
//
// # Quick Start
//
//	c, _ := canvas.New(144, 168, framebuffer.FormatARGB2222)
//
//	aa.DrawLine(c, image.Pt(0, 0), image.Pt(143, 50), framebuffer.White)
//	aa.FillCircle(c, image.Pt(72, 84), 30, framebuffer.RGB(0, 255, 0))
//
//	house := aa.NewPath(points...)
//	house.MoveTo(image.Pt(72, 126))
//	house.RotateTo(aa.Degrees(30))
//	aa.FillPath(c, house, framebuffer.White)
//
// # Algorithms
//
// Lines use Xiaolin Wu's algorithm with 28.4 fixed-point coverage.
// Polygons are filled by burning their outline into a 1-bit mask with
// Bresenham lines, flood filling the inside of the mask with horizontal
// spans and finally drawing the antialiased outline on top. Circles are
// a midpoint disk plus an antialiased rim.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles are fractions of [FullTurn]; see [Degrees]
//
// Paths must be simple and wound clockwise on screen. The flood fill
// starts next to the first edge, so the first edge should border a region
// at least two pixels thick.
//
// # Build Tags
//
//   - aamono: compile without antialiasing; every call uses the host's
//     exact primitives
//   - aadebug: panic on violated preconditions such as a nil frame buffer
package aa
