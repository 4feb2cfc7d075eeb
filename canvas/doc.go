// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas provides a software host for the aa drawing calls.
//
// A Canvas owns a frame buffer in one of the framebuffer formats and
// implements aa.Context: it lends the buffer out for antialiased drawing
// and offers exact one pixel primitives for everything else.
//
// # Usage
//
//	c, err := canvas.New(144, 168, framebuffer.FormatARGB2222)
//	if err != nil {
//		return err
//	}
//	c.Clear(framebuffer.Black)
//	aa.DrawLine(c, image.Pt(0, 0), image.Pt(143, 167), framebuffer.White)
//	err = c.SavePNG("frame.png")
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
package canvas
