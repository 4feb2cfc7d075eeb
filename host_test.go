// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aa

import (
	"image"
	"testing"

	"github.com/gogpu/aa/canvas"
	"github.com/gogpu/aa/framebuffer"
)

// countingHost wraps a canvas and records how the drawing calls use it.
type countingHost struct {
	*canvas.Canvas
	t *testing.T

	captures   int
	releases   int
	lines      int
	rects      int
	polygons   int
	outlines   int
	nilCapture bool // capture returns nil
}

func newCountingHost(t *testing.T, w, h int, format framebuffer.Format) *countingHost {
	t.Helper()
	c, err := canvas.New(w, h, format)
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return &countingHost{Canvas: c, t: t}
}

func (h *countingHost) CaptureFrameBuffer() *framebuffer.View {
	h.captures++
	if h.captures != h.releases+1 {
		h.t.Errorf("capture %d while %d releases done", h.captures, h.releases)
	}
	if h.nilCapture {
		return nil
	}
	return h.Canvas.CaptureFrameBuffer()
}

func (h *countingHost) ReleaseFrameBuffer(v *framebuffer.View) {
	h.releases++
	h.Canvas.ReleaseFrameBuffer(v)
}

func (h *countingHost) checkReleased() {
	if h.Captured() {
		h.t.Error("host primitive called while the frame buffer is captured")
	}
}

func (h *countingHost) DrawLine(p0, p1 image.Point) {
	h.checkReleased()
	h.lines++
	h.Canvas.DrawLine(p0, p1)
}

func (h *countingHost) FillRect(r image.Rectangle) {
	h.checkReleased()
	h.rects++
	h.Canvas.FillRect(r)
}

func (h *countingHost) FillPolygon(pts []image.Point) {
	h.checkReleased()
	h.polygons++
	h.Canvas.FillPolygon(pts)
}

func (h *countingHost) DrawPolygonOutline(pts []image.Point) {
	h.checkReleased()
	h.outlines++
	h.Canvas.DrawPolygonOutline(pts)
}

// assertBalanced checks that every capture was released.
func (h *countingHost) assertBalanced() {
	h.t.Helper()
	if h.captures != h.releases {
		h.t.Errorf("captures = %d, releases = %d", h.captures, h.releases)
	}
	if h.Captured() {
		h.t.Error("frame buffer still captured")
	}
}

// assertColorsRestored checks that the host colours are back to the
// canvas defaults.
func (h *countingHost) assertColorsRestored() {
	h.t.Helper()
	if h.StrokeColor() != framebuffer.White || h.FillColor() != framebuffer.White {
		h.t.Errorf("host colours changed: stroke %v, fill %v", h.StrokeColor(), h.FillColor())
	}
}

func requireAntialiased(t *testing.T) {
	t.Helper()
	if !Antialiased {
		t.Skip("antialiasing disabled by the aamono build tag")
	}
}
