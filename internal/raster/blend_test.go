// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/gogpu/aa/framebuffer"
	"github.com/gogpu/aa/internal/fixed"
)

func TestMixChannel(t *testing.T) {
	tests := []struct {
		name        string
		old, target uint8
		coverage    fixed.Scalar
		want        uint8
	}{
		{"zero coverage", 10, 200, 0, 10},
		{"half up", 0, 255, 8, 128},     // 127.5 rounds up
		{"half down", 255, 0, 8, 128},   // 127.5 rounds up
		{"eleven sixteenths", 0, 255, 11, 175},
		{"five sixteenths", 0, 255, 5, 80},
		{"almost full", 0, 1, 15, 1},
		{"almost full down", 1, 0, 15, 0},
		{"equal", 77, 77, 9, 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mixChannel(tt.old, tt.target, tt.coverage); got != tt.want {
				t.Errorf("mixChannel(%d, %d, %d) = %d, want %d", tt.old, tt.target, tt.coverage, got, tt.want)
			}
		})
	}
}

func TestMixChannelBetween(t *testing.T) {
	for old := 0; old < 256; old += 5 {
		for target := 0; target < 256; target += 7 {
			lo, hi := min(old, target), max(old, target)
			for c := fixed.Scalar(0); c <= fixed.One; c++ {
				got := int(mixChannel(uint8(old), uint8(target), c))
				if got < lo || got > hi {
					t.Fatalf("mixChannel(%d, %d, %d) = %d, outside [%d, %d]", old, target, c, got, lo, hi)
				}
			}
		}
	}
}

func TestBlendFullCoverageIdempotent(t *testing.T) {
	formats := []framebuffer.Format{
		framebuffer.FormatARGB2222,
		framebuffer.FormatRGB565,
		framebuffer.FormatRGBA8888,
		framebuffer.FormatMono1,
	}
	c := framebuffer.RGB(0x33, 0x99, 0xEE)

	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			v, _ := framebuffer.New(4, 4, f)
			Blend(v, 1, 2, c, fixed.One)
			first := v.At(1, 2)
			Blend(v, 1, 2, c, fixed.One)
			Blend(v, 1, 2, c, fixed.One+5)
			if got := v.At(1, 2); got != first {
				t.Errorf("repeated full blend changed pixel: %v -> %v", first, got)
			}
			if want := f.Quantize(c); first != want {
				t.Errorf("full blend stored %v, want %v", first, want)
			}
		})
	}
}

func TestBlendBetweenOldAndTarget(t *testing.T) {
	formats := []framebuffer.Format{
		framebuffer.FormatARGB2222,
		framebuffer.FormatRGB565,
		framebuffer.FormatRGBA8888,
	}
	old := framebuffer.RGB(0xF0, 0x10, 0x80)
	target := framebuffer.RGB(0x10, 0xF0, 0x80)

	between := func(v, a, b uint8) bool {
		return v >= min(a, b) && v <= max(a, b)
	}

	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			v, _ := framebuffer.New(1, 1, f)
			qo, qt := f.Quantize(old), f.Quantize(target)
			for c := fixed.Scalar(0); c <= fixed.One; c++ {
				v.Set(0, 0, old)
				Blend(v, 0, 0, target, c)
				got := v.At(0, 0)
				if !between(got.R, qo.R, qt.R) || !between(got.G, qo.G, qt.G) || !between(got.B, qo.B, qt.B) {
					t.Errorf("coverage %d: %v not between %v and %v", c, got, qo, qt)
				}
			}
		})
	}
}

func TestBlendOutOfBounds(t *testing.T) {
	v, _ := framebuffer.New(2, 2, framebuffer.FormatRGBA8888)
	for _, p := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		Blend(v, p[0], p[1], framebuffer.White, fixed.One)
		Blend(v, p[0], p[1], framebuffer.White, fixed.Half)
	}
	for i, b := range v.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds blend wrote byte %d", i)
		}
	}
}

func TestBlendMonoThreshold(t *testing.T) {
	v, _ := framebuffer.New(3, 1, framebuffer.FormatMono1)
	Blend(v, 0, 0, framebuffer.White, fixed.Half-1)
	Blend(v, 1, 0, framebuffer.White, fixed.Half)
	Blend(v, 2, 0, framebuffer.White, fixed.One)

	want := []framebuffer.Color{framebuffer.Black, framebuffer.White, framebuffer.White}
	for x, w := range want {
		if got := v.At(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}
