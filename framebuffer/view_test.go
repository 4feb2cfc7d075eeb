// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framebuffer

import (
	"errors"
	"image/color"
	"testing"
)

var allFormats = []Format{FormatARGB2222, FormatRGB565, FormatRGBA8888, FormatMono1}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		format Format
		want   error
	}{
		{"ok", 4, 4, FormatRGBA8888, nil},
		{"zero width", 0, 4, FormatRGBA8888, ErrInvalidDimensions},
		{"negative height", 4, -1, FormatARGB2222, ErrInvalidDimensions},
		{"bad format", 4, 4, Format(99), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%d, %d, %v) error = %v, want %v", tt.w, tt.h, tt.format, err, tt.want)
			}
		})
	}
}

func TestWrapValidation(t *testing.T) {
	tests := []struct {
		name   string
		pix    int
		w, h   int
		stride int
		format Format
		want   error
	}{
		{"exact", 4 * 3, 4, 3, 4, FormatARGB2222, nil},
		{"padded stride", 8*2 + 4, 4, 3, 8, FormatARGB2222, nil},
		{"stride too small", 100, 4, 3, 3, FormatARGB2222, ErrInvalidStride},
		{"short data", 11, 4, 3, 4, FormatARGB2222, ErrDataTooSmall},
		{"mono stride", 2 * 2, 9, 2, 2, FormatMono1, nil},
		{"mono short stride", 2 * 2, 9, 2, 1, FormatMono1, ErrInvalidStride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wrap(make([]byte, tt.pix), tt.w, tt.h, tt.stride, tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("Wrap error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetAtRoundTrip(t *testing.T) {
	colors := []Color{Black, White, RGB(0x55, 0xAA, 0xFF), RGB(12, 200, 77), RGB(0x80, 0x80, 0x80)}

	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			v, err := New(9, 3, f)
			if err != nil {
				t.Fatal(err)
			}
			for i, c := range colors {
				v.Set(i, 1, c)
				got := v.At(i, 1)
				if want := f.Quantize(c); got != want {
					t.Errorf("At after Set(%v) = %v, want %v", c, got, want)
				}
			}
		})
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	for _, f := range allFormats {
		for v := 0; v < 256; v += 3 {
			c := RGB(uint8(v), uint8(255-v), uint8(v/2))
			once := f.Quantize(c)
			if twice := f.Quantize(once); twice != once {
				t.Fatalf("%v: Quantize(Quantize(%v)) = %v, want %v", f, c, twice, once)
			}
		}
	}
}

func TestSetOutOfBounds(t *testing.T) {
	v, _ := New(4, 4, FormatRGBA8888)
	oob := []struct{ x, y int }{
		{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {-100, 100},
	}
	for _, p := range oob {
		v.Set(p.x, p.y, White)
		if got := v.At(p.x, p.y); got != Black {
			t.Errorf("At(%d, %d) = %v, want Black", p.x, p.y, got)
		}
	}
	for i, b := range v.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds write modified byte %d", i)
		}
	}
}

func TestMonoPacking(t *testing.T) {
	v, _ := New(10, 1, FormatMono1)
	v.Set(0, 0, White)
	v.Set(9, 0, White)
	if v.Pix[0] != 0x80 || v.Pix[1] != 0x40 {
		t.Errorf("Pix = %#x %#x, want 0x80 0x40", v.Pix[0], v.Pix[1])
	}
	v.Set(0, 0, Black)
	if v.Pix[0] != 0 {
		t.Errorf("clearing bit left %#x", v.Pix[0])
	}
}

func TestARGB8(t *testing.T) {
	tests := []struct {
		c    Color
		want uint8
	}{
		{Black, 0xC0},
		{White, 0xFF},
		{RGB(0x55, 0, 0), 0xD0},
		{RGB(0, 0xAA, 0), 0xC8},
		{RGB(42, 43, 0), 0xC4},
	}

	for _, tt := range tests {
		if got := tt.c.ARGB8(); got != tt.want {
			t.Errorf("%v.ARGB8() = %#x, want %#x", tt.c, got, tt.want)
		}
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if want := RGB(10, 20, 30); got != want {
		t.Errorf("FromColor = %v, want %v", got, want)
	}
	if FromColor(nil) != Black {
		t.Error("FromColor(nil) should be Black")
	}
}

func TestFill(t *testing.T) {
	v, _ := New(3, 2, FormatRGB565)
	v.Fill(White)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := v.At(x, y); got != White {
				t.Fatalf("At(%d, %d) = %v, want White", x, y, got)
			}
		}
	}
}
