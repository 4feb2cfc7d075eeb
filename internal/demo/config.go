// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package demo implements the rotating house and "infinity" scene used by
// the aademo and aaview commands, together with its TOML configuration.
package demo

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/aa/framebuffer"
)

// Configuration errors.
var (
	// ErrInvalidSize is returned for a non-positive frame size.
	ErrInvalidSize = errors.New("demo: invalid frame size")

	// ErrUnknownFormat is returned for an unrecognized pixel format name.
	ErrUnknownFormat = errors.New("demo: unknown pixel format")

	// ErrInvalidColor is returned when a colour is not a #rrggbb string.
	ErrInvalidColor = errors.New("demo: invalid colour")
)

// Config describes the scene. It is loaded from TOML; missing keys keep
// their DefaultConfig values.
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Format string `toml:"format"`

	// Antialias selects the aa drawing calls over the exact primitives.
	Antialias bool `toml:"antialias"`

	// StartAngle is the initial path rotation in degrees.
	StartAngle int `toml:"start_angle"`

	// Stroke and Background are #rrggbb colours.
	Stroke     string `toml:"stroke"`
	Background string `toml:"background"`

	// FanLines is the number of lines in each corner of the fan.
	FanLines int `toml:"fan_lines"`

	// Labels enables the "AA" indicator and the FPS counter.
	Labels bool `toml:"labels"`
}

// DefaultConfig returns a 144x168 ARGB2222 scene, the size of a watch face.
func DefaultConfig() Config {
	return Config{
		Width:      144,
		Height:     168,
		Format:     "argb2222",
		Antialias:  true,
		StartAngle: 209,
		Stroke:     "#00ff00",
		Background: "#000000",
		FanLines:   10,
		Labels:     true,
	}
}

// LoadConfig reads a TOML scene file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("demo: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML scene settings on top of DefaultConfig.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("demo: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as TOML.
func (cfg Config) Marshal() ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate reports the first invalid setting.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if _, err := cfg.PixelFormat(); err != nil {
		return err
	}
	if _, err := parseColor(cfg.Stroke); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	if _, err := parseColor(cfg.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if cfg.FanLines < 0 {
		return fmt.Errorf("demo: fan_lines must not be negative, got %d", cfg.FanLines)
	}
	return nil
}

// PixelFormat returns the frame buffer format named by cfg.Format.
func (cfg Config) PixelFormat() (framebuffer.Format, error) {
	return ParseFormat(cfg.Format)
}

// StrokeColor returns the parsed stroke colour, or black if cfg.Stroke
// does not parse. Validate reports that case.
func (cfg Config) StrokeColor() framebuffer.Color {
	c, _ := parseColor(cfg.Stroke)
	return c
}

// BackgroundColor returns the parsed background colour, or black if
// cfg.Background does not parse. Validate reports that case.
func (cfg Config) BackgroundColor() framebuffer.Color {
	c, _ := parseColor(cfg.Background)
	return c
}

// ParseFormat maps a case-insensitive format name to a pixel format.
func ParseFormat(name string) (framebuffer.Format, error) {
	switch strings.ToLower(name) {
	case "argb2222":
		return framebuffer.FormatARGB2222, nil
	case "rgb565":
		return framebuffer.FormatRGB565, nil
	case "rgba8888":
		return framebuffer.FormatRGBA8888, nil
	case "mono1":
		return framebuffer.FormatMono1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func parseColor(s string) (framebuffer.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return framebuffer.Color{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return framebuffer.RGB(r, g, b), nil
}

// hexColor formats c as #rrggbb.
func hexColor(c framebuffer.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
