// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"image"
	"time"

	"github.com/gogpu/aa"
	"github.com/gogpu/aa/canvas"
	"github.com/gogpu/aa/framebuffer"
)

// PaletteSize is the number of opaque ARGB2222 colours the stroke and
// background cycle through.
const PaletteSize = 64

// labelBand is the height of the strips holding the labels.
const labelBand = 30

// InfinityPoints outlines the figure-eight shaped path.
var InfinityPoints = []image.Point{
	{-50, 0}, {-50, -60}, {10, -60}, {10, -20},
	{-10, -20}, {-10, -40}, {-30, -40}, {-30, -20},
	{50, -20}, {50, 40}, {-10, 40}, {-10, 0},
	{10, 0}, {10, 20}, {30, 20}, {30, 0},
}

// HousePoints outlines a house with a door.
var HousePoints = []image.Point{
	{-40, 0}, {0, -40}, {40, 0}, {28, 0},
	{28, 40}, {10, 40}, {10, 16}, {-10, 16},
	{-10, 40}, {-28, 40}, {-28, 0},
}

// Scene is a line fan behind two rotating filled paths.
type Scene struct {
	cfg        Config
	infinity   *aa.Path
	house      *aa.Path
	angle      int
	antialias  bool
	stroke     framebuffer.Color
	background framebuffer.Color
	fps        fpsCounter
}

// NewScene creates a scene from cfg. It returns the error from
// cfg.Validate if the configuration is invalid.
func NewScene(cfg Config) (*Scene, error) {
	s := &Scene{
		infinity: aa.NewPath(InfinityPoints...),
		house:    aa.NewPath(HousePoints...),
		angle:    normDegrees(cfg.StartAngle),
	}
	if err := s.Apply(cfg); err != nil {
		return nil, err
	}
	s.rotate()
	return s, nil
}

// Apply replaces the scene settings. The rotation angle is kept.
// An invalid configuration is rejected and leaves the scene unchanged.
func (s *Scene) Apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.antialias = cfg.Antialias
	s.stroke = cfg.StrokeColor()
	s.background = cfg.BackgroundColor()
	s.infinity.MoveTo(image.Pt(cfg.Width/2, cfg.Height/4))
	s.house.MoveTo(image.Pt(cfg.Width/2, cfg.Height*3/4))
	return nil
}

// Config returns the settings the scene was last configured with.
func (s *Scene) Config() Config { return s.cfg }

// Snapshot returns the configuration that recreates the scene in its
// current state.
func (s *Scene) Snapshot() Config {
	cfg := s.cfg
	cfg.StartAngle = s.angle
	cfg.Antialias = s.antialias
	cfg.Stroke = hexColor(s.stroke)
	cfg.Background = hexColor(s.background)
	return cfg
}

// Angle returns the current rotation in degrees.
func (s *Scene) Angle() int { return s.angle }

// Antialias reports whether the aa drawing calls are in use.
func (s *Scene) Antialias() bool { return s.antialias }

// Stroke returns the colour of lines and fills.
func (s *Scene) Stroke() framebuffer.Color { return s.stroke }

// Background returns the clear colour.
func (s *Scene) Background() framebuffer.Color { return s.background }

// Tick advances the rotation by one degree.
func (s *Scene) Tick() {
	s.angle = (s.angle + 1) % 360
	s.rotate()
}

// ToggleAntialias switches between the aa calls and the exact primitives.
func (s *Scene) ToggleAntialias() {
	s.antialias = !s.antialias
}

// NextBackground moves the background to the next palette entry.
func (s *Scene) NextBackground() {
	s.background = nextPalette(s.background)
}

// NextStroke moves the stroke to the next palette entry.
func (s *Scene) NextStroke() {
	s.stroke = nextPalette(s.stroke)
}

// FPS returns the frame rate measured over the last full second.
func (s *Scene) FPS() int { return s.fps.fps }

// Draw renders one frame onto c and counts it towards the frame rate.
func (s *Scene) Draw(c *canvas.Canvas, now time.Time) {
	s.fps.frame(now)

	c.Clear(s.background)
	for _, l := range fanLines(c.Width(), c.Height(), s.cfg.FanLines) {
		s.line(c, l[0], l[1])
	}
	s.fill(c, s.infinity)
	s.fill(c, s.house)

	if !s.cfg.Labels {
		return
	}
	if s.antialias {
		drawTextRight(c, "AA", 0, s.stroke)
	}
	drawTextLeft(c, formatFPS(s.fps.fps), c.Height()-labelBand, s.stroke)
}

func (s *Scene) line(c *canvas.Canvas, p0, p1 image.Point) {
	if s.antialias {
		aa.DrawLine(c, p0, p1, s.stroke)
		return
	}
	c.SetStrokeColor(s.stroke)
	c.DrawLine(p0, p1)
}

func (s *Scene) fill(c *canvas.Canvas, p *aa.Path) {
	if s.antialias {
		aa.FillPath(c, p, s.stroke)
		return
	}
	pts, _ := p.Transformed()
	c.SetFillColor(s.stroke)
	c.FillPolygon(pts)
}

func (s *Scene) rotate() {
	rot := aa.Degrees(s.angle)
	s.infinity.RotateTo(rot)
	s.house.RotateTo(rot)
}

// fanLines returns the four corner fans, n lines each, spanning w x h.
func fanLines(w, h, n int) [][2]image.Point {
	if n <= 0 {
		return nil
	}
	lines := make([][2]image.Point, 0, 4*n)
	for i := range n {
		lines = append(lines,
			[2]image.Point{{0, i * h / n}, {w * i / n, h}},
			[2]image.Point{{w * i / n, 0}, {0, h - h*i/n}},
			[2]image.Point{{w * i / n, 0}, {w, h * i / n}},
			[2]image.Point{{w * i / n, h}, {w, h - h*i/n}},
		)
	}
	return lines
}

// nextPalette returns the opaque ARGB2222 colour after c.
func nextPalette(c framebuffer.Color) framebuffer.Color {
	idx := (c.ARGB8()&0x3F + 1) % PaletteSize
	return framebuffer.FromARGB8(0xC0 | idx)
}

func normDegrees(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// fpsCounter latches the number of frames seen in each period of more
// than one second.
type fpsCounter struct {
	frames int
	fps    int
	since  time.Time
}

func (f *fpsCounter) frame(now time.Time) {
	if f.since.IsZero() {
		f.since = now
	}
	f.frames++
	if now.Sub(f.since) > time.Second {
		f.fps = f.frames
		f.frames = 0
		f.since = now
	}
}
