// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/aa/canvas"
	"github.com/gogpu/aa/internal/demo"
)

// ErrGameTerminated is returned from Update when the user quits.
var ErrGameTerminated = errors.New("aaview: terminated")

// Game shows the demo scene in a window.
//
// Space toggles antialiasing, Up and Down cycle the background and
// stroke colours, Escape quits.
type Game struct {
	scene  *demo.Scene
	canvas *canvas.Canvas

	mu      sync.Mutex
	pending *demo.Config
}

// NewGame creates a game for a validated configuration.
func NewGame(cfg demo.Config) (*Game, error) {
	c, err := newCanvas(cfg)
	if err != nil {
		return nil, err
	}
	scene, err := demo.NewScene(cfg)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene, canvas: c}, nil
}

func newCanvas(cfg demo.Config) (*canvas.Canvas, error) {
	pf, err := cfg.PixelFormat()
	if err != nil {
		return nil, err
	}
	return canvas.New(cfg.Width, cfg.Height, pf)
}

// SetConfig queues cfg for the next Update. It is safe to call from any
// goroutine.
func (g *Game) SetConfig(cfg demo.Config) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = &cfg
}

func (g *Game) applyPending() {
	g.mu.Lock()
	cfg := g.pending
	g.pending = nil
	g.mu.Unlock()
	if cfg == nil {
		return
	}

	old := g.scene.Config()
	c := g.canvas
	if cfg.Width != old.Width || cfg.Height != old.Height || cfg.Format != old.Format {
		var err error
		if c, err = newCanvas(*cfg); err != nil {
			log.Printf("Config not applied: %v", err)
			return
		}
	}
	if err := g.scene.Apply(*cfg); err != nil {
		log.Printf("Config not applied: %v", err)
		return
	}
	if c != g.canvas {
		g.canvas = c
		ebiten.SetWindowSize(cfg.Width*windowScale, cfg.Height*windowScale)
	}
	log.Printf("Config reloaded")
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.applyPending()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrGameTerminated
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.scene.ToggleAntialias()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.scene.NextBackground()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.scene.NextStroke()
	}

	g.scene.Tick()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(g.canvas, time.Now())
	screen.WritePixels(g.canvas.ToImage().Pix)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}
