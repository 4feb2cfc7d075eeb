// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command aademo renders frames of the rotating path scene to PNG files.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/aa"
	"github.com/gogpu/aa/canvas"
	"github.com/gogpu/aa/internal/demo"
)

// frameInterval is the simulated time between frames.
const frameInterval = 10 * time.Millisecond

func main() {
	var (
		configPath = flag.String("config", "", "scene TOML file")
		outDir     = flag.String("o", ".", "output directory")
		frames     = flag.Int("frames", 1, "number of frames to render")
		format     = flag.String("format", "", "pixel format override (argb2222, rgb565, rgba8888, mono1)")
		noAA       = flag.Bool("noaa", false, "draw with the exact primitives")
		verbose    = flag.Bool("v", false, "log rasterizer debug output")
	)
	flag.Parse()

	if *verbose {
		aa.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := demo.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = demo.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *noAA {
		cfg.Antialias = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	pf, _ := cfg.PixelFormat()
	c, err := canvas.New(cfg.Width, cfg.Height, pf)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	scene, err := demo.NewScene(cfg)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	clock := time.Now()
	start := time.Now()
	for i := range *frames {
		scene.Draw(c, clock)
		name := filepath.Join(*outDir, fmt.Sprintf("frame%04d.png", i))
		if err := c.SavePNG(name); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		scene.Tick()
		clock = clock.Add(frameInterval)
	}
	elapsed := time.Since(start)

	pixels := int64(*frames) * int64(cfg.Width) * int64(cfg.Height)
	log.Printf("Frames saved to %s (%dx%d %v)", *outDir, cfg.Width, cfg.Height, pf)
	log.Print(demo.FormatStats(*frames, pixels, elapsed.Seconds()))
}
