// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command aaview shows the rotating path scene in a window.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/aa"
	"github.com/gogpu/aa/internal/demo"
)

// ticksPerSecond advances the rotation one degree every 10 ms.
const ticksPerSecond = 100

const windowScale = 3

func main() {
	var (
		configPath = flag.String("config", "", "scene TOML file, reloaded on change")
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

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if *configPath != "" {
		w, err := demo.WatchConfig(*configPath, 0, game.SetConfig, func(err error) {
			log.Printf("Config reload failed: %v", err)
		})
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer w.Close()
	}

	ebiten.SetTPS(ticksPerSecond)
	ebiten.SetWindowSize(cfg.Width*windowScale, cfg.Height*windowScale)
	ebiten.SetWindowTitle("aaview")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ErrGameTerminated) {
		log.Printf("Run failed: %v", err)
	}
}
