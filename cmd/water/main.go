// Package main is the entry point for the water rendering demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nnouhi/Water/internal/config"
	"github.com/nnouhi/Water/internal/engine/scene"
	"github.com/nnouhi/Water/internal/game"
	"github.com/nnouhi/Water/internal/logger"
	"github.com/nnouhi/Water/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("=== Water ===")
	log.Sugar().Debugf("Config: %+v", cfg)

	g, err := game.New(gameConfig(cfg), log)
	if err != nil {
		log.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		log.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("closed normally")
}

// gameConfig maps the loaded configuration onto the game and scene setup.
func gameConfig(cfg *config.Config) game.Config {
	return game.Config{
		Title:         "Water",
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		Fullscreen:    cfg.Graphics.Fullscreen,
		VSync:         cfg.Graphics.VSync,
		ScreenshotDir: cfg.Debug.ScreenshotDir,
		Scene: scene.Config{
			PlaneY:          cfg.Water.PlaneLevel,
			WaveScale:       cfg.Water.WaveScale,
			RefractiveIndex: cfg.Water.RefractiveIndex,
			Extinction: math.Vec3{
				X: cfg.Water.Extinction[0],
				Y: cfg.Water.Extinction[1],
				Z: cfg.Water.Extinction[2],
			},
			MaxDistortionDistance: cfg.Water.MaxDistortionDistance,
			SurfaceExtent:         cfg.Water.SurfaceExtent,
			SurfaceCells:          cfg.Water.SurfaceCells,
			WaterMapPath:          cfg.Water.NormalMapPath,
		},
	}
}
