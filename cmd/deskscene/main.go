// Package main is the entry point for the desk scene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/voxellab/deskscene/internal/config"
	"github.com/voxellab/deskscene/internal/game"
	"github.com/voxellab/deskscene/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Desk Scene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create scene", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("scene error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("scene closed normally")
}
