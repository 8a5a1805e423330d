package main

import (
	"github.com/osse101/EmberForge_Go/internal/config"
	"github.com/osse101/EmberForge_Go/internal/logger"
)

// initLogger installs the process-wide slog logger from cfg. Source
// locations are only added in development.
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
