package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is read from the environment; a .env file next to the binary is
// loaded first (see main.go).
type Config struct {
	Port            string `env:"PORT" envDefault:"8080"`
	DatabasePath    string `env:"DATABASE_PATH"`
	AdminToken      string `env:"ADMIN_TOKEN"`
	RevealSplit     string `env:"REVEAL_SPLIT" envDefault:"rune"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	RetentionMonths int    `env:"VISITOR_RETENTION_MONTHS" envDefault:"12"`
	TrackOutbound   bool   `env:"TRACK_OUTBOUND" envDefault:"true"`
	MaxStreams      int    `env:"MAX_TIMELINE_STREAMS" envDefault:"256"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := splitterFor(cfg.RevealSplit); err != nil {
		return Config{}, err
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	if cfg.RetentionMonths <= 0 {
		return Config{}, fmt.Errorf("VISITOR_RETENTION_MONTHS must be positive, got %d", cfg.RetentionMonths)
	}
	if cfg.MaxStreams <= 0 {
		return Config{}, fmt.Errorf("MAX_TIMELINE_STREAMS must be positive, got %d", cfg.MaxStreams)
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
