package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	dotenv "github.com/joho/godotenv"
	envconf "github.com/sethvargo/go-envconfig"
)

// AppConfig holds defaults read from the environment and an optional .env
// file. Command-line flags override them.
type AppConfig struct {
	Ticks       uint64        `env:"SMF_TICKS, default=400"`
	TickRate    time.Duration `env:"SMF_TICK_RATE, default=25ms"`
	Cycles      int           `env:"SMF_CYCLES, default=3"`
	PressEvery  int           `env:"SMF_PRESS_EVERY, default=7"`
	LogLevel    string        `env:"SMF_LOG_LEVEL, default=info"`
	MetricsAddr string        `env:"SMF_METRICS_ADDR"`
}

func loadConfig(ctx context.Context, logger *slog.Logger) (AppConfig, error) {
	if err := dotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "err", err)
	}
	var c AppConfig
	if err := envconf.Process(ctx, &c); err != nil {
		return AppConfig{}, fmt.Errorf("read environment: %w", err)
	}
	return c, nil
}
