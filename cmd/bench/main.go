package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"example.com/mastermind/internal/app"
	"example.com/mastermind/internal/bench"
	"example.com/mastermind/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := app.NewLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed, err := app.Seed(cfg)
	if err != nil {
		logger.Error("seed", "err", err)
		os.Exit(1)
	}
	b, err := app.NewBreaker(cfg, logger, seed)
	if err != nil {
		logger.Error("init failed", "err", err)
		os.Exit(1)
	}

	var progress io.Writer
	if cfg.Bench.Progress {
		progress = os.Stderr
	}
	rep, err := bench.Run(ctx, b, bench.Options{
		Workers:  cfg.Bench.Workers,
		Progress: progress,
		Log:      logger,
	})
	if err != nil {
		logger.Error("bench failed", "err", err)
		os.Exit(1)
	}
	write := rep.Write
	if cfg.Log.Format == "json" {
		write = rep.WriteJSON
	}
	if err := write(os.Stdout); err != nil {
		logger.Error("write report", "err", err)
		os.Exit(1)
	}
}
