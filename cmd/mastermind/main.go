package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"example.com/mastermind/internal/app"
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

	a, err := app.New(cfg, logger, app.Options{In: os.Stdin, Out: os.Stdout})
	if err != nil {
		logger.Error("init failed", "err", err)
		os.Exit(1)
	}
	if err := a.Run(ctx); err != nil {
		logger.Error("session failed", "err", err)
		os.Exit(1)
	}
}
