package app

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"example.com/mastermind/internal/config"
)

// NewLogger builds the slog logger selected by LOG_FORMAT and LOG_LEVEL.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Seed returns GAME_SEED, or a fresh one from crypto/rand when it is unset.
func Seed(cfg config.Config) (int64, error) {
	if cfg.Game.Seed != 0 {
		return cfg.Game.Seed, nil
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
