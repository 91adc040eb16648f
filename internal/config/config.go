package config

import (
	"errors"
	"fmt"
	"log/slog"

	"example.com/mastermind/internal/game"
	"github.com/caarlos0/env/v11"
)

// Config describes all runtime settings.
//
// Load it once in main, validate it, then hand the pieces down.
type Config struct {
	Env string `env:"APP_ENV" envDefault:"dev"` // dev|prod

	Log struct {
		Format string `env:"LOG_FORMAT" envDefault:"text"` // text|json
		Level  string `env:"LOG_LEVEL" envDefault:"warn"`
	}

	Game struct {
		Symbols      int    `env:"GAME_SYMBOLS" envDefault:"6"`
		CodeLength   int    `env:"GAME_CODE_LENGTH" envDefault:"4"`
		MaxTurns     int    `env:"GAME_MAX_TURNS" envDefault:"12"`
		OpeningGuess string `env:"GAME_OPENING_GUESS"` // empty => 1122-style default
		Pick         string `env:"GAME_PICK" envDefault:"first"`
		Seed         int64  `env:"GAME_SEED"` // 0 => fresh random seed
		Colors       bool   `env:"GAME_COLORS" envDefault:"true"`

		FilterWorkers     int `env:"GAME_FILTER_WORKERS" envDefault:"1"`
		ParallelThreshold int `env:"GAME_PARALLEL_THRESHOLD" envDefault:"4096"`
	}

	Bench struct {
		Workers  int  `env:"BENCH_WORKERS"` // 0 => runtime.NumCPU
		Progress bool `env:"BENCH_PROGRESS" envDefault:"true"`
	}
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Rules() game.Rules {
	return game.Rules{
		Symbols:  c.Game.Symbols,
		Length:   c.Game.CodeLength,
		MaxTurns: c.Game.MaxTurns,
	}
}

// Opening parses GAME_OPENING_GUESS; nil means use the default opening.
func (c Config) Opening() (game.Code, error) {
	if c.Game.OpeningGuess == "" {
		return nil, nil
	}
	code, err := game.ParseCode(c.Rules(), c.Game.OpeningGuess)
	if err != nil {
		return nil, fmt.Errorf("GAME_OPENING_GUESS: %w", err)
	}
	return code, nil
}

func (c Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	if _, err := c.Opening(); err != nil {
		return err
	}
	if c.Game.Pick != "first" && c.Game.Pick != "random" {
		return fmt.Errorf("unsupported GAME_PICK=%q (want first|random)", c.Game.Pick)
	}
	if c.Game.FilterWorkers < 1 {
		return errors.New("GAME_FILTER_WORKERS must be at least 1")
	}
	if c.Game.ParallelThreshold < 0 {
		return errors.New("GAME_PARALLEL_THRESHOLD must not be negative")
	}
	if c.Bench.Workers < 0 {
		return errors.New("BENCH_WORKERS must not be negative")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("unsupported LOG_LEVEL=%q: %w", c.Log.Level, err)
	}
	return nil
}
