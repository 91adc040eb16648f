package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"example.com/mastermind/internal/config"
	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/round"
	"example.com/mastermind/internal/term"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	term    *term.Terminal
	breaker *game.Breaker
	maker   *round.RandomMaker
}

type Options struct {
	In  io.Reader
	Out io.Writer
}

func New(cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("app needs an input and an output")
	}

	seed, err := Seed(cfg)
	if err != nil {
		return nil, err
	}

	breaker, err := NewBreaker(cfg, log, seed)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:     cfg,
		log:     log,
		term:    term.New(opts.In, opts.Out, cfg.Rules(), cfg.Game.Colors),
		breaker: breaker,
		maker:   round.NewRandomMaker(breaker.CodeSpace(), seed),
	}, nil
}

// Run plays rounds until the player stops or ctx is cancelled. Input reads
// cannot be interrupted, so on cancellation Run returns without waiting for
// the session goroutine.
func (a *App) Run(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- a.session(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		a.log.Info("session interrupted")
		return nil
	}
}

func (a *App) session(ctx context.Context) error {
	a.term.Intro()

	var series round.Series
	for {
		humanBreaks, err := a.term.ChooseRole(ctx)
		if errors.Is(err, round.ErrQuit) || errors.Is(err, context.Canceled) {
			break
		}
		if err != nil {
			return err
		}

		r, err := round.New(a.roundConfig(humanBreaks))
		if err != nil {
			return err
		}
		res, err := r.Play(ctx)
		if err != nil {
			return fmt.Errorf("play round: %w", err)
		}

		series.Record(res)
		a.term.Series(series)
		if res.Outcome == round.Abandoned {
			break
		}

		again, err := a.term.PlayAgain(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return err
		}
		if !again {
			break
		}
	}

	a.log.Info("session finished", "rounds", series.Rounds(), "series", series)
	return nil
}

func (a *App) roundConfig(humanBreaks bool) round.Config {
	cfg := round.Config{
		Rules:    a.cfg.Rules(),
		Reporter: a.term,
		Log:      a.log,
	}
	if humanBreaks {
		cfg.Maker = a.maker
		cfg.Breaker = round.NewHumanBreaker(a.term)
	} else {
		cfg.Maker = round.NewHumanMaker(a.term)
		cfg.Breaker = round.NewAutoBreaker(a.breaker)
	}
	return cfg
}

// NewBreaker builds the automated breaker described by cfg.
func NewBreaker(cfg config.Config, log *slog.Logger, seed int64) (*game.Breaker, error) {
	opening, err := cfg.Opening()
	if err != nil {
		return nil, err
	}

	opts := []game.BreakerOption{
		game.WithLogger(log),
		game.WithWorkers(cfg.Game.FilterWorkers, cfg.Game.ParallelThreshold),
	}
	if opening != nil {
		opts = append(opts, game.WithOpening(opening))
	}
	if cfg.Game.Pick == "random" {
		opts = append(opts, game.WithPicker(game.SeededRandom(seed)))
	}

	b, err := game.NewBreaker(cfg.Rules(), opts...)
	if err != nil {
		return nil, fmt.Errorf("breaker: %w", err)
	}
	return b, nil
}
