package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"example.com/mastermind/internal/game"
	"github.com/google/uuid"
)

type Outcome string

const (
	Solved    Outcome = "solved"
	Exhausted Outcome = "exhausted"
	Abandoned Outcome = "abandoned"
)

// Reporter is told about the progress of a round, e.g. to draw it.
type Reporter interface {
	RoundStarted(info Info)
	Attempted(a game.Attempt)
	Finished(res Result)
}

type nopReporter struct{}

func (nopReporter) RoundStarted(Info)      {}
func (nopReporter) Attempted(game.Attempt) {}
func (nopReporter) Finished(Result)        {}

type Config struct {
	Rules    game.Rules
	Maker    Maker
	Breaker  Breaker
	Reporter Reporter     // optional
	Log      *slog.Logger // optional
}

// Round is one game: a secret, then up to Rules.MaxTurns guesses.
type Round struct {
	id    string
	rules game.Rules

	maker    Maker
	breaker  Breaker
	reporter Reporter
	log      *slog.Logger

	phase   string // waiting_secret|playing|finished
	turn    int
	secret  game.Code
	history []game.Attempt
	outcome Outcome
}

func New(cfg Config) (*Round, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	if cfg.Maker == nil || cfg.Breaker == nil {
		return nil, errors.New("round needs a maker and a breaker")
	}
	if cfg.Reporter == nil {
		cfg.Reporter = nopReporter{}
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}

	id := uuid.NewString()
	return &Round{
		id:       id,
		rules:    cfg.Rules,
		maker:    cfg.Maker,
		breaker:  cfg.Breaker,
		reporter: cfg.Reporter,
		log:      cfg.Log.With("round", id),
		phase:    "waiting_secret",
	}, nil
}

func (r *Round) ID() string { return r.id }

// Play runs the round to the end. A player quitting or ctx being cancelled
// ends it as Abandoned without an error.
func (r *Round) Play(ctx context.Context) (Result, error) {
	if r.phase != "waiting_secret" {
		return Result{}, errors.New("round already played")
	}

	secret, err := r.maker.Secret(ctx)
	if quit(ctx, err) {
		return r.finish(Abandoned), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("secret: %w", err)
	}
	if err := r.rules.CheckCode(secret); err != nil {
		return Result{}, fmt.Errorf("secret: %w", err)
	}

	r.secret = secret.Clone()
	r.phase = "playing"
	r.log.Info("round started", "maker", r.maker.Role(), "breaker", r.breaker.Role())
	r.reporter.RoundStarted(r.info())

	for r.turn = 1; r.turn <= r.rules.MaxTurns; r.turn++ {
		if ctx.Err() != nil {
			return r.finish(Abandoned), nil
		}

		guess, err := r.breaker.Guess(ctx, r.turn)
		if quit(ctx, err) {
			return r.finish(Abandoned), nil
		}
		if err != nil {
			return Result{}, fmt.Errorf("turn %d: guess: %w", r.turn, err)
		}
		if err := r.rules.CheckCode(guess); err != nil {
			return Result{}, fmt.Errorf("turn %d: guess: %w", r.turn, err)
		}

		clue, err := game.Evaluate(r.secret, guess)
		if err != nil {
			return Result{}, fmt.Errorf("turn %d: %w", r.turn, err)
		}

		a := game.Attempt{Turn: r.turn, Guess: guess.Clone(), Clue: clue}
		r.history = append(r.history, a)
		r.reporter.Attempted(a)

		if err := r.breaker.Feedback(guess, clue); err != nil {
			return Result{}, fmt.Errorf("turn %d: feedback: %w", r.turn, err)
		}

		if clue.Solved(r.rules.Length) {
			return r.finish(Solved), nil
		}
	}

	return r.finish(Exhausted), nil
}

func (r *Round) finish(o Outcome) Result {
	r.phase = "finished"
	r.outcome = o

	res := r.result()
	r.log.Info("round finished", "outcome", o, "turns", len(r.history))
	r.log.Debug("round result", "result", res)
	r.reporter.Finished(res)
	return res
}

func (r *Round) info() Info {
	return Info{
		RoundID: r.id,
		Rules:   r.rules,
		Maker:   r.maker.Role(),
		Breaker: r.breaker.Role(),
	}
}

func quit(ctx context.Context, err error) bool {
	if errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		return true
	}
	return err != nil && ctx.Err() != nil
}
