package round

import (
	"context"
	"errors"
	"math/rand"

	"example.com/mastermind/internal/game"
)

// ErrQuit is returned by a human player who wants to leave the round.
var ErrQuit = errors.New("player quit")

type Role string

const (
	Human    Role = "human"
	Computer Role = "computer"
)

// Breaker is the guessing side of a round. The variant is picked once when
// the round is set up.
type Breaker interface {
	Role() Role
	Guess(ctx context.Context, turn int) (game.Code, error)
	// Feedback delivers the clue the last guess earned.
	Feedback(guess game.Code, clue game.Clue) error
}

// Maker fixes the secret.
type Maker interface {
	Role() Role
	Secret(ctx context.Context) (game.Code, error)
}

// Prompter reads a code typed by a person. It keeps asking until the input is
// valid and returns ErrQuit when the person gives up.
type Prompter interface {
	ReadCode(ctx context.Context, prompt string) (game.Code, error)
}

// AutoBreaker drives game.Breaker and owns its state for one round.
type AutoBreaker struct {
	b  *game.Breaker
	st game.BreakerState
}

func NewAutoBreaker(b *game.Breaker) *AutoBreaker {
	return &AutoBreaker{b: b, st: b.Start()}
}

func (a *AutoBreaker) Role() Role { return Computer }

func (a *AutoBreaker) Guess(_ context.Context, _ int) (game.Code, error) {
	return a.b.NextGuess(a.st)
}

func (a *AutoBreaker) Feedback(guess game.Code, clue game.Clue) error {
	st, err := a.b.RecordClue(a.st, guess, clue)
	if err != nil {
		return err
	}
	a.st = st
	return nil
}

// State is the breaker's current view of the game.
func (a *AutoBreaker) State() game.BreakerState { return a.st }

type HumanBreaker struct {
	p Prompter
}

func NewHumanBreaker(p Prompter) *HumanBreaker {
	return &HumanBreaker{p: p}
}

func (h *HumanBreaker) Role() Role { return Human }

func (h *HumanBreaker) Guess(ctx context.Context, _ int) (game.Code, error) {
	return h.p.ReadCode(ctx, "Enter code: ")
}

// Feedback is a no-op: the person reads the clue from the reporter.
func (h *HumanBreaker) Feedback(game.Code, game.Clue) error { return nil }

// RandomMaker picks a secret uniformly from the code space.
type RandomMaker struct {
	space *game.CodeSpace
	rng   *rand.Rand
}

func NewRandomMaker(space *game.CodeSpace, seed int64) *RandomMaker {
	return &RandomMaker{space: space, rng: rand.New(rand.NewSource(seed))}
}

func (m *RandomMaker) Role() Role { return Computer }

func (m *RandomMaker) Secret(context.Context) (game.Code, error) {
	return m.space.At(m.rng.Intn(m.space.Len())).Clone(), nil
}

type HumanMaker struct {
	p Prompter
}

func NewHumanMaker(p Prompter) *HumanMaker {
	return &HumanMaker{p: p}
}

func (h *HumanMaker) Role() Role { return Human }

func (h *HumanMaker) Secret(ctx context.Context) (game.Code, error) {
	return h.p.ReadCode(ctx, "Enter your secret code: ")
}
