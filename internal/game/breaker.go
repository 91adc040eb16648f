package game

import (
	"fmt"
	"log/slog"
	"math/rand"
)

type Phase string

const (
	PhaseOpening   Phase = "opening"
	PhaseNarrowing Phase = "narrowing"
	PhaseSolved    Phase = "solved"
	PhaseExhausted Phase = "exhausted"
)

func (p Phase) Terminal() bool {
	return p == PhaseSolved || p == PhaseExhausted
}

// BreakerState is everything the breaker knows mid-game. Breaker methods take
// a state and return a new one; they never modify the one they were given.
type BreakerState struct {
	Phase      Phase
	Turn       int // turn of the next guess, 1-based
	Candidates []Code
	History    []Attempt
}

// Picker chooses the next guess among the remaining candidates.
// Implementations must be deterministic for a given input.
type Picker interface {
	Pick(candidates []Code, turn int) Code
}

type PickerFunc func(candidates []Code, turn int) Code

func (f PickerFunc) Pick(candidates []Code, turn int) Code { return f(candidates, turn) }

// FirstCandidate picks the first remaining code in enumeration order.
var FirstCandidate Picker = PickerFunc(func(candidates []Code, _ int) Code {
	return candidates[0]
})

// SeededRandom picks a uniformly random candidate. The choice depends only on
// the seed, the turn and the candidate count, so replays are exact.
func SeededRandom(seed int64) Picker {
	return PickerFunc(func(candidates []Code, turn int) Code {
		rng := rand.New(rand.NewSource(seed ^ int64(turn)<<32 ^ int64(len(candidates))))
		return candidates[rng.Intn(len(candidates))]
	})
}

// Breaker is the automated code breaker. It holds only immutable settings and
// is safe to share between games.
type Breaker struct {
	rules     Rules
	space     *CodeSpace
	opening   Code
	picker    Picker
	workers   int
	threshold int
	log       *slog.Logger
}

type BreakerOption func(*Breaker)

// WithCodeSpace reuses an already generated space instead of enumerating a new one.
func WithCodeSpace(space *CodeSpace) BreakerOption {
	return func(b *Breaker) { b.space = space }
}

func WithOpening(c Code) BreakerOption {
	return func(b *Breaker) { b.opening = c.Clone() }
}

func WithPicker(p Picker) BreakerOption {
	return func(b *Breaker) {
		if p != nil {
			b.picker = p
		}
	}
}

// WithWorkers filters candidate sets of at least threshold codes on n goroutines.
func WithWorkers(n, threshold int) BreakerOption {
	return func(b *Breaker) {
		b.workers = n
		b.threshold = threshold
	}
}

func WithLogger(log *slog.Logger) BreakerOption {
	return func(b *Breaker) {
		if log != nil {
			b.log = log
		}
	}
}

func NewBreaker(rules Rules, opts ...BreakerOption) (*Breaker, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	b := &Breaker{
		rules:  rules,
		picker: FirstCandidate,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.space == nil {
		space, err := GenerateCodeSpace(rules.Symbols, rules.Length)
		if err != nil {
			return nil, err
		}
		b.space = space
	}
	if b.space.Symbols() != rules.Symbols || b.space.Length() != rules.Length {
		return nil, fmt.Errorf("%w: code space is %d^%d, rules say %d^%d",
			ErrInvalidConfiguration, b.space.Symbols(), b.space.Length(), rules.Symbols, rules.Length)
	}

	if b.opening == nil {
		b.opening = DefaultOpening(rules)
	}
	if err := rules.CheckCode(b.opening); err != nil {
		return nil, fmt.Errorf("opening guess: %w", err)
	}
	return b, nil
}

// DefaultOpening fills the first half of the positions with symbol 1 and the
// rest with symbol 2 (1122 on the classic board). One-symbol alphabets get all 1s.
func DefaultOpening(r Rules) Code {
	c := make(Code, r.Length)
	for i := range c {
		c[i] = 1
		if i >= r.Length/2 && r.Symbols > 1 {
			c[i] = 2
		}
	}
	return c
}

func (b *Breaker) Rules() Rules          { return b.rules }
func (b *Breaker) CodeSpace() *CodeSpace { return b.space }
func (b *Breaker) Opening() Code         { return b.opening.Clone() }

// Start returns the opening state: turn 1, every code still possible.
func (b *Breaker) Start() BreakerState {
	return BreakerState{
		Phase:      PhaseOpening,
		Turn:       1,
		Candidates: b.space.Codes(),
	}
}

// NextGuess returns the guess for st.Turn.
func (b *Breaker) NextGuess(st BreakerState) (Code, error) {
	switch st.Phase {
	case PhaseOpening:
		return b.opening.Clone(), nil
	case PhaseNarrowing:
		if len(st.Candidates) == 0 {
			return nil, ErrEmptyCandidateSet
		}
		return b.picker.Pick(st.Candidates, st.Turn).Clone(), nil
	case PhaseSolved, PhaseExhausted:
		return nil, ErrGameOver
	default:
		return nil, fmt.Errorf("unknown breaker phase %q", st.Phase)
	}
}

// RecordClue folds the clue that guess earned into the state: it appends the
// attempt, advances the turn and either ends the game or narrows the candidates.
func (b *Breaker) RecordClue(st BreakerState, guess Code, clue Clue) (BreakerState, error) {
	if st.Phase.Terminal() {
		return st, ErrGameOver
	}
	if err := b.rules.CheckCode(guess); err != nil {
		return st, err
	}
	if err := b.rules.CheckClue(clue); err != nil {
		return st, err
	}

	history := make([]Attempt, len(st.History), len(st.History)+1)
	copy(history, st.History)
	history = append(history, Attempt{Turn: st.Turn, Guess: guess.Clone(), Clue: clue})

	next := BreakerState{
		Turn:    st.Turn + 1,
		History: history,
	}

	if clue.Solved(b.rules.Length) {
		next.Phase = PhaseSolved
		next.Candidates = []Code{guess.Clone()}
		b.log.Debug("breaker solved", "turn", st.Turn, "code", guess.String())
		return next, nil
	}

	var (
		remaining []Code
		err       error
	)
	if b.workers > 1 && len(st.Candidates) >= b.threshold {
		remaining, err = FilterParallel(st.Candidates, guess, clue, b.workers)
	} else {
		remaining, err = Filter(st.Candidates, guess, clue)
	}
	if err != nil {
		return st, fmt.Errorf("turn %d: %w", st.Turn, err)
	}
	next.Candidates = remaining

	if next.Turn > b.rules.MaxTurns {
		next.Phase = PhaseExhausted
	} else {
		next.Phase = PhaseNarrowing
	}

	b.log.Debug("breaker narrowed",
		"turn", st.Turn,
		"guess", guess.String(),
		"exact", clue.Exact,
		"colorOnly", clue.ColorOnly,
		"before", len(st.Candidates),
		"after", len(remaining),
		"phase", next.Phase,
	)
	return next, nil
}

// Solve plays a full game against secret and returns the final state.
func (b *Breaker) Solve(secret Code) (BreakerState, error) {
	if err := b.rules.CheckCode(secret); err != nil {
		return BreakerState{}, err
	}

	st := b.Start()
	for !st.Phase.Terminal() {
		guess, err := b.NextGuess(st)
		if err != nil {
			return st, err
		}
		clue, err := Evaluate(secret, guess)
		if err != nil {
			return st, err
		}
		st, err = b.RecordClue(st, guess, clue)
		if err != nil {
			return st, err
		}
	}
	return st, nil
}
