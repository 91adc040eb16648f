package game

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Filter keeps the candidates c for which Evaluate(c, guess) == clue, in
// their original order. The input slice is left untouched.
//
// Filter does not know the alphabet: callers check guess with
// Rules.CheckCode first, as Breaker.RecordClue does. Filter itself only
// rejects codes Evaluate rejects.
func Filter(candidates []Code, guess Code, clue Clue) ([]Code, error) {
	out, err := filterChunk(candidates, guess, clue)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: guess %s, clue %s", ErrEmptyCandidateSet, guess, clue)
	}
	return out, nil
}

// FilterParallel is Filter with the candidates split into contiguous chunks,
// one goroutine per chunk. Chunks are concatenated in order, so the result is
// the same as Filter's.
func FilterParallel(candidates []Code, guess Code, clue Clue, workers int) ([]Code, error) {
	if workers <= 1 || len(candidates) < 2*workers {
		return Filter(candidates, guess, clue)
	}

	chunk := (len(candidates) + workers - 1) / workers
	parts := make([][]Code, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(candidates))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			part, err := filterChunk(candidates[lo:hi], guess, clue)
			if err != nil {
				return err
			}
			parts[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: guess %s, clue %s", ErrEmptyCandidateSet, guess, clue)
	}

	out := make([]Code, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

func filterChunk(candidates []Code, guess Code, clue Clue) ([]Code, error) {
	var out []Code
	for _, c := range candidates {
		got, err := Evaluate(c, guess)
		if err != nil {
			return nil, err
		}
		if got == clue {
			out = append(out, c)
		}
	}
	return out, nil
}
