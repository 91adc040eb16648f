package game

import "fmt"

// Evaluate scores guess against secret.
//
// Exact pegs are positions that agree. Color-only pegs are counted on the
// remaining positions only: for every symbol, min(count in guess, count in
// secret). A secret peg is never credited twice.
func Evaluate(secret, guess Code) (Clue, error) {
	if len(secret) != len(guess) {
		return Clue{}, fmt.Errorf("%w: secret has %d positions, guess has %d", ErrInvalidCode, len(secret), len(guess))
	}

	var top Symbol
	for i := range secret {
		if !inAnyAlphabet(secret[i]) || !inAnyAlphabet(guess[i]) {
			return Clue{}, fmt.Errorf("%w: symbol at position %d outside 1..%d", ErrInvalidCode, i+1, MaxCodeSpace)
		}
		top = max(top, secret[i], guess[i])
	}

	if int(top) >= 16 {
		return evaluateWide(secret, guess), nil
	}

	var cntS, cntG [16]int
	var clue Clue
	for i := range secret {
		if secret[i] == guess[i] {
			clue.Exact++
			continue
		}
		cntS[secret[i]]++
		cntG[guess[i]]++
	}
	for d := range cntS {
		clue.ColorOnly += min(cntS[d], cntG[d])
	}
	return clue, nil
}

// inAnyAlphabet reports whether s can belong to a valid Rules alphabet.
func inAnyAlphabet(s Symbol) bool {
	return s >= 1 && s <= MaxCodeSpace
}

// evaluateWide counts by symbol in maps, so large symbol values cost nothing.
func evaluateWide(secret, guess Code) Clue {
	cntS := make(map[Symbol]int, len(secret))
	cntG := make(map[Symbol]int, len(guess))
	var clue Clue
	for i := range secret {
		if secret[i] == guess[i] {
			clue.Exact++
			continue
		}
		cntS[secret[i]]++
		cntG[guess[i]]++
	}
	for d, n := range cntS {
		clue.ColorOnly += min(n, cntG[d])
	}
	return clue
}
