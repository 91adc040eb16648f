package game

import (
	"strconv"
	"strings"
)

// Symbol is one peg color. Valid symbols are 1..Rules.Symbols.
type Symbol int

// Code is an ordered sequence of symbols. Repeats are allowed.
type Code []Symbol

func (c Code) Equal(o Code) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share the backing array.
func (c Code) Clone() Code {
	return append(Code(nil), c...)
}

// String renders single-digit symbols back to back ("3141") and
// falls back to space separated numbers for wider alphabets.
func (c Code) String() string {
	wide := false
	for _, s := range c {
		if s < 0 || s > 9 {
			wide = true
			break
		}
	}

	var b strings.Builder
	for i, s := range c {
		if wide && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}

// Clue is the feedback for one guess: exact pegs and color-only pegs.
type Clue struct {
	Exact     int `json:"exact"`
	ColorOnly int `json:"colorOnly"`
}

// Solved reports whether the clue marks every one of n positions exact.
func (c Clue) Solved(n int) bool {
	return c.Exact == n
}

func (c Clue) String() string {
	return strconv.Itoa(c.Exact) + " exact, " + strconv.Itoa(c.ColorOnly) + " color"
}

// Attempt is one entry of the guess history. Never mutated after creation.
type Attempt struct {
	Turn  int  `json:"turn"`
	Guess Code `json:"guess"`
	Clue  Clue `json:"clue"`
}
