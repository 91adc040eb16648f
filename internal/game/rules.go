package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MaxCodeSpace bounds symbols^length so a code space always fits in memory.
const MaxCodeSpace = 1 << 24

// Rules fixes the alphabet, the code length and the turn budget of a game.
type Rules struct {
	Symbols  int `json:"symbols"`
	Length   int `json:"length"`
	MaxTurns int `json:"maxTurns"`
}

// DefaultRules is the classic board: six colors, four pegs, twelve rows.
var DefaultRules = Rules{Symbols: 6, Length: 4, MaxTurns: 12}

func (r Rules) Validate() error {
	if r.Symbols < 1 {
		return fmt.Errorf("%w: alphabet size %d, want at least 1", ErrInvalidConfiguration, r.Symbols)
	}
	if r.Length < 1 {
		return fmt.Errorf("%w: code length %d, want at least 1", ErrInvalidConfiguration, r.Length)
	}
	if r.MaxTurns < 1 {
		return fmt.Errorf("%w: max turns %d, want at least 1", ErrInvalidConfiguration, r.MaxTurns)
	}
	if _, ok := spaceSize(r.Symbols, r.Length); !ok {
		return fmt.Errorf("%w: %d^%d codes exceeds %d", ErrInvalidConfiguration, r.Symbols, r.Length, MaxCodeSpace)
	}
	return nil
}

// CheckCode rejects codes that do not belong to the code space of r.
func (r Rules) CheckCode(c Code) error {
	if len(c) != r.Length {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidCode, len(c), r.Length)
	}
	for i, s := range c {
		if s < 1 || int(s) > r.Symbols {
			return fmt.Errorf("%w: symbol %d at position %d outside 1..%d", ErrInvalidCode, s, i+1, r.Symbols)
		}
	}
	return nil
}

func (r Rules) CheckClue(c Clue) error {
	if c.Exact < 0 || c.ColorOnly < 0 || c.Exact+c.ColorOnly > r.Length {
		return fmt.Errorf("%w: %d exact + %d color for %d positions", ErrInvalidClue, c.Exact, c.ColorOnly, r.Length)
	}
	// n-1 exact pegs force the last one to be exact too.
	if c.Exact == r.Length-1 && c.ColorOnly == 1 {
		return fmt.Errorf("%w: %d exact + 1 color is impossible", ErrInvalidClue, c.Exact)
	}
	return nil
}

// ParseCode turns user input into a Code. Alphabets of up to nine symbols take
// plain digits ("3141", "3 1 4 1"); wider ones need separators ("10,2,7,7").
func ParseCode(r Rules, s string) (Code, error) {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(c rune) bool {
		return c == ',' || unicode.IsSpace(c)
	})

	var code Code
	if len(fields) == 1 && r.Symbols <= 9 {
		for _, ch := range fields[0] {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q is not a digit", ErrInvalidCode, ch)
			}
			code = append(code, Symbol(ch-'0'))
		}
	} else {
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidCode, f)
			}
			code = append(code, Symbol(n))
		}
	}

	if err := r.CheckCode(code); err != nil {
		return nil, err
	}
	return code, nil
}

func spaceSize(symbols, length int) (int, bool) {
	n := 1
	for i := 0; i < length; i++ {
		n *= symbols
		if n > MaxCodeSpace {
			return 0, false
		}
	}
	return n, true
}
