package game

import "fmt"

// CodeSpace is every code over an alphabet, in lexicographic order with the
// last position varying fastest. Read-only once generated, so one instance
// may back any number of games.
type CodeSpace struct {
	symbols int
	length  int
	codes   []Code
}

// GenerateCodeSpace enumerates all symbols^length codes.
func GenerateCodeSpace(symbols, length int) (*CodeSpace, error) {
	if symbols < 1 || length < 1 {
		return nil, fmt.Errorf("%w: alphabet size %d, code length %d", ErrInvalidConfiguration, symbols, length)
	}
	size, ok := spaceSize(symbols, length)
	if !ok {
		return nil, fmt.Errorf("%w: %d^%d codes exceeds %d", ErrInvalidConfiguration, symbols, length, MaxCodeSpace)
	}

	// one backing array, each code is a window into it
	flat := make([]Symbol, size*length)
	codes := make([]Code, size)
	for i := 0; i < size; i++ {
		c := Code(flat[i*length : (i+1)*length : (i+1)*length])
		rem := i
		for pos := length - 1; pos >= 0; pos-- {
			c[pos] = Symbol(rem%symbols + 1)
			rem /= symbols
		}
		codes[i] = c
	}

	return &CodeSpace{symbols: symbols, length: length, codes: codes}, nil
}

func (s *CodeSpace) Len() int     { return len(s.codes) }
func (s *CodeSpace) Symbols() int { return s.symbols }
func (s *CodeSpace) Length() int  { return s.length }

// At returns the i-th code. Callers must not modify it.
func (s *CodeSpace) At(i int) Code {
	return s.codes[i]
}

// Codes returns a fresh slice of all codes. The codes themselves are shared.
func (s *CodeSpace) Codes() []Code {
	return append([]Code(nil), s.codes...)
}

// Index is the position of c in enumeration order, or -1.
func (s *CodeSpace) Index(c Code) int {
	if len(c) != s.length {
		return -1
	}
	idx := 0
	for _, sym := range c {
		if sym < 1 || int(sym) > s.symbols {
			return -1
		}
		idx = idx*s.symbols + int(sym-1)
	}
	return idx
}

func (s *CodeSpace) Contains(c Code) bool {
	return s.Index(c) >= 0
}
