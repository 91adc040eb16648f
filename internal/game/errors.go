package game

import "errors"

var (
	// ErrInvalidConfiguration is returned when alphabet size, code length or turn
	// limit cannot describe a playable game.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidCode is returned for codes of the wrong length or with symbols
	// outside the alphabet.
	ErrInvalidCode = errors.New("invalid code")

	// ErrInvalidClue is returned for clues with negative counts or more pegs
	// than positions.
	ErrInvalidClue = errors.New("invalid clue")

	// ErrEmptyCandidateSet means a clue eliminated every candidate. The secret
	// always survives a genuine clue, so this is fatal for the game.
	ErrEmptyCandidateSet = errors.New("no candidate is consistent with the clues")

	// ErrGameOver is returned when a guess is requested in a terminal phase.
	ErrGameOver = errors.New("game is over")
)
