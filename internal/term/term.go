// Package term draws the game on a text terminal and reads the human's input.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/round"
	"github.com/TwiN/go-color"
)

var palette = []string{
	color.Red,
	color.Green,
	color.Yellow,
	color.Blue,
	color.Purple,
	color.Cyan,
	color.White,
	color.Gray,
}

// Terminal implements round.Prompter and round.Reporter.
type Terminal struct {
	in     *bufio.Scanner
	out    io.Writer
	rules  game.Rules
	colors bool
}

func New(in io.Reader, out io.Writer, rules game.Rules, colors bool) *Terminal {
	return &Terminal{
		in:     bufio.NewScanner(in),
		out:    out,
		rules:  rules,
		colors: colors,
	}
}

func (t *Terminal) Intro() {
	t.println("\t\t == Mastermind ==")
	t.printf("Guess the opponent's secret code of %d symbols (1-%d) within %d turns.\n",
		t.rules.Length, t.rules.Symbols, t.rules.MaxTurns)
	t.println("After each guess you get a clue: ● for a right symbol in the right place,")
	t.println("○ for a right symbol in the wrong place. Type q to quit.")
	t.println()
}

// ChooseRole asks which side the human plays and reports true for breaker.
func (t *Terminal) ChooseRole(ctx context.Context) (bool, error) {
	t.println("1 - Be the code breaker")
	t.println("2 - Be the code maker")
	for {
		t.print("Enter 1 or 2: ")
		line, err := t.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch line {
		case "1":
			return true, nil
		case "2":
			return false, nil
		}
		t.println("Invalid choice, must be 1 or 2.")
	}
}

// ReadCode re-prompts until the input is a valid code.
func (t *Terminal) ReadCode(ctx context.Context, prompt string) (game.Code, error) {
	for {
		t.print(prompt)
		line, err := t.readLine(ctx)
		if err != nil {
			return nil, err
		}
		code, err := game.ParseCode(t.rules, line)
		if err == nil {
			return code, nil
		}
		t.printf("Error: code must consist of %d symbols from 1 to %d.\n", t.rules.Length, t.rules.Symbols)
	}
}

func (t *Terminal) PlayAgain(ctx context.Context) (bool, error) {
	for {
		t.print("Do you want to play again (y/n): ")
		line, err := t.readLine(ctx)
		if errors.Is(err, round.ErrQuit) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		t.println("Error: invalid input")
	}
}

func (t *Terminal) RoundStarted(info round.Info) {
	if info.Breaker == round.Computer {
		t.println("The computer is breaking your code.")
	}
}

func (t *Terminal) Attempted(a game.Attempt) {
	t.printf("Round %-3d", a.Turn)
	t.print(t.Code(a.Guess))
	t.print("  ")
	t.println(t.Clue(a.Clue))
}

// Finished reports the outcome from the human's point of view.
func (t *Terminal) Finished(res round.Result) {
	switch res.Winner() {
	case round.Human:
		t.println("You win!")
	case round.Computer:
		t.println("You lose!")
	default:
		t.println("Round abandoned.")
	}
	if res.Breaker == round.Human && res.Outcome != round.Solved {
		t.println("The code was: " + t.Code(res.Secret))
	}
}

func (t *Terminal) Series(s round.Series) {
	t.printf("Score: you %d, computer %d", s.HumanWins, s.ComputerWins)
	if s.Abandoned > 0 {
		t.printf(", abandoned %d", s.Abandoned)
	}
	t.println()
}

// Code renders one colored cell per symbol.
func (t *Terminal) Code(c game.Code) string {
	var b strings.Builder
	for _, s := range c {
		cell := fmt.Sprintf(" %d ", s)
		if t.colors {
			cell = color.Ize(palette[int(s-1)%len(palette)], cell)
		}
		b.WriteString(cell)
	}
	return b.String()
}

func (t *Terminal) Clue(c game.Clue) string {
	var marks []string
	for i := 0; i < c.Exact; i++ {
		marks = append(marks, "●")
	}
	for i := 0; i < c.ColorOnly; i++ {
		marks = append(marks, "○")
	}
	return "Clue: " + strings.Join(marks, " ")
}

func (t *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", round.ErrQuit
	}
	line := strings.TrimSpace(t.in.Text())
	if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
		return "", round.ErrQuit
	}
	return line, nil
}

func (t *Terminal) print(s string) { _, _ = io.WriteString(t.out, s) }

func (t *Terminal) println(a ...string) {
	t.print(strings.Join(a, "") + "\n")
}

func (t *Terminal) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}
