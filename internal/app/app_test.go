package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"example.com/mastermind/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Game.Seed = 7
	cfg.Game.Colors = false
	return cfg
}

func runSession(t *testing.T, cfg config.Config, input string) string {
	t.Helper()
	out := &bytes.Buffer{}
	a, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		In:  strings.NewReader(input),
		Out: out,
	})
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))
	return out.String()
}

func TestApp_ComputerBreaksHumanCode(t *testing.T) {
	out := runSession(t, testConfig(t), "2\n3141\nn\n")

	assert.Contains(t, out, "The computer is breaking your code.")
	assert.Contains(t, out, "Round 1   1  1  2  2   Clue: ● ○")
	assert.Contains(t, out, "Round 6   3  1  4  1   Clue: ● ● ● ●")
	assert.Contains(t, out, "You lose!")
	assert.Contains(t, out, "Score: you 0, computer 1")
}

func TestApp_PlayAgainKeepsScore(t *testing.T) {
	out := runSession(t, testConfig(t), "2\n3141\ny\n2\n1122\nn\n")

	assert.Equal(t, 2, strings.Count(out, "You lose!"))
	assert.Contains(t, out, "Score: you 0, computer 2")
}

func TestApp_HumanQuitsMidRound(t *testing.T) {
	out := runSession(t, testConfig(t), "1\nq\n")

	assert.Contains(t, out, "Enter code: ")
	assert.Contains(t, out, "Round abandoned.")
	assert.Contains(t, out, "abandoned 1")
	assert.NotContains(t, out, "play again")
}

func TestApp_QuitAtMenu(t *testing.T) {
	out := runSession(t, testConfig(t), "q\n")
	assert.Contains(t, out, "== Mastermind ==")
	assert.NotContains(t, out, "Score:")
}

func TestApp_ConfiguredBoard(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.Symbols = 8
	cfg.Game.CodeLength = 5
	cfg.Game.OpeningGuess = "12345"
	cfg.Game.Pick = "random"

	out := runSession(t, cfg, "2\n87654\nn\n")
	assert.Contains(t, out, "Round 1   1  2  3  4  5 ")
	assert.Contains(t, out, "Score: you ")
}

func TestApp_RunReturnsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	a, err := New(testConfig(t), nil, Options{In: pr, Out: io.Discard})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNew_RequiresIO(t *testing.T) {
	_, err := New(testConfig(t), nil, Options{})
	require.Error(t, err)
}

func TestSeed(t *testing.T) {
	cfg := testConfig(t)
	seed, err := Seed(cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(7), seed)

	cfg.Game.Seed = 0
	a, err := Seed(cfg)
	require.NoError(t, err)
	b, err := Seed(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewLogger(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Format = "json"
	cfg.Log.Level = "info"

	buf := &bytes.Buffer{}
	NewLogger(cfg, buf).Info("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	NewLogger(cfg, buf).Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestApp_LogsSeriesAsJSON(t *testing.T) {
	var logs bytes.Buffer
	a, err := New(testConfig(t), slog.New(slog.NewJSONHandler(&logs, nil)), Options{
		In:  strings.NewReader("2\n3141\nn\n"),
		Out: io.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, logs.String(), `"msg":"session finished","rounds":1,"series":{"humanWins":0,"computerWins":1,"abandoned":0}`)
}
