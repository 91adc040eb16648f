package config

import (
	"log/slog"
	"testing"

	"example.com/mastermind/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, game.DefaultRules, c.Rules())
	assert.Equal(t, "first", c.Game.Pick)
	assert.Equal(t, 1, c.Game.FilterWorkers)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, slog.LevelWarn, c.LogLevel())
	assert.True(t, c.Bench.Progress)

	opening, err := c.Opening()
	require.NoError(t, err)
	assert.Nil(t, opening)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GAME_SYMBOLS", "8")
	t.Setenv("GAME_CODE_LENGTH", "5")
	t.Setenv("GAME_MAX_TURNS", "10")
	t.Setenv("GAME_OPENING_GUESS", "12345")
	t.Setenv("GAME_PICK", "random")
	t.Setenv("GAME_SEED", "42")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, game.Rules{Symbols: 8, Length: 5, MaxTurns: 10}, c.Rules())
	assert.Equal(t, int64(42), c.Game.Seed)
	assert.Equal(t, slog.LevelDebug, c.LogLevel())

	opening, err := c.Opening()
	require.NoError(t, err)
	assert.Equal(t, game.Code{1, 2, 3, 4, 5}, opening)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name, key, value string
	}{
		{"zero symbols", "GAME_SYMBOLS", "0"},
		{"zero length", "GAME_CODE_LENGTH", "0"},
		{"zero turns", "GAME_MAX_TURNS", "0"},
		{"opening outside alphabet", "GAME_OPENING_GUESS", "1239"},
		{"opening too short", "GAME_OPENING_GUESS", "12"},
		{"pick", "GAME_PICK", "best"},
		{"workers", "GAME_FILTER_WORKERS", "0"},
		{"log format", "LOG_FORMAT", "xml"},
		{"log level", "LOG_LEVEL", "loud"},
		{"not a number", "GAME_SYMBOLS", "six"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
