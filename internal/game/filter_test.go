package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_KeepsExactlyConsistentCandidates(t *testing.T) {
	space, err := GenerateCodeSpace(6, 4)
	require.NoError(t, err)

	all := space.Codes()
	secret := Code{3, 1, 4, 1}
	guess := Code{1, 1, 2, 2}
	clue, err := Evaluate(secret, guess)
	require.NoError(t, err)

	got, err := Filter(all, guess, clue)
	require.NoError(t, err)
	require.Less(t, len(got), len(all))
	require.Contains(t, got, secret)
	assert.NotContains(t, got, guess)

	for _, c := range got {
		cc, _ := Evaluate(c, guess)
		require.Equal(t, clue, cc)
	}

	// nothing consistent was dropped
	kept := 0
	for _, c := range all {
		if cc, _ := Evaluate(c, guess); cc == clue {
			kept++
		}
	}
	assert.Equal(t, kept, len(got))

	// input untouched
	assert.Len(t, all, 1296)
	assert.Equal(t, space.Codes(), all)
}

func TestFilter_EmptyCandidateSet(t *testing.T) {
	candidates := []Code{{1, 1, 1, 1}, {2, 2, 2, 2}}
	_, err := Filter(candidates, Code{3, 3, 3, 3}, Clue{Exact: 2})
	require.ErrorIs(t, err, ErrEmptyCandidateSet)
}

func TestFilter_InvalidCode(t *testing.T) {
	_, err := Filter([]Code{{1, 1, 1, 1}}, Code{1, 1}, Clue{})
	require.ErrorIs(t, err, ErrInvalidCode)

	space, err := GenerateCodeSpace(6, 4)
	require.NoError(t, err)

	_, err = Filter(space.Codes(), Code{1, 1, 1, 1 << 40}, Clue{Exact: 3})
	require.ErrorIs(t, err, ErrInvalidCode)

	_, err = FilterParallel(space.Codes(), Code{0, 1, 1, 1}, Clue{}, 4)
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestFilterParallel_MatchesFilter(t *testing.T) {
	space, err := GenerateCodeSpace(8, 5)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		secret := space.At(rng.Intn(space.Len()))
		guess := space.At(rng.Intn(space.Len()))
		clue, err := Evaluate(secret, guess)
		require.NoError(t, err)

		seq, err := Filter(space.Codes(), guess, clue)
		require.NoError(t, err)

		for _, workers := range []int{0, 1, 3, 8} {
			par, err := FilterParallel(space.Codes(), guess, clue, workers)
			require.NoError(t, err)
			require.Equal(t, seq, par, "workers=%d", workers)
		}
	}
}

func TestFilterParallel_EmptyCandidateSet(t *testing.T) {
	space, err := GenerateCodeSpace(6, 4)
	require.NoError(t, err)

	_, err = FilterParallel(space.Codes(), Code{1, 2, 3, 4}, Clue{Exact: 3, ColorOnly: 1}, 4)
	require.ErrorIs(t, err, ErrEmptyCandidateSet)
}
