package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsValidate(t *testing.T) {
	assert.NoError(t, Bounds{Min: 1, Max: 10}.Validate())
	assert.NoError(t, Bounds{Min: 5, Max: 5}.Validate())
	assert.NoError(t, Bounds{Min: -10, Max: -1}.Validate())
	assert.Error(t, Bounds{Min: 10, Max: 1}.Validate())
}

func TestNewDrawsWithinBounds(t *testing.T) {
	b := Bounds{Min: 1, Max: 10}
	for seed := int64(0); seed < 100; seed++ {
		g, err := New(b, NewSeededRNG(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, g.Secret, b.Min)
		assert.LessOrEqual(t, g.Secret, b.Max)
	}
}

func TestNewIsDeterministicPerSeed(t *testing.T) {
	b := Bounds{Min: 1, Max: 1000}
	g1, err := New(b, NewSeededRNG(42))
	require.NoError(t, err)
	g2, err := New(b, NewSeededRNG(42))
	require.NoError(t, err)
	assert.Equal(t, g1.Secret, g2.Secret)
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	_, err := New(Bounds{Min: 10, Max: 1}, NewSeededRNG(1))
	assert.Error(t, err)
}

func TestNewWithSecretRejectsOutOfRangeSecret(t *testing.T) {
	_, err := NewWithSecret(Bounds{Min: 1, Max: 10}, 11)
	assert.Error(t, err)
	_, err = NewWithSecret(Bounds{Min: 1, Max: 10}, 0)
	assert.Error(t, err)
}

func TestApplyGuessOutcomes(t *testing.T) {
	g, err := NewWithSecret(Bounds{Min: 1, Max: 10}, 7)
	require.NoError(t, err)

	{
		outcome, state, err := g.ApplyGuess(3)
		require.NoError(t, err)
		assert.Equal(t, OutcomeLow, outcome)
		assert.Equal(t, "playing", state)
	}
	{
		outcome, state, err := g.ApplyGuess(9)
		require.NoError(t, err)
		assert.Equal(t, OutcomeHigh, outcome)
		assert.Equal(t, "playing", state)
	}
	{
		outcome, state, err := g.ApplyGuess(7)
		require.NoError(t, err)
		assert.Equal(t, OutcomeWin, outcome)
		assert.Equal(t, "won", state)
	}

	assert.Equal(t, 3, g.Guesses)
	assert.True(t, g.Finished)
	assert.True(t, g.Won)
}

func TestApplyGuessOnFinishedRound(t *testing.T) {
	g, err := NewWithSecret(Bounds{Min: 1, Max: 10}, 7)
	require.NoError(t, err)
	_, _, err = g.ApplyGuess(7)
	require.NoError(t, err)

	_, state, err := g.ApplyGuess(7)
	assert.Error(t, err)
	assert.Equal(t, "won", state)
	assert.Equal(t, 1, g.Guesses)
}

func TestApplyGuessRejectsOutOfRange(t *testing.T) {
	g, err := NewWithSecret(Bounds{Min: 1, Max: 10}, 7)
	require.NoError(t, err)

	for _, n := range []int{0, 11, -5, 100} {
		_, state, err := g.ApplyGuess(n)
		assert.Error(t, err)
		assert.Equal(t, "playing", state)
	}
	assert.Equal(t, 0, g.Guesses, "rejected guesses must not be counted")
}

func TestSecretIsInvariantAcrossGuesses(t *testing.T) {
	g, err := NewWithSecret(Bounds{Min: 1, Max: 100}, 42)
	require.NoError(t, err)

	for n := 1; n <= 41; n++ {
		outcome, _, err := g.ApplyGuess(n)
		require.NoError(t, err)
		assert.Equal(t, OutcomeLow, outcome)
		assert.Equal(t, 42, g.Secret)
	}
}
