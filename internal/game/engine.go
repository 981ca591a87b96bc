// internal/game/engine.go
//
// Core game engine for a single guessing round.
// Responsibilities:
//   - Create new rounds with a secret drawn uniformly from [Min, Max].
//   - Validate and apply guesses (range, round not finished).
//   - Track state transitions: playing → won.
//
// Notes:
//   - Randomness comes from the RNG type in this package; tests pin
//     the secret with NewWithSecret instead of seeding.
//   - The prompt layer already rejects out-of-range guesses, so the
//     range check in ApplyGuess only fires when the engine is driven
//     directly.
package game

import (
	"errors"
	"fmt"
)

// New constructs a round, drawing the secret uniformly over b.
// A nil rng gets a fresh entropy-seeded one.
func New(b Bounds, rng *RNG) (*Game, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRNG()
	}
	return &Game{Secret: rng.IntRange(b.Min, b.Max), Bounds: b}, nil
}

// NewWithSecret constructs a round with a pinned secret instead of a
// random draw. Used by tests.
func NewWithSecret(b Bounds, secret int) (*Game, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !b.Contains(secret) {
		return nil, fmt.Errorf("secret %d outside bounds [%d, %d]", secret, b.Min, b.Max)
	}
	return &Game{Secret: secret, Bounds: b}, nil
}

// Validate reports whether the bounds describe a non-empty range.
func (b Bounds) Validate() error {
	if b.Min > b.Max {
		return fmt.Errorf("bounds: min %d greater than max %d", b.Min, b.Max)
	}
	return nil
}

// Contains reports whether n lies inside the inclusive range.
func (b Bounds) Contains(n int) bool { return n >= b.Min && n <= b.Max }

// ApplyGuess evaluates a guess, mutating the round state.
// Returns the outcome, the new state string ("playing"/"won"), or an error.
//
// Validation rules:
//   - Round must not be finished.
//   - Guess must lie inside g.Bounds.
//
// State transitions:
//   - If the guess equals the secret → Finished = true, Won = true.
//   - Otherwise the round stays in "playing" and awaits another guess.
func (g *Game) ApplyGuess(n int) (Outcome, string, error) {
	if g.Finished {
		return "", g.State(), errors.New("round finished")
	}
	if !g.Bounds.Contains(n) {
		return "", g.State(), fmt.Errorf("guess %d outside bounds [%d, %d]", n, g.Bounds.Min, g.Bounds.Max)
	}

	g.Guesses++
	switch {
	case n < g.Secret:
		return OutcomeLow, g.State(), nil
	case n > g.Secret:
		return OutcomeHigh, g.State(), nil
	}
	g.Finished, g.Won = true, true
	return OutcomeWin, g.State(), nil
}

// State reports a coarse string representation of the round state.
func (g *Game) State() string {
	if g.Finished && g.Won {
		return "won"
	}
	return "playing"
}
