// internal/game/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Outcome: result of evaluating a single guess (low/high/win).
//   - Bounds:  inclusive [Min, Max] range for secrets and guesses.
//   - Game:    state for a single in-progress or finished round.

package game

// Outcome represents the evaluation result for a single guess.
// Possible values:
//   - "low":  guess is strictly below the secret number.
//   - "high": guess is strictly above the secret number.
//   - "win":  guess equals the secret number.
type Outcome string

const (
	OutcomeLow  Outcome = "low"
	OutcomeHigh Outcome = "high"
	OutcomeWin  Outcome = "win"
)

// Bounds is the inclusive range the secret number is drawn from.
// Valid guesses must fall inside it as well.
type Bounds struct {
	Min int // lowest admissible value (inclusive)
	Max int // highest admissible value (inclusive)
}

// Game holds the state of a single guessing round.
type Game struct {
	Secret   int    // the target number (never shown to the player)
	Bounds   Bounds // admissible range for secret and guesses
	Guesses  int    // count of validated guesses applied so far
	Finished bool   // true once the round is over
	Won      bool   // true if the round finished with a win
}
