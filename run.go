// run.go
//
// Game loop wiring: banner, prompts, validated reads, outcome
// messages. The engine lives in internal/game and the input loop in
// internal/prompt; this file connects them to the process streams.

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessnum/internal/game"
	"github.com/robalobadob/guessnum/internal/prompt"
)

// Outcome line styles. Rendered only when styled output is on.
var (
	styleLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleWin  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// runGame plays one round on the given streams until the secret is
// guessed. The only error it returns wraps prompt.ErrInputClosed;
// every other bad input is handled by re-prompting.
func runGame(g *game.Game, in io.Reader, out io.Writer, styled bool) error {
	rd := prompt.New(in, out)
	render := func(s lipgloss.Style, msg string) string {
		if styled {
			return s.Render(msg)
		}
		return msg
	}

	fmt.Fprintln(out, "Guess the number!")
	for {
		fmt.Fprintf(out, "Please input your guess, between %d and %d.\n", g.Bounds.Min, g.Bounds.Max)
		guess, err := rd.ReadIntInRange(g.Bounds.Min, g.Bounds.Max)
		if err != nil {
			return fmt.Errorf("read guess: %w", err)
		}
		fmt.Fprintf(out, "You guessed: %d\n", guess)

		outcome, state, err := g.ApplyGuess(guess)
		if err != nil {
			// Unreachable with a validated guess.
			log.Error().Err(err).Int("guess", guess).Msg("apply guess")
			continue
		}
		switch outcome {
		case game.OutcomeLow:
			fmt.Fprintln(out, render(styleLow, "Too small!"))
		case game.OutcomeHigh:
			fmt.Fprintln(out, render(styleHigh, "Too big!"))
		case game.OutcomeWin:
			fmt.Fprintln(out, render(styleWin, fmt.Sprintf("You win! Guessed in %d tries.", g.Guesses)))
		}
		if state == "won" {
			return nil
		}
	}
}
