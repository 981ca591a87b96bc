package main

import (
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessnum/internal/game"
	"os"
)

// Exit codes, for scripts wrapping the game.
const (
	exitOK          = 0 // correct guess
	exitRunFailure  = 1 // unreadable input stream
	exitConfigError = 2 // invalid environment configuration
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(exitConfigError)
	}

	rng := game.NewRNG()
	if cfg.HasSeed {
		rng = game.NewSeededRNG(cfg.Seed)
	}
	g, err := game.New(game.Bounds{Min: cfg.Min, Max: cfg.Max}, rng)
	if err != nil {
		log.Error().Err(err).Msg("invalid bounds")
		os.Exit(exitConfigError)
	}
	log.Debug().Int("min", cfg.Min).Int("max", cfg.Max).Msg("secret drawn")

	styled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if err := runGame(g, os.Stdin, os.Stdout, styled); err != nil {
		log.Error().Err(err).Msg("input stream failed")
		os.Exit(exitRunFailure)
	}
	os.Exit(exitOK)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
