// config.go
//
// Environment-backed configuration for the guessing game.
// Every variable has a default; running with no environment at all
// plays the classic [1, 100] game.
//
// Variables:
//   GUESS_MIN   lower bound for the secret (default 1)
//   GUESS_MAX   upper bound for the secret (default 100)
//   GUESS_SEED  optional int64 seed for a reproducible secret
//   LOG_LEVEL   zerolog level for diagnostics (default "info")

package main

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultMin = 1
	defaultMax = 100
)

// Config carries the tunables for one run.
type Config struct {
	Min     int
	Max     int
	Seed    int64
	HasSeed bool
}

// loadConfig reads the environment and validates the result.
func loadConfig() (Config, error) {
	cfg := Config{}
	var err error
	if cfg.Min, err = intEnv("GUESS_MIN", defaultMin); err != nil {
		return cfg, err
	}
	if cfg.Max, err = intEnv("GUESS_MAX", defaultMax); err != nil {
		return cfg, err
	}
	if v := os.Getenv("GUESS_SEED"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("GUESS_SEED: %w", err)
		}
		cfg.Seed, cfg.HasSeed = s, true
	}
	if cfg.Min > cfg.Max {
		return cfg, fmt.Errorf("GUESS_MIN %d greater than GUESS_MAX %d", cfg.Min, cfg.Max)
	}
	return cfg, nil
}

// intEnv parses an integer environment variable, falling back to def
// when unset or empty.
func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
