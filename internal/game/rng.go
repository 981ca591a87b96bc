package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 so a round
// can be reproduced from a seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded from crypto/rand entropy.
func NewRNG() *RNG {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return NewSeededRNG(int64(binary.BigEndian.Uint64(b[:])))
}

// NewSeededRNG creates a deterministic RNG from the given seed.
func NewSeededRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntRange returns a uniform value in [min, max] inclusive.
// Callers must guarantee min <= max.
func (r *RNG) IntRange(min, max int) int {
	return min + r.r.IntN(max-min+1)
}
