package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains the settings a game session is created with.
type RuntimeConfig struct {
	Seed    int64  // RNG seed for reproducible secrets, 0 = time based
	Scoring string // registered scoring policy ID
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:    0, // 0 means use current time
		Scoring: "canonical",
	}
}

// Rand returns the random source for secrets.
func (c RuntimeConfig) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
