// Package scoring implements the feedback policies for comparing a guess to
// the secret. Each policy registers itself with the registry on import.
package scoring

import (
	"fmt"

	"github.com/vovakirdan/mastermind/internal/core"
	"github.com/vovakirdan/mastermind/internal/registry"
)

const (
	CanonicalID = "canonical"
	LegacyID    = "legacy"
)

func init() {
	registry.Register(CanonicalID, func() registry.Scorer {
		return Canonical{}
	})
	registry.Register(LegacyID, func() registry.Scorer {
		return Legacy{}
	})
}

// Canonical is standard Mastermind scoring. Secret pegs that are not exact
// matches form a pool; each remaining guess peg consumes at most one pool
// entry of its color, so no peg is counted twice.
type Canonical struct{}

// ID returns the policy identifier.
func (Canonical) ID() string { return CanonicalID }

// Title returns the display name.
func (Canonical) Title() string { return "Canonical (each peg counted once)" }

// Score implements registry.Scorer.
func (Canonical) Score(secret core.Secret, guess core.Guess) core.Feedback {
	mustComplete(secret, guess)

	fb := core.Feedback{Guess: guess}
	var pool [core.NumColors + 1]int // indexed by Color
	var open [core.CodeLength]bool

	for i := 0; i < core.CodeLength; i++ {
		if guess[i] == secret[i] {
			fb.Exact++
			continue
		}
		pool[secret[i]]++
		open[i] = true
	}

	for i := 0; i < core.CodeLength; i++ {
		if !open[i] {
			continue
		}
		if c := guess[i]; pool[c] > 0 {
			pool[c]--
			fb.ColorOnly++
		}
	}

	return fb
}

// mustComplete panics when either code still holds the empty sentinel.
func mustComplete(secret core.Secret, guess core.Guess) {
	if !secret.Code().Complete() {
		panic(fmt.Sprintf("scoring: incomplete secret %v", secret))
	}
	if !guess.Code().Complete() {
		panic(fmt.Sprintf("scoring: incomplete guess %v", guess))
	}
}
