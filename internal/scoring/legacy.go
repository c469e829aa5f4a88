package scoring

import (
	"github.com/vovakirdan/mastermind/internal/core"
)

// Legacy reproduces the scoring of the first console release, kept for
// players comparing against old transcripts.
//
// Every secret position that is not an exact match earns one color-only point
// when its color appears anywhere in the guess, even in a peg that is already
// an exact match or was already counted for another position. Only position 0
// kept an "already counted" list, and it was always empty when consulted, so
// no duplicate is ever suppressed. Each position still scores at most once,
// which keeps Exact+ColorOnly within CodeLength.
type Legacy struct{}

// ID returns the policy identifier.
func (Legacy) ID() string { return LegacyID }

// Title returns the display name.
func (Legacy) Title() string { return "Legacy (per-position color check)" }

// Score implements registry.Scorer.
func (Legacy) Score(secret core.Secret, guess core.Guess) core.Feedback {
	mustComplete(secret, guess)

	fb := core.Feedback{Guess: guess}
	code := guess.Code()
	for i := 0; i < core.CodeLength; i++ {
		if guess[i] == secret[i] {
			fb.Exact++
			continue
		}
		if code.Contains(secret[i]) {
			fb.ColorOnly++
		}
	}
	return fb
}
