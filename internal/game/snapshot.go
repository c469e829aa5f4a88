package game

import "github.com/vovakirdan/mastermind/internal/core"

// Snapshot captures the complete session state for tests and front ends.
type Snapshot struct {
	State   State
	Round   RoundState
	Scoring string
	Secret  core.Secret
	History []core.Feedback
	Last    *core.Feedback // guess that ended the round, nil while playing
}

// Snapshot returns a copy of the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:   g.state,
		Round:   g.round,
		Scoring: g.scorer.ID(),
		Secret:  g.secret,
		History: g.history.Entries(),
	}
	if g.hasLast {
		last := g.last
		snap.Last = &last
	}
	return snap
}
