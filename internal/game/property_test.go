package game

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/mastermind/internal/core"
	"github.com/vovakirdan/mastermind/internal/scoring"
)

// An invalid guess never moves the attempt counter; a valid guess that does
// not end the round moves it by exactly one.
func TestProperty_AttemptCounter(t *testing.T) {
	symbols := []rune("RPYGBCOWrpygbcowX1 ")

	rapid.Check(t, func(rt *rapid.T) {
		secret := core.Secret{core.ColorRed, core.ColorPurple, core.ColorYellow, core.ColorGrey}
		g := New(scoring.Canonical{}, FixedSecrets(secret))

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps && g.State() == AwaitingGuess; i++ {
			raw := string(rapid.SliceOfN(rapid.SampledFrom(symbols), 0, 6).Draw(rt, "raw"))
			before := g.Round()

			out, err := g.Submit(raw)
			after := g.Round()

			if err != nil {
				if after != before {
					rt.Fatalf("invalid %q changed counters %+v -> %+v", raw, before, after)
				}
				if core.Valid(core.NormalizeInput(raw)) {
					rt.Fatalf("valid input %q rejected: %v", raw, err)
				}
				continue
			}

			switch out.State {
			case AwaitingGuess:
				if after.Attempt != before.Attempt+1 {
					rt.Fatalf("attempt %d -> %d after %q", before.Attempt, after.Attempt, raw)
				}
			case RoundWon:
				if after.Wins != before.Wins+1 || !out.Result.Solved() {
					rt.Fatalf("win not tallied: %+v", after)
				}
			case RoundLost:
				if before.Attempt != MaxAttempts || after.Losses != before.Losses+1 {
					rt.Fatalf("loss at attempt %d, counters %+v", before.Attempt, after)
				}
			}
			if after.Attempt > MaxAttempts {
				rt.Fatalf("attempt %d exceeds %d", after.Attempt, MaxAttempts)
			}
		}
	})
}

// The session terminates exactly when the replay answer is not Y or y.
func TestProperty_TerminationOnlyOnDecline(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := New(scoring.Canonical{}, FixedSecrets(core.MustParseSecret("WWWW")))
		if _, err := g.Submit("WWWW"); err != nil {
			rt.Fatalf("Submit: %v", err)
		}

		answer := rapid.SampledFrom([]string{"Y", "y", "N", "n", "", "yes", "x"}).Draw(rt, "answer")
		state, err := g.Replay(answer)
		if err != nil {
			rt.Fatalf("Replay: %v", err)
		}
		if (state == Terminated) == IsAffirmative(answer) {
			rt.Fatalf("answer %q gave state %v", answer, state)
		}
	})
}
