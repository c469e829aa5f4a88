// Package game implements the round state machine: attempts, wins, losses
// and replay. It has no I/O; front ends feed it input lines and render the
// results.
package game

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/vovakirdan/mastermind/internal/core"
	"github.com/vovakirdan/mastermind/internal/registry"
)

// MaxAttempts is the number of valid guesses allowed per round.
const MaxAttempts = 12

// State is the phase of the session.
type State int

const (
	AwaitingGuess State = iota
	RoundWon
	RoundLost
	AwaitingReplay
	Terminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case AwaitingGuess:
		return "AwaitingGuess"
	case RoundWon:
		return "RoundWon"
	case RoundLost:
		return "RoundLost"
	case AwaitingReplay:
		return "AwaitingReplay"
	case Terminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// ErrWrongState is returned when an operation does not apply to the current state.
var ErrWrongState = errors.New("game: operation not allowed in current state")

// RoundState holds the counters shown in the prompt.
type RoundState struct {
	Round   int // 1-based round number
	Attempt int // 1-based attempt within the round, at most MaxAttempts
	Wins    int
	Losses  int
}

// AttemptsLeft returns MaxAttempts minus the current attempt.
func (r RoundState) AttemptsLeft() int {
	return MaxAttempts - r.Attempt
}

// Outcome describes what a valid guess did.
type Outcome struct {
	Result  core.Feedback
	Attempt int   // attempt number the guess was made on
	State   State // RoundWon, RoundLost or AwaitingGuess
	Secret  core.Secret
}

// Ended reports whether the guess finished the round.
func (o Outcome) Ended() bool {
	return o.State == RoundWon || o.State == RoundLost
}

// SecretSource produces the secret for each new round.
type SecretSource func() core.Secret

// RandomSecrets draws every secret from rng.
func RandomSecrets(rng *rand.Rand) SecretSource {
	return func() core.Secret {
		return core.NewSecret(rng)
	}
}

// FixedSecrets hands out the given secrets in order and then repeats the last.
func FixedSecrets(secrets ...core.Secret) SecretSource {
	if len(secrets) == 0 {
		panic("game: FixedSecrets needs at least one secret")
	}
	i := 0
	return func() core.Secret {
		s := secrets[i]
		if i < len(secrets)-1 {
			i++
		}
		return s
	}
}

// Game is one interactive session spanning any number of rounds.
type Game struct {
	scorer  registry.Scorer
	secrets SecretSource

	state   State
	round   RoundState
	secret  core.Secret
	history History

	last    core.Feedback
	hasLast bool
}

// New creates a session and starts its first round.
func New(scorer registry.Scorer, secrets SecretSource) *Game {
	g := &Game{
		scorer:  scorer,
		secrets: secrets,
	}
	g.startRound()
	return g
}

// startRound installs a fresh secret and resets the per-round state.
func (g *Game) startRound() {
	g.secret = g.secrets()
	g.history.Clear()
	g.round.Round++
	g.round.Attempt = 1
	g.last = core.Feedback{}
	g.hasLast = false
	g.state = AwaitingGuess
}

// Submit validates, parses and scores a raw input line.
// Invalid input returns a *core.InputError and leaves every counter untouched.
func (g *Game) Submit(raw string) (Outcome, error) {
	if g.state != AwaitingGuess {
		return Outcome{}, ErrWrongState
	}

	guess, err := core.ParseGuess(core.NormalizeInput(raw))
	if err != nil {
		return Outcome{}, err
	}
	return g.SubmitGuess(guess)
}

// SubmitGuess scores an already parsed guess.
func (g *Game) SubmitGuess(guess core.Guess) (Outcome, error) {
	if g.state != AwaitingGuess {
		return Outcome{}, ErrWrongState
	}

	result := g.scorer.Score(g.secret, guess)
	out := Outcome{
		Result:  result,
		Attempt: g.round.Attempt,
	}

	switch {
	case result.Solved():
		g.state = RoundWon
	case g.round.Attempt >= MaxAttempts:
		g.state = RoundLost
	default:
		g.round.Attempt++
		g.history.Append(result)
		out.State = AwaitingGuess
		return out, nil
	}

	out.State = g.state
	out.Secret = g.secret
	g.last = result
	g.hasLast = true
	g.finishRound()
	return out, nil
}

// finishRound tallies a won or lost round and waits for the replay answer.
func (g *Game) finishRound() {
	switch g.state {
	case RoundWon:
		g.round.Wins++
	case RoundLost:
		g.round.Losses++
	}
	g.state = AwaitingReplay
}

// Replay answers the "new game?" question. Y or y starts a new round;
// anything else terminates the session.
func (g *Game) Replay(answer string) (State, error) {
	if g.state != AwaitingReplay {
		return g.state, ErrWrongState
	}

	if IsAffirmative(answer) {
		g.startRound()
	} else {
		g.state = Terminated
	}
	return g.state, nil
}

// IsAffirmative reports whether a replay answer means yes.
func IsAffirmative(answer string) bool {
	a := strings.TrimSpace(answer)
	return a == "Y" || a == "y"
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Round returns a copy of the counters.
func (g *Game) Round() RoundState {
	return g.round
}

// History returns the guesses of the current round.
func (g *Game) History() *History {
	return &g.history
}

// Secret returns the current round's secret.
func (g *Game) Secret() core.Secret {
	return g.secret
}

// LastResult returns the guess that ended the previous round, if any.
func (g *Game) LastResult() (core.Feedback, bool) {
	return g.last, g.hasLast
}

// Scorer returns the scoring policy in use.
func (g *Game) Scorer() registry.Scorer {
	return g.scorer
}
