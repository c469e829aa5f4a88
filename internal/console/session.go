// Package console runs the line-oriented game session: prompt, read a line,
// feed it to the state machine, print the result.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mastermind/internal/core"
	"github.com/vovakirdan/mastermind/internal/game"
)

// Protocol text.
const (
	Banner       = "Let's start the game. New secret already generated, enter your color sequence!"
	LegendHeader = "Please enter colors. You can enter the following characters:"
	ReplayPrompt = "Do you want to start a new game? Y/N"
	Farewell     = "Thanks for playing, see you again!"
	WinMessage   = "You win! Congratulations!"
	LossMessage  = "You have lost! You have used all the attempts, next time you will surely guess the code!"
)

// Options configures a Session.
type Options struct {
	Painter core.Painter // defaults to core.PlainPainter
	Logger  *log.Logger  // defaults to a discarding logger
	Legend  bool         // print the color legend with every prompt
}

// Session drives one game.Game from a LineReader.
type Session struct {
	game    *game.Game
	in      core.LineReader
	out     io.Writer
	painter core.Painter
	logger  *log.Logger
	legend  bool
}

// NewSession creates a console session.
func NewSession(g *game.Game, in core.LineReader, out io.Writer, opts Options) *Session {
	if opts.Painter == nil {
		opts.Painter = core.PlainPainter{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Session{
		game:    g,
		in:      in,
		out:     out,
		painter: opts.Painter,
		logger:  opts.Logger,
		legend:  opts.Legend,
	}
}

// Run plays until the player declines a new game or input ends.
// It returns ctx.Err() if the context is cancelled between reads.
func (s *Session) Run(ctx context.Context) error {
	s.println()
	s.println(Banner)
	s.logger.Debug("round started", "round", s.game.Round().Round, "scoring", s.game.Scorer().ID())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch s.game.State() {
		case game.AwaitingGuess:
			if done := s.turn(); done {
				return nil
			}
		case game.AwaitingReplay:
			if done := s.replay(); done {
				return nil
			}
		default:
			return nil
		}
	}
}

// turn prompts for and handles one guess. Returns true when input is exhausted.
func (s *Session) turn() bool {
	s.prompt()

	line, err := s.in.ReadLine()
	if err != nil {
		return s.readFailed(err)
	}

	out, err := s.game.Submit(line)
	if err != nil {
		var inputErr *core.InputError
		if errors.As(err, &inputErr) {
			s.println(inputErr.Error())
			return false
		}
		s.logger.Error("guess rejected", "error", err)
		return false
	}

	switch out.State {
	case game.RoundWon:
		s.println()
		s.println(WinMessage)
		s.reveal(out)
		s.logger.Info("round won", "round", s.game.Round().Round, "attempt", out.Attempt)
	case game.RoundLost:
		s.println()
		s.println(LossMessage)
		s.reveal(out)
		s.logger.Info("round lost", "round", s.game.Round().Round)
	default:
		s.println("Guess sequence:")
		s.println()
		s.print(s.game.History().Render(s.painter))
	}
	return false
}

// replay asks whether to play again. Returns true when the session is over.
func (s *Session) replay() bool {
	s.println(ReplayPrompt)

	line, err := s.in.ReadLine()
	if err != nil {
		return s.readFailed(err)
	}

	state, err := s.game.Replay(line)
	if err != nil {
		s.logger.Error("replay rejected", "error", err)
		return false
	}
	if state == game.Terminated {
		s.println(Farewell)
		return true
	}

	s.println(Banner)
	s.logger.Debug("round started", "round", s.game.Round().Round)
	return false
}

// readFailed reports a read error. EOF ends the session; anything else is
// logged and the caller prompts again.
func (s *Session) readFailed(err error) bool {
	if errors.Is(err, io.EOF) {
		s.println()
		s.println(Farewell)
		return true
	}
	s.logger.Error("cannot read input", "error", err)
	s.printf("Error! %v\n", err)
	return false
}

func (s *Session) prompt() {
	r := s.game.Round()
	s.printf("Round: %d Attempt: %d attempts left: %d Wins: %d Losses: %d\n",
		r.Round, r.Attempt, r.AttemptsLeft(), r.Wins, r.Losses)
	if s.legend {
		s.println(LegendHeader)
		s.println(core.Legend(s.painter))
	}
}

func (s *Session) reveal(out game.Outcome) {
	s.printf("Secret: %s\n", core.FormatCode(s.painter, out.Secret.Code()))
	s.printf(" Guess: %s\n", core.FormatCode(s.painter, out.Result.Guess.Code()))
}

func (s *Session) print(a ...any) {
	fmt.Fprint(s.out, a...)
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
