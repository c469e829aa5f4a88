// Package tui provides the Bubble Tea front end for the game. It drives the
// same state machine as the console session.
package tui

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mastermind/internal/core"
	"github.com/vovakirdan/mastermind/internal/game"
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	game    *game.Game
	painter core.Painter
	logger  *log.Logger
	keys    KeyMap
	input   textinput.Model
	help    help.Model

	message  string
	isErr    bool
	reveal   string // secret and final guess after a round ends
	quitting bool
}

// NewModel creates a model for g. A nil logger discards diagnostics.
func NewModel(g *game.Game, painter core.Painter, logger *log.Logger) Model {
	if painter == nil {
		painter = core.PlainPainter{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	in := textinput.New()
	in.Placeholder = "RPYG"
	in.CharLimit = 16
	in.Width = 16
	in.Focus()

	return Model{
		game:    g,
		painter: painter,
		logger:  logger,
		keys:    DefaultKeyMap(),
		input:   in,
		help:    help.New(),
		message: "New secret already generated, enter your color sequence!",
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit feeds the input line to the state machine.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	switch m.game.State() {
	case game.AwaitingGuess:
		out, err := m.game.Submit(line)
		if err != nil {
			var inputErr *core.InputError
			if !errors.As(err, &inputErr) {
				m.logger.Error("guess rejected", "error", err)
			}
			m.message, m.isErr = err.Error(), true
			return m, nil
		}
		m.isErr = false
		switch out.State {
		case game.RoundWon:
			m.message = "You win! Congratulations! New game? Y/N"
			m.reveal = m.formatReveal(out)
			m.logger.Info("round won", "round", m.game.Round().Round, "attempt", out.Attempt)
		case game.RoundLost:
			m.message = "You have lost! New game? Y/N"
			m.reveal = m.formatReveal(out)
			m.logger.Info("round lost", "round", m.game.Round().Round)
		default:
			m.message = game.FormatFeedback(m.painter, out.Result)
		}

	case game.AwaitingReplay:
		state, err := m.game.Replay(line)
		if err != nil {
			m.logger.Error("replay rejected", "error", err)
			return m, nil
		}
		if state == game.Terminated {
			m.quitting = true
			return m, tea.Quit
		}
		m.message, m.isErr = "New secret already generated, enter your color sequence!", false
		m.reveal = ""

	default:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) formatReveal(out game.Outcome) string {
	return "Secret: " + core.FormatCode(m.painter, out.Secret.Code()) +
		"\n Guess: " + core.FormatCode(m.painter, out.Result.Guess.Code())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing, see you again!\n"
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Mastermind"))
	sb.WriteString("\n")
	sb.WriteString(renderStatus(m.game.Round()))
	sb.WriteString("\n\n")
	sb.WriteString(core.Legend(m.painter))
	sb.WriteString("\n\n")
	sb.WriteString(renderHistory(m.painter, m.game.History()))
	sb.WriteString("\n")
	if m.reveal != "" {
		sb.WriteString(m.reveal)
		sb.WriteString("\n")
	}
	if msg := renderMessage(m.message, m.isErr); msg != "" {
		sb.WriteString(msg)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

// Game returns the underlying state machine.
func (m Model) Game() *game.Game {
	return m.game
}

// Message returns the last feedback line.
func (m Model) Message() string {
	return m.message
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, painter core.Painter, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(g, painter, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
