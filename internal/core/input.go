package core

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader is the source of player input, one line per call.
// Sessions depend on this instead of os.Stdin so they can run from a script.
type LineReader interface {
	// ReadLine blocks until a full line is available and returns it without
	// the trailing newline. It returns io.EOF once the source is exhausted.
	ReadLine() (string, error)
}

// LineReaderFunc adapts a function to LineReader.
type LineReaderFunc func() (string, error)

// ReadLine calls f.
func (f LineReaderFunc) ReadLine() (string, error) {
	return f()
}

// StreamInput reads lines from an io.Reader such as os.Stdin.
type StreamInput struct {
	r *bufio.Reader
}

// NewStreamInput wraps r in a buffered line reader.
func NewStreamInput(r io.Reader) *StreamInput {
	return &StreamInput{r: bufio.NewReader(r)}
}

// ReadLine returns the next line. A final line without a newline is returned
// with a nil error; the following call reports io.EOF.
func (s *StreamInput) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ScriptedInput replays a fixed list of lines, then reports io.EOF.
type ScriptedInput struct {
	lines []string
	pos   int
}

// NewScriptedInput creates a reader over lines.
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

// ReadLine returns the next scripted line.
func (s *ScriptedInput) ReadLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Remaining returns how many lines have not been read yet.
func (s *ScriptedInput) Remaining() int {
	return len(s.lines) - s.pos
}
