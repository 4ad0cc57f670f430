package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Signal distinguishes a completed line from the user interrupting or ending input.
type Signal int

const (
	// SignalNone means Input.Line holds a complete line.
	SignalNone Signal = iota
	// SignalInterrupt means the user cancelled the current line (Ctrl-C).
	SignalInterrupt
	// SignalEOF means input has ended (Ctrl-D or a closed stream).
	SignalEOF
)

func (s Signal) String() string {
	switch s {
	case SignalInterrupt:
		return "interrupt"
	case SignalEOF:
		return "eof"
	default:
		return "line"
	}
}

// Input is the result of one blocking read.
type Input struct {
	Line   string
	Signal Signal
}

// LineReader reads one line of user input after showing a prompt.
// Interrupts and end of input are reported through Input.Signal; the error
// return is reserved for I/O failures.
type LineReader interface {
	Read(prompt string) (Input, error)
	Close() error
}

// ScannerReader reads lines from any io.Reader. It is used when stdin is not a
// terminal, e.g. for piped scripts. Lines have no length limit.
type ScannerReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewScannerReader reads from in and echoes prompts to out. out may be nil.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{in: bufio.NewReader(in), out: out}
}

// Read implements LineReader.
func (r *ScannerReader) Read(prompt string) (Input, error) {
	if r.out != nil {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return Input{}, fmt.Errorf("write prompt: %w", err)
		}
	}
	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Input{}, fmt.Errorf("read input: %w", err)
	}
	if err != nil && line == "" {
		return Input{Signal: SignalEOF}, nil
	}
	line = strings.TrimSuffix(line, "\n")
	return Input{Line: strings.TrimSuffix(line, "\r")}, nil
}

// Close implements LineReader. The underlying reader is owned by the caller.
func (r *ScannerReader) Close() error {
	return nil
}

// ReadlineReader reads from an interactive terminal with line editing and history.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader opens a terminal line editor writing to stdout. History is
// persisted to historyFile unless it is empty.
func NewReadlineReader(stdout io.Writer, historyFile string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptMarker,
		HistoryFile:       historyFile,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		Stdout:            stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("open line editor: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return readline.DefaultIsTerminal()
}

// Read implements LineReader.
func (r *ReadlineReader) Read(prompt string) (Input, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return Input{Signal: SignalInterrupt}, nil
	case errors.Is(err, io.EOF):
		return Input{Signal: SignalEOF}, nil
	case err != nil:
		return Input{}, fmt.Errorf("read line: %w", err)
	}
	return Input{Line: line}, nil
}

// Close restores the terminal and flushes history.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
