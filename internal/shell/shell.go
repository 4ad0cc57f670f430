// Package shell provides a reusable interactive command shell.
//
// A Shell owns a registry of commands, each declaring typed positional
// parameters. Its run loop reads one line at a time, dispatches the first
// word to a command, checks the argument count, parses every argument and
// invokes the command's action. Input errors are reported on a single line
// and never end the loop; only exit, quit or end of input do.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"tableshell/internal/logger"
	"tableshell/internal/output"
)

const (
	promptMarker = ">> "
	helpHint     = `Type "help" for a list of commands.`
	quitHint     = `Type "exit" or "quit", or ctrl+d to quit.`
	farewell     = "Exiting."
)

// Session is the handle command actions receive.
type Session interface {
	// SetPromptPrefix replaces the words shown before the prompt marker.
	SetPromptPrefix(words ...string)
	// PromptPrefix returns a copy of the current prompt prefix words.
	PromptPrefix() []string
	// Ask shows prompt and reads one line, for follow-up questions inside an action.
	Ask(prompt string) (Input, error)
	// Printer is where actions write their output.
	Printer() *output.Printer
}

// Shell is an interactive command dispatcher. It is not safe for concurrent
// use: the run loop, and every action it invokes, runs on the caller's goroutine.
type Shell struct {
	reader   LineReader
	printer  *output.Printer
	commands map[string]*Command
	order    []string
	prefix   []string
}

// New creates a shell with no commands, reading from reader and writing to printer.
func New(reader LineReader, printer *output.Printer) *Shell {
	if printer == nil {
		printer = output.NewPrinter()
	}
	return &Shell{
		reader:   reader,
		printer:  printer,
		commands: make(map[string]*Command),
	}
}

// AddCommand registers cmd under its name, replacing any command with the
// same name. The replacement keeps the original position in help output.
// Nothing is registered when cmd is invalid.
func (s *Shell) AddCommand(cmd *Command) error {
	if cmd == nil {
		return &RegistrationError{Err: ErrNilCommand}
	}
	if err := cmd.validate(); err != nil {
		return err
	}
	if _, exists := s.commands[cmd.name]; !exists {
		s.order = append(s.order, cmd.name)
	}
	s.commands[cmd.name] = cmd
	logger.Debug("Command registered", "command", cmd.name, "usage", cmd.Usage())
	return nil
}

// Register builds a command with NewCommand and adds it.
func (s *Shell) Register(name, description string, params []Parameter, action Action) error {
	cmd, err := NewCommand(name, description, params, action)
	if err != nil {
		return err
	}
	return s.AddCommand(cmd)
}

// Command looks up a registered command by exact name.
func (s *Shell) Command(name string) (*Command, bool) {
	cmd, ok := s.commands[name]
	return cmd, ok
}

// Commands returns the registered commands in registration order.
func (s *Shell) Commands() []*Command {
	cmds := make([]*Command, 0, len(s.order))
	for _, name := range s.order {
		cmds = append(cmds, s.commands[name])
	}
	return cmds
}

// SetPromptPrefix implements Session.
func (s *Shell) SetPromptPrefix(words ...string) {
	s.prefix = append([]string(nil), words...)
}

// PromptPrefix implements Session.
func (s *Shell) PromptPrefix() []string {
	return append([]string(nil), s.prefix...)
}

// Prompt renders the prompt-prefix words followed by the prompt marker.
func (s *Shell) Prompt() string {
	return strings.Join(append(s.PromptPrefix(), promptMarker), " ")
}

// Ask implements Session.
func (s *Shell) Ask(prompt string) (Input, error) {
	return s.reader.Read(prompt)
}

// Printer implements Session.
func (s *Shell) Printer() *output.Printer {
	return s.printer
}

// Run prints banner and processes input until exit, quit or end of input.
// It returns an error only when reading input fails.
func (s *Shell) Run(banner string) error {
	s.printer.Header(banner)
	s.printer.Info(helpHint)

	for {
		in, err := s.reader.Read(s.Prompt())
		if err != nil {
			return fmt.Errorf("shell: %w", err)
		}

		switch in.Signal {
		case SignalInterrupt:
			logger.Debug("Input interrupted")
			s.printer.Blank()
			s.printer.Info(quitHint)
			continue
		case SignalEOF:
			logger.Debug("End of input")
			s.printer.Blank()
			s.printer.Println(farewell)
			return nil
		}

		if !s.Execute(in.Line) {
			return nil
		}
	}
}

// Execute handles one line of input exactly as the run loop does, and reports
// whether the loop should continue.
func (s *Shell) Execute(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return true
	}

	switch name := args[0]; name {
	case "help":
		s.printer.Println(s.Help())
	case "exit", "quit":
		s.printer.Println(farewell)
		return false
	default:
		if cmd, ok := s.commands[name]; ok {
			s.dispatch(cmd, args[1:])
		} else {
			err := &UnknownCommandError{Name: name}
			logger.Debug("Dispatch rejected", "error", err)
			s.printer.Error(err.Error())
			s.printer.Info(helpHint)
		}
	}

	s.printer.Blank()
	return true
}

func (s *Shell) dispatch(cmd *Command, args []string) {
	values, err := cmd.Bind(args)
	if err != nil {
		logger.Debug("Dispatch rejected", "command", cmd.name, "error", err)
		s.printer.Error(userMessage(err))
		return
	}
	logger.CommandDispatch(cmd.name, args)
	cmd.Invoke(s, values)
}

func userMessage(err error) string {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return "Error: " + argErr.Error() + "."
	}
	return err.Error()
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "exit", "quit":
		return true
	}
	return false
}
