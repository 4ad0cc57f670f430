package shell

import (
	"errors"
	"fmt"
)

// Registration failures. They are reported wrapped in a *RegistrationError.
var (
	ErrEmptyName      = errors.New("command name cannot be empty")
	ErrReservedName   = errors.New("command name is reserved for a built-in")
	ErrNilAction      = errors.New("command action cannot be nil")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrOptionalOrder  = errors.New("only the last parameters may be optional")
	ErrNilCommand     = errors.New("command cannot be nil")
	ErrInvalidFormat  = errors.New("invalid format")
	ErrBelowMinimum   = errors.New("below minimum")
	ErrAboveMaximum   = errors.New("above maximum")
	ErrUnknownCommand = errors.New("unknown command")
)

// RegistrationError reports a command that was rejected by NewCommand or AddCommand.
type RegistrationError struct {
	Command string
	Param   string // empty when the failure is not about one parameter
	Err     error
}

func (e *RegistrationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("register %q: parameter %q: %v", e.Command, e.Param, e.Err)
	}
	return fmt.Sprintf("register %q: %v", e.Command, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// ParseErrorKind classifies why a raw argument was rejected.
type ParseErrorKind int

const (
	// InvalidFormat means the text is not a literal of the parameter's type.
	InvalidFormat ParseErrorKind = iota
	// BelowMinimum means the value is smaller than the configured minimum.
	BelowMinimum
	// AboveMaximum means the value is larger than the configured maximum.
	AboveMaximum
)

// ParseError is returned by Parameter.Parse. Its message is shown to the user.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap maps the kind onto ErrInvalidFormat, ErrBelowMinimum or ErrAboveMaximum.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case BelowMinimum:
		return ErrBelowMinimum
	case AboveMaximum:
		return ErrAboveMaximum
	default:
		return ErrInvalidFormat
	}
}

// ArityError reports an invocation with too few or too many arguments.
type ArityError struct {
	Command string
	Min     int
	Max     int
	Got     int
}

func (e *ArityError) Error() string {
	switch {
	case e.Got < e.Min:
		return fmt.Sprintf("%s expects at least %d %s.", e.Command, e.Min, plural(e.Min, "parameter"))
	case e.Max == 0:
		return fmt.Sprintf("%s expects no parameters.", e.Command)
	default:
		return fmt.Sprintf("%s expects at most %d parameters.", e.Command, e.Max)
	}
}

// ArgumentError reports the first argument of an invocation that failed to parse.
type ArgumentError struct {
	Command string
	Param   string
	Err     error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Command, e.Param, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// UnknownCommandError reports input whose first word names no command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command \"%s\"!", e.Name)
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
