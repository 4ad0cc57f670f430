package shell

import (
	"strconv"
	"strings"
)

// Action runs a command. args holds one value per declared parameter, in
// declaration order; omitted optional parameters are nil.
type Action func(sess Session, args []any)

// Command binds a name, description, parameters and action together.
// Build it with NewCommand, which enforces the parameter ordering rules.
type Command struct {
	name        string
	description string
	params      []Parameter
	action      Action
}

// NewCommand validates and builds a command. Optional parameters may only be
// followed by other optional parameters.
func NewCommand(name, description string, params []Parameter, action Action) (*Command, error) {
	cmd := &Command{
		name:        name,
		description: description,
		params:      append([]Parameter(nil), params...),
		action:      action,
	}
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// MustCommand is like NewCommand but panics on an invalid declaration.
// It is meant for static command tables.
func MustCommand(name, description string, params []Parameter, action Action) *Command {
	cmd, err := NewCommand(name, description, params, action)
	if err != nil {
		panic(err)
	}
	return cmd
}

func (c *Command) validate() error {
	if c.name == "" {
		return &RegistrationError{Err: ErrEmptyName}
	}
	if isBuiltin(c.name) {
		return &RegistrationError{Command: c.name, Err: ErrReservedName}
	}
	if c.action == nil {
		return &RegistrationError{Command: c.name, Err: ErrNilAction}
	}
	seenOptional := false
	for i, p := range c.params {
		if p == nil {
			return &RegistrationError{Command: c.name, Param: "#" + strconv.Itoa(i+1), Err: ErrNilParameter}
		}
		if seenOptional && !p.Optional() {
			return &RegistrationError{Command: c.name, Param: p.Name(), Err: ErrOptionalOrder}
		}
		if p.Optional() {
			seenOptional = true
		}
	}
	return nil
}

// Name returns the registry key of the command.
func (c *Command) Name() string { return c.name }

// Description returns the one-line help text.
func (c *Command) Description() string { return c.description }

// Params returns a copy of the declared parameters.
func (c *Command) Params() []Parameter {
	return append([]Parameter(nil), c.params...)
}

// Usage renders the command name followed by its parameter tokens, e.g.
// "list [filter: string]".
func (c *Command) Usage() string {
	words := make([]string, 0, len(c.params)+1)
	words = append(words, c.name)
	for _, p := range c.params {
		word := p.Name() + ": " + p.Constraints()
		if p.Optional() {
			word = "[" + word + "]"
		} else {
			word = "<" + word + ">"
		}
		words = append(words, word)
	}
	return strings.Join(words, " ")
}

// Arity returns the number of required parameters and the total number of
// declared parameters.
func (c *Command) Arity() (required, total int) {
	for _, p := range c.params {
		if !p.Optional() {
			required++
		}
	}
	return required, len(c.params)
}

// Bind checks the argument count and parses every supplied argument. It stops
// at the first argument that fails to parse.
func (c *Command) Bind(args []string) ([]any, error) {
	required, total := c.Arity()
	if len(args) < required || len(args) > total {
		return nil, &ArityError{Command: c.name, Min: required, Max: total, Got: len(args)}
	}

	values := make([]any, len(c.params))
	for i, p := range c.params {
		if i >= len(args) {
			continue // omitted optional parameter stays nil
		}
		v, err := p.Parse(args[i])
		if err != nil {
			return nil, &ArgumentError{Command: c.name, Param: p.Name(), Err: err}
		}
		values[i] = v
	}
	return values, nil
}

// Invoke runs the command's action.
func (c *Command) Invoke(sess Session, values []any) {
	c.action(sess, values)
}
