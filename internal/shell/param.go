package shell

import (
	"fmt"
	"strconv"
)

// Parameter declares one positional command argument.
//
// Implementations are immutable. New argument types only need to implement
// this interface; Command and Shell never switch on concrete types.
type Parameter interface {
	// Name is used in help output and error messages.
	Name() string
	// Optional reports whether the argument may be omitted. Only trailing
	// parameters of a command may be optional.
	Optional() bool
	// Constraints describes the accepted values for help output only.
	Constraints() string
	// Parse converts raw text into a typed value or returns a *ParseError.
	Parse(raw string) (any, error)
}

// ParamOption configures a parameter at construction.
type ParamOption func(*paramConfig)

type paramConfig struct {
	optional bool
	min      *int
	max      *int
}

// AsOptional marks the parameter as omittable.
func AsOptional() ParamOption {
	return func(c *paramConfig) {
		c.optional = true
	}
}

// WithMin sets an inclusive lower bound. Ignored by non-numeric parameters.
func WithMin(n int) ParamOption {
	return func(c *paramConfig) {
		c.min = &n
	}
}

// WithMax sets an inclusive upper bound. Ignored by non-numeric parameters.
func WithMax(n int) ParamOption {
	return func(c *paramConfig) {
		c.max = &n
	}
}

func newParamConfig(opts []ParamOption) paramConfig {
	var cfg paramConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// StringParam accepts any text.
type StringParam struct {
	name     string
	optional bool
}

// NewStringParam declares a string parameter.
func NewStringParam(name string, opts ...ParamOption) *StringParam {
	cfg := newParamConfig(opts)
	return &StringParam{name: name, optional: cfg.optional}
}

func (p *StringParam) Name() string        { return p.name }
func (p *StringParam) Optional() bool      { return p.optional }
func (p *StringParam) Constraints() string { return "string" }

// Parse returns raw unchanged.
func (p *StringParam) Parse(raw string) (any, error) {
	return raw, nil
}

// IntParam accepts base-10 integers within optional inclusive bounds.
type IntParam struct {
	name     string
	optional bool
	min      *int
	max      *int
}

// NewIntParam declares an integer parameter.
func NewIntParam(name string, opts ...ParamOption) *IntParam {
	cfg := newParamConfig(opts)
	return &IntParam{name: name, optional: cfg.optional, min: cfg.min, max: cfg.max}
}

func (p *IntParam) Name() string   { return p.name }
func (p *IntParam) Optional() bool { return p.optional }

// Constraints renders e.g. "int", "int from 1" or "int from 1 to 10".
func (p *IntParam) Constraints() string {
	res := "int"
	if p.min != nil {
		res += fmt.Sprintf(" from %d", *p.min)
	}
	if p.max != nil {
		res += fmt.Sprintf(" to %d", *p.max)
	}
	return res
}

// Parse returns an int or a *ParseError.
func (p *IntParam) Parse(raw string) (any, error) {
	i, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ParseError{Kind: InvalidFormat, Message: "expected integer"}
	}
	if p.min != nil && i < *p.min {
		return nil, &ParseError{Kind: BelowMinimum, Message: fmt.Sprintf("expected number to be at least %d", *p.min)}
	}
	if p.max != nil && i > *p.max {
		return nil, &ParseError{Kind: AboveMaximum, Message: fmt.Sprintf("expected number to be at most %d", *p.max)}
	}
	return i, nil
}
