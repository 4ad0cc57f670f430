package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Printer writes console output, optionally styled by semantic type.
//
// The shell's messages are a stable text contract, so plain rendering never
// decorates text: styling only wraps it in escape sequences.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	silent        bool
	styled        bool
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	p.styled = p.resolveStyled()
	return p
}

func (p *Printer) resolveStyled() bool {
	if p.styleProvider == nil {
		return false
	}
	switch p.mode {
	case ModeStyled:
		return true
	case ModePlain:
		return false
	default:
		return termenv.NewOutput(p.writer).EnvColorProfile() != termenv.Ascii
	}
}

// Print outputs text as is.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text.
func (p *Printer) Printf(format string, args ...any) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text followed by a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Blank outputs an empty line.
func (p *Printer) Blank() {
	p.output(SemanticPlain, "", true)
}

// Info outputs a hint line.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs a line confirming a completed action.
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs a warning line.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs an error line.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Header outputs a banner or section title line.
func (p *Printer) Header(text string) {
	p.output(SemanticHeader, text, true)
}

// Writer returns the underlying writer, for collaborators that draw their own
// output such as line editors.
func (p *Printer) Writer() io.Writer {
	return p.writer
}

// IsStyled reports whether this printer applies styles.
func (p *Printer) IsStyled() bool {
	return p.styled
}

func (p *Printer) output(semantic SemanticType, text string, newline bool) {
	if p.silent {
		return
	}
	if p.styled && semantic != SemanticPlain && text != "" {
		text = p.styleProvider.GetStyle(semantic).Render(text)
	}
	if newline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = io.WriteString(p.writer, text) // console output, nothing useful to do on failure
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	return fmt.Sprintf("Printer{mode: %v, styled: %t, writer: %T}", p.mode, p.styled, p.writer)
}
