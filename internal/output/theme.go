package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ThemeStyles is a lipgloss-backed StyleProvider bound to one writer, so the
// colour profile follows the terminal the text is written to.
type ThemeStyles struct {
	styles map[SemanticType]lipgloss.Style
}

// NewThemeStyles builds the default console theme for w. ModeStyled forces
// 256-colour output even when w is not a terminal.
func NewThemeStyles(w io.Writer, mode Mode) *ThemeStyles {
	r := lipgloss.NewRenderer(w)
	if mode == ModeStyled {
		r.SetColorProfile(termenv.ANSI256)
	}
	return &ThemeStyles{
		styles: map[SemanticType]lipgloss.Style{
			SemanticPlain:   r.NewStyle(),
			SemanticInfo:    r.NewStyle().Foreground(lipgloss.Color("244")),
			SemanticSuccess: r.NewStyle().Foreground(lipgloss.Color("42")),
			SemanticWarning: r.NewStyle().Foreground(lipgloss.Color("214")),
			SemanticError:   r.NewStyle().Foreground(lipgloss.Color("196")),
			SemanticHeader:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		},
	}
}

// GetStyle implements StyleProvider.
func (t *ThemeStyles) GetStyle(semantic SemanticType) TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return t.styles[SemanticPlain]
}

// IsAvailable implements StyleProvider.
func (t *ThemeStyles) IsAvailable() bool {
	return t != nil && len(t.styles) > 0
}
