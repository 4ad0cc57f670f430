// Package output provides the console output layer for tableshell.
// It renders plain or styled text through an injected StyleProvider and
// formats tabular data into aligned columns.
package output

// StyleProvider supplies text styles for semantic output types.
// The output package depends only on this interface, not on a concrete theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic SemanticType) TextStyle

	// IsAvailable returns true if the provider is ready to provide styles.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling.
// lipgloss.Style satisfies it.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode defines the output modes a printer can operate in.
type Mode int

const (
	// ModeAuto styles output only when the writer supports colour.
	ModeAuto Mode = iota

	// ModeStyled forces styled output.
	ModeStyled

	// ModePlain forces plain text output.
	ModePlain
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStyled:
		return "always"
	case ModePlain:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode maps a configuration value (auto, always, never) to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "auto":
		return ModeAuto, true
	case "always":
		return ModeStyled, true
	case "never":
		return ModePlain, true
	}
	return ModeAuto, false
}

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text such as hints.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents completed actions.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents recoverable problems the user should notice.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents rejected input.
	SemanticError SemanticType = "error"
	// SemanticHeader represents banners and section titles.
	SemanticHeader SemanticType = "header"
)
