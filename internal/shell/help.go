package shell

import (
	"strings"

	"tableshell/internal/output"
)

const helpProlog = `Command format: "command <required_parameter> [optional_parameter]"
Commands:`

// Help lists the built-in commands followed by every registered command in
// registration order, with parameter tokens and aligned descriptions.
func (s *Shell) Help() string {
	rows := [][]string{
		{"help", "show this page"},
		{"exit", "exit the shell"},
	}
	for _, cmd := range s.Commands() {
		rows = append(rows, []string{cmd.Usage(), cmd.Description()})
	}
	for _, row := range rows {
		row[0] = "  " + row[0]
	}

	var b strings.Builder
	b.WriteString(helpProlog)
	b.WriteString("\n")
	b.WriteString(output.ColumnAlign(rows, " - ", " "))
	return b.String()
}
