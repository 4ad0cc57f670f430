package output

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ColumnAlign renders rows of cells as aligned columns.
//
// Every cell except the last cell of its row is right-padded with pad until it
// is as wide as the widest cell in its column. Rows may be ragged: a row that
// has no cell at some column index neither contributes to that column's width
// nor receives padding or a separator for it. Widths are visible widths, so
// cells carrying ANSI styling line up with plain ones.
//
//	ColumnAlign([][]string{{"a", "abc"}, {"abc", "a"}, {"abcd"}}, " ", " ")
//	// a    abc
//	// abc  a
//	// abcd
func ColumnAlign(rows [][]string, sep, pad string) string {
	widths := columnWidths(rows)

	lines := make([]string, len(rows))
	for r, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(sep)
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				b.WriteString(padding(pad, widths[c]-ansi.StringWidth(cell)))
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// DefaultColumnAlign aligns rows using a single space as separator and padding.
func DefaultColumnAlign(rows [][]string) string {
	return ColumnAlign(rows, " ", " ")
}

// columnWidths returns the widest visible cell for each column index.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// padding repeats pad n times. An empty pad or a non-positive n yields "".
func padding(pad string, n int) string {
	if pad == "" || n <= 0 {
		return ""
	}
	return strings.Repeat(pad, n)
}
