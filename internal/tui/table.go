package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderTable formats CSV-shaped rows as an aligned text table with a
// header rule. Cell widths are measured on the printable text, so styled
// cells align correctly.
//
// Precondition: every row has len(headers) cells.
// Postcondition: returns a newline-terminated table string.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(StripANSI(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(StripANSI(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			b.WriteString("| ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(StripANSI(cell))+1))
		}
		b.WriteString("|\n")
	}

	rule := func() {
		for _, w := range widths {
			b.WriteString("+")
			b.WriteString(strings.Repeat("-", w+2))
		}
		b.WriteString("+\n")
	}

	rule()
	writeRow(headers)
	rule()
	for _, row := range rows {
		writeRow(row)
	}
	rule()
	return b.String()
}
