package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colGap       = 2
	markerActive = "▶ "
	markerIdle   = "  "
)

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible text so styled cells line up. The row at
// highlight gets a marker and bold text; pass -1 for none.
func RenderTable(headers []string, rows [][]string, highlight int) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)

	var b strings.Builder
	b.WriteString(markerIdle)
	writeRow(&b, widths, headers, StyleHeader.Render)
	b.WriteString(markerIdle)
	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, widths, separators, nil)

	for i, row := range rows {
		if i == highlight {
			b.WriteString(StyleHeader.Render(markerActive))
			writeRow(&b, widths, row, StyleBold.Render)
			continue
		}
		b.WriteString(markerIdle)
		writeRow(&b, widths, row, nil)
	}
	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, widths []int, cells []string, style func(...string) string) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}
