package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable lays out rows under a styled header row with a ─ rule
// between them. Widths are measured with lipgloss.Width so styled cells
// line up with plain ones.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)
	last := len(headers) - 1

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < last {
			b.WriteString(gap(widths[i] - lipgloss.Width(h)))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < last {
			b.WriteString(gap(0))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < last {
				b.WriteString(gap(widths[i] - lipgloss.Width(cell)))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// columnWidths returns the widest visible cell per column, headers included.
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

// gap pads a cell out to its column width plus the inter-column gap.
func gap(pad int) string {
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad+colGap)
}
