package views

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"betboard/ui/tui/styles"
)

const (
	defaultWidth = 60
	minColWidth  = 12
)

func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}

func contentWidth(p TabContentProps) int {
	if p.Width <= 0 {
		return defaultWidth
	}
	return p.Width
}

func colWidth(p TabContentProps) int {
	w := (contentWidth(p) - 3) / 3
	if w < minColWidth {
		return minColWidth
	}
	return w
}

// grid lays three cells out in equal columns. Overlong cells are cut to one
// line with an ellipsis.
func grid(width int, cells [3]string) string {
	cell := lipgloss.NewStyle().Width(width)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell.Render(ansi.Truncate(cells[0], width, "…")),
		cell.Render(ansi.Truncate(cells[1], width, "…")),
		cell.Render(ansi.Truncate(cells[2], width, "…")),
	)
}

func headerRow(p TabContentProps, headers [3]string) string {
	return styles.HeaderRowStyle.PaddingLeft(2).Render(grid(colWidth(p), headers))
}

func placeholder(p TabContentProps, text string) string {
	return styles.PlaceholderStyle.Width(contentWidth(p)).Render(text)
}

// subTabStrip renders the controls as a row of tab buttons marked for mouse hits.
func subTabStrip(p TabContentProps, ctrls []Control, gap int) string {
	var tabs []string
	for i, c := range ctrls {
		style := styles.InactiveTabStyle
		if c.Active {
			style = styles.ActiveTabStyle
		}
		if i > 0 && gap > 0 {
			style = style.MarginLeft(gap)
		}
		tabs = append(tabs, mark(p.Zones, c.ID, style.Render(c.Label)))
	}
	return lipgloss.NewStyle().MarginBottom(1).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))
}

// enter applies the entrance animation to row i: indented and faint until it settles.
func enter(p TabContentProps, i int, row string) string {
	if i >= len(p.RowOffsets) {
		return row
	}
	off := p.RowOffsets[i]
	if off < 0.5 {
		return row
	}
	return lipgloss.NewStyle().
		PaddingLeft(int(math.Round(off))).
		Faint(true).
		Render(row)
}
