package views

import (
	"github.com/charmbracelet/lipgloss"

	"betboard/internal/board"
	"betboard/ui/tui/styles"
)

type LeaderboardView struct{}

func (v LeaderboardView) Controls(TabContentProps) []Control { return nil }

func (v LeaderboardView) Render(p TabContentProps) string {
	panel := board.BuildLeaderboard(p.Leaderboard)
	w := colWidth(p)

	lines := []string{headerRow(p, panel.Headers)}
	for i, r := range panel.Rows {
		payout := lipgloss.NewStyle().Bold(true).Foreground(styles.PayoutColorFor(r.Status))
		row := styles.RowStyle(r.Emphasis).Render(grid(w, [3]string{
			r.Name,
			board.FormatNumber(r.Score),
			payout.Render(board.FormatNumber(r.CurrentWin)),
		}))
		lines = append(lines, enter(p, i, row))
	}

	if panel.Empty() {
		lines = append(lines, placeholder(p, panel.Placeholder))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
