package views

import (
	"github.com/charmbracelet/lipgloss"

	"betboard/internal/board"
	"betboard/ui/tui/styles"
)

const (
	ControlOngoing = "mybets_ongoing"
	ControlEnded   = "mybets_ended"

	indicatorWin  = "✔"
	indicatorLoss = "✘"
)

type MyBetsView struct{}

func (v MyBetsView) Controls(p TabContentProps) []Control {
	set := func(sub board.MyBetsSubTab) func() {
		return func() {
			if p.SetMyBetsSubTab != nil {
				p.SetMyBetsSubTab(sub)
			}
		}
	}
	return []Control{
		{ID: ControlOngoing, Label: "Ongoing", Active: p.MyBetsSubTab == board.SubTabOngoing, Activate: set(board.SubTabOngoing)},
		{ID: ControlEnded, Label: "Ended", Active: p.MyBetsSubTab == board.SubTabEnded, Activate: set(board.SubTabEnded)},
	}
}

func (v MyBetsView) Render(p TabContentProps) string {
	strip := subTabStrip(p, v.Controls(p), 0)
	// Anything other than "ongoing" shows the ended list.
	if p.MyBetsSubTab == board.SubTabOngoing {
		return lipgloss.JoinVertical(lipgloss.Left, strip, renderOngoing(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, strip, renderEnded(p))
}

func renderOngoing(p TabContentProps) string {
	panel := board.BuildOngoing(p.OngoingBets)
	w := colWidth(p)
	score := lipgloss.NewStyle().Bold(true).Foreground(styles.PayoutColor)
	win := lipgloss.NewStyle().Bold(true).Foreground(styles.WinColor)

	lines := []string{headerRow(p, panel.Headers)}
	for i, r := range panel.Rows {
		row := styles.RowStyle(board.EmphasisNeutral).Render(grid(w, [3]string{
			r.ID,
			score.Render(board.FormatNumber(r.Score)),
			win.Render(board.FormatNumber(r.CurrentWin)),
		}))
		lines = append(lines, enter(p, i, row))
	}
	if panel.Empty() {
		lines = append(lines, placeholder(p, panel.Placeholder))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEnded(p TabContentProps) string {
	panel := board.BuildEnded(p.EndedBets)
	w := colWidth(p)

	lines := []string{headerRow(p, panel.Headers)}
	for i, r := range panel.Rows {
		emphasis, indicator := board.EmphasisLoss, indicatorLoss
		if r.Won {
			emphasis, indicator = board.EmphasisWin, indicatorWin
		}
		outcome := lipgloss.NewStyle().Foreground(styles.EmphasisColor(emphasis)).Render(indicator + " " + r.Label())
		row := styles.RowStyle(emphasis).Render(grid(w, [3]string{
			r.ID,
			board.FormatNumber(r.BetAmount),
			outcome,
		}))
		lines = append(lines, enter(p, i, row))
	}
	if panel.Empty() {
		lines = append(lines, placeholder(p, panel.Placeholder))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
