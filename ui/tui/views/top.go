package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"betboard/internal/board"
	"betboard/ui/tui/styles"
)

// ControlPrefixTop prefixes the period control ids: top_day, top_month, top_year.
const ControlPrefixTop = "top_"

type TopView struct{}

func (v TopView) Controls(p TabContentProps) []Control {
	ctrls := make([]Control, 0, len(board.Periods))
	for _, period := range board.Periods {
		period := period
		ctrls = append(ctrls, Control{
			ID:     ControlPrefixTop + string(period),
			Label:  periodLabel(period),
			Active: p.TopSubTab == period,
			Activate: func() {
				if p.SetTopSubTab != nil {
					p.SetTopSubTab(period)
				}
			},
		})
	}
	return ctrls
}

func (v TopView) Render(p TabContentProps) string {
	strip := lipgloss.PlaceHorizontal(contentWidth(p), lipgloss.Center, subTabStrip(p, v.Controls(p), 4))
	panel := board.BuildTop(p.TopPlayers, p.TopSubTab)

	lines := []string{strip}
	for i, r := range panel.Rows {
		lines = append(lines, enter(p, i, topCard(p, r)))
	}
	if panel.Empty() {
		lines = append(lines, placeholder(p, panel.Placeholder))
	} else if p.TrendView != "" {
		lines = append(lines, p.TrendView)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func topCard(p TabContentProps, r board.TopRow) string {
	trophy := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(styles.GoldColor).Render(r.Marker),
		lipgloss.NewStyle().Foreground(styles.Muted).Render(r.Date),
	)

	avatar := styles.AvatarStyle.Render(r.Avatar)

	var labels, values []string
	for i, s := range r.Stats {
		labels = append(labels, styles.StatLabelStyle.Render(s.Label+":"))
		value := styles.StatValueStyle
		if i == 1 {
			value = value.Foreground(styles.GoldColor)
		}
		values = append(values, value.Render(s.Value))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(1).Render(strings.Join(labels, "\n")),
		strings.Join(values, "\n"),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().MarginRight(4).Render(trophy),
		lipgloss.NewStyle().MarginRight(4).Render(avatar),
		stats,
	)
	return styles.CardStyle.Width(contentWidth(p) - 2).Render(body)
}

func periodLabel(p board.Period) string {
	switch p {
	case board.PeriodDay:
		return "Day"
	case board.PeriodMonth:
		return "Month"
	case board.PeriodYear:
		return "Year"
	}
	return string(p)
}
