package styles

import (
	"github.com/charmbracelet/lipgloss"

	"betboard/internal/board"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#38BDF8"} // sky
	Muted     = lipgloss.Color("#9CA3AF")

	WinColor     = lipgloss.Color("#22C55E")
	LossColor    = lipgloss.Color("#EF4444")
	GoldColor    = lipgloss.Color("#EAB308")
	SilverColor  = lipgloss.Color("#9CA3AF")
	BronzeColor  = lipgloss.Color("#B45309")
	NeutralColor = lipgloss.Color("#374151")
	PayoutColor  = lipgloss.Color("#FACC15")

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(5).
			Padding(0, 1).
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 2).
			MarginBottom(1)

	HeaderRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Muted).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Subtle).
			MarginBottom(1)

	PlaceholderStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(Muted).
				Align(lipgloss.Center)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Highlight).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Border(lipgloss.HiddenBorder(), false, false, true, false).
				Padding(0, 2)

	StatLabelStyle = lipgloss.NewStyle().Foreground(Muted)
	StatValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	AvatarStyle    = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4B5563")).
			Padding(0, 1)
)

// EmphasisColor maps a row emphasis to its accent color.
func EmphasisColor(e board.Emphasis) lipgloss.TerminalColor {
	switch e {
	case board.EmphasisWin:
		return WinColor
	case board.EmphasisLoss:
		return LossColor
	case board.EmphasisGold:
		return GoldColor
	case board.EmphasisSilver:
		return SilverColor
	case board.EmphasisBronze:
		return BronzeColor
	default:
		return NeutralColor
	}
}

// RowStyle draws a left accent bar in the emphasis color.
func RowStyle(e board.Emphasis) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(EmphasisColor(e)).
		PaddingLeft(1)
}

// PayoutColorFor colors the current win column by outcome.
func PayoutColorFor(status string) lipgloss.TerminalColor {
	switch status {
	case board.StatusWin:
		return WinColor
	case board.StatusLoss:
		return LossColor
	default:
		return PayoutColor
	}
}
