package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"betboard/internal/board"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

const labelWidth = 20

// Printer renders one tab selection as compact plain text.
type Printer struct {
	Color bool
}

// Print writes the panel selected by sel. An unknown tab writes nothing and
// returns *board.UnknownTabError.
func (p Printer) Print(w io.Writer, sel board.Selection, snap *board.Snapshot) error {
	if snap == nil {
		snap = &board.Snapshot{}
	}

	switch sel.Tab {
	case board.TabLeaderboard:
		p.title(w, "LEADERBOARD")
		p.leaderboard(w, board.BuildLeaderboard(snap.Leaderboard))
	case board.TabMyBets:
		p.title(w, "MY BETS")
		p.strip(w, []string{"Ongoing", "Ended"}, sel.MyBets == board.SubTabOngoing)
		if sel.MyBets == board.SubTabOngoing {
			p.ongoing(w, board.BuildOngoing(snap.OngoingBets))
		} else {
			p.ended(w, board.BuildEnded(snap.EndedBets))
		}
	case board.TabTop:
		p.title(w, "TOP PLAYERS")
		p.periods(w, sel.Top)
		p.top(w, board.BuildTop(snap.TopPlayers, sel.Top))
	default:
		return &board.UnknownTabError{Tab: sel.Tab}
	}
	fmt.Fprintln(w)
	return nil
}

func (p Printer) paint(color, s string) string {
	if !p.Color || color == "" {
		return s
	}
	return color + s + colorReset
}

func (p Printer) title(w io.Writer, text string) {
	fmt.Fprintf(w, "%s\n", p.paint(colorCyan, "■ "+text))
}

func (p Printer) header(w io.Writer, headers [3]string) {
	fmt.Fprintf(w, "%s\n", p.paint(colorCyan, fmt.Sprintf("─ %-*s %12s %12s", labelWidth, headers[0], headers[1], headers[2])))
}

func (p Printer) placeholder(w io.Writer, text string) {
	fmt.Fprintf(w, "  %s\n", p.paint(colorGray, text))
}

// strip prints a two-option sub-tab line with the active option bracketed.
func (p Printer) strip(w io.Writer, labels []string, firstActive bool) {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if (i == 0) == firstActive {
			parts[i] = p.paint(colorBlue, "["+l+"]")
		} else {
			parts[i] = " " + l + " "
		}
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, " "))
}

func (p Printer) periods(w io.Writer, active board.Period) {
	parts := make([]string, len(board.Periods))
	for i, period := range board.Periods {
		label := strings.ToUpper(string(period[:1])) + string(period[1:])
		if period == active {
			parts[i] = p.paint(colorBlue, "["+label+"]")
		} else {
			parts[i] = " " + label + " "
		}
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, " "))
}

func (p Printer) row(w io.Writer, emphasis board.Emphasis, label, mid, right string) {
	// Widths are terminal cells, not bytes.
	label = ansi.Truncate(label, labelWidth, "...")
	dots := strings.Repeat("·", labelWidth-ansi.StringWidth(label))
	fmt.Fprintf(w, "%s %s%s %12s %s\n",
		p.paint(colorFor(emphasis), "▌"),
		label, p.paint(colorGray, dots),
		mid, right)
}

func (p Printer) leaderboard(w io.Writer, panel board.LeaderboardPanel) {
	p.header(w, panel.Headers)
	for _, r := range panel.Rows {
		payout := colorYellow
		if r.Status == board.StatusWin {
			payout = colorGreen
		} else if r.Status == board.StatusLoss {
			payout = colorRed
		}
		p.row(w, r.Emphasis, r.Name, board.FormatNumber(r.Score),
			p.paint(payout, fmt.Sprintf("%12s", board.FormatNumber(r.CurrentWin))))
	}
	if panel.Empty() {
		p.placeholder(w, panel.Placeholder)
	}
}

func (p Printer) ongoing(w io.Writer, panel board.OngoingPanel) {
	p.header(w, panel.Headers)
	for _, r := range panel.Rows {
		p.row(w, board.EmphasisNeutral, r.ID, board.FormatNumber(r.Score),
			p.paint(colorGreen, fmt.Sprintf("%12s", board.FormatNumber(r.CurrentWin))))
	}
	if panel.Empty() {
		p.placeholder(w, panel.Placeholder)
	}
}

func (p Printer) ended(w io.Writer, panel board.EndedPanel) {
	p.header(w, panel.Headers)
	for _, r := range panel.Rows {
		emphasis, marker := board.EmphasisLoss, "✘"
		if r.Won {
			emphasis, marker = board.EmphasisWin, "✔"
		}
		p.row(w, emphasis, r.ID, board.FormatNumber(r.BetAmount),
			p.paint(colorFor(emphasis), fmt.Sprintf("%12s", marker+" "+r.Label())))
	}
	if panel.Empty() {
		p.placeholder(w, panel.Placeholder)
	}
}

func (p Printer) top(w io.Writer, panel board.TopPanel) {
	for _, r := range panel.Rows {
		fmt.Fprintf(w, "%s %s  %s\n", r.Marker, r.Date, p.paint(colorWhite, "("+r.Avatar+")"))
		for _, s := range r.Stats {
			value := s.Value
			if s.Label == "Win Amount" {
				value = p.paint(colorYellow, value)
			}
			fmt.Fprintf(w, "  %s%s %s\n", s.Label, p.paint(colorGray, strings.Repeat("·", labelWidth-ansi.StringWidth(s.Label))), value)
		}
	}
	if panel.Empty() {
		p.placeholder(w, panel.Placeholder)
	}
}

func colorFor(e board.Emphasis) string {
	switch e {
	case board.EmphasisWin:
		return colorGreen
	case board.EmphasisLoss:
		return colorRed
	case board.EmphasisGold:
		return colorYellow
	case board.EmphasisSilver:
		return colorWhite
	case board.EmphasisBronze:
		return colorCyan
	default:
		return colorGray
	}
}
