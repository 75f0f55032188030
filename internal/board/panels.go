package board

import (
	"strconv"
)

const (
	// CurrentWinMultiplier scales a leaderboard score into its displayed current win.
	CurrentWinMultiplier = 50
	// LeaderboardWindow is how many trailing entries the leaderboard shows.
	LeaderboardWindow = 5

	TrophyMarker = "🏆"
)

// Placeholder messages shown in place of rows when a list is empty.
const (
	PlaceholderLeaderboard = "No players yet"
	PlaceholderOngoing     = "No ongoing bets"
	PlaceholderEnded       = "No ended bets"
	PlaceholderTop         = "No top players yet"
)

// Emphasis is the visual weight of a row.
type Emphasis int

const (
	EmphasisNeutral Emphasis = iota
	EmphasisWin
	EmphasisLoss
	EmphasisGold
	EmphasisSilver
	EmphasisBronze
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisWin:
		return "win"
	case EmphasisLoss:
		return "loss"
	case EmphasisGold:
		return "gold"
	case EmphasisSilver:
		return "silver"
	case EmphasisBronze:
		return "bronze"
	default:
		return "neutral"
	}
}

// RowEmphasis resolves a leaderboard row's emphasis: win, then loss, then rank.
// index is the position inside the displayed window.
func RowEmphasis(status string, index int) Emphasis {
	switch {
	case status == StatusWin:
		return EmphasisWin
	case status == StatusLoss:
		return EmphasisLoss
	case index == 0:
		return EmphasisGold
	case index == 1:
		return EmphasisSilver
	case index == 2:
		return EmphasisBronze
	default:
		return EmphasisNeutral
	}
}

// CurrentWin is the derived leaderboard payout for a score.
func CurrentWin(score float64) float64 {
	return score * CurrentWinMultiplier
}

// LastN returns the trailing n elements of s, or all of s if it is shorter.
func LastN[T any](s []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// FormatNumber prints whole numbers without decimals and others in shortest form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Panel types are UI-ready view models; no styling happens here.

type LeaderboardRow struct {
	Name       string
	Score      float64
	CurrentWin float64
	Status     string
	Emphasis   Emphasis
}

type LeaderboardPanel struct {
	Headers     [3]string
	Rows        []LeaderboardRow
	Placeholder string
}

// Empty reports whether the placeholder replaces the rows.
func (p LeaderboardPanel) Empty() bool { return len(p.Rows) == 0 }

type OngoingRow struct {
	ID         string
	Score      float64
	CurrentWin float64
}

type OngoingPanel struct {
	Headers     [3]string
	Rows        []OngoingRow
	Placeholder string
}

func (p OngoingPanel) Empty() bool { return len(p.Rows) == 0 }

type EndedRow struct {
	ID        string
	BetAmount float64
	Won       bool
}

// Label is the textual outcome shown next to the indicator.
func (r EndedRow) Label() string {
	if r.Won {
		return "Win"
	}
	return "Loss"
}

type EndedPanel struct {
	Headers     [3]string
	Rows        []EndedRow
	Placeholder string
}

func (p EndedPanel) Empty() bool { return len(p.Rows) == 0 }

// Stat is one labeled value pair on a top player card.
type Stat struct {
	Label string
	Value string
}

type TopRow struct {
	Marker string
	Date   string
	Avatar string
	Stats  [3]Stat
	// WinAmount is kept numeric for charting.
	WinAmount float64
}

type TopPanel struct {
	Period      Period
	Rows        []TopRow
	Placeholder string
}

func (p TopPanel) Empty() bool { return len(p.Rows) == 0 }

// WinSeries returns the win amounts of the rows in display order.
func (p TopPanel) WinSeries() []float64 {
	out := make([]float64, 0, len(p.Rows))
	for _, r := range p.Rows {
		out = append(out, r.WinAmount)
	}
	return out
}

// BuildLeaderboard keeps the last LeaderboardWindow entries in their given order.
func BuildLeaderboard(entries []LeaderboardEntry) LeaderboardPanel {
	window := LastN(entries, LeaderboardWindow)
	rows := make([]LeaderboardRow, 0, len(window))
	for i, e := range window {
		rows = append(rows, LeaderboardRow{
			Name:       e.Name,
			Score:      e.Score,
			CurrentWin: CurrentWin(e.Score),
			Status:     e.Status,
			Emphasis:   RowEmphasis(e.Status, i),
		})
	}
	return LeaderboardPanel{
		Headers:     [3]string{"Player", "Score", "Current Win"},
		Rows:        rows,
		Placeholder: PlaceholderLeaderboard,
	}
}

func BuildOngoing(bets []OngoingBet) OngoingPanel {
	rows := make([]OngoingRow, 0, len(bets))
	for _, b := range bets {
		rows = append(rows, OngoingRow{ID: b.ID, Score: b.Score, CurrentWin: b.CurrentWin})
	}
	return OngoingPanel{
		Headers:     [3]string{"Bet ID", "Score", "Current Win"},
		Rows:        rows,
		Placeholder: PlaceholderOngoing,
	}
}

func BuildEnded(bets []EndedBet) EndedPanel {
	rows := make([]EndedRow, 0, len(bets))
	for _, b := range bets {
		rows = append(rows, EndedRow{ID: b.ID, BetAmount: b.BetAmount, Won: b.Status == StatusWin})
	}
	return EndedPanel{
		Headers:     [3]string{"Bet ID", "Bet Amount", "Status"},
		Rows:        rows,
		Placeholder: PlaceholderEnded,
	}
}

// BuildTop renders the list for one period. A missing key yields the placeholder.
func BuildTop(players TopPlayers, period Period) TopPanel {
	list := players[period]
	rows := make([]TopRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, TopRow{
			Marker: TrophyMarker,
			Date:   p.Date,
			Avatar: p.Avatar,
			Stats: [3]Stat{
				{Label: "Bet Amount", Value: FormatNumber(p.BetAmount)},
				{Label: "Win Amount", Value: FormatNumber(p.WinAmount)},
				{Label: "Round", Value: strconv.Itoa(p.Round)},
			},
			WinAmount: p.WinAmount,
		})
	}
	return TopPanel{Period: period, Rows: rows, Placeholder: PlaceholderTop}
}

// RowCount is the number of data rows the selection displays.
func RowCount(sel Selection, snap *Snapshot) int {
	if snap == nil {
		return 0
	}
	switch sel.Tab {
	case TabLeaderboard:
		return len(LastN(snap.Leaderboard, LeaderboardWindow))
	case TabMyBets:
		if sel.MyBets == SubTabOngoing {
			return len(snap.OngoingBets)
		}
		return len(snap.EndedBets)
	case TabTop:
		return len(snap.TopPlayers[sel.Top])
	}
	return 0
}
