package views

import (
	zone "github.com/lrstanley/bubblezone"

	"betboard/internal/board"
)

// TabContentProps is everything TabContent renders from. The sub-tab values
// are owned by the caller; the setters are the only way to change them.
type TabContentProps struct {
	ActiveTab board.Tab

	Leaderboard []board.LeaderboardEntry
	OngoingBets []board.OngoingBet
	EndedBets   []board.EndedBet
	TopPlayers  board.TopPlayers

	MyBetsSubTab    board.MyBetsSubTab
	TopSubTab       board.Period
	SetMyBetsSubTab func(board.MyBetsSubTab)
	SetTopSubTab    func(board.Period)

	// Presentation only
	Width      int
	RowOffsets []float64 // per-row entrance offset in cells, 0 = settled
	TrendView  string    // pre-rendered chart for the top view, optional
	Zones      *zone.Manager
}

// PropsFor fills the data and selection fields from a snapshot.
func PropsFor(snap *board.Snapshot, sel board.Selection) TabContentProps {
	p := TabContentProps{
		ActiveTab:    sel.Tab,
		MyBetsSubTab: sel.MyBets,
		TopSubTab:    sel.Top,
	}
	if snap != nil {
		p.Leaderboard = snap.Leaderboard
		p.OngoingBets = snap.OngoingBets
		p.EndedBets = snap.EndedBets
		p.TopPlayers = snap.TopPlayers
	}
	return p
}

// Control is one interactive sub-tab button.
type Control struct {
	ID       string
	Label    string
	Active   bool
	Activate func()
}

// View defines the contract for one tab variant.
type View interface {
	Render(p TabContentProps) string
	Controls(p TabContentProps) []Control
}
