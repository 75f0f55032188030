package board

import "fmt"

// Tab is the top-level view discriminator.
type Tab string

const (
	TabLeaderboard Tab = "leaderboard"
	TabMyBets      Tab = "mybets"
	TabTop         Tab = "top"
)

// Tabs lists the recognized tabs in display order.
var Tabs = []Tab{TabLeaderboard, TabMyBets, TabTop}

// MyBetsSubTab narrows the my-bets view.
type MyBetsSubTab string

const (
	SubTabOngoing MyBetsSubTab = "ongoing"
	SubTabEnded   MyBetsSubTab = "ended"
)

// Period keys the top players lists and doubles as the top view's sub-tab.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Periods lists the top sub-tabs in display order.
var Periods = []Period{PeriodDay, PeriodMonth, PeriodYear}

const (
	StatusWin  = "win"
	StatusLoss = "loss"
)

type LeaderboardEntry struct {
	Name   string  `yaml:"name" json:"name"`
	Score  float64 `yaml:"score" json:"score"`
	Status string  `yaml:"status" json:"status"`
}

type OngoingBet struct {
	ID         string  `yaml:"id" json:"id"`
	Score      float64 `yaml:"score" json:"score"`
	CurrentWin float64 `yaml:"current_win" json:"current_win"`
}

// EndedBet has a final outcome. Any Status other than "win" is a loss.
type EndedBet struct {
	ID        string  `yaml:"id" json:"id"`
	BetAmount float64 `yaml:"bet_amount" json:"bet_amount"`
	Status    string  `yaml:"status" json:"status"`
}

type TopPlayerEntry struct {
	Date      string  `yaml:"date" json:"date"`
	Avatar    string  `yaml:"avatar" json:"avatar"`
	BetAmount float64 `yaml:"bet_amount" json:"bet_amount"`
	WinAmount float64 `yaml:"win_amount" json:"win_amount"`
	Round     int     `yaml:"round" json:"round"`
}

// TopPlayers groups top player entries by period, in supplied order.
type TopPlayers map[Period][]TopPlayerEntry

// Snapshot is the full pre-computed input set for one render.
type Snapshot struct {
	Leaderboard []LeaderboardEntry `yaml:"leaderboard" json:"leaderboard"`
	OngoingBets []OngoingBet       `yaml:"ongoing_bets" json:"ongoing_bets"`
	EndedBets   []EndedBet         `yaml:"ended_bets" json:"ended_bets"`
	TopPlayers  TopPlayers         `yaml:"top_players" json:"top_players"`
}

// Normalize makes sure every period key is present so lookups never miss.
func (s *Snapshot) Normalize() {
	if s.TopPlayers == nil {
		s.TopPlayers = TopPlayers{}
	}
	for _, p := range Periods {
		if _, ok := s.TopPlayers[p]; !ok {
			s.TopPlayers[p] = []TopPlayerEntry{}
		}
	}
}

// Selection is the externally owned UI state: active tab plus both sub-tabs.
type Selection struct {
	Tab    Tab          `json:"tab"`
	MyBets MyBetsSubTab `json:"mybets_sub_tab"`
	Top    Period       `json:"top_sub_tab"`
}

// DefaultSelection returns the leaderboard with the first sub-tab of each group.
func DefaultSelection() Selection {
	return Selection{Tab: TabLeaderboard, MyBets: SubTabOngoing, Top: PeriodDay}
}

// UnknownTabError is returned when a tab discriminator matches no view.
type UnknownTabError struct {
	Tab Tab
}

func (e *UnknownTabError) Error() string {
	return fmt.Sprintf("unknown tab %q", string(e.Tab))
}

// ParseTab validates a tab literal.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &UnknownTabError{Tab: Tab(s)}
}

func ParseMyBetsSubTab(s string) (MyBetsSubTab, error) {
	switch MyBetsSubTab(s) {
	case SubTabOngoing, SubTabEnded:
		return MyBetsSubTab(s), nil
	}
	return "", fmt.Errorf("invalid my bets sub-tab %q (must be 'ongoing' or 'ended')", s)
}

func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid period %q (must be 'day', 'month' or 'year')", s)
}
