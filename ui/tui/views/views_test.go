package views

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betboard/internal/board"
)

type setterLog struct {
	myBets []board.MyBetsSubTab
	top    []board.Period
}

func (l *setterLog) props(tab board.Tab) TabContentProps {
	return TabContentProps{
		ActiveTab:       tab,
		MyBetsSubTab:    board.SubTabOngoing,
		TopSubTab:       board.PeriodDay,
		TopPlayers:      board.TopPlayers{board.PeriodDay: {}, board.PeriodMonth: {}, board.PeriodYear: {}},
		SetMyBetsSubTab: func(s board.MyBetsSubTab) { l.myBets = append(l.myBets, s) },
		SetTopSubTab:    func(p board.Period) { l.top = append(l.top, p) },
	}
}

func render(t *testing.T, p TabContentProps) string {
	t.Helper()
	out, err := RenderTabContent(p)
	require.NoError(t, err)
	return out
}

func TestViewFor_Dispatch(t *testing.T) {
	tests := []struct {
		tab  board.Tab
		want View
	}{
		{board.TabLeaderboard, LeaderboardView{}},
		{board.TabMyBets, MyBetsView{}},
		{board.TabTop, TopView{}},
	}
	for _, tt := range tests {
		v, err := ViewFor(tt.tab)
		require.NoError(t, err)
		assert.IsType(t, tt.want, v)
	}
}

func TestRenderTabContent_UnknownTab(t *testing.T) {
	var log setterLog
	out, err := RenderTabContent(log.props("history"))

	assert.Empty(t, out)
	var unknown *board.UnknownTabError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, board.Tab("history"), unknown.Tab)
	assert.Nil(t, Controls(log.props("history")))
	assert.False(t, Activate(log.props("history"), ControlEnded))
}

func TestLeaderboard_Example(t *testing.T) {
	var log setterLog
	p := log.props(board.TabLeaderboard)
	p.Leaderboard = []board.LeaderboardEntry{
		{Name: "Alice", Score: 10, Status: "win"},
		{Name: "Bob", Score: 5, Status: "loss"},
	}

	out := render(t, p)
	for _, want := range []string{"Player", "Score", "Current Win", "Alice", "Bob", "500", "250"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, board.PlaceholderLeaderboard)
}

func TestLeaderboard_LastFive(t *testing.T) {
	var log setterLog
	p := log.props(board.TabLeaderboard)
	names := []string{"Ann", "Ben", "Cat", "Dan", "Eve", "Fay", "Gus"}
	for i, n := range names {
		p.Leaderboard = append(p.Leaderboard, board.LeaderboardEntry{Name: n, Score: float64(i)})
	}

	out := render(t, p)
	assert.NotContains(t, out, "Ann")
	assert.NotContains(t, out, "Ben")
	last := -1
	for _, n := range names[2:] {
		idx := strings.Index(out, n)
		require.GreaterOrEqual(t, idx, 0, "%s rendered", n)
		assert.Greater(t, idx, last, "%s keeps its relative order", n)
		last = idx
	}
}

func TestPlaceholders(t *testing.T) {
	var log setterLog

	tests := []struct {
		name  string
		props func() TabContentProps
		want  string
	}{
		{"leaderboard", func() TabContentProps { return log.props(board.TabLeaderboard) }, board.PlaceholderLeaderboard},
		{"ongoing", func() TabContentProps { return log.props(board.TabMyBets) }, board.PlaceholderOngoing},
		{"ended", func() TabContentProps {
			p := log.props(board.TabMyBets)
			p.MyBetsSubTab = board.SubTabEnded
			return p
		}, board.PlaceholderEnded},
		{"top", func() TabContentProps { return log.props(board.TabTop) }, board.PlaceholderTop},
		{"top missing period", func() TabContentProps {
			p := log.props(board.TabTop)
			p.TopPlayers = nil
			return p
		}, board.PlaceholderTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, tt.props())
			assert.Equal(t, 1, strings.Count(out, tt.want))
			assert.NotContains(t, out, board.TrophyMarker)
		})
	}
}

func TestMyBets_Ongoing(t *testing.T) {
	var log setterLog
	p := log.props(board.TabMyBets)
	p.OngoingBets = []board.OngoingBet{{ID: "BET-77", Score: 3, CurrentWin: 123.5}}
	p.EndedBets = []board.EndedBet{{ID: "BET-99", BetAmount: 10, Status: "win"}}

	out := render(t, p)
	for _, want := range []string{"Ongoing", "Ended", "Bet ID", "Current Win", "BET-77", "123.5"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "BET-99")
}

func TestMyBets_EndedIndicators(t *testing.T) {
	var log setterLog
	p := log.props(board.TabMyBets)
	p.MyBetsSubTab = board.SubTabEnded
	p.EndedBets = []board.EndedBet{
		{ID: "E1", BetAmount: 10, Status: "win"},
		{ID: "E2", BetAmount: 20, Status: "loss"},
		{ID: "E3", BetAmount: 30, Status: "refunded"},
	}

	out := render(t, p)
	assert.Contains(t, out, "Bet Amount")
	assert.Contains(t, out, "Status")
	assert.Equal(t, 1, strings.Count(out, indicatorWin))
	assert.Equal(t, 2, strings.Count(out, indicatorLoss))
}

func TestMyBets_UnrecognizedSubTabShowsEnded(t *testing.T) {
	var log setterLog
	p := log.props(board.TabMyBets)
	p.MyBetsSubTab = "archived"
	p.EndedBets = []board.EndedBet{{ID: "E1", Status: "win"}}

	out := render(t, p)
	assert.Contains(t, out, "E1")
	assert.Empty(t, log.myBets, "rendering never touches external state")
}

func TestMyBets_ControlsInvokeSetter(t *testing.T) {
	tests := []struct {
		id   string
		want board.MyBetsSubTab
	}{
		{ControlOngoing, board.SubTabOngoing},
		{ControlEnded, board.SubTabEnded},
	}
	for _, tt := range tests {
		var log setterLog
		require.True(t, Activate(log.props(board.TabMyBets), tt.id))
		assert.Equal(t, []board.MyBetsSubTab{tt.want}, log.myBets)
		assert.Empty(t, log.top)
	}
}

func TestTop_ControlsInvokeSetter(t *testing.T) {
	for _, period := range board.Periods {
		var log setterLog
		require.True(t, Activate(log.props(board.TabTop), ControlPrefixTop+string(period)))
		assert.Equal(t, []board.Period{period}, log.top)
		assert.Empty(t, log.myBets)
	}
}

func TestControls_NilSettersAreSafe(t *testing.T) {
	p := TabContentProps{ActiveTab: board.TabTop}
	assert.NotPanics(t, func() { Activate(p, "top_year") })
	p.ActiveTab = board.TabMyBets
	assert.NotPanics(t, func() { Activate(p, ControlEnded) })
}

func TestLeaderboard_HasNoControls(t *testing.T) {
	var log setterLog
	p := log.props(board.TabLeaderboard)
	assert.Empty(t, Controls(p))
	assert.False(t, Cycle(p, 1))
}

func TestCycle(t *testing.T) {
	var log setterLog
	p := log.props(board.TabTop)
	p.TopSubTab = board.PeriodYear

	require.True(t, Cycle(p, 1))
	require.True(t, Cycle(p, -1))
	assert.Equal(t, []board.Period{board.PeriodDay, board.PeriodMonth}, log.top)

	p = log.props(board.TabMyBets)
	require.True(t, Cycle(p, 1))
	assert.Equal(t, []board.MyBetsSubTab{board.SubTabEnded}, log.myBets)
}

func TestTop_Cards(t *testing.T) {
	var log setterLog
	p := log.props(board.TabTop)
	p.TopSubTab = board.PeriodMonth
	p.TopPlayers[board.PeriodMonth] = []board.TopPlayerEntry{
		{Date: "Mar 03", Avatar: "QZ", BetAmount: 120, WinAmount: 480.25, Round: 17},
		{Date: "Mar 01", Avatar: "KL", BetAmount: 15, WinAmount: 30, Round: 2},
	}
	p.TrendView = "TREND"

	out := render(t, p)
	assert.Equal(t, 2, strings.Count(out, board.TrophyMarker))
	for _, want := range []string{"Day", "Month", "Year", "Mar 03", "QZ", "Bet Amount:", "Win Amount:", "Round:", "480.25", "17", "TREND"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Mar 03"), strings.Index(out, "Mar 01"))
	assert.Less(t, strings.Index(out, "Bet Amount:"), strings.Index(out, "Win Amount:"))
	assert.Less(t, strings.Index(out, "Win Amount:"), strings.Index(out, "Round:"))
}

func TestEntranceOffsetsKeepContent(t *testing.T) {
	var log setterLog
	p := log.props(board.TabLeaderboard)
	p.Leaderboard = []board.LeaderboardEntry{{Name: "Zed", Score: 2}}
	p.RowOffsets = []float64{4}

	out := render(t, p)
	assert.Contains(t, out, "Zed")
	assert.Contains(t, out, "100")
}

func TestHandleMouse_WithoutZones(t *testing.T) {
	var log setterLog
	msg := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	assert.False(t, HandleMouse(log.props(board.TabTop), msg))
	assert.Empty(t, log.top)
}

func TestPropsFor(t *testing.T) {
	snap := &board.Snapshot{Leaderboard: []board.LeaderboardEntry{{Name: "A"}}}
	sel := board.Selection{Tab: board.TabTop, MyBets: board.SubTabEnded, Top: board.PeriodYear}

	p := PropsFor(snap, sel)
	assert.Equal(t, board.TabTop, p.ActiveTab)
	assert.Equal(t, board.SubTabEnded, p.MyBetsSubTab)
	assert.Equal(t, board.PeriodYear, p.TopSubTab)
	assert.Len(t, p.Leaderboard, 1)

	empty := PropsFor(nil, sel)
	assert.Nil(t, empty.Leaderboard)
	assert.Equal(t, fmt.Sprint(board.TabTop), fmt.Sprint(empty.ActiveTab))
}

func TestLeaderboard_LongNameStaysOnOneLine(t *testing.T) {
	var l setterLog
	p := l.props(board.TabLeaderboard)
	p.Width = 60

	p.Leaderboard = []board.LeaderboardEntry{{Name: "Max", Score: 3}}
	short := render(t, p)

	p.Leaderboard = []board.LeaderboardEntry{{Name: "Maximilian Featherstonehaugh", Score: 3}}
	long := render(t, p)

	assert.Equal(t, strings.Count(short, "\n"), strings.Count(long, "\n"), "long name must not wrap:\n%s", long)
	assert.Contains(t, long, "…")
	assert.NotContains(t, long, "Featherstonehaugh")
	assert.Contains(t, long, "150")
}
