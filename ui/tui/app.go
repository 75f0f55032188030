package tui

import (
	"context"
	"fmt"
	"time"

	"betboard/internal/board"
	"betboard/internal/config"
	"betboard/internal/feed"
	"betboard/ui/tui/components"
	"betboard/ui/tui/state"
	"betboard/ui/tui/styles"
	"betboard/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	log "github.com/sirupsen/logrus"
)

const (
	maxContentWidth = 100
	tabZonePrefix   = "tab_"
)

// MainModel is the Bubble Tea Model acting as the Controller. It owns the
// selection state; TabContent only asks for changes through the setters.
type MainModel struct {
	provider  feed.SnapshotProvider
	config    config.Config
	state     state.AppState
	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	entrance  *components.Entrance
	trend     *components.TrendWidget
	zones     *zone.Manager
	animating bool
	quitting  bool
	width     int
	height    int
}

// Messages
type AnimateMsg time.Time
type SnapshotLoadedMsg struct {
	Snapshot *board.Snapshot
	Err      error
}

func InitialModel(provider feed.SnapshotProvider, cfg config.Config) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Highlight)

	// Rows start 4 cells in and land 100ms apart.
	entrance := components.NewEntrance(60, 4, 100*time.Millisecond)

	return MainModel{
		provider: provider,
		config:   cfg,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		entrance: entrance,
		trend:    components.NewTrendWidget("Win trend", 40, 6),
		state: state.AppState{
			Selection: cfg.Selection(),
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	if m.zones == nil {
		m.zones = zone.New()
	}
	m.state.Loading = true
	return tea.Batch(
		m.spinner.Tick,
		loadSnapshotCmd(m.provider, m.config.LoadTimeout),
	)
}

// Commands
func animateCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func loadSnapshotCmd(p feed.SnapshotProvider, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		snap, err := p.Snapshot(ctx)
		return SnapshotLoadedMsg{Snapshot: snap, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case SnapshotLoadedMsg:
		return m.handleSnapshotLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.zones != nil {
			m.zones.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		m.setTab(state.NextTab(m.state.Selection.Tab, 1))

	case key.Matches(msg, m.keys.PrevTab):
		m.setTab(state.NextTab(m.state.Selection.Tab, -1))

	case key.Matches(msg, m.keys.JumpTab):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(board.Tabs) {
			m.setTab(board.Tabs[idx])
		}

	case key.Matches(msg, m.keys.NextSub):
		views.Cycle(m.tabProps(), 1)

	case key.Matches(msg, m.keys.PrevSub):
		views.Cycle(m.tabProps(), -1)

	case key.Matches(msg, m.keys.Reload):
		if m.state.Loading {
			return m, nil
		}
		m.state.Loading = true
		return m, loadSnapshotCmd(m.provider, m.config.LoadTimeout)
	}

	return m, m.startAnimation()
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.zones == nil {
		return m, nil
	}

	for _, t := range board.Tabs {
		if z := m.zones.Get(tabZonePrefix + string(t)); z != nil && z.InBounds(msg) {
			m.setTab(t)
			return m, m.startAnimation()
		}
	}

	views.HandleMouse(m.tabProps(), msg)
	return m, m.startAnimation()
}

func (m *MainModel) handleAnimateMsg(AnimateMsg) (tea.Model, tea.Cmd) {
	m.entrance.Step()
	if m.entrance.Settled() {
		m.animating = false
		return m, nil
	}
	return m, animateCmd(m.entrance.FrameInterval())
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.trend.Update(tea.WindowSizeMsg{Width: m.contentWidth(), Height: msg.Height})
	return m, nil
}

func (m *MainModel) handleSnapshotLoadedMsg(msg SnapshotLoadedMsg) (tea.Model, tea.Cmd) {
	m.state.Loading = false
	if msg.Err != nil {
		log.WithError(msg.Err).Error("snapshot load failed")
		m.state.Err = msg.Err
		return m, nil
	}

	m.state.Err = nil
	m.state.Snapshot = msg.Snapshot
	m.state.LastUpdate = time.Now()
	log.WithFields(log.Fields{
		"leaderboard": len(msg.Snapshot.Leaderboard),
		"ongoing":     len(msg.Snapshot.OngoingBets),
		"ended":       len(msg.Snapshot.EndedBets),
	}).Info("snapshot loaded")

	m.selectionChanged()
	return m, m.startAnimation()
}

// Selection transitions. These are the only writers of state.Selection.

func (m *MainModel) setTab(t board.Tab) {
	if m.state.Selection.Tab == t {
		return
	}
	log.WithField("tab", t).Debug("tab changed")
	m.state.Selection.Tab = t
	m.selectionChanged()
}

func (m *MainModel) setMyBetsSubTab(sub board.MyBetsSubTab) {
	log.WithField("mybets", sub).Debug("my bets sub-tab changed")
	m.state.Selection.MyBets = sub
	m.selectionChanged()
}

func (m *MainModel) setTopSubTab(p board.Period) {
	log.WithField("period", p).Debug("top sub-tab changed")
	m.state.Selection.Top = p
	m.selectionChanged()
}

func (m *MainModel) selectionChanged() {
	sel := m.state.Selection
	m.entrance.Reset(board.RowCount(sel, m.state.Snapshot))
	if !m.config.Animate {
		m.entrance.Skip()
	}
	if sel.Tab == board.TabTop && m.state.Snapshot != nil {
		m.trend.SetSeries(board.BuildTop(m.state.Snapshot.TopPlayers, sel.Top).WinSeries())
	}
}

func (m *MainModel) startAnimation() tea.Cmd {
	if m.animating || m.entrance.Settled() {
		return nil
	}
	m.animating = true
	return animateCmd(m.entrance.FrameInterval())
}

func (m *MainModel) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	return w
}

func (m *MainModel) tabProps() views.TabContentProps {
	p := views.PropsFor(m.state.Snapshot, m.state.Selection)
	p.SetMyBetsSubTab = m.setMyBetsSubTab
	p.SetTopSubTab = m.setTopSubTab
	p.Width = m.contentWidth()
	p.Zones = m.zones
	if m.config.Animate {
		p.RowOffsets = m.entrance.Offsets()
	}
	if m.config.ShowTrend && p.ActiveTab == board.TabTop {
		p.TrendView = m.trend.View()
	}
	return p
}

func (m *MainModel) renderTabs() string {
	labels := map[board.Tab]string{
		board.TabLeaderboard: "Leaderboard",
		board.TabMyBets:      "My Bets",
		board.TabTop:         "Top",
	}
	var tabs []string
	for i, t := range board.Tabs {
		style := styles.InactiveTabStyle
		if t == m.state.Selection.Tab {
			style = styles.ActiveTabStyle
		}
		text := style.Render(fmt.Sprintf("%d %s", i+1, labels[t]))
		if m.zones != nil {
			text = m.zones.Mark(tabZonePrefix+string(t), text)
		}
		tabs = append(tabs, text)
	}
	return lipgloss.NewStyle().MarginBottom(1).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))
}

func (m *MainModel) renderHeader() string {
	status := ""
	switch {
	case m.state.Err != nil:
		status = lipgloss.NewStyle().Foreground(styles.LossColor).Render(fmt.Sprintf("Error: %v", m.state.Err))
	case !m.state.LastUpdate.IsZero():
		status = lipgloss.NewStyle().Foreground(styles.Muted).Render("Last update: " + m.state.LastUpdate.Format("15:04:05"))
	}

	spin := "  "
	if m.state.Loading {
		spin = m.spinner.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Left,
		spin,
		styles.TitleStyle.Render("BETBOARD"),
		status,
	)
}

func (m *MainModel) renderContent() string {
	if m.state.Snapshot == nil {
		msg := "Loading snapshot…"
		if !m.state.Loading {
			msg = "No data loaded. Press 'r' to retry."
		}
		return styles.PlaceholderStyle.Render(msg)
	}

	content, err := views.RenderTabContent(m.tabProps())
	if err != nil {
		return lipgloss.NewStyle().Foreground(styles.LossColor).Bold(true).
			Render(fmt.Sprintf("Unknown tab %q. Press tab to pick a view.", string(m.state.Selection.Tab)))
	}
	return content
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	body := lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderTabs(),
		m.renderContent(),
		"",
		m.help.View(m.keys),
	))

	if m.zones == nil {
		return body
	}
	return m.zones.Scan(body)
}

func Start(provider feed.SnapshotProvider, cfg config.Config) error {
	m := InitialModel(provider, cfg)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
