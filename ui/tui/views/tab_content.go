package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"betboard/internal/board"
)

// ViewFor dispatches the tab discriminator to its view. Unrecognized tabs are
// reported as *board.UnknownTabError rather than rendering nothing silently.
func ViewFor(tab board.Tab) (View, error) {
	switch tab {
	case board.TabLeaderboard:
		return LeaderboardView{}, nil
	case board.TabMyBets:
		return MyBetsView{}, nil
	case board.TabTop:
		return TopView{}, nil
	default:
		return nil, &board.UnknownTabError{Tab: tab}
	}
}

// RenderTabContent renders exactly one branch for p.ActiveTab.
func RenderTabContent(p TabContentProps) (string, error) {
	v, err := ViewFor(p.ActiveTab)
	if err != nil {
		return "", err
	}
	return v.Render(p), nil
}

// Controls lists the interactive sub-tab buttons of the active branch.
func Controls(p TabContentProps) []Control {
	v, err := ViewFor(p.ActiveTab)
	if err != nil {
		return nil
	}
	return v.Controls(p)
}

// Activate triggers the control with the given id. It reports whether one matched.
func Activate(p TabContentProps, id string) bool {
	for _, c := range Controls(p) {
		if c.ID == id {
			c.Activate()
			return true
		}
	}
	return false
}

// Cycle activates the control delta steps away from the active one.
func Cycle(p TabContentProps, delta int) bool {
	ctrls := Controls(p)
	if len(ctrls) == 0 {
		return false
	}
	cur := 0
	for i, c := range ctrls {
		if c.Active {
			cur = i
			break
		}
	}
	n := len(ctrls)
	ctrls[((cur+delta)%n+n)%n].Activate()
	return true
}

// HandleMouse activates the control under a left click release.
func HandleMouse(p TabContentProps, msg tea.MouseMsg) bool {
	if p.Zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	for _, c := range Controls(p) {
		if z := p.Zones.Get(c.ID); z != nil && z.InBounds(msg) {
			c.Activate()
			return true
		}
	}
	return false
}
