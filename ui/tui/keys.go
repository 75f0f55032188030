package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	JumpTab key.Binding
	NextSub key.Binding
	PrevSub key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		JumpTab: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "jump to tab")),
		NextSub: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next sub-tab")),
		PrevSub: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev sub-tab")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextSub, k.Reload, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.JumpTab},
		{k.NextSub, k.PrevSub},
		{k.Reload, k.Help, k.Quit},
	}
}
