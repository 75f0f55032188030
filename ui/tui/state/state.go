package state

import (
	"time"

	"betboard/internal/board"
)

// AppState holds the current snapshot and the selection the shell owns.
// Views only read it; sub-tab changes flow back through setter callbacks.
type AppState struct {
	Snapshot   *board.Snapshot
	Selection  board.Selection
	LastUpdate time.Time
	Loading    bool
	Err        error
}

// NextTab cycles the active tab by delta, wrapping at both ends. An unknown
// tab restarts from the first one.
func NextTab(current board.Tab, delta int) board.Tab {
	idx := -1
	for i, t := range board.Tabs {
		if t == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return board.Tabs[0]
	}
	n := len(board.Tabs)
	return board.Tabs[((idx+delta)%n+n)%n]
}
