// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/booksearch/pkg/types"
)

// StateMsg carries a controller snapshot into the Bubble Tea loop.
type StateMsg types.State

// Updates hands controller snapshots to the UI. Only the latest undelivered
// snapshot is kept; older ones are dropped.
type Updates struct {
	ch chan types.State
}

// NewUpdates returns an empty Updates.
func NewUpdates() *Updates {
	return &Updates{ch: make(chan types.State, 1)}
}

// Publish replaces any undelivered snapshot with st. It never blocks, so it
// is safe to use as a controller listener.
func (u *Updates) Publish(st types.State) {
	select {
	case <-u.ch:
	default:
	}
	select {
	case u.ch <- st:
	default:
	}
}

// Wait returns a command that blocks until the next snapshot arrives.
func (u *Updates) Wait() tea.Cmd {
	return func() tea.Msg {
		return StateMsg(<-u.ch)
	}
}
