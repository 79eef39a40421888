// Package tui runs arcade games in a terminal with Bubble Tea: the fixed-rate
// tick loop, key handling, the menu and scoreboard screens, and the SSH
// server that serves them to remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the running game by one simulation step.
type TickMsg time.Time

// tickInterval is the wall-clock length of one tick at rate ticks per second.
func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

// tickCmd schedules the next tick. Each tick schedules its successor, so a
// model stops ticking simply by not returning one.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
