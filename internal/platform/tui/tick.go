// Package tui hosts games in a terminal with Bubble Tea: it owns the tick
// timer, decodes keyboard and mouse input into actions, prints the screen
// buffer with lipgloss and serves sessions over SSH with Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg asks the model to advance the simulation by one frame.
type TickMsg time.Time

// tickInterval is the frame period for rate ticks per second.
// Non-positive rates fall back to the default.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
