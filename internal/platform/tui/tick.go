// Package tui runs the snake game in a Bubble Tea program: screen flow,
// input mapping, the frame clock and terminal rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// a frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameInterval converts ticks per second into the delay between ticks.
func frameInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}
