// Package tui is the Bubble Tea shell around the runner: the game loop,
// key mapping, the variant menu, the leaderboard view and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// refreshMsg asks the leaderboard view with the same loop id to reload.
type refreshMsg struct{ loop int64 }

// statusClearMsg hides a transient status line. The id guards against
// clearing a newer message.
type statusClearMsg struct{ id int }

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// refreshCmd schedules a leaderboard reload after d.
func refreshCmd(loop int64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return refreshMsg{loop: loop}
	})
}

// clearStatusCmd hides status message id after d.
func clearStatusCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}
