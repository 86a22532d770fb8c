// Package tui is the terminal frontend: a Bubble Tea frame driver that feeds
// the dino game timestamps, key intents and host commands, and rasterizes
// its sprites into colored character cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the timestamp of one display frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one frame tick at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
