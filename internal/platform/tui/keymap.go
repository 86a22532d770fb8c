package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
)

// DefaultHoldWindow is how long one key press keeps the jump held.
// It is shorter than the first auto-repeat delay of most terminals
// (250-660 ms), so a held key reads as released until repeats arrive and
// held jumps stop short of full height. A longer window fixes that at the
// cost of making taps jump higher.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Jump    key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Pause, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Restart},
		{k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HoldLatch turns discrete key presses into a level-sensitive intent.
// Terminals report presses and auto-repeats but never releases, so a press
// counts as held until the window passes without another press.
type HoldLatch struct {
	window time.Duration
	until  time.Time
}

// NewHoldLatch creates a latch. A non-positive window uses DefaultHoldWindow.
func NewHoldLatch(window time.Duration) *HoldLatch {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldLatch{window: window}
}

// Press records a press or auto-repeat at now.
func (l *HoldLatch) Press(now time.Time) {
	l.until = now.Add(l.window)
}

// Held reports whether the input counts as held at now.
func (l *HoldLatch) Held(now time.Time) bool {
	return now.Before(l.until)
}

// Release drops the hold immediately. Used when the terminal stops
// delivering keys, such as on focus loss.
func (l *HoldLatch) Release() {
	l.until = time.Time{}
}
