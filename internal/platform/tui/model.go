package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-gate/internal/bridge"
	"github.com/vovakirdan/dino-gate/internal/core"
	"github.com/vovakirdan/dino-gate/internal/platform/driver"
)

// footerRows is the space below the playfield for status and help.
const footerRows = 2

// Options configures a terminal game. Runtime.ViewportW and ViewportH are
// the terminal size in cells.
type Options struct {
	driver.Options
	PauseOnBlur bool
	HoldWindow  time.Duration // Jump hold per key press; zero uses DefaultHoldWindow
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea frame driver for the dino game.
type Model struct {
	driver  *driver.Driver
	screen  *core.Screen
	surface *CellSurface
	keys    KeyMap
	help    help.Model
	jump    *HoldLatch
	restart bool // One-shot restart intent for the next frame

	pauseOnBlur bool
	fps         int
	quitting    bool
}

// playfieldRows is the terminal height left for the playfield.
func playfieldRows(height int) int {
	return core.Max(height-footerRows, 1)
}

// NewModel creates the model and its game.
func NewModel(opts Options) Model {
	cols, rows := opts.Runtime.ViewportW, playfieldRows(opts.Runtime.ViewportH)
	fps := opts.Runtime.FPS

	dopts := opts.Options
	dopts.Runtime.ViewportW, dopts.Runtime.ViewportH = Viewport(cols, rows)

	screen := core.NewScreen(cols, rows)
	m := Model{
		driver:      driver.New(dopts),
		screen:      screen,
		surface:     NewCellSurface(screen),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		jump:        NewHoldLatch(opts.HoldWindow),
		pauseOnBlur: opts.PauseOnBlur,
		fps:         fps,
	}
	m.surface.Fit(m.driver.Game().Scale().Height)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		if m.pauseOnBlur {
			m.driver.Send(bridge.CommandResume)
		}
		return m, nil

	case tea.BlurMsg:
		// No key events arrive while unfocused
		m.jump.Release()
		if m.pauseOnBlur {
			m.driver.Send(bridge.CommandPause)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keys to intents.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.driver.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		m.jump.Press(now)

	case key.Matches(msg, m.keys.Restart):
		m.restart = true

	case key.Matches(msg, m.keys.Pause):
		m.jump.Release()
		m.driver.TogglePause()
	}
	return m, nil
}

// handleResize rescales the running game to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := playfieldRows(msg.Height)
	m.screen.Resize(msg.Width, rows)
	m.driver.Resize(Viewport(msg.Width, rows))
	m.surface.Fit(m.driver.Game().Scale().Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := core.Intents{Jump: m.jump.Held(now), Restart: m.restart}
	m.restart = false
	m.driver.Frame(now, in)
	return m, tickCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.driver.Game().Render(m.surface)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	st := m.driver.State()
	return fmt.Sprintf("song #%d  best %05d  speed x%.2f  %s",
		m.driver.SongID(), m.driver.Best(), st.Speed, st.Phase)
}

// Driver returns the frame driver behind this model.
func (m Model) Driver() *driver.Driver {
	return m.driver
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.PauseOnBlur {
		programOpts = append(programOpts, tea.WithReportFocus())
	}

	p := tea.NewProgram(NewModel(opts), programOpts...)
	_, err := p.Run()
	return err
}
