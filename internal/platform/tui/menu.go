package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gate/internal/storage"
)

// SongItem is a selectable song in the menu.
type SongItem struct {
	ID       int
	Best     int
	Runs     int
	HasTrack bool // A track file exists in the songs directory
}

// MenuKeyMap defines the key bindings for the song menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultMenuKeyMap returns the default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		Select:     key.NewBinding(key.WithKeys("enter", " ")),
		Scoreboard: key.NewBinding(key.WithKeys("s", "tab")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	menuMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the song picker.
type MenuModel struct {
	items          []SongItem
	cursor         int
	width          int
	height         int
	keys           MenuKeyMap
	quitting       bool
	selected       *SongItem // Set when user selects a song
	openScoreboard bool      // True if user asked for the scoreboard
}

// SongItems merges the songs found on disk with the songs that have runs.
// The store and the logger may be nil.
func SongItems(tracks []int, store *storage.Store, logger *log.Logger) []SongItem {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	byID := make(map[int]*SongItem)
	var order []int
	add := func(id int) *SongItem {
		if it, ok := byID[id]; ok {
			return it
		}
		byID[id] = &SongItem{ID: id}
		order = append(order, id)
		return byID[id]
	}

	for _, id := range tracks {
		add(id).HasTrack = true
	}
	if store != nil {
		played, err := store.Songs()
		if err != nil {
			logger.Warn("cannot list songs", "err", err)
		}
		for _, id := range played {
			it := add(id)
			stats, err := store.Stats(id)
			if err != nil {
				logger.Warn("cannot read song stats", "song", id, "err", err)
				continue
			}
			it.Best = stats.BestScore
			it.Runs = stats.Runs
		}
	}

	items := make([]SongItem, 0, len(order))
	for _, id := range order {
		items = append(items, *byID[id])
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// NewMenuModel creates a menu over the given songs with the cursor on
// songID when it is listed.
func NewMenuModel(items []SongItem, songID, width, height int) MenuModel {
	m := MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
	for i, it := range items {
		if it.ID == songID {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the run
		}

	case key.Matches(msg, m.keys.Scoreboard):
		// Scores belong to the highlighted song; with no songs there is none
		if len(m.items) > 0 {
			m.openScoreboard = true
			return m, tea.Quit // Exit menu to show scoreboard
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("D I N O   G A T E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a song", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(menuMutedStyle.Render("No songs found. Add <id>.mp3 files to the songs directory."), m.width))
		b.WriteString("\n")
	}

	for i, it := range m.items {
		line := fmt.Sprintf("song #%-3d  best %05d  %3d runs", it.ID, it.Best, it.Runs)
		if !it.HasTrack {
			line += "  (no track)"
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  S: Scores  |  Q: Quit"
	b.WriteString(centerText(menuMutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected song, or nil if none selected.
func (m MenuModel) Selected() *SongItem {
	return m.selected
}

// centerText centers text within given width, measuring styled text by its
// printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SongID          int
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the song menu and returns the selection.
func RunMenu(items []SongItem, songID, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(items, songID, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}

// Result reports what the menu ended with.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Width: m.width, Height: m.height}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
		result.SongID = m.items[m.cursor].ID
	case m.selected != nil:
		result.SongID = m.selected.ID
	default:
		result.Quit = true
	}
	return result
}
