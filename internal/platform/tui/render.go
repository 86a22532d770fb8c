package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-gate/internal/core"
)

// colorStyles gives every cell role its terminal look.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	core.ColorCactus:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorCactusLight: lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	core.ColorGround:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorText:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorMissing:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is styled in runs of one role so a mostly empty playfield costs
// a few escape sequences per row.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			role := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == role; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(role).Render(run.String()))
		}
	}
	return sb.String()
}

// styleFor returns the style of a role, unstyled for unknown roles.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
