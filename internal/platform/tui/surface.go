package tui

import (
	"math"

	"github.com/vovakirdan/dino-gate/internal/core"
)

// cellAspect is how many playfield units tall one cell row is, relative to
// its width. Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2

// glyph is how a sprite looks in the terminal.
type glyph struct {
	fill  rune
	foot  rune // Bottom row, used for running legs
	color core.Color
}

var glyphs = map[core.Sprite]glyph{
	core.SpriteGround:        {fill: '▔', foot: '▔', color: core.ColorGround},
	core.SpriteStandingStill: {fill: '█', foot: '▌', color: core.ColorPlayer},
	core.SpriteRun1:          {fill: '█', foot: '▘', color: core.ColorPlayer},
	core.SpriteRun2:          {fill: '█', foot: '▝', color: core.ColorPlayer},
	"cactus_1":               {fill: '▓', foot: '▓', color: core.ColorCactus},
	"cactus_2":               {fill: '▓', foot: '▓', color: core.ColorCactusLight},
	"cactus_3":               {fill: '▒', foot: '▒', color: core.ColorCactus},
}

// unknownGlyph is drawn for sprites the terminal has no mapping for.
var unknownGlyph = glyph{fill: '?', foot: '?', color: core.ColorMissing}

// CellSurface rasterizes the game's drawing calls into a character Screen.
// The game is given a viewport of cols x rows*cellAspect units, so one unit
// is one column wide and half a row tall.
type CellSurface struct {
	screen  *core.Screen
	offsetY int // Rows above the playfield
}

// NewCellSurface wraps a screen.
func NewCellSurface(screen *core.Screen) *CellSurface {
	return &CellSurface{screen: screen}
}

// Viewport returns the game viewport for a terminal area.
func Viewport(cols, rows int) (int, int) {
	return cols, rows * cellAspect
}

// Fit anchors a playfield of the given height to the bottom of the screen.
func (s *CellSurface) Fit(playfieldH float64) {
	rows := int(math.Ceil(playfieldH / cellAspect))
	s.offsetY = core.Max(0, s.screen.Height()-rows)
}

// Clear wipes the screen.
func (s *CellSurface) Clear() {
	s.screen.Clear()
}

// DrawImage fills the sprite's cells, using the foot rune on the bottom row.
func (s *CellSurface) DrawImage(sprite core.Sprite, x, y, w, h float64) {
	g, ok := glyphs[sprite]
	if !ok {
		g = unknownGlyph
	}
	r := s.cells(core.NewBox(x, y, w, h))
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if sprite == core.SpriteGround {
		// Only the top edge of the strip is visible
		s.screen.FillRect(core.NewRect(r.X, r.Y, r.W, 1), g.fill, g.color)
		return
	}
	s.screen.FillRect(core.NewRect(r.X, r.Y, r.W, r.H-1), g.fill, g.color)
	s.screen.FillRect(core.NewRect(r.X, r.Bottom()-1, r.W, 1), g.foot, g.color)
}

// DrawText writes a line centered on the given point. Size is ignored.
func (s *CellSurface) DrawText(text string, x, y, _ float64) {
	n := len([]rune(text))
	col := int(math.Round(x)) - n/2
	row := s.offsetY + int(math.Floor(y/cellAspect))
	for i, ch := range []rune(text) {
		s.screen.SetCell(col+i, row, ch, core.ColorText)
	}
}

// cells converts a playfield box to screen cells.
func (s *CellSurface) cells(b core.Box) core.Rect {
	r := core.NewBox(b.X, b.Y/cellAspect, b.W, b.H/cellAspect).Cells()
	r.Y += s.offsetY
	return r
}
