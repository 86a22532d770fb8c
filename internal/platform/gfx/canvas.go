package gfx

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/dino-gate/internal/core"
)

// minTextSize keeps overlays readable in tiny windows.
const minTextSize = 8

var (
	backgroundColor = color.RGBA{0xf7, 0xf7, 0xf7, 0xff}
	textColor       = color.RGBA{0x53, 0x53, 0x53, 0xff}
)

// LoadFace parses the bundled Go Regular font.
func LoadFace() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
}

// TextSize clamps a requested overlay size to something legible.
func TextSize(size float64) float64 {
	if size < minTextSize {
		return minTextSize
	}
	return size
}

// canvas draws the game onto the window image of the current frame.
// Playfield units are window pixels.
type canvas struct {
	target  *ebiten.Image
	sprites *Sprites
	font    *text.GoTextFaceSource
}

// Clear paints the background.
func (c *canvas) Clear() {
	c.target.Fill(backgroundColor)
}

// DrawImage stretches the sprite over the box.
func (c *canvas) DrawImage(sprite core.Sprite, x, y, w, h float64) {
	img := c.sprites.Image(sprite)
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	c.target.DrawImage(img, op)
}

// DrawText draws a line centered on (x, y).
func (c *canvas) DrawText(s string, x, y, size float64) {
	if c.font == nil {
		return
	}
	face := &text.GoTextFace{Source: c.font, Size: TextSize(size)}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(c.target, s, face, op)
}
