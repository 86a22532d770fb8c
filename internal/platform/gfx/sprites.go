package gfx

import (
	"image/color"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/dino-gate/internal/core"
)

// placeholderSize is the edge of the solid image drawn for a missing sprite.
// It is stretched to the entity box like any other image.
const placeholderSize = 4

// SpritePath returns where the image for a sprite lives under dir.
func SpritePath(dir string, sprite core.Sprite) string {
	return filepath.Join(dir, string(sprite)+".png")
}

// PlaceholderColor is the solid color standing in for a sprite whose asset
// could not be loaded.
func PlaceholderColor(sprite core.Sprite) color.RGBA {
	switch sprite {
	case core.SpriteGround:
		return color.RGBA{0x53, 0x53, 0x53, 0xff}
	case core.SpriteStandingStill, core.SpriteRun1, core.SpriteRun2:
		return color.RGBA{0x35, 0x35, 0x35, 0xff}
	default:
		// Obstacles
		return color.RGBA{0x2e, 0x8b, 0x57, 0xff}
	}
}

// Sprites loads sprite images on first use and caches them. A sprite whose
// file is missing or unreadable is drawn as a solid block; the game keeps
// running either way.
type Sprites struct {
	dir    string
	images map[core.Sprite]*ebiten.Image
	logger *log.Logger
}

// NewSprites creates a cache reading PNGs from dir. An empty dir means
// every sprite uses its placeholder.
func NewSprites(dir string, logger *log.Logger) *Sprites {
	return &Sprites{
		dir:    dir,
		images: make(map[core.Sprite]*ebiten.Image),
		logger: logger,
	}
}

// Image returns the image for a sprite.
func (s *Sprites) Image(sprite core.Sprite) *ebiten.Image {
	if img, ok := s.images[sprite]; ok {
		return img
	}
	img := s.load(sprite)
	s.images[sprite] = img
	return img
}

func (s *Sprites) load(sprite core.Sprite) *ebiten.Image {
	if s.dir != "" {
		path := SpritePath(s.dir, sprite)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err == nil {
			return img
		}
		s.logger.Warn("sprite unavailable, using placeholder", "sprite", sprite, "path", path, "err", err)
	}
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(PlaceholderColor(sprite))
	return img
}
