package core

// Color is the role of a screen cell. The terminal platform decides what
// each role looks like.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlayer
	ColorCactus
	ColorCactusLight
	ColorGround
	ColorText
	ColorMissing // Sprite with no glyph
)
