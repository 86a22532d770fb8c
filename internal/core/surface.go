package core

// Sprite names a bitmap known to the rendering surface.
// Surfaces resolve sprites to images (window) or glyphs (terminal).
type Sprite string

const (
	SpriteGround        Sprite = "ground"
	SpriteStandingStill Sprite = "standing_still"
	SpriteRun1          Sprite = "dino_run1"
	SpriteRun2          Sprite = "dino_run2"
)

// Surface is the rendering contract the game draws into.
// DrawImage is called once per visible entity per frame; implementations
// must not block and must tolerate sprites whose assets failed to load.
type Surface interface {
	// Clear wipes the frame. Called once at the start of each render pass.
	Clear()
	// DrawImage draws the sprite scaled into the given playfield box.
	DrawImage(sprite Sprite, x, y, w, h float64)
	// DrawText draws an overlay line centered on the given playfield point.
	DrawText(text string, x, y, size float64)
}
