package dino

import "github.com/vovakirdan/dino-gate/internal/config"

// ScaleContext maps the base playfield onto the host viewport.
// Every absolute size and speed is a base constant times Ratio.
type ScaleContext struct {
	Ratio  float64 // Viewport units per base unit, > 0
	Width  float64 // Scaled playfield width
	Height float64 // Scaled playfield height
}

// NewScaleContext fits the base playfield into the viewport, preserving its
// aspect: narrow viewports are limited by width, wide ones by height.
func NewScaleContext(viewportW, viewportH int, field config.DinoPlayfield) ScaleContext {
	ratio := 1.0
	if viewportW > 0 && viewportH > 0 {
		vw, vh := float64(viewportW), float64(viewportH)
		if vw/vh < field.Width/field.Height {
			ratio = vw / field.Width
		} else {
			ratio = vh / field.Height
		}
	}
	return ScaleContext{
		Ratio:  ratio,
		Width:  field.Width * ratio,
		Height: field.Height * ratio,
	}
}
