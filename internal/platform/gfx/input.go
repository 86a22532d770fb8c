package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical window input.
type Action int

const (
	ActionJump Action = iota
	ActionRestart
	ActionPause
	ActionQuit
)

// Binding lists the keys and pad buttons that trigger an action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its inputs.
type Bindings map[Action]Binding

// DefaultBindings returns the window controls.
func DefaultBindings() Bindings {
	return Bindings{
		ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
			// A / Cross
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionRestart: {
			Keys: []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		},
		ActionPause: {
			Keys: []ebiten.Key{ebiten.KeyP},
			// Start / Options
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
		ActionQuit: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
		},
	}
}

// Poller reads actions from the keyboard, pads, mouse and touch screen.
type Poller struct {
	bindings Bindings
	pads     []ebiten.GamepadID
	touches  []ebiten.TouchID
}

// NewPoller creates a poller for the given bindings.
func NewPoller(b Bindings) *Poller {
	return &Poller{bindings: b}
}

// Held reports whether the action is held this tick. Jump also counts the
// left mouse button and any touch.
func (p *Poller) Held(a Action) bool {
	b := p.bindings[a]
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	p.pads = ebiten.AppendGamepadIDs(p.pads[:0])
	for _, id := range p.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	if a == ActionJump {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			return true
		}
		p.touches = ebiten.AppendTouchIDs(p.touches[:0])
		if len(p.touches) > 0 {
			return true
		}
	}
	return false
}

// JustPressed reports whether the action went down this tick.
func (p *Poller) JustPressed(a Action) bool {
	b := p.bindings[a]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	p.pads = ebiten.AppendGamepadIDs(p.pads[:0])
	for _, id := range p.pads {
		for _, btn := range b.Buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}
