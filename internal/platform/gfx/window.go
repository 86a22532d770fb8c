// Package gfx is the desktop window frontend built on Ebitengine.
// The window is the playfield: one playfield unit is one window pixel, and
// resizing the window rescales the running game.
package gfx

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dino-gate/internal/bridge"
	"github.com/vovakirdan/dino-gate/internal/core"
	"github.com/vovakirdan/dino-gate/internal/platform/driver"
)

// Title is the window title.
const Title = "dino-gate"

// Options configures a window game. Runtime.ViewportW and ViewportH are
// the initial window size in pixels.
type Options struct {
	driver.Options
	Assets      string // Directory of sprite PNGs; empty uses placeholders
	PauseOnBlur bool
}

// FocusTracker turns focus changes into host commands.
type FocusTracker struct {
	focused bool
}

// NewFocusTracker starts out focused.
func NewFocusTracker() FocusTracker {
	return FocusTracker{focused: true}
}

// Observe records the current focus and returns the command for a change.
func (f *FocusTracker) Observe(focused bool) (bridge.Command, bool) {
	if focused == f.focused {
		return 0, false
	}
	f.focused = focused
	if focused {
		return bridge.CommandResume, true
	}
	return bridge.CommandPause, true
}

// Window implements ebiten.Game for the dino game.
type Window struct {
	driver      *driver.Driver
	input       *Poller
	canvas      canvas
	focus       FocusTracker
	pauseOnBlur bool
	width       int
	height      int
	logger      *log.Logger
}

// NewWindow creates the window game. A missing font only hides overlays.
func NewWindow(opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
		opts.Logger = logger
	}

	font, err := LoadFace()
	if err != nil {
		logger.Warn("cannot load font, overlays disabled", "err", err)
	}

	return &Window{
		driver: driver.New(opts.Options),
		input:  NewPoller(DefaultBindings()),
		canvas: canvas{
			sprites: NewSprites(opts.Assets, logger),
			font:    font,
		},
		focus:       NewFocusTracker(),
		pauseOnBlur: opts.PauseOnBlur,
		width:       opts.Runtime.ViewportW,
		height:      opts.Runtime.ViewportH,
		logger:      logger,
	}
}

// Update polls input and runs one frame.
func (w *Window) Update() error {
	if w.input.JustPressed(ActionQuit) {
		w.driver.Close()
		return ebiten.Termination
	}

	if w.pauseOnBlur {
		if cmd, changed := w.focus.Observe(ebiten.IsFocused()); changed {
			w.driver.Send(cmd)
		}
	}
	if w.input.JustPressed(ActionPause) {
		w.driver.TogglePause()
	}

	in := core.Intents{
		Jump:    w.input.Held(ActionJump),
		Restart: w.input.JustPressed(ActionRestart),
	}
	w.driver.Frame(time.Now(), in)
	return nil
}

// Draw renders the last frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.target = screen
	w.driver.Game().Render(&w.canvas)
}

// Layout follows the window size and rescales the game when it changes.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.driver.Resize(outsideWidth, outsideHeight)
		w.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Driver returns the frame driver behind the window.
func (w *Window) Driver() *driver.Driver {
	return w.driver
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	ebiten.SetWindowSize(opts.Runtime.ViewportW, opts.Runtime.ViewportH)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.FPS > 0 {
		ebiten.SetTPS(opts.Runtime.FPS)
	}
	if opts.PauseOnBlur {
		// Keep ticking while unfocused so the blur is seen.
		ebiten.SetRunnableOnUnfocused(true)
	}

	err := ebiten.RunGame(NewWindow(opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

var _ ebiten.Game = (*Window)(nil)
var _ core.Surface = (*canvas)(nil)
