// Package dino implements the dino endless runner: a variable-timestep
// simulation with a jumping player, randomly spawned obstacles, a scrolling
// ground strip and a speed ramp, wrapped in a life-cycle state machine that
// a host can pause, resume, start and reset.
package dino

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gate/internal/bridge"
	"github.com/vovakirdan/dino-gate/internal/config"
	"github.com/vovakirdan/dino-gate/internal/core"
)

// EventSink receives life-cycle notifications. Emit must not block.
type EventSink interface {
	Emit(ev bridge.Event)
}

// Game is the life-cycle state machine. It owns the current Session and
// the frame clock; platforms feed it timestamps, intents and host commands.
// A Game is not safe for concurrent use: one step runs at a time.
type Game struct {
	cfg     config.DinoConfig
	runtime core.RuntimeConfig
	scale   ScaleContext
	rng     *rand.Rand

	session    *Session
	phase      core.Phase
	hostPaused bool
	clock      FrameClock
	prev       core.Intents
	cooldown   float64 // Remaining restart cool-down after game over, ms

	sink   EventSink
	logger *log.Logger
}

// New creates a game waiting to start. A nil sink drops events and a nil
// logger discards log output.
func New(cfg config.DinoConfig, runtime core.RuntimeConfig, sink EventSink, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:     cfg,
		runtime: runtime,
		scale:   NewScaleContext(runtime.ViewportW, runtime.ViewportH, cfg.Playfield),
		rng:     rand.New(rand.NewSource(seed)),
		sink:    sink,
		logger:  logger,
	}
	g.newSession()
	return g
}

// newSession replaces every subsystem at once and returns to WaitingToStart.
func (g *Game) newSession() {
	g.session = NewSession(g.cfg, g.scale, g.rng)
	g.phase = core.PhaseWaitingToStart
	g.cooldown = 0
}

// Frame is the driver entry point: it converts the timestamp to elapsed time
// and runs one step. While the host has paused the game nothing happens, not
// even clock bookkeeping.
func (g *Game) Frame(now time.Time, in core.Intents) core.StepResult {
	if g.hostPaused {
		g.prev = in
		return core.StepResult{State: g.State()}
	}
	elapsed, _ := g.clock.Tick(now)
	return g.Step(elapsed, in)
}

// Step runs one simulation step with an explicit elapsed time in ms.
// Non-positive elapsed time never moves anything, but phase transitions
// driven by intents still apply.
func (g *Game) Step(elapsed float64, in core.Intents) core.StepResult {
	defer func() { g.prev = in }()

	if g.hostPaused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case core.PhaseWaitingToStart:
		// The first jump doubles as the start gesture.
		if in.Jump || g.cfg.Session.AutoStart {
			g.start()
		}
		return core.StepResult{State: g.State()}

	case core.PhaseRunning:
		if elapsed <= 0 {
			return core.StepResult{State: g.State()}
		}
		if g.session.Advance(elapsed, in.Jump) {
			g.gameOver()
		}
		return core.StepResult{State: g.State(), Stepped: true}

	case core.PhaseGameOver:
		if elapsed > 0 && g.cooldown > 0 {
			g.cooldown -= elapsed
		}
		if g.localRestart(in) {
			g.Reset()
		}
	}
	return core.StepResult{State: g.State()}
}

// localRestart reports whether the player asked for a new session and is
// allowed to have one. Releasing jump restarts, so the press that caused the
// crash cannot.
func (g *Game) localRestart(in core.Intents) bool {
	if g.cfg.Session.HostReset || g.cooldown > 0 {
		return false
	}
	return in.Restart || in.Edge(g.prev) == core.EdgeReleased
}

func (g *Game) start() {
	g.phase = core.PhaseRunning
	g.logger.Debug("session started")
	g.emit(bridge.EventGameStarted)
}

func (g *Game) gameOver() {
	g.phase = core.PhaseGameOver
	g.cooldown = g.cfg.Session.RestartCooldownMs
	g.logger.Debug("game over",
		"score", g.session.Score(),
		"run_ms", int(g.session.RunTimeMs()),
		"speed", g.session.Ramp.Multiplier(),
		"obstacles", g.session.Spawner.Spawned(),
	)
	g.emit(bridge.EventGameOver)
}

func (g *Game) emit(ev bridge.Event) {
	if g.sink != nil {
		g.sink.Emit(ev)
	}
}

// ForceStart moves WaitingToStart to Running without a player gesture.
// It does nothing in any other phase.
func (g *Game) ForceStart() {
	if g.phase == core.PhaseWaitingToStart {
		g.start()
	}
}

// Reset discards the session and starts over in WaitingToStart.
// The host pause flag is orthogonal and survives a reset.
func (g *Game) Reset() {
	g.newSession()
	g.logger.Debug("session reset")
}

// Pause halts the game until Resume. Pausing twice is the same as once.
func (g *Game) Pause() {
	if g.hostPaused {
		return
	}
	g.hostPaused = true
	g.clock.Stop()
	g.logger.Debug("paused by host")
}

// Resume lifts a host pause. The next frame only re-anchors the clock.
func (g *Game) Resume() {
	if !g.hostPaused {
		return
	}
	g.hostPaused = false
	g.clock.Stop()
	g.logger.Debug("resumed by host")
}

// HandleCommand applies a validated host command. Commands must be applied
// between frames, never from inside a step.
func (g *Game) HandleCommand(cmd bridge.Command) {
	switch cmd {
	case bridge.CommandPause:
		g.Pause()
	case bridge.CommandResume:
		g.Resume()
	case bridge.CommandReset:
		g.Reset()
	case bridge.CommandStart:
		g.ForceStart()
	default:
		g.logger.Warn("ignoring unknown command", "command", int(cmd))
	}
}

// Resize recomputes the scale for a new viewport and rescales the live
// session in place, keeping the player on its standing line.
func (g *Game) Resize(viewportW, viewportH int) {
	next := NewScaleContext(viewportW, viewportH, g.cfg.Playfield)
	g.runtime.ViewportW = viewportW
	g.runtime.ViewportH = viewportH
	if next.Ratio == g.scale.Ratio {
		g.scale = next
		return
	}
	g.session.Rescale(next.Ratio / g.scale.Ratio)
	g.scale = next
}

// State returns a snapshot of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:      g.phase,
		HostPaused: g.hostPaused,
		Score:      g.session.Score(),
		Speed:      g.session.Ramp.Multiplier(),
		RunTimeMs:  g.session.RunTimeMs(),
	}
}

// Scale returns the current scale context.
func (g *Game) Scale() ScaleContext {
	return g.scale
}

// Session returns the live session. Callers must treat it as read-only.
func (g *Game) Session() *Session {
	return g.session
}

// RestartReady reports whether a local restart would be accepted now.
func (g *Game) RestartReady() bool {
	return g.phase == core.PhaseGameOver && !g.cfg.Session.HostReset && g.cooldown <= 0
}
