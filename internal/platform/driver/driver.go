// Package driver runs frames of the dino game for a platform frontend.
// It applies queued host commands before each step, dispatches the events
// the step produced, and keeps the song track and run history in step with
// the game's life-cycle.
package driver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gate/internal/audio"
	"github.com/vovakirdan/dino-gate/internal/bridge"
	"github.com/vovakirdan/dino-gate/internal/config"
	"github.com/vovakirdan/dino-gate/internal/core"
	"github.com/vovakirdan/dino-gate/internal/games/dino"
	"github.com/vovakirdan/dino-gate/internal/storage"
)

// EventForwarder receives every game event after the frame that produced it.
type EventForwarder interface {
	Broadcast(ev bridge.Event)
}

// Options configures a driver.
type Options struct {
	Config     config.DinoConfig
	Runtime    core.RuntimeConfig // Viewport in the frontend's own units
	Bridge     *bridge.Bridge     // Created when nil
	Music      *audio.Music       // Optional
	Store      *storage.Store     // Optional
	SongID     int
	Forwarders []EventForwarder
	Logger     *log.Logger
}

// Driver owns one game and everything that reacts to it.
type Driver struct {
	game       *dino.Game
	bridge     *bridge.Bridge
	music      *audio.Music
	store      *storage.Store
	songID     int
	best       int
	forwarders []EventForwarder
	state      core.GameState
	logger     *log.Logger
}

// New creates a driver and its game.
func New(opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := opts.Bridge
	if b == nil {
		b = bridge.New(bridge.DefaultBuffer, logger)
	}

	d := &Driver{
		game:       dino.New(opts.Config, opts.Runtime, b, logger),
		bridge:     b,
		music:      opts.Music,
		store:      opts.Store,
		songID:     opts.SongID,
		forwarders: opts.Forwarders,
		logger:     logger,
	}
	d.state = d.game.State()

	if d.store != nil {
		if best, err := d.store.BestScore(d.songID); err == nil {
			d.best = best
		} else {
			d.logger.Warn("cannot read best score", "err", err)
		}
	}
	return d
}

// Frame runs one frame: host commands first, then one step, then events.
func (d *Driver) Frame(now time.Time, in core.Intents) core.GameState {
	for _, cmd := range d.bridge.Drain() {
		d.apply(cmd)
	}

	d.state = d.game.Frame(now, in).State

	for _, ev := range d.bridge.DrainEvents() {
		d.dispatch(ev)
	}
	return d.state
}

// apply forwards a host command to the game and keeps the music in step.
func (d *Driver) apply(cmd bridge.Command) {
	d.logger.Debug("host command", "command", cmd)
	d.game.HandleCommand(cmd)
	switch cmd {
	case bridge.CommandPause:
		d.music.Pause()
	case bridge.CommandResume:
		if d.game.State().Phase == core.PhaseRunning {
			d.music.Resume()
		}
	case bridge.CommandReset:
		d.music.Stop()
	}
}

// dispatch handles one game event.
func (d *Driver) dispatch(ev bridge.Event) {
	switch ev {
	case bridge.EventGameStarted:
		if err := d.music.Play(); err != nil {
			d.logger.Warn("cannot restart music", "err", err)
		}
	case bridge.EventGameOver:
		d.music.Pause()
		d.saveRun()
	}
	for _, f := range d.forwarders {
		f.Broadcast(ev)
	}
}

// saveRun records the finished session. Storage failures never stop play.
func (d *Driver) saveRun() {
	st := d.game.State()
	if st.Score > d.best {
		d.best = st.Score
	}
	if d.store == nil {
		return
	}
	run := storage.Run{
		SongID:     d.songID,
		Score:      st.Score,
		DurationMs: int64(st.RunTimeMs),
		PeakSpeed:  st.Speed,
	}
	if _, err := d.store.SaveRun(run); err != nil {
		d.logger.Warn("cannot save run", "err", err)
		return
	}
	d.logger.Info("run saved", "song", d.songID, "score", st.Score)
}

// TogglePause asks the game to pause or resume through the bridge, so the
// change lands between frames like any host command.
func (d *Driver) TogglePause() {
	if d.state.HostPaused {
		d.bridge.Send(bridge.CommandResume)
	} else {
		d.bridge.Send(bridge.CommandPause)
	}
}

// Send queues a host command for the next frame.
func (d *Driver) Send(cmd bridge.Command) {
	d.bridge.Send(cmd)
}

// Resize rescales the game to a new viewport.
func (d *Driver) Resize(w, h int) {
	d.game.Resize(w, h)
}

// Close stops the music.
func (d *Driver) Close() {
	d.music.Stop()
}

// Game returns the driven game.
func (d *Driver) Game() *dino.Game { return d.game }

// State returns the state after the last frame.
func (d *Driver) State() core.GameState { return d.state }

// Best returns the best score for the song, including this sitting.
func (d *Driver) Best() int { return d.best }

// SongID returns the song the runs are recorded under.
func (d *Driver) SongID() int { return d.songID }
