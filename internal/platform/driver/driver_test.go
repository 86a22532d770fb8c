package driver

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/dino-gate/internal/bridge"
	"github.com/vovakirdan/dino-gate/internal/config"
	"github.com/vovakirdan/dino-gate/internal/core"
	"github.com/vovakirdan/dino-gate/internal/storage"
)

type recordingForwarder struct {
	events []bridge.Event
}

func (r *recordingForwarder) Broadcast(ev bridge.Event) {
	r.events = append(r.events, ev)
}

func newTestDriver(t *testing.T, store *storage.Store) (*Driver, *recordingForwarder) {
	t.Helper()
	fwd := &recordingForwarder{}
	d := New(Options{
		Config:     config.DefaultDinoConfig(),
		Runtime:    core.RuntimeConfig{ViewportW: 800, ViewportH: 200, FPS: 60, Seed: 11},
		Store:      store,
		SongID:     5,
		Forwarders: []EventForwarder{fwd},
	})
	return d, fwd
}

// runUntilOver advances frames without jumping until the first crash.
func runUntilOver(t *testing.T, d *Driver, now time.Time) time.Time {
	t.Helper()
	for i := 0; i < 2000 && d.State().Phase != core.PhaseGameOver; i++ {
		now = now.Add(16 * time.Millisecond)
		d.Frame(now, core.Intents{})
	}
	if d.State().Phase != core.PhaseGameOver {
		t.Fatal("run never ended")
	}
	return now
}

func TestDriverAppliesCommandsBeforeStep(t *testing.T) {
	d, fwd := newTestDriver(t, nil)
	now := time.Now()

	d.Send(bridge.CommandStart)
	d.Frame(now, core.Intents{})

	if d.State().Phase != core.PhaseRunning {
		t.Fatalf("Phase = %v, expected running", d.State().Phase)
	}
	if len(fwd.events) != 1 || fwd.events[0] != bridge.EventGameStarted {
		t.Errorf("forwarded %v, expected [GAME_STARTED]", fwd.events)
	}
}

func TestDriverTogglePause(t *testing.T) {
	d, _ := newTestDriver(t, nil)
	now := time.Now()

	d.TogglePause()
	d.Frame(now, core.Intents{})
	if !d.State().HostPaused {
		t.Fatal("first toggle did not pause")
	}

	d.TogglePause()
	d.Frame(now.Add(16*time.Millisecond), core.Intents{})
	if d.State().HostPaused {
		t.Error("second toggle did not resume")
	}
}

func TestDriverSavesRunAtGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	d, fwd := newTestDriver(t, store)
	now := time.Now()
	d.Send(bridge.CommandStart)
	d.Frame(now, core.Intents{})
	runUntilOver(t, d, now)

	runs, err := store.TopRuns(5, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	st := d.State()
	if runs[0].Score != st.Score || runs[0].DurationMs == 0 {
		t.Errorf("saved %+v, expected score %d and a duration", runs[0], st.Score)
	}
	if d.Best() != st.Score {
		t.Errorf("Best() = %d, expected %d", d.Best(), st.Score)
	}
	if last := fwd.events[len(fwd.events)-1]; last != bridge.EventGameOver {
		t.Errorf("last forwarded event = %v, expected GAME_OVER", last)
	}
}

func TestDriverLoadsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{SongID: 5, Score: 420, DurationMs: 9000, PeakSpeed: 1.4}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(storage.Run{SongID: 6, Score: 999, DurationMs: 9000, PeakSpeed: 1.4}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	d, _ := newTestDriver(t, store)
	if d.Best() != 420 {
		t.Errorf("Best() = %d, expected 420", d.Best())
	}
}

func TestDriverWithoutStoreOrMusic(t *testing.T) {
	d, fwd := newTestDriver(t, nil)
	now := time.Now()

	d.Send(bridge.CommandStart)
	d.Frame(now, core.Intents{})
	runUntilOver(t, d, now)
	d.Send(bridge.CommandReset)
	d.Frame(now.Add(time.Hour), core.Intents{})
	d.Close()

	if d.State().Phase != core.PhaseWaitingToStart {
		t.Errorf("Phase = %v after reset, expected waiting", d.State().Phase)
	}
	if len(fwd.events) != 2 {
		t.Errorf("forwarded %v, expected start and game over", fwd.events)
	}
}
