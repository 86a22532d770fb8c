package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The viewport size drives the scale ratio; the seed drives obstacle spawning.
type RuntimeConfig struct {
	ViewportW int   // Host viewport width (cells or pixels, depending on the platform)
	ViewportH int   // Host viewport height
	FPS       int   // Frame driver rate for platforms that schedule their own ticks
	Seed      int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW: 80,
		ViewportH: 24,
		FPS:       60,
		Seed:      0,
	}
}

// Phase is the life-cycle phase of a game session.
type Phase int

const (
	PhaseWaitingToStart Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaitingToStart:
		return "waiting"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is a read-only snapshot of the game returned after every frame.
type GameState struct {
	Phase      Phase   // Current life-cycle phase
	HostPaused bool    // Whether the host has halted the frame driver
	Score      int     // Distance-based score for the current session
	Speed      float64 // Current global speed multiplier
	RunTimeMs  float64 // Simulated running time of the current session
}

// StepResult is returned by Game.Frame and Game.Step.
type StepResult struct {
	State   GameState
	Stepped bool // False when the frame was a no-op (paused, baseline, frozen)
}
