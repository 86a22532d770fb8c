package core

// Intents is the input port read by the simulation once per step.
// An adapter layer outside the core keeps it current; the core never
// subscribes to input sources itself.
type Intents struct {
	// Jump is level-sensitive: true for as long as the jump input is held.
	Jump bool
	// Restart is a one-shot request to start a new session after game over.
	Restart bool
}

// JumpEdge classifies how the jump intent changed between two steps.
type JumpEdge int

const (
	EdgeNone JumpEdge = iota
	EdgePressed
	EdgeReleased
)

// Edge compares the jump intent against the previous step's intent.
func (in Intents) Edge(prev Intents) JumpEdge {
	switch {
	case in.Jump && !prev.Jump:
		return EdgePressed
	case !in.Jump && prev.Jump:
		return EdgeReleased
	default:
		return EdgeNone
	}
}
