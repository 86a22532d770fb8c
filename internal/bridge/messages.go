// Package bridge connects the game core to its host.
// Hosts send typed commands (pause, resume, reset, start) and receive typed
// events (game started, game over). Raw string messages are validated here,
// at the boundary, and never reach the simulation.
package bridge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMessage is returned for host messages that are not a known command.
var ErrUnknownMessage = errors.New("bridge: unknown message")

// Command is a host-to-game instruction.
type Command int

const (
	CommandPause Command = iota + 1
	CommandResume
	CommandReset
	CommandStart
)

// String returns the wire form of the command.
func (c Command) String() string {
	switch c {
	case CommandPause:
		return "PAUSE"
	case CommandResume:
		return "RESUME"
	case CommandReset:
		return "RESET"
	case CommandStart:
		return "START"
	default:
		return "UNKNOWN"
	}
}

// ParseCommand converts a raw host message to a Command.
// Surrounding whitespace and letter case are ignored.
func ParseCommand(msg string) (Command, error) {
	switch strings.ToUpper(strings.TrimSpace(msg)) {
	case "PAUSE":
		return CommandPause, nil
	case "RESUME":
		return CommandResume, nil
	case "RESET":
		return CommandReset, nil
	case "START":
		return CommandStart, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMessage, msg)
	}
}

// Event is a game-to-host notification.
type Event int

const (
	EventGameStarted Event = iota + 1
	EventGameOver
)

// String returns the wire form of the event.
func (e Event) String() string {
	switch e {
	case EventGameStarted:
		return "GAME_STARTED"
	case EventGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}
