package bridge

import (
	"github.com/charmbracelet/log"
)

// DefaultBuffer is the default capacity of both bridge channels.
const DefaultBuffer = 16

// Bridge carries commands from hosts to the frame driver and events from
// the game core back to the host. Both directions are buffered and
// non-blocking: a full buffer drops the message with a warning, since a
// stalled frame is worse than a lost notification.
type Bridge struct {
	commands chan Command
	events   chan Event
	logger   *log.Logger
}

// New creates a bridge with the given buffer size for each direction.
// A nil logger discards warnings.
func New(buffer int, logger *log.Logger) *Bridge {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Bridge{
		commands: make(chan Command, buffer),
		events:   make(chan Event, buffer),
		logger:   logger,
	}
}

// Send queues a host command. Returns false if the command was dropped.
// Safe for concurrent use by multiple hosts.
func (b *Bridge) Send(cmd Command) bool {
	select {
	case b.commands <- cmd:
		return true
	default:
		b.warn("command dropped, buffer full", "command", cmd)
		return false
	}
}

// SendRaw validates a raw host message and queues it.
func (b *Bridge) SendRaw(msg string) error {
	cmd, err := ParseCommand(msg)
	if err != nil {
		return err
	}
	b.Send(cmd)
	return nil
}

// Drain returns all pending commands in arrival order.
// The frame driver calls it once at the start of every frame.
func (b *Bridge) Drain() []Command {
	var out []Command
	for {
		select {
		case cmd := <-b.commands:
			out = append(out, cmd)
		default:
			return out
		}
	}
}

// Emit publishes a game event. It never blocks.
func (b *Bridge) Emit(ev Event) {
	select {
	case b.events <- ev:
	default:
		b.warn("event dropped, buffer full", "event", ev)
	}
}

// DrainEvents returns all pending events in emission order.
// The frame driver calls it after every frame and dispatches them.
func (b *Bridge) DrainEvents() []Event {
	var out []Event
	for {
		select {
		case ev := <-b.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func (b *Bridge) warn(msg string, keyvals ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, keyvals...)
	}
}
