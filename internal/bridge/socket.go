package bridge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// outboxSize is how many lines may wait for one host before it is
// considered stuck and disconnected.
const outboxSize = 32

// writeTimeout bounds a single write to a host.
const writeTimeout = 2 * time.Second

// SocketHost exposes a Bridge on a unix socket so an embedding shell can
// drive the game. Each connection sends one command per line and receives
// every event as one line. Writes happen on a per-connection goroutine, so
// a host that stops reading never stalls the caller of Broadcast.
type SocketHost struct {
	path   string
	ln     net.Listener
	bridge *Bridge
	logger *log.Logger

	mu     sync.Mutex
	conns  map[net.Conn]chan string
	closed bool
	wg     sync.WaitGroup
}

// ListenSocket creates the unix socket at path, replacing a stale one.
func ListenSocket(path string, b *Bridge, logger *log.Logger) (*SocketHost, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// A leftover socket file from a crashed run blocks Listen
	if fi, err := os.Stat(path); err == nil && fi.Mode()&os.ModeSocket != 0 {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("bridge: cannot remove stale socket %s: %w", path, err)
		}
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("bridge: cannot listen on %s: %w", path, err)
	}

	return &SocketHost{
		path:   path,
		ln:     ln,
		bridge: b,
		logger: logger,
		conns:  make(map[net.Conn]chan string),
	}, nil
}

// Addr returns the socket path.
func (h *SocketHost) Addr() string {
	return h.path
}

// Serve accepts connections until ctx is cancelled or the host is closed.
func (h *SocketHost) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		h.Close()
	}()

	for {
		conn, err := h.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				h.wg.Wait()
				return nil
			}
			return fmt.Errorf("bridge: accept failed: %w", err)
		}

		out, ok := h.track(conn)
		if !ok {
			continue
		}

		h.wg.Add(2)
		go h.handle(conn)
		go h.write(conn, out)
	}
}

// track registers a new connection. A connection that arrives after Close
// is closed at once and reported as not tracked.
func (h *SocketHost) track(conn net.Conn) (chan string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		conn.Close()
		return nil, false
	}
	out := make(chan string, outboxSize)
	h.conns[conn] = out
	return out, true
}

// handle reads commands from one connection until it closes.
func (h *SocketHost) handle(conn net.Conn) {
	defer h.wg.Done()
	defer h.drop(conn)

	h.logger.Debug("host connected")
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := h.bridge.SendRaw(line); err != nil {
			h.logger.Warn("rejected host message", "error", err)
			h.mu.Lock()
			h.enqueue(conn, fmt.Sprintf("ERROR %s\n", err))
			h.mu.Unlock()
		}
	}
	h.logger.Debug("host disconnected")
}

// write drains the outbox of one connection. It exits when the outbox is
// closed by drop.
func (h *SocketHost) write(conn net.Conn, out <-chan string) {
	defer h.wg.Done()

	for line := range out {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if _, err := io.WriteString(conn, line); err != nil {
			h.logger.Warn("host write failed", "error", err)
			// Unblocks the reader, which drops the connection
			conn.Close()
		}
	}
}

// enqueue hands a line to the connection's writer. A full outbox means the
// host stopped reading, so it is disconnected. Callers hold h.mu.
func (h *SocketHost) enqueue(conn net.Conn, line string) {
	out, ok := h.conns[conn]
	if !ok {
		return
	}
	select {
	case out <- line:
	default:
		h.logger.Warn("host not reading, disconnecting")
		conn.Close()
	}
}

// Broadcast queues the event for every connected host and never blocks.
// Delivery is best-effort.
func (h *SocketHost) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := ev.String() + "\n"
	for conn := range h.conns {
		h.enqueue(conn, line)
	}
}

func (h *SocketHost) drop(conn net.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	if out, ok := h.conns[conn]; ok {
		close(out)
		delete(h.conns, conn)
	}
}

// Close stops accepting, disconnects all hosts and removes the socket file.
func (h *SocketHost) Close() error {
	h.mu.Lock()
	h.closed = true
	for conn := range h.conns {
		conn.Close()
	}
	h.mu.Unlock()

	err := h.ln.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}
