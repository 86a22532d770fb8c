package bridge

import (
	"bufio"
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"
)

func TestSocketHostRoundTrip(t *testing.T) {
	b := New(8, nil)
	path := filepath.Join(t.TempDir(), "dino.sock")

	host, err := ListenSocket(path, b, nil)
	if err != nil {
		t.Fatalf("ListenSocket() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- host.Serve(ctx) }()

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("PAUSE\nnonsense\n")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	reader := bufio.NewReader(conn)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatalf("expected an error line for the bad message: %v", err)
	}
	if len(line) < 5 || line[:5] != "ERROR" {
		t.Errorf("expected ERROR reply, got %q", line)
	}

	cmds := b.Drain()
	if len(cmds) != 1 || cmds[0] != CommandPause {
		t.Fatalf("Drain() = %v, expected [PAUSE]", cmds)
	}

	host.Broadcast(EventGameOver)
	line, err = reader.ReadString('\n')
	if err != nil {
		t.Fatalf("ReadString() failed: %v", err)
	}
	if line != "GAME_OVER\n" {
		t.Errorf("broadcast line = %q, expected GAME_OVER", line)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not stop after cancel")
	}
}

func TestSocketHostBroadcastIgnoresStuckHost(t *testing.T) {
	b := New(8, nil)
	path := filepath.Join(t.TempDir(), "dino.sock")

	host, err := ListenSocket(path, b, nil)
	if err != nil {
		t.Fatalf("ListenSocket() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- host.Serve(ctx) }()

	// Never read from this connection
	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	// Wait until the host has registered the connection
	deadline := time.Now().Add(2 * time.Second)
	for {
		host.mu.Lock()
		n := len(host.conns)
		host.mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("connection was never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	sent := make(chan struct{})
	go func() {
		// Far more than any socket buffer holds
		for i := 0; i < 100000; i++ {
			host.Broadcast(EventGameOver)
		}
		close(sent)
	}()

	select {
	case <-sent:
	case <-time.After(3 * time.Second):
		t.Fatal("Broadcast blocked on a host that never reads")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not stop after cancel")
	}
}

func TestSocketHostRejectsConnectionsAfterClose(t *testing.T) {
	b := New(8, nil)
	host, err := ListenSocket(filepath.Join(t.TempDir(), "dino.sock"), b, nil)
	if err != nil {
		t.Fatalf("ListenSocket() failed: %v", err)
	}
	if err := host.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	server, client := net.Pipe()
	defer client.Close()

	if _, ok := host.track(server); ok {
		t.Fatal("track() accepted a connection after Close")
	}
	if len(host.conns) != 0 {
		t.Errorf("conns = %d after Close, expected 0", len(host.conns))
	}

	// The late connection must already be closed
	client.SetReadDeadline(time.Now().Add(time.Second))
	if _, err := client.Read(make([]byte, 1)); err == nil {
		t.Error("late connection should be closed")
	}
}
