package websocket

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func waitForConnected(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ConnectedUsers() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("hub never reached %d connected users", want)
}

func TestTrySendAfterClose(t *testing.T) {
	c := &Client{userID: 1, send: make(chan []byte, 1)}

	if !c.trySend([]byte("a")) {
		t.Fatal("send to open client failed")
	}

	c.closeSend()
	c.closeSend() // second close must be a no-op

	if c.trySend([]byte("b")) {
		t.Error("send to closed client should report failure")
	}
}

func TestTrySendFullBuffer(t *testing.T) {
	c := &Client{userID: 1, send: make(chan []byte, 1)}

	if !c.trySend([]byte("a")) {
		t.Fatal("first send failed")
	}
	if c.trySend([]byte("b")) {
		t.Error("send to full buffer should drop, not block")
	}
}

func TestReconnectReplacesClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := &Client{hub: hub, userID: 1, send: make(chan []byte, 1)}
	hub.register <- first
	waitForConnected(t, hub, 1)

	second := &Client{hub: hub, userID: 1, send: make(chan []byte, 1)}
	hub.register <- second
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		first.mu.Lock()
		closed := first.closed
		first.mu.Unlock()
		if closed {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if first.trySend([]byte("stale")) {
		t.Error("replaced client accepted a send")
	}
	if !hub.SendToUser(1, map[string]string{"text": "hello"}) {
		t.Error("push to the replacement connection failed")
	}
	if hub.ConnectedUsers() != 1 {
		t.Errorf("expected 1 connected user, got %d", hub.ConnectedUsers())
	}
}

func TestSendToUserDuringReconnect(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Unbuffered channel with no reader: every push races the replacement
	// close instead of landing in a buffer.
	first := &Client{hub: hub, userID: 1, send: make(chan []byte)}
	hub.register <- first
	waitForConnected(t, hub, 1)

	payload := map[string]string{"text": strings.Repeat("x", 4096)}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			hub.SendToUser(1, payload)
		}
	}()

	for i := 0; i < 20; i++ {
		replacement := &Client{hub: hub, userID: 1, send: make(chan []byte)}
		hub.register <- replacement
	}

	// A send racing a close panics the whole test process, so reaching the
	// wait is the assertion.
	wg.Wait()
}

func TestSendToUnknownUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	if hub.SendToUser(42, map[string]string{"text": "nobody home"}) {
		t.Error("push to unconnected user should report failure")
	}
}
