package recognizer

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// startMockDaemon creates a Unix socket that accepts one connection,
// reads a request, and writes back a canned response.
func startMockDaemon(t *testing.T, response Response) (string, func()) {
	t.Helper()

	dir := t.TempDir()
	sockPath := filepath.Join(dir, "test.sock")

	ln, err := net.Listen("unix", sockPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		// Read one line (the request)
		buf := make([]byte, 4096)
		if _, err := conn.Read(buf); err != nil {
			return
		}

		// Write response
		data, _ := json.Marshal(response)
		data = append(data, '\n')
		conn.Write(data)
	}()

	return sockPath, func() {
		ln.Close()
		os.Remove(sockPath)
	}
}

func TestClientSend(t *testing.T) {
	resp := Response{
		OK:     true,
		ItemID: "item-1",
		Text:   "recognized text",
	}

	sockPath, cleanup := startMockDaemon(t, resp)
	defer cleanup()

	client, err := Connect(sockPath)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	got, err := client.Send(context.Background(), Request{
		Cmd:     "transcribe",
		ItemID:  "item-1",
		Kind:    "voiceNote",
		Payload: []byte{0x01, 0x02},
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if !got.OK {
		t.Error("ok = false, want true")
	}
	if got.Text != "recognized text" {
		t.Errorf("text = %q, want %q", got.Text, "recognized text")
	}
	if got.ItemID != "item-1" {
		t.Errorf("itemId = %q, want %q", got.ItemID, "item-1")
	}
}

func TestClientConnectFailure(t *testing.T) {
	_, err := Connect("/nonexistent/path/recognizer.sock")
	if err == nil {
		t.Error("expected error connecting to nonexistent socket")
	}
}

func TestClientSendDeadline(t *testing.T) {
	// A daemon that accepts but never responds.
	dir := t.TempDir()
	sockPath := filepath.Join(dir, "test.sock")

	ln, err := net.Listen("unix", sockPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		conn.Read(buf)
		time.Sleep(5 * time.Second)
	}()

	client, err := Connect(sockPath)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := client.Send(ctx, Request{Cmd: "transcribe"}); err == nil {
		t.Error("expected deadline error")
	}
}
