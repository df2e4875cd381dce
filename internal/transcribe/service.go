// Package transcribe defines the transcription service the inbox pipeline
// calls to turn raw capture payloads into text.
package transcribe

import (
	"context"
	"fmt"
	"time"

	"github.com/jwulff/intake/internal/item"
	"github.com/jwulff/intake/internal/recognizer"
)

// Service converts a raw capture payload into text. Implementations may be
// slow; callers bound each call with a context deadline.
type Service interface {
	Transcribe(ctx context.Context, itemID string, kind item.Kind, payload []byte) (string, error)
}

// Simulated is a recognition service that waits a fixed latency and returns
// canned text. Used in demo mode and tests.
type Simulated struct {
	Latency time.Duration
	// Text overrides the canned output when set.
	Text func(kind item.Kind, payload []byte) string
}

// Transcribe waits for the configured latency, honoring cancellation.
func (s Simulated) Transcribe(ctx context.Context, itemID string, kind item.Kind, payload []byte) (string, error) {
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	if s.Text != nil {
		return s.Text(kind, payload), nil
	}
	return cannedText(kind), nil
}

func cannedText(kind item.Kind) string {
	switch kind {
	case item.KindScan:
		return "Text extracted from the scanned document."
	default:
		return "This is a transcription of your voice note."
	}
}

// Daemon sends payloads to a local recognition daemon over its socket.
type Daemon struct {
	Client *recognizer.Client
	Locale string
}

// Transcribe performs one request round trip against the daemon.
func (d Daemon) Transcribe(ctx context.Context, itemID string, kind item.Kind, payload []byte) (string, error) {
	resp, err := d.Client.Send(ctx, recognizer.Request{
		Cmd:     "transcribe",
		ItemID:  itemID,
		Kind:    string(kind),
		Payload: payload,
		Locale:  d.Locale,
	})
	if err != nil {
		return "", err
	}
	if !resp.OK {
		return "", fmt.Errorf("recognizer: %s", resp.Error)
	}
	return resp.Text, nil
}
