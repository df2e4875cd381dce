package recognizer

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestRequestMarshalTranscribe(t *testing.T) {
	req := Request{
		Cmd:     "transcribe",
		ItemID:  "item-1",
		Kind:    "voiceNote",
		Payload: []byte{0xde, 0xad, 0xbe, 0xef},
		Locale:  "en_US",
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Request
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Cmd != "transcribe" {
		t.Errorf("cmd = %q, want %q", got.Cmd, "transcribe")
	}
	if got.ItemID != "item-1" {
		t.Errorf("itemId = %q, want %q", got.ItemID, "item-1")
	}
	if got.Kind != "voiceNote" {
		t.Errorf("kind = %q, want %q", got.Kind, "voiceNote")
	}
	if !bytes.Equal(got.Payload, req.Payload) {
		t.Errorf("payload = %v, want %v", got.Payload, req.Payload)
	}
}

func TestRequestOmitsEmptyFields(t *testing.T) {
	req := Request{Cmd: "ping"}
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}

	for _, field := range []string{"itemId", "kind", "payload", "locale"} {
		if _, ok := raw[field]; ok {
			t.Errorf("ping request should omit %s", field)
		}
	}
}

func TestResponseError(t *testing.T) {
	data := []byte(`{"ok":false,"error":"unsupported audio format"}`)

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.OK {
		t.Error("ok = true, want false")
	}
	if resp.Error != "unsupported audio format" {
		t.Errorf("error = %q", resp.Error)
	}
}
