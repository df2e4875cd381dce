// Package recognizer provides the client and protocol types for communicating
// with a local recognition daemon over a Unix socket using NDJSON. The daemon
// performs speech-to-text and OCR on raw capture payloads.
package recognizer

// Request is sent from the client to the daemon.
type Request struct {
	Cmd     string `json:"cmd"`
	ItemID  string `json:"itemId,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Payload []byte `json:"payload,omitempty"`
	Locale  string `json:"locale,omitempty"`
}

// Response is returned by the daemon after processing a request.
type Response struct {
	OK     bool   `json:"ok"`
	ItemID string `json:"itemId,omitempty"`
	Text   string `json:"text,omitempty"`
	Error  string `json:"error,omitempty"`
}
