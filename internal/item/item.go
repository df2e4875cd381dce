// Package item defines the inbox item entity plus the pure view logic
// (filtering, day grouping, status derivation) computed from a collection
// of items.
package item

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies how an item was captured. Fixed at creation.
type Kind string

const (
	KindVoiceNote Kind = "voiceNote"
	KindPhoto     Kind = "photo"
	KindScan      Kind = "scan"
	KindFile      Kind = "file"
)

// Status describes where an item sits in the processing pipeline.
// It is derived, never stored.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusProcessed  Status = "processed"
)

// Entity is one captured inbox item.
type Entity struct {
	ID            string
	Kind          Kind
	CreatedAt     time.Time
	Transcription *string
	PreviewText   string
	Processed     bool
	Archived      bool
	RecordID      *string
	Payload       []byte // raw capture bytes, opaque to the state machine
}

// New creates an unprocessed, unarchived entity with a fresh id.
func New(kind Kind, now time.Time, payload []byte, preview string) Entity {
	return Entity{
		ID:          uuid.NewString(),
		Kind:        kind,
		CreatedAt:   now,
		PreviewText: preview,
		Payload:     payload,
	}
}

// Status derives the pipeline status: processed wins, then a completed
// transcription means ready, otherwise the item is still processing.
func (e Entity) Status() Status {
	switch {
	case e.Processed:
		return StatusProcessed
	case e.Transcription != nil:
		return StatusReady
	default:
		return StatusProcessing
	}
}

// Text returns the best display text for the item: transcription if
// available, else preview text.
func (e Entity) Text() string {
	if e.Transcription != nil {
		return *e.Transcription
	}
	return e.PreviewText
}

// Descriptor is a semantic presentation hint. The view layer maps the icon
// identifier to whatever glyph set it renders with.
type Descriptor struct {
	Label string
	Icon  string
}

var kindDescriptors = map[Kind]Descriptor{
	KindVoiceNote: {Label: "Voice Note", Icon: "mic"},
	KindPhoto:     {Label: "Photo", Icon: "camera"},
	KindScan:      {Label: "Scan", Icon: "scanner"},
	KindFile:      {Label: "File", Icon: "file"},
}

// Descriptor returns the presentation descriptor for the kind.
func (k Kind) Descriptor() Descriptor {
	if d, ok := kindDescriptors[k]; ok {
		return d
	}
	return Descriptor{Label: string(k), Icon: "file"}
}
