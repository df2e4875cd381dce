package app

import (
	"github.com/jwulff/intake/internal/db"
	"github.com/jwulff/intake/internal/item"
)

// ItemsLoadedMsg carries the result of a load effect. Gen identifies which
// in-flight load produced it; stale generations are discarded.
type ItemsLoadedMsg struct {
	Gen   int
	Items []item.Entity
	Err   error
}

// RecordTickMsg increments the recording timer once per second. Gen ties the
// tick to one recording session; ticks from a stopped session are no-ops.
type RecordTickMsg struct {
	Gen int
}

// VoiceRecordingCompletedMsg delivers the raw audio of a finished recording.
type VoiceRecordingCompletedMsg struct {
	Payload []byte
}

// PhotoCapturedMsg delivers a captured photo and its caption.
type PhotoCapturedMsg struct {
	Payload []byte
	Caption string
}

// DocumentScannedMsg delivers a scanned document.
type DocumentScannedMsg struct {
	Payload []byte
}

// TranscriptionDoneMsg carries the outcome of one transcription effect.
// A result for an id no longer in the collection is discarded.
type TranscriptionDoneMsg struct {
	ItemID string
	Text   string
	Err    error
}

// ConvertDoneMsg carries the outcome of converting an item into a finished
// record.
type ConvertDoneMsg struct {
	ItemID string
	Record db.Record
	Err    error
}

// opDoneMsg reports a best-effort persistence write. Failures are logged,
// never surfaced.
type opDoneMsg struct {
	op  string
	err error
}

// ClearTransientErrorMsg clears a transient error after a timeout.
type ClearTransientErrorMsg struct{}

// DetailAction identifies an action addressed to the open detail session.
type DetailAction int

const (
	DetailTogglePlayback DetailAction = iota
	DetailSeek
	DetailConvert
	DetailArchive
	DetailDelete
	DetailDismiss
)

// DetailMsg wraps an action for the detail sub-machine. It is meaningful
// only while a detail session is open; the parent model interprets terminal
// actions (convert, archive, delete, dismiss) against the collection.
type DetailMsg struct {
	Action DetailAction
	Seek   float64 // target progress for DetailSeek
}
