package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/intake/internal/db"
	"github.com/jwulff/intake/internal/item"
	"github.com/jwulff/intake/internal/transcribe"
	"github.com/jwulff/intake/internal/ui"
)

// Store is the persistence collaborator. Writes are best-effort: the
// in-memory collection is authoritative for the UI, and write failures are
// logged, not surfaced.
type Store interface {
	LoadItems() ([]item.Entity, error)
	InsertItem(e item.Entity) error
	SetTranscription(id, text string) error
	SetArchived(id string, archived bool) error
	DeleteItem(id string) error
	CreateRecord(e item.Entity) (db.Record, error)
}

// Model is the root bubbletea model for the intake TUI. It owns the item
// collection, the capture controller sub-state, and the detail presentation
// slot. All state mutation happens inside Update; background work reports
// back as messages.
type Model struct {
	store       Store
	transcriber transcribe.Service
	timeout     time.Duration
	logger      *slog.Logger
	now         func() time.Time

	// Collection state
	items      []item.Entity
	filter     item.Filter
	loading    bool
	loadGen    int
	cursor     int
	converting map[string]bool

	// Capture controller
	showCaptureOptions bool
	recording          bool
	recordingDuration  int
	recordGen          int

	// Detail presentation slot; nil when no item is selected
	detail *detailState

	// UI state
	spin   spinner.Model
	width  int
	height int

	errorMessage   string
	errorTransient bool
}

// New creates a Model wired to its collaborators. A nil logger discards.
func New(store Store, transcriber transcribe.Service, timeout time.Duration, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.SpinnerStyle

	return Model{
		store:       store,
		transcriber: transcriber,
		timeout:     timeout,
		logger:      logger,
		now:         time.Now,
		filter:      item.FilterAll,
		loading:     true,
		converting:  make(map[string]bool),
		spin:        sp,
	}
}

// Init launches the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadItemsCmd(m.store, m.loadGen), m.spin.Tick)
}

// loadItemsCmd fetches the persisted collection. Gen lets Update discard
// results from superseded loads.
func loadItemsCmd(store Store, gen int) tea.Cmd {
	return func() tea.Msg {
		items, err := store.LoadItems()
		return ItemsLoadedMsg{Gen: gen, Items: items, Err: err}
	}
}

// recordTickCmd fires one second from now, tagged with the recording
// generation so stale ticks are ignored after stop.
func recordTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return RecordTickMsg{Gen: gen}
	})
}

// transcribeCmd runs one transcription, bounded by the configured timeout.
func transcribeCmd(svc transcribe.Service, timeout time.Duration, e item.Entity) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, err := svc.Transcribe(ctx, e.ID, e.Kind, e.Payload)
		return TranscriptionDoneMsg{ItemID: e.ID, Text: text, Err: err}
	}
}

// convertCmd creates the downstream record for an item.
func convertCmd(store Store, e item.Entity) tea.Cmd {
	return func() tea.Msg {
		rec, err := store.CreateRecord(e)
		return ConvertDoneMsg{ItemID: e.ID, Record: rec, Err: err}
	}
}

func insertItemCmd(store Store, e item.Entity) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: "insert item", err: store.InsertItem(e)}
	}
}

func setTranscriptionCmd(store Store, id, text string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: "set transcription", err: store.SetTranscription(id, text)}
	}
}

func setArchivedCmd(store Store, id string, archived bool) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: "set archived", err: store.SetArchived(id, archived)}
	}
}

func deleteItemCmd(store Store, id string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: "delete item", err: store.DeleteItem(id)}
	}
}

// clearTransientErrorCmd fires after a delay to clear transient errors.
func clearTransientErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearTransientErrorMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ItemsLoadedMsg:
		if msg.Gen != m.loadGen {
			// A newer load is in flight; this snapshot already lost.
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.logger.Error("load items", "err", msg.Err)
			return m.transientError("load failed: " + msg.Err.Error())
		}
		m.items = msg.Items
		m.clampCursor()
		return m, nil

	case RecordTickMsg:
		if !m.recording || msg.Gen != m.recordGen {
			return m, nil
		}
		m.recordingDuration++
		return m, recordTickCmd(msg.Gen)

	case VoiceRecordingCompletedMsg:
		return m.insertCapture(item.KindVoiceNote, msg.Payload, "")

	case PhotoCapturedMsg:
		return m.insertCapture(item.KindPhoto, msg.Payload, msg.Caption)

	case DocumentScannedMsg:
		return m.insertCapture(item.KindScan, msg.Payload, "")

	case TranscriptionDoneMsg:
		i := m.indexOf(msg.ItemID)
		if i < 0 {
			// Item was deleted while transcribing; the late outcome is
			// discarded whether it succeeded or not.
			return m, nil
		}
		if msg.Err != nil {
			m.logger.Warn("transcription failed", "item", msg.ItemID, "err", msg.Err)
			return m.transientError("transcription failed")
		}
		text := msg.Text
		m.items[i].Transcription = &text
		if m.detail != nil && m.detail.item.ID == msg.ItemID {
			m.detail.item.Transcription = &text
		}
		return m, setTranscriptionCmd(m.store, msg.ItemID, text)

	case ConvertDoneMsg:
		delete(m.converting, msg.ItemID)
		if msg.Err != nil {
			m.logger.Error("convert item", "item", msg.ItemID, "err", msg.Err)
			return m.transientError("convert failed")
		}
		i := m.indexOf(msg.ItemID)
		if i < 0 || m.items[i].Processed {
			// Deleted mid-flight, or a duplicate completion. The record id
			// is assigned exactly once.
			return m, nil
		}
		rid := msg.Record.ID
		m.items[i].Processed = true
		m.items[i].RecordID = &rid
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.logger.Warn("persistence write failed", "op", msg.op, "err", msg.err)
		}
		return m, nil

	case ClearTransientErrorMsg:
		if m.errorTransient {
			m.errorMessage = ""
			m.errorTransient = false
		}
		return m, nil

	case DetailMsg:
		return m.updateDetail(msg)
	}

	return m, nil
}

// refresh starts a new load, superseding any load still in flight.
func (m Model) refresh() (Model, tea.Cmd) {
	m.loading = true
	m.loadGen++
	return m, loadItemsCmd(m.store, m.loadGen)
}

// openDetail opens the detail slot with a snapshot of the tapped entity.
// Any prior session is discarded without touching its entity.
func (m Model) openDetail(id string) Model {
	if i := m.indexOf(id); i >= 0 {
		m.detail = newDetailState(m.items[i])
	}
	return m
}

// insertCapture constructs a new entity at the front of the collection and
// starts transcription for kinds that need it.
func (m Model) insertCapture(kind item.Kind, payload []byte, preview string) (Model, tea.Cmd) {
	e := item.New(kind, m.now(), payload, preview)
	m.items = append([]item.Entity{e}, m.items...)

	cmds := []tea.Cmd{insertItemCmd(m.store, e)}
	if kind == item.KindVoiceNote || kind == item.KindScan {
		cmds = append(cmds, transcribeCmd(m.transcriber, m.timeout, e))
	}
	return m, tea.Batch(cmds...)
}

// convertItem kicks off record creation for an unprocessed item. Missing,
// already-processed, or already-converting ids are a no-op, so at most one
// record is ever created per item.
func (m Model) convertItem(id string) (Model, tea.Cmd) {
	i := m.indexOf(id)
	if i < 0 || m.items[i].Processed || m.converting[id] {
		return m, nil
	}
	if m.converting == nil {
		m.converting = make(map[string]bool)
	}
	m.converting[id] = true
	return m, convertCmd(m.store, m.items[i])
}

// setArchived sets the archived flag. Idempotent: re-applying the current
// state still emits the persistence write.
func (m Model) setArchived(id string, archived bool) (Model, tea.Cmd) {
	i := m.indexOf(id)
	if i < 0 {
		return m, nil
	}
	m.items[i].Archived = archived
	m.clampCursor()
	return m, setArchivedCmd(m.store, id, archived)
}

// deleteItem removes the entity immediately; the external delete is
// fire-and-forget and never rolls back the removal.
func (m Model) deleteItem(id string) (Model, tea.Cmd) {
	i := m.indexOf(id)
	if i < 0 {
		return m, nil
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.clampCursor()
	return m, deleteItemCmd(m.store, id)
}

// retryTranscription re-launches the pipeline for an item stuck in
// processing status.
func (m Model) retryTranscription(id string) (Model, tea.Cmd) {
	i := m.indexOf(id)
	if i < 0 {
		return m, nil
	}
	e := m.items[i]
	if e.Status() != item.StatusProcessing || e.Kind == item.KindPhoto {
		return m, nil
	}
	return m, transcribeCmd(m.transcriber, m.timeout, e)
}

func (m Model) transientError(text string) (Model, tea.Cmd) {
	m.errorMessage = text
	m.errorTransient = true
	return m, clearTransientErrorCmd()
}

func (m Model) indexOf(id string) int {
	for i, e := range m.items {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// visibleItems applies the current filter to the collection.
func (m Model) visibleItems() []item.Entity {
	return item.Visible(m.items, m.filter)
}

func (m *Model) clampCursor() {
	n := len(m.visibleItems())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedItem returns the visible item under the cursor, if any.
func (m Model) selectedItem() (item.Entity, bool) {
	visible := m.visibleItems()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return item.Entity{}, false
	}
	return visible[m.cursor], true
}
