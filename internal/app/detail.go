package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/intake/internal/item"
)

// detailState is the child state machine for one selected item: a snapshot
// of the entity plus ephemeral playback state. The parent model is the only
// component that creates or destroys it.
type detailState struct {
	item     item.Entity
	playing  bool
	progress float64
}

func newDetailState(e item.Entity) *detailState {
	return &detailState{item: e}
}

func (d *detailState) togglePlayback() {
	d.playing = !d.playing
}

// seekTo clamps the target to [0, 1] rather than trusting the caller.
func (d *detailState) seekTo(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	d.progress = p
}

func (d *detailState) seekBy(delta float64) {
	d.seekTo(d.progress + delta)
}

// updateDetail routes a wrapped action to the open detail session. Terminal
// actions close the session first, then re-dispatch against the parent
// collection using the captured id, so no dangling selection is observable.
func (m Model) updateDetail(msg DetailMsg) (Model, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}

	switch msg.Action {
	case DetailTogglePlayback:
		m.detail.togglePlayback()
		return m, nil

	case DetailSeek:
		m.detail.seekTo(msg.Seek)
		return m, nil

	case DetailConvert:
		id := m.detail.item.ID
		m.detail = nil
		return m.convertItem(id)

	case DetailArchive:
		id := m.detail.item.ID
		m.detail = nil
		return m.setArchived(id, true)

	case DetailDelete:
		id := m.detail.item.ID
		m.detail = nil
		return m.deleteItem(id)

	case DetailDismiss:
		m.detail = nil
		return m, nil
	}

	return m, nil
}
