package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/intake/internal/item"
)

// Key binding constants used in handleKey.
const (
	KeyQuit      = "q"
	KeyQuitUpper = "Q"
	KeyCtrlC     = "ctrl+c"
	KeyRefresh   = "r"
	KeyTab       = "tab"
	KeyShiftTab  = "shift+tab"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyJ         = "j"
	KeyK         = "k"
	KeyEnter     = "enter"
	KeyEscape    = "esc"
	KeySpace     = " "
	KeyCapture   = "c"
	KeyVoice     = "v"
	KeyPhoto     = "p"
	KeyScan      = "s"
	KeyArchive   = "a"
	KeyDelete    = "x"
	KeyConvert   = "e"
	KeyRetry     = "t"
	KeyLeft      = "left"
	KeyRight     = "right"
)

const seekStep = 0.05

// handleKey processes key presses. Keys are routed to the detail session
// when one is open, then to the capture controller, then to the list.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit
	}

	if m.detail != nil {
		return m.handleDetailKey(key)
	}

	switch key {
	case KeyRefresh:
		return m.refresh()

	case KeyTab:
		m.filter = nextFilter(m.filter, 1)
		m.cursor = 0
		return m, nil

	case KeyShiftTab:
		m.filter = nextFilter(m.filter, -1)
		m.cursor = 0
		return m, nil

	case KeyJ, KeyDown:
		if m.cursor < len(m.visibleItems())-1 {
			m.cursor++
		}
		return m, nil

	case KeyK, KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case KeyEnter:
		if e, ok := m.selectedItem(); ok {
			m = m.openDetail(e.ID)
		}
		return m, nil

	case KeyCapture:
		m = m.toggleCaptureOptions()
		return m, nil

	case KeyVoice, KeySpace:
		if m.recording {
			return m.stopVoiceRecording()
		}
		if key == KeyVoice {
			return m.startVoiceRecording()
		}
		return m, nil

	case KeyPhoto:
		if m.showCaptureOptions {
			m.showCaptureOptions = false
			return m, capturePhotoCmd()
		}
		return m, nil

	case KeyScan:
		if m.showCaptureOptions {
			m.showCaptureOptions = false
			return m, scanDocumentCmd()
		}
		return m, nil

	case KeyEscape:
		m.showCaptureOptions = false
		return m, nil

	case KeyArchive:
		if e, ok := m.selectedItem(); ok {
			return m.setArchived(e.ID, !e.Archived)
		}
		return m, nil

	case KeyDelete:
		if e, ok := m.selectedItem(); ok {
			return m.deleteItem(e.ID)
		}
		return m, nil

	case KeyConvert:
		if e, ok := m.selectedItem(); ok {
			return m.convertItem(e.ID)
		}
		return m, nil

	case KeyRetry:
		if e, ok := m.selectedItem(); ok {
			return m.retryTranscription(e.ID)
		}
		return m, nil
	}

	return m, nil
}

// handleDetailKey translates keys into detail sub-machine actions.
func (m Model) handleDetailKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case KeySpace:
		return m.updateDetail(DetailMsg{Action: DetailTogglePlayback})
	case KeyLeft:
		return m.updateDetail(DetailMsg{Action: DetailSeek, Seek: m.detail.progress - seekStep})
	case KeyRight:
		return m.updateDetail(DetailMsg{Action: DetailSeek, Seek: m.detail.progress + seekStep})
	case KeyConvert:
		return m.updateDetail(DetailMsg{Action: DetailConvert})
	case KeyArchive:
		return m.updateDetail(DetailMsg{Action: DetailArchive})
	case KeyDelete:
		return m.updateDetail(DetailMsg{Action: DetailDelete})
	case KeyEscape, KeyEnter:
		return m.updateDetail(DetailMsg{Action: DetailDismiss})
	}
	return m, nil
}

func nextFilter(f item.Filter, step int) item.Filter {
	filters := item.Filters()
	for i, cur := range filters {
		if cur == f {
			return filters[(i+step+len(filters))%len(filters)]
		}
	}
	return filters[0]
}
