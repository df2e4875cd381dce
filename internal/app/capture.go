package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Capture controller sub-states: idle, options visible, recording. Options
// visibility is independent of recording; starting a recording hides the
// options sheet.

func (m Model) toggleCaptureOptions() Model {
	m.showCaptureOptions = !m.showCaptureOptions
	return m
}

func (m Model) startVoiceRecording() (Model, tea.Cmd) {
	if m.recording {
		return m, nil
	}
	m.recording = true
	m.recordingDuration = 0
	m.showCaptureOptions = false
	m.recordGen++
	return m, recordTickCmd(m.recordGen)
}

// stopVoiceRecording cancels the tick by advancing the generation, then
// hands the captured audio back as a completion event.
func (m Model) stopVoiceRecording() (Model, tea.Cmd) {
	if !m.recording {
		return m, nil
	}
	m.recording = false
	m.recordGen++
	duration := m.recordingDuration
	return m, func() tea.Msg {
		return VoiceRecordingCompletedMsg{Payload: rawAudio(duration)}
	}
}

func capturePhotoCmd() tea.Cmd {
	return func() tea.Msg {
		return PhotoCapturedMsg{Payload: rawPhoto(), Caption: "Captured photo"}
	}
}

func scanDocumentCmd() tea.Cmd {
	return func() tea.Msg {
		return DocumentScannedMsg{Payload: rawScan()}
	}
}

// The raw* helpers stand in for the recorder, camera and scanner hardware.
// The state machine treats payloads as opaque bytes.

func rawAudio(seconds int) []byte {
	return []byte(fmt.Sprintf("audio/pcm;seconds=%d", seconds))
}

func rawPhoto() []byte {
	return []byte("image/jpeg")
}

func rawScan() []byte {
	return []byte("image/png;scan")
}
