package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwulff/intake/internal/item"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exact", 5, "exact"},
		{"overflowing text", 8, "overflo…"},
		{"héllo wörld", 6, "héllo…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateText(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestItemLineStaysWithinWidth(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("catering options for the offsite ", 10))
	m := newTestModel(&fakeStore{})
	m.width = 40

	e := item.Entity{ID: "x", Kind: item.KindVoiceNote, CreatedAt: fixedNow, Transcription: &long}

	// Styled lines must truncate on plain text, never inside an escape
	// sequence, so the rendered width stays bounded for every variant.
	for _, selected := range []bool{false, true} {
		line := m.renderItemLine(e, selected)
		if w := lipgloss.Width(line); w > m.width {
			t.Errorf("selected=%v: line width = %d, want <= %d", selected, w, m.width)
		}
	}

	processing := item.Entity{ID: "y", Kind: item.KindScan, CreatedAt: fixedNow}
	line := m.renderItemLine(processing, false)
	if w := lipgloss.Width(line); w > m.width {
		t.Errorf("placeholder line width = %d, want <= %d", w, m.width)
	}
}
