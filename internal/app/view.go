package app

import (
	"fmt"
	"strings"

	"github.com/jwulff/intake/internal/item"
	"github.com/jwulff/intake/internal/ui"
)

// iconTags maps semantic icon identifiers to the short tags this renderer
// uses. Other frontends map the same identifiers to real glyphs.
var iconTags = map[string]string{
	"mic":     "MIC",
	"camera":  "PHO",
	"scanner": "SCN",
	"file":    "FIL",
	"tray":    "ALL",
	"archive": "ARC",
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, m.renderTabs())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	switch {
	case m.detail != nil:
		sections = append(sections, m.renderDetail())
	case m.showCaptureOptions:
		sections = append(sections, m.renderCaptureOptions())
	default:
		sections = append(sections, m.renderList())
	}

	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	return ui.TitleStyle.Render("INTAKE")
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.recording {
		parts = append(parts, ui.RecordingDotStyle.Render(fmt.Sprintf("● REC %s", formatDuration(m.recordingDuration))))
	} else {
		parts = append(parts, ui.IdleDotStyle.Render("○ IDLE"))
	}

	if m.loading {
		parts = append(parts, m.spin.View()+ui.DimStyle.Render("loading"))
	}

	if n := item.UnprocessedCount(m.items); n > 0 {
		parts = append(parts, ui.BadgeStyle.Render(fmt.Sprintf("%d unprocessed", n)))
	}

	return strings.Join(parts, "  ")
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, f := range item.Filters() {
		label := f.Descriptor().Label
		if f == m.filter {
			tabs = append(tabs, ui.TabActiveStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, ui.TabStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderList() string {
	visible := m.visibleItems()
	height := m.contentHeight()

	if len(visible) == 0 {
		var lines []string
		lines = append(lines, "")
		if m.loading {
			lines = append(lines, ui.DimStyle.Render("  Loading inbox..."))
		} else {
			lines = append(lines, ui.DimStyle.Render("  Inbox empty. Press c to capture."))
		}
		return padToHeight(lines, height)
	}

	var lines []string
	cursorLine := 0
	flat := 0
	for _, bucket := range item.Group(visible, m.now()) {
		lines = append(lines, ui.BucketHeadingStyle.Render(bucket.Label))
		for _, e := range bucket.Items {
			selected := flat == m.cursor
			if selected {
				cursorLine = len(lines)
			}
			lines = append(lines, m.renderItemLine(e, selected))
			flat++
		}
	}

	// Scroll so the cursor stays visible.
	start := 0
	if cursorLine >= height {
		start = cursorLine - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return padToHeight(lines[start:end], height)
}

func (m Model) renderItemLine(e item.Entity, selected bool) string {
	marker := "  "
	if selected {
		marker = ui.SelectedStyle.Render("> ")
	}

	tag := "[" + iconTags[e.Kind.Descriptor().Icon] + "]"
	ts := e.CreatedAt.Format("15:04")

	var status string
	switch e.Status() {
	case item.StatusProcessing:
		status = ui.ProcessingStyle.Render("⟳")
	case item.StatusReady:
		status = ui.ReadyStyle.Render("●")
	case item.StatusProcessed:
		status = ui.ProcessedStyle.Render("✓")
	}

	// Truncate the plain text before styling so escape sequences are never
	// cut mid-way. Prefix: marker, tag, timestamp, status glyph, separators.
	prefix := 2 + len(tag) + 1 + len(ts) + 1 + 1 + 1
	text := e.Text()
	placeholder := text == ""
	if placeholder {
		text = "(transcribing...)"
	}
	text = truncateText(text, m.width-prefix)
	switch {
	case placeholder:
		text = ui.DimStyle.Render(text)
	case selected:
		text = ui.SelectedStyle.Render(text)
	}

	return marker + tag + " " + ui.TimestampStyle.Render(ts) + " " + status + " " + text
}

func (m Model) renderCaptureOptions() string {
	lines := []string{
		ui.PanelTitleStyle.Render("CAPTURE"),
		"",
		"  " + ui.FooterKeyStyle.Render("v") + "  Record a voice note",
		"  " + ui.FooterKeyStyle.Render("p") + "  Take a photo",
		"  " + ui.FooterKeyStyle.Render("s") + "  Scan a document",
		"",
		ui.DimStyle.Render("  esc to close"),
	}
	return padToHeight(lines, m.contentHeight())
}

func (m Model) renderDetail() string {
	d := m.detail
	desc := d.item.Kind.Descriptor()

	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render(strings.ToUpper(desc.Label)))
	lines = append(lines, ui.TimestampStyle.Render(d.item.CreatedAt.Format("Monday, Jan 2 15:04")))
	lines = append(lines, "")

	if d.item.Kind == item.KindVoiceNote {
		lines = append(lines, m.renderPlayback())
		lines = append(lines, "")
	}

	text := d.item.Text()
	if text == "" {
		lines = append(lines, ui.DimStyle.Render("Transcribing..."))
	} else {
		lines = append(lines, wrapText(text, max(20, m.width-4))...)
	}
	lines = append(lines, "")

	switch d.item.Status() {
	case item.StatusProcessed:
		lines = append(lines, ui.ProcessedStyle.Render("✓ Filed"))
	case item.StatusProcessing:
		lines = append(lines, ui.ProcessingStyle.Render("⟳ Processing"))
	}

	return padToHeight(lines, m.contentHeight())
}

func (m Model) renderPlayback() string {
	d := m.detail

	const barLen = 24
	filled := int(d.progress * barLen)
	if filled > barLen {
		filled = barLen
	}

	var bar strings.Builder
	for i := 0; i < barLen; i++ {
		if i < filled {
			bar.WriteString(ui.ReadyStyle.Render("█"))
		} else {
			bar.WriteString(ui.DimStyle.Render("░"))
		}
	}

	state := "▶"
	if d.playing {
		state = "❚❚"
	}
	return fmt.Sprintf("%s %s %3.0f%%", state, bar.String(), d.progress*100)
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	var parts []string

	if m.detail != nil {
		parts = append(parts,
			ui.FooterKeyStyle.Render("Space")+ui.FooterDescStyle.Render(" Play"),
			ui.FooterKeyStyle.Render("←→")+ui.FooterDescStyle.Render(" Seek"),
			ui.FooterKeyStyle.Render("e")+ui.FooterDescStyle.Render(" File"),
			ui.FooterKeyStyle.Render("a")+ui.FooterDescStyle.Render(" Archive"),
			ui.FooterKeyStyle.Render("x")+ui.FooterDescStyle.Render(" Delete"),
			ui.FooterKeyStyle.Render("esc")+ui.FooterDescStyle.Render(" Back"),
		)
	} else if m.recording {
		parts = append(parts,
			ui.FooterKeyStyle.Render("v")+ui.FooterDescStyle.Render(" Stop"),
		)
	} else {
		parts = append(parts,
			ui.FooterKeyStyle.Render("c")+ui.FooterDescStyle.Render(" Capture"),
			ui.FooterKeyStyle.Render("Tab")+ui.FooterDescStyle.Render(" Filter"),
			ui.FooterKeyStyle.Render("j/k")+ui.FooterDescStyle.Render(" Nav"),
			ui.FooterKeyStyle.Render("Enter")+ui.FooterDescStyle.Render(" Open"),
			ui.FooterKeyStyle.Render("a")+ui.FooterDescStyle.Render(" Archive"),
			ui.FooterKeyStyle.Render("e")+ui.FooterDescStyle.Render(" File"),
			ui.FooterKeyStyle.Render("r")+ui.FooterDescStyle.Render(" Refresh"),
		)
	}

	parts = append(parts, ui.FooterKeyStyle.Render("q")+ui.FooterDescStyle.Render(" Quit"))

	return strings.Join(parts, "  ")
}

func (m Model) contentHeight() int {
	if m.height == 0 {
		return 20
	}
	// Reserve: header(1) + status(1) + tabs(1) + dividers(2) + error(1) + footer(1)
	return max(5, m.height-7)
}

// Helpers

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func padToHeight(lines []string, height int) string {
	out := make([]string, len(lines), max(len(lines), height))
	copy(out, lines)
	for len(out) < height {
		out = append(out, "")
	}
	if len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}

// truncateText shortens plain (unstyled) text to width runes.
func truncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		} else {
			lines = append(lines, "")
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
