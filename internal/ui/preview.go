package ui

import (
	"strings"

	"elsetup/internal/logging/events"
	"elsetup/internal/script"
)

// previewData holds the rendered script preview shown beside the menu.
type previewData struct {
	label        string
	lines        []string
	scrollOffset int
}

// refreshPreview regenerates the script preview from the current selection.
// Generation is pure and cheap, so it runs on every toggle.
func (m *Model) refreshPreview() {
	text := script.Generate(m.tree, m.dist, false)
	m.preview.label = "install script"
	m.preview.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	events.Script.Generated(m.tree.SelectedCount(), false)
	maxOffset := len(m.preview.lines) - 1
	if m.preview.scrollOffset > maxOffset {
		m.preview.scrollOffset = maxOffset
	}
	if m.preview.scrollOffset < 0 {
		m.preview.scrollOffset = 0
	}
}

func (m *Model) activePreview() *previewData {
	return &m.preview
}
