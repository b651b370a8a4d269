package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"elsetup/internal/format/table"
	"elsetup/internal/logging/events"
	"elsetup/internal/runner"
	"elsetup/internal/script"
)

// enterReview switches to the script review screen. reboot selects whether
// the reviewed script ends with a reboot.
func (m *Model) enterReview(reboot bool) {
	m.mode = ModeReview
	m.reviewReboot = reboot
	m.reviewScroll = 0
	m.errMsg = ""
	m.forceClearInfo()
	events.UI.ModeChange(m.mode.String())
}

func (m *Model) exitReview() {
	m.mode = ModeMenu
	m.errMsg = ""
	events.UI.ModeChange(m.mode.String())
}

func (m *Model) reviewScript() string {
	return script.Generate(m.tree, m.dist, m.reviewReboot)
}

func (m *Model) handleReviewKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "q":
		m.exitReview()
	case "up", "k":
		m.scrollReview(-1)
	case "down", "j":
		m.scrollReview(1)
	case "pgup":
		m.scrollReview(-10)
	case "pgdown":
		m.scrollReview(10)
	case "b":
		m.reviewReboot = !m.reviewReboot
	case "s":
		m.mode = ModeSave
		m.saveInput.SetValue("")
		m.saveInput.Focus()
		events.UI.ModeChange(m.mode.String())
	case "c":
		if err := runner.CopyToClipboard(m.reviewScript()); err != nil {
			m.errMsg = err.Error()
			events.Action.Error(err)
			return nil
		}
		m.errMsg = ""
		m.setInfo("Script copied to clipboard.")
		events.Action.Success("clipboard copy")
	case "r", "enter":
		m.runRequested = true
		events.App.Finish("run")
		return tea.Quit
	}
	return nil
}

func (m *Model) scrollReview(delta int) {
	lines := strings.Split(strings.TrimRight(m.reviewScript(), "\n"), "\n")
	maxOffset := len(lines) - m.reviewBodyHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.reviewScroll += delta
	if m.reviewScroll < 0 {
		m.reviewScroll = 0
	}
	if m.reviewScroll > maxOffset {
		m.reviewScroll = maxOffset
	}
}

func (m *Model) reviewBodyHeight() int {
	if m.height <= 0 {
		return 20
	}
	// title + summary rows + separators + footer
	used := 5 + m.summaryRowCount()
	remain := m.height - used
	if remain < 3 {
		return 3
	}
	return remain
}

func (m *Model) summaryRowCount() int {
	n := len(m.tree.SelectedItems())
	if n == 0 {
		return 1
	}
	return n
}

// summaryLines renders the selected items as aligned name/category rows.
func (m *Model) summaryLines() []string {
	selected := m.tree.SelectedItems()
	if len(selected) == 0 {
		return []string{"(nothing selected)"}
	}
	rows := make([][]string, 0, len(selected))
	for _, item := range selected {
		rows = append(rows, []string{item.Name, item.Category.String()})
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

func (m *Model) viewReview() string {
	lines := make([]styledLine, 0, 32)
	title := fmt.Sprintf("Review install script — %s", m.dist)
	if m.reviewReboot {
		title += "  (reboot after install)"
	}
	titleStyle := styles.Header
	if styles.ReviewTitle != nil {
		titleStyle = styles.ReviewTitle
	}
	lines = append(lines, styledLine{text: title, style: titleStyle})
	for _, row := range m.summaryLines() {
		lines = append(lines, styledLine{text: "  " + row, style: styles.Info})
	}
	lines = append(lines, styledLine{})

	body := strings.Split(strings.TrimRight(m.reviewScript(), "\n"), "\n")
	height := m.reviewBodyHeight()
	start := m.reviewScroll
	if start > len(body) {
		start = len(body)
	}
	end := start + height
	if end > len(body) {
		end = len(body)
	}
	bodyStyle := styles.Info
	if styles.ReviewBody != nil {
		bodyStyle = styles.ReviewBody
	}
	for _, line := range body[start:end] {
		lines = append(lines, styledLine{text: line, style: bodyStyle})
	}

	lines = append(lines, styledLine{})
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	}
	lines = append(lines, styledLine{
		text:  "r/enter run  s save  c copy  b toggle reboot  ↑/↓ scroll  esc back",
		style: styles.Footer,
	})
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// handleSaveForm consumes messages while the save-filename form is active.
func (m *Model) handleSaveForm(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.saveInput, cmd = m.saveInput.Update(msg)
		return true, cmd
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "esc":
		m.mode = ModeReview
		m.saveInput.Blur()
		m.errMsg = ""
		events.UI.ModeChange(m.mode.String())
		return true, nil
	case "enter":
		path := strings.TrimSpace(m.saveInput.Value())
		if path == "" {
			path = defaultSaveName
		}
		if err := runner.Save(path, m.reviewScript()); err != nil {
			m.errMsg = err.Error()
			events.Action.Error(err)
			return true, nil
		}
		m.mode = ModeReview
		m.saveInput.Blur()
		m.errMsg = ""
		m.setInfo(fmt.Sprintf("Saved script to %s.", path))
		events.Action.Success("script saved")
		events.UI.ModeChange(m.mode.String())
		return true, nil
	}
	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return true, cmd
}

func (m *Model) viewSaveForm() string {
	lines := []styledLine{
		{text: "Save install script", style: styles.Header},
		{},
		{text: "Filename (enter accepts, esc cancels):", style: styles.Info},
		{text: m.saveInput.View()},
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}
