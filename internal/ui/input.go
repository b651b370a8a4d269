package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"elsetup/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) startFiltering() {
	current := m.currentLevel()
	if current == nil || len(current.Full) == 0 {
		return
	}
	m.filtering = true
	m.filterCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
}

func (m *Model) stopFiltering(clear bool) {
	current := m.currentLevel()
	if current != nil && clear {
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		events.Filter.Cleared(current.Title)
		m.syncViewport(current)
	}
	m.filtering = false
}

// handleFilterKey consumes keys while the slash filter is being edited.
// Navigation stays live so matches can be walked without leaving the filter.
func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		m.filtering = false
		return nil
	}
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.stopFiltering(true)
		return nil
	case "enter":
		m.stopFiltering(false)
		return nil
	case "up":
		m.moveCursorUp()
		return nil
	case "down":
		m.moveCursorDown()
		return nil
	case "ctrl+u":
		if current.Filter == "" {
			return nil
		}
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		events.Filter.Cleared(current.Title)
		m.syncViewport(current)
		return nil
	case "ctrl+w":
		before := current.FilterCursorPos()
		if current.DeleteFilterWordBackward() {
			m.noteFilterCursorChange(current, before)
			events.Filter.Backspace(current.Title, current.Filter)
			m.syncViewport(current)
		}
		return nil
	case "ctrl+a":
		before := current.FilterCursorPos()
		if current.MoveFilterCursorStart() {
			m.noteFilterCursorChange(current, before)
		}
		return nil
	case "ctrl+e":
		before := current.FilterCursorPos()
		if current.MoveFilterCursorEnd() {
			m.noteFilterCursorChange(current, before)
		}
		return nil
	case "alt+b":
		before := current.FilterCursorPos()
		if current.MoveFilterCursorWordBackward() {
			m.noteFilterCursorChange(current, before)
		}
		return nil
	case "alt+f":
		before := current.FilterCursorPos()
		if current.MoveFilterCursorWordForward() {
			m.noteFilterCursorChange(current, before)
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.removeFilterRune()
	case tea.KeyLeft:
		before := current.FilterCursorPos()
		if current.MoveFilterCursorRuneBackward() {
			m.noteFilterCursorChange(current, before)
		}
	case tea.KeyRight:
		before := current.FilterCursorPos()
		if current.MoveFilterCursorRuneForward() {
			m.noteFilterCursorChange(current, before)
		}
	case tea.KeySpace:
		m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.appendToFilter(string(msg.Runes))
	}
	return nil
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !current.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(current.Title, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Backspace(current.Title, current.Filter)
	m.syncViewport(current)
	return true
}

// filterPrompt renders the bottom filter line. Outside filter mode it is a
// quiet hint; inside, the query with a blinking caret.
func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return ""
	}
	if !m.filtering && current.Filter == "" {
		hint := "press / to search"
		if styles.FilterPlaceholder != nil {
			return styles.FilterPlaceholder.Render(hint)
		}
		return hint
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	}
	prompt := "/ "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := current.Filter
	if !m.filtering {
		return prompt + render(styles.Filter, text)
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
