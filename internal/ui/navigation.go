package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"elsetup/internal/logging/events"
	"elsetup/internal/menutree"
	uistate "elsetup/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeReview:
		return m.handleReviewKey(keyMsg)
	case ModeSave:
		// Save-form input is consumed before the handler registry runs.
		return nil
	}
	if m.filtering {
		return m.handleFilterKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		return m.handleBackKey(true)
	case "left", "h", "backspace":
		return m.handleBackKey(false)
	case "enter":
		return m.handleEnterKey()
	case "up", "k":
		m.moveCursorUp()
	case "down", "j":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	case "/":
		m.startFiltering()
	case "i":
		m.enterReview(false)
	case "r":
		m.enterReview(true)
	}
	return nil
}

// handleBackKey pops one menu level. quitAtRoot selects the escape-key
// behaviour where backing out of the root closes the program.
func (m *Model) handleBackKey(quitAtRoot bool) tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return tea.Quit
	}
	if len(m.stack) <= 1 {
		if quitAtRoot {
			return tea.Quit
		}
		return nil
	}
	m.nav.Back()
	events.UI.MenuBack(current.Title)
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	if parent != nil {
		if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Rows) {
			parent.Cursor = parent.LastCursor
		} else if idx := parent.IndexOf(current.Node); idx >= 0 {
			parent.Cursor = idx
		} else if len(parent.Rows) > 0 {
			parent.Cursor = len(parent.Rows) - 1
		}
		parent.LastCursor = -1
		m.syncNav(parent)
		m.syncViewport(parent)
	}
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(current.Rows) == 0 {
		return nil
	}
	row := current.Rows[current.Cursor]
	events.UI.MenuEnter(current.Title, row.Name, m.tree.Selected(row.ID))

	if m.tree.IsContainer(row.ID) {
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		m.filtering = false
		current.LastCursor = current.Cursor
		m.nav.Enter(row.ID)
		child := uistate.NewLevel(row.ID, row.Name, m.currentRows())
		m.syncViewport(child)
		m.stack = append(m.stack, child)
		m.errMsg = ""
		m.forceClearInfo()
		if len(child.Rows) == 0 {
			m.setInfo("No entries here yet.")
		}
		return nil
	}

	// Item: toggle in place, refresh labels so the checkbox marker updates.
	m.nav.Enter(row.ID)
	m.refreshStackRows()
	m.refreshPreview()
	return nil
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Rows); n > 0 {
			if current.Cursor > 0 {
				current.Cursor--
			} else {
				current.Cursor = n - 1
			}
			events.UI.MenuCursor(current.Title, current.Cursor)
			m.syncNav(current)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Rows); n > 0 {
			if current.Cursor < n-1 {
				current.Cursor++
			} else {
				current.Cursor = 0
			}
			events.UI.MenuCursor(current.Title, current.Cursor)
			m.syncNav(current)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncNav(current)
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncNav(current)
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncNav(current)
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncNav(current)
		m.syncViewport(current)
	}
}

// syncNav mirrors the level cursor into the navigation cursor. With an
// active filter the level rows are a subset of the visible list, so the
// index is translated through the full row set first.
func (m *Model) syncNav(l *level) {
	if l == nil || len(l.Rows) == 0 {
		return
	}
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return
	}
	id := l.Rows[l.Cursor].ID
	for i, row := range l.Full {
		if row.ID == id {
			m.nav.SetIndex(i)
			return
		}
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

// refreshStackRows rebuilds the row labels for every level on the stack.
// Toggling an item changes its checkbox marker at the current level and in
// the root overview, so all levels re-render their rows.
func (m *Model) refreshStackRows() {
	for _, lvl := range m.stack {
		lvl.UpdateRows(m.rowsFor(lvl.Node))
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
}

func (m *Model) rowsFor(container menutree.NodeID) []uistate.Row {
	nodes := menutree.VisibleNodesFor(m.tree, container)
	rows := make([]uistate.Row, len(nodes))
	for i, node := range nodes {
		rows[i] = uistate.Row{
			ID:    node.ID,
			Name:  m.tree.Name(node.ID),
			Label: node.Label,
		}
	}
	return rows
}
