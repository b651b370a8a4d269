package state

import "elsetup/internal/menutree"

// Level encapsulates menu level state such as cursor position, filter, and viewport.
type Level struct {
	Node           menutree.NodeID
	Title          string
	Rows           []Row
	Full           []Row
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level for the given container node and its rows.
func NewLevel(node menutree.NodeID, title string, rows []Row) *Level {
	l := &Level{
		Node:       node,
		Title:      title,
		Cursor:     0,
		LastCursor: -1,
	}
	l.UpdateRows(rows)
	return l
}

// IndexOf returns the row index for a given node identifier.
func (l *Level) IndexOf(id menutree.NodeID) int {
	for i, row := range l.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// UpdateRows refreshes the level rows, re-applying any active filter and
// keeping the viewport offset when it still points at a valid row.
func (l *Level) UpdateRows(rows []Row) {
	prevOffset := l.ViewportOffset
	l.Full = CloneRows(rows)
	l.applyFilter()
	if len(l.Rows) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Rows)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
