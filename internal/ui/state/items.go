package state

import "elsetup/internal/menutree"

// Row is one renderable menu line. Name carries the bare node name used for
// filtering; Label carries the decorated text (connectors, checkbox markers)
// produced by the tree renderer.
type Row struct {
	ID    menutree.NodeID
	Name  string
	Label string
}

// CloneRows produces a shallow copy of the provided rows.
func CloneRows(rows []Row) []Row {
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}
