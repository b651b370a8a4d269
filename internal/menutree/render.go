package menutree

import "fmt"

// VisibleNode pairs a display row with the node it addresses.
type VisibleNode struct {
	ID    NodeID
	Label string
}

const (
	connectorMid  = "├─"
	connectorLast = "└─"
)

// VisibleNodes returns the rows for the cursor's current container.
func (c *Cursor) VisibleNodes() []VisibleNode {
	return VisibleNodesFor(c.tree, c.Current())
}

// VisibleNodesFor returns the rows shown inside the given container. At the
// root the whole tree is flattened recursively with tree-drawing connectors
// so the user gets a global overview; deeper levels list direct children
// only.
func VisibleNodesFor(t *Tree, container NodeID) []VisibleNode {
	children := t.Children(container)
	if container == t.Root() {
		var rows []VisibleNode
		for i, child := range children {
			rows = appendSubtree(t, rows, child, "", i == len(children)-1)
		}
		return rows
	}
	rows := make([]VisibleNode, 0, len(children))
	for i, child := range children {
		connector := connectorMid
		if i == len(children)-1 {
			connector = connectorLast
		}
		rows = append(rows, VisibleNode{ID: child, Label: connector + " " + nodeLabel(t, child)})
	}
	return rows
}

// appendSubtree renders node and its descendants with indentation
// proportional to depth and vertical continuation bars for open branches.
func appendSubtree(t *Tree, rows []VisibleNode, id NodeID, prefix string, last bool) []VisibleNode {
	connector := connectorMid
	if last {
		connector = connectorLast
	}
	rows = append(rows, VisibleNode{ID: id, Label: prefix + connector + " " + nodeLabel(t, id)})
	if t.IsContainer(id) {
		childPrefix := prefix + "│  "
		if last {
			childPrefix = prefix + "   "
		}
		children := t.Children(id)
		for i, child := range children {
			rows = appendSubtree(t, rows, child, childPrefix, i == len(children)-1)
		}
	}
	return rows
}

func nodeLabel(t *Tree, id NodeID) string {
	if t.IsContainer(id) {
		return t.Name(id) + " >"
	}
	marker := "[ ]"
	if t.Selected(id) {
		marker = "[x]"
	}
	return fmt.Sprintf("%s %s", marker, t.Name(id))
}
