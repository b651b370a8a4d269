// Package menutree holds the in-memory menu of installation steps: an
// arena-owned tree built once from the catalog, plus the navigation cursor
// that walks it. Containers store child indices into the arena, so nodes
// have exactly one owner and the structure is trivially acyclic.
package menutree

import (
	"sort"
	"strings"

	"elsetup/internal/catalog"
)

// NodeID indexes a node inside the tree arena.
type NodeID int

// RootName is the display label of the tree root.
const RootName = "Main Menu"

type node struct {
	name     string
	children []NodeID // containers only
	leaf     bool
	category catalog.Category
	script   func() string
	selected bool
}

// Tree owns every menu node for the lifetime of the process. Only the
// selected flags mutate after Build.
type Tree struct {
	nodes []node
	root  NodeID
}

// SelectedItem is a transient snapshot of one selected leaf.
type SelectedItem struct {
	Name     string
	Category catalog.Category
	Script   func() string
}

// Build constructs a fully populated, sorted tree from catalog entries.
// Construction is deterministic and total: the catalog is compiled-in data,
// so there is nothing to fail on. Duplicate names stay distinct nodes.
func Build(entries []catalog.Entry) *Tree {
	t := &Tree{}
	t.root = t.add(node{name: RootName})
	for _, entry := range entries {
		parent := t.ensurePath(entry.Path)
		if entry.Script == nil {
			t.ensureContainer(parent, entry.Name)
			continue
		}
		id := t.add(node{
			name:     entry.Name,
			leaf:     true,
			category: entry.Category,
			script:   entry.Script,
		})
		t.appendChild(parent, id)
	}
	t.sortChildren(t.root)
	return t
}

func (t *Tree) add(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) appendChild(parent, child NodeID) {
	t.nodes[parent].children = append(t.nodes[parent].children, child)
}

// ensurePath walks the container chain named by path from the root, creating
// missing containers along the way.
func (t *Tree) ensurePath(path []string) NodeID {
	current := t.root
	for _, name := range path {
		current = t.ensureContainer(current, name)
	}
	return current
}

func (t *Tree) ensureContainer(parent NodeID, name string) NodeID {
	for _, child := range t.nodes[parent].children {
		if !t.nodes[child].leaf && t.nodes[child].name == name {
			return child
		}
	}
	id := t.add(node{name: name})
	t.appendChild(parent, id)
	return id
}

// sortChildren orders every container's children case-insensitively by name,
// recursively. Ties keep insertion order. This runs once at build time.
func (t *Tree) sortChildren(id NodeID) {
	children := t.nodes[id].children
	sort.SliceStable(children, func(i, j int) bool {
		return strings.ToLower(t.nodes[children[i]].name) < strings.ToLower(t.nodes[children[j]].name)
	})
	for _, child := range children {
		if !t.nodes[child].leaf {
			t.sortChildren(child)
		}
	}
}

// Root returns the root container ID.
func (t *Tree) Root() NodeID { return t.root }

// Len reports the total number of nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Name returns a node's display label.
func (t *Tree) Name(id NodeID) string { return t.nodes[id].name }

// IsContainer reports whether the node groups children rather than holding
// an action.
func (t *Tree) IsContainer(id NodeID) bool { return !t.nodes[id].leaf }

// Children returns a container's ordered child IDs. Items have none.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].children }

// Selected reports an item's toggle state. Containers are never selected.
func (t *Tree) Selected(id NodeID) bool { return t.nodes[id].selected }

// Category returns an item's script category.
func (t *Tree) Category(id NodeID) catalog.Category { return t.nodes[id].category }

// Script returns the shell text for an item, or "" for containers.
func (t *Tree) Script(id NodeID) string {
	if t.nodes[id].script == nil {
		return ""
	}
	return t.nodes[id].script()
}

// Toggle flips an item's selected flag in place and returns the new state.
// Toggling a container is a no-op.
func (t *Tree) Toggle(id NodeID) bool {
	if t.nodes[id].leaf {
		t.nodes[id].selected = !t.nodes[id].selected
	}
	return t.nodes[id].selected
}

// SelectedItems collects every selected leaf in pre-order traversal order,
// children in their sorted order. The snapshots are produced fresh on each
// call and never persisted.
func (t *Tree) SelectedItems() []SelectedItem {
	var items []SelectedItem
	t.walk(t.root, func(id NodeID) {
		n := &t.nodes[id]
		if n.leaf && n.selected {
			items = append(items, SelectedItem{Name: n.name, Category: n.category, Script: n.script})
		}
	})
	return items
}

// SelectedCount reports how many items are currently selected.
func (t *Tree) SelectedCount() int {
	count := 0
	t.walk(t.root, func(id NodeID) {
		if t.nodes[id].leaf && t.nodes[id].selected {
			count++
		}
	})
	return count
}

func (t *Tree) walk(id NodeID, visit func(NodeID)) {
	visit(id)
	for _, child := range t.nodes[id].children {
		t.walk(child, visit)
	}
}
