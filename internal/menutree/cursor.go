package menutree

// Cursor tracks what the user currently sees: the container path from the
// root plus an index into the visible row list. It holds non-owning IDs into
// the tree, so selection state stays consistent wherever the cursor points.
// None of its operations can fail; indices clamp defensively because visible
// lists can be empty (configured-but-empty sub-menus).
type Cursor struct {
	tree  *Tree
	path  []NodeID
	index int
}

// NewCursor positions a cursor at the tree root.
func NewCursor(t *Tree) *Cursor {
	return &Cursor{tree: t, path: []NodeID{t.Root()}}
}

// Tree exposes the tree the cursor walks.
func (c *Cursor) Tree() *Tree { return c.tree }

// Current returns the container being displayed.
func (c *Cursor) Current() NodeID { return c.path[len(c.path)-1] }

// Depth reports the path length; 1 means the root.
func (c *Cursor) Depth() int { return len(c.path) }

// AtRoot reports whether the cursor shows the root overview.
func (c *Cursor) AtRoot() bool { return len(c.path) == 1 }

// Index returns the clamped position within the visible rows.
func (c *Cursor) Index() int {
	c.clamp()
	return c.index
}

// SetIndex clamps i into the visible range and stores it.
func (c *Cursor) SetIndex(i int) {
	c.index = i
	c.clamp()
}

// Move shifts the index by delta with wraparound. No-op on an empty list.
func (c *Cursor) Move(delta int) {
	n := len(c.VisibleNodes())
	if n == 0 {
		c.index = 0
		return
	}
	c.clamp()
	c.index = ((c.index+delta)%n + n) % n
}

// Enter descends into a container (pushing it onto the path and resetting
// the index) or toggles an item in place. It reports whether the cursor
// descended.
func (c *Cursor) Enter(id NodeID) bool {
	if c.tree.IsContainer(id) {
		c.path = append(c.path, id)
		c.index = 0
		return true
	}
	c.tree.Toggle(id)
	return false
}

// Back pops one path element and resets the index. At the root it does
// nothing.
func (c *Cursor) Back() bool {
	if len(c.path) <= 1 {
		return false
	}
	c.path = c.path[:len(c.path)-1]
	c.index = 0
	return true
}

// PathNames returns the breadcrumb labels from the root to the current
// container.
func (c *Cursor) PathNames() []string {
	names := make([]string, len(c.path))
	for i, id := range c.path {
		names[i] = c.tree.Name(id)
	}
	return names
}

func (c *Cursor) clamp() {
	n := len(c.VisibleNodes())
	if n == 0 {
		c.index = 0
		return
	}
	if c.index < 0 {
		c.index = 0
	}
	if c.index >= n {
		c.index = n - 1
	}
}
