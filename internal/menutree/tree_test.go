package menutree

import (
	"strings"
	"testing"

	"elsetup/internal/catalog"
	"elsetup/internal/distro"
)

func script(text string) func() string {
	return func() string { return text }
}

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{Path: []string{"Tools"}, Name: "zsh", Category: catalog.General, Script: script("dnf install zsh")},
		{Path: []string{"Tools"}, Name: "Bash", Category: catalog.General, Script: script("dnf install bash")},
		{Path: []string{"Repos"}, Name: "epel", Category: catalog.Repository, Script: script("enable epel")},
		{Path: []string{"Tools", "Editors"}, Name: "vim", Category: catalog.General, Script: script("dnf install vim")},
		{Path: nil, Name: "Empty Menu"},
	}
}

func TestBuildSortsChildrenRecursively(t *testing.T) {
	tree := Build(catalog.Entries(distro.Rocky))
	var check func(id NodeID)
	check = func(id NodeID) {
		children := tree.Children(id)
		for i := 1; i < len(children); i++ {
			prev := strings.ToLower(tree.Name(children[i-1]))
			curr := strings.ToLower(tree.Name(children[i]))
			if prev > curr {
				t.Fatalf("children of %q out of order: %q > %q", tree.Name(id), prev, curr)
			}
		}
		for _, child := range children {
			check(child)
		}
	}
	check(tree.Root())
}

func TestBuildCaseInsensitiveOrdering(t *testing.T) {
	tree := Build(testEntries())
	var tools NodeID
	for _, child := range tree.Children(tree.Root()) {
		if tree.Name(child) == "Tools" {
			tools = child
		}
	}
	if tools == 0 {
		t.Fatalf("missing Tools container")
	}
	names := make([]string, 0, 3)
	for _, child := range tree.Children(tools) {
		names = append(names, tree.Name(child))
	}
	// "Bash" sorts before "Editors" before "zsh" once lowercased.
	want := []string{"Bash", "Editors", "zsh"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestBuildKeepsDuplicateNamesDistinct(t *testing.T) {
	entries := []catalog.Entry{
		{Path: []string{"Menu"}, Name: "Base Installation", Script: script("one")},
		{Path: []string{"Menu"}, Name: "Base Installation", Script: script("two")},
	}
	tree := Build(entries)
	var menu NodeID
	for _, child := range tree.Children(tree.Root()) {
		menu = child
	}
	children := tree.Children(menu)
	if len(children) != 2 {
		t.Fatalf("expected 2 distinct duplicates, got %d", len(children))
	}
	tree.Toggle(children[0])
	if tree.Selected(children[1]) {
		t.Fatalf("toggling one duplicate affected the other")
	}
}

func TestBuildEmptyContainerDeclaration(t *testing.T) {
	tree := Build(testEntries())
	for _, child := range tree.Children(tree.Root()) {
		if tree.Name(child) == "Empty Menu" {
			if !tree.IsContainer(child) {
				t.Fatalf("Empty Menu should be a container")
			}
			if len(tree.Children(child)) != 0 {
				t.Fatalf("Empty Menu should have no children")
			}
			return
		}
	}
	t.Fatalf("missing Empty Menu container")
}

func TestSelectedItemsPreOrder(t *testing.T) {
	tree := Build(testEntries())
	// Select everything selectable, then verify traversal order:
	// top-level children sorted (Empty Menu, Repos, Tools), Tools children
	// sorted with the Editors subtree between Bash and zsh.
	var toggle func(id NodeID)
	toggle = func(id NodeID) {
		tree.Toggle(id)
		for _, child := range tree.Children(id) {
			toggle(child)
		}
	}
	toggle(tree.Root())

	items := tree.SelectedItems()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	want := []string{"epel", "Bash", "vim", "zsh"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if items[0].Category != catalog.Repository {
		t.Fatalf("epel should be Repository category")
	}
	if items[0].Script() != "enable epel" {
		t.Fatalf("unexpected script snapshot: %q", items[0].Script())
	}
}

func TestToggleContainerIsNoOp(t *testing.T) {
	tree := Build(testEntries())
	root := tree.Root()
	if tree.Toggle(root) {
		t.Fatalf("container toggle should report unselected")
	}
	if tree.SelectedCount() != 0 {
		t.Fatalf("container toggle should not select anything")
	}
}

func TestSelectedCountTracksToggles(t *testing.T) {
	tree := Build(testEntries())
	var leaf NodeID
	var find func(id NodeID)
	find = func(id NodeID) {
		if !tree.IsContainer(id) && leaf == 0 {
			leaf = id
		}
		for _, child := range tree.Children(id) {
			find(child)
		}
	}
	find(tree.Root())
	tree.Toggle(leaf)
	if tree.SelectedCount() != 1 {
		t.Fatalf("expected 1 selected, got %d", tree.SelectedCount())
	}
	tree.Toggle(leaf)
	if tree.SelectedCount() != 0 {
		t.Fatalf("expected 0 selected after double toggle, got %d", tree.SelectedCount())
	}
}
