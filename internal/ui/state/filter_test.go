package state

import "testing"

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Rows) != 1 || level.Rows[0].Name != "two" {
		t.Fatalf("expected filtered rows to contain only 'two', got %#v", level.Rows)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", level.Filter)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if level.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", level.FilterCursor)
	}

	if !level.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if !level.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if !level.MoveFilterCursorStart() {
		t.Fatal("expected move to start")
	}
	if level.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestFilterRowsMatchesBareNames(t *testing.T) {
	rows := []Row{
		{ID: 1, Name: "KVM Base", Label: "├─ [ ] KVM Base"},
		{ID: 2, Name: "Cockpit", Label: "└─ [ ] Cockpit"},
	}
	filtered := FilterRows(rows, "kvm")
	if len(filtered) != 1 || filtered[0].ID != 1 {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterRows(rows, "ockp")
	if len(filtered) != 1 || filtered[0].ID != 2 {
		t.Fatalf("expected contains match for Cockpit, got %#v", filtered)
	}
	if len(FilterRows(rows, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	// Connector glyphs in labels never match: only names are searched.
	if len(FilterRows(rows, "├─")) != 0 {
		t.Fatal("decorations must not be matchable")
	}
}

func TestCloneRowsAllocates(t *testing.T) {
	rows := []Row{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}}
	clone := CloneRows(rows)
	if &clone[0] == &rows[0] {
		t.Fatal("expected clone to allocate new backing array")
	}
	clone[0].Name = "changed"
	if rows[0].Name != "Alpha" {
		t.Fatal("expected original slice to remain unchanged")
	}
}

func TestBestMatchIndex(t *testing.T) {
	rows := []Row{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second"},
		{ID: 3, Name: "Third"},
	}

	if idx := BestMatchIndex(rows, "Second"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSelectsFuzzyMatch(t *testing.T) {
	rows := []Row{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}}
	level := NewLevel(0, "title", rows)
	level.SetFilter("alp", 3)
	if level.Cursor != 0 {
		t.Fatalf("expected fuzzy match to select first row, got %d", level.Cursor)
	}
	if len(level.Rows) != 1 || level.Rows[0].ID != 1 {
		t.Fatalf("expected filtered rows to contain Alpha, got %#v", level.Rows)
	}
}
