package ui

import (
	"strings"
	"testing"
)

func TestSlashFilterNarrowsRows(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("/")
	if !h.Model().filtering {
		t.Fatal("expected filter mode after /")
	}
	h.SendKeys("fire")
	current := h.Model().currentLevel()
	if len(current.Rows) != 1 || current.Rows[0].Name != "Firefox" {
		t.Fatalf("expected only Firefox to match, got %v", rowNames(h.Model()))
	}
}

func TestFilterEscClearsAndRestores(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	total := len(h.Model().currentLevel().Rows)
	h.SendKeys("/", "epel")
	if len(h.Model().currentLevel().Rows) >= total {
		t.Fatal("expected filter to narrow the rows")
	}
	h.SendKeys("esc")
	if h.Model().filtering {
		t.Fatal("expected filter mode exited")
	}
	current := h.Model().currentLevel()
	if current.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", current.Filter)
	}
	if len(current.Rows) != total {
		t.Fatalf("expected all %d rows restored, got %d", total, len(current.Rows))
	}
}

func TestFilterEnterKeepsMatchesAndTogglesThroughThem(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("/", "cockpit", "enter")
	if h.Model().filtering {
		t.Fatal("expected filter editing finished")
	}
	current := h.Model().currentLevel()
	if len(current.Rows) != 1 {
		t.Fatalf("expected a single match, got %v", rowNames(h.Model()))
	}
	h.SendKeys("enter") // toggle the matched item
	if h.Model().Tree().SelectedCount() != 1 {
		t.Fatal("expected matched item to be toggled")
	}
}

func TestFilterBackspaceAndCtrlU(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("/", "vim")
	if got := h.Model().currentLevel().Filter; got != "vim" {
		t.Fatalf("expected filter %q, got %q", "vim", got)
	}
	h.SendKeys("backspace")
	if got := h.Model().currentLevel().Filter; got != "vi" {
		t.Fatalf("expected filter %q, got %q", "vi", got)
	}
	h.SendKeys("ctrl+u")
	if got := h.Model().currentLevel().Filter; got != "" {
		t.Fatalf("expected filter cleared, got %q", got)
	}
}

func TestFilterDoesNotSwallowHotkeysOutsideFilterMode(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	// Typing "i" without / first must open the review screen, not a filter.
	h.SendKeys("i")
	if h.Model().mode != ModeReview {
		t.Fatalf("expected review mode, got %v", h.Model().mode)
	}
	if h.Model().currentLevel().Filter != "" {
		t.Fatalf("no filter should have been recorded, got %q", h.Model().currentLevel().Filter)
	}
}

func TestEnteringContainerClearsFilter(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("/", "editors", "enter") // narrow to the Editors container
	current := h.Model().currentLevel()
	if len(current.Rows) != 1 {
		t.Fatalf("expected Editors match, got %v", rowNames(h.Model()))
	}
	h.SendKeys("enter") // descend
	model := h.Model()
	if model.currentLevel().Title != "Editors" {
		t.Fatalf("expected Editors level, got %q", model.currentLevel().Title)
	}
	if model.filtering {
		t.Fatal("filter mode should end on descend")
	}
	// The parent level keeps no stale filter for the return trip.
	parent := model.stack[0]
	if parent.Filter != "" {
		t.Fatalf("parent filter should be cleared, got %q", parent.Filter)
	}
}

func TestFilterPromptShowsHintWhenIdle(t *testing.T) {
	m := newTestModel(t)
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "press / to search") {
		t.Fatalf("expected idle hint, got %q", prompt)
	}
}
