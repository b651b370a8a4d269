package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"elsetup/internal/distro"
)

func resizeMsg(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}

func TestViewShowsBreadcrumbAndMarkers(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Main Menu") {
		t.Fatalf("expected breadcrumb in view:\n%s", view)
	}
	if !strings.Contains(view, "[ ] Cockpit") {
		t.Fatalf("expected unchecked item marker:\n%s", view)
	}
	if !strings.Contains(view, "Apps >") {
		t.Fatalf("expected container marker:\n%s", view)
	}
}

func TestViewSideBySideShowsScriptPanel(t *testing.T) {
	m := newTestModel(t) // width 100 → split layout
	if !m.hasSidePreview() {
		t.Fatal("expected side preview at width 100")
	}
	view := m.View()
	if !strings.Contains(view, "╭") || !strings.Contains(view, "╰") {
		t.Fatalf("expected bordered preview panel:\n%s", view)
	}
	if !strings.Contains(view, "#!/bin/bash") {
		t.Fatalf("expected script preview content:\n%s", view)
	}
}

func TestViewNarrowTerminalFallsBackToInlinePreview(t *testing.T) {
	m := NewModel(testTree(), distro.Rocky, 60, 24, true, false)
	if m.hasSidePreview() {
		t.Fatal("expected no side preview at width 60")
	}
	view := m.View()
	if !strings.Contains(view, "Script: install script") {
		t.Fatalf("expected inline preview title:\n%s", view)
	}
}

func TestViewUpdatesPreviewAfterToggle(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("down", "enter") // toggle Cockpit
	view := h.View()
	if !strings.Contains(view, "print_step") {
		t.Fatalf("expected preview to include the selected step:\n%s", view)
	}
	if !strings.Contains(h.Model().menuHeader(), "(1 selected)") {
		t.Fatalf("expected selection count in header, got %q", h.Model().menuHeader())
	}
}

func TestReviewViewShowsSummaryAndScript(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("down", "enter", "i")
	view := h.View()
	if !strings.Contains(view, "Review install script") {
		t.Fatalf("expected review title:\n%s", view)
	}
	if !strings.Contains(view, "Cockpit") {
		t.Fatalf("expected summary row for Cockpit:\n%s", view)
	}
	if !strings.Contains(view, "#!/bin/bash") {
		t.Fatalf("expected script text:\n%s", view)
	}
}

func TestReviewViewWithNothingSelected(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("i")
	view := h.View()
	if !strings.Contains(view, "(nothing selected)") {
		t.Fatalf("expected empty summary note:\n%s", view)
	}
	if !strings.Contains(view, "# No options selected.") {
		t.Fatalf("expected empty script note:\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 10); got != "hello" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("hello", 4); got != "hel…" {
		t.Fatalf("expected ellipsised text, got %q", got)
	}
	if got := truncateText("hello", 1); got != "h" {
		t.Fatalf("expected single rune, got %q", got)
	}
}

func TestWindowResizeRecomputesLayout(t *testing.T) {
	m := NewModel(testTree(), distro.Rocky, 0, 0, true, false)
	h := NewHarness(m)
	h.Send(resizeMsg(120, 40))
	if h.Model().width != 120 || h.Model().height != 40 {
		t.Fatalf("expected resize applied, got %dx%d", h.Model().width, h.Model().height)
	}
	if !h.Model().hasSidePreview() {
		t.Fatal("expected side preview after growing the terminal")
	}
	h.Send(resizeMsg(50, 20))
	if h.Model().hasSidePreview() {
		t.Fatal("expected inline layout on a narrow terminal")
	}
}
