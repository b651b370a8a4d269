package ui

import (
	"strings"
	"testing"

	"elsetup/internal/catalog"
	"elsetup/internal/distro"
	"elsetup/internal/menutree"
)

func testTree() *menutree.Tree {
	entries := []catalog.Entry{
		{Path: []string{"Apps"}, Name: "Firefox", Category: catalog.General,
			Script: func() string { return "sudo dnf install -y firefox" }},
		{Path: []string{"Apps"}, Name: "Cockpit", Category: catalog.General,
			Script: func() string { return "sudo dnf install -y cockpit" }},
		{Path: []string{"Apps", "Editors"}, Name: "vim", Category: catalog.General,
			Script: func() string { return "sudo dnf install -y vim-enhanced" }},
		{Path: []string{"Repos"}, Name: "epel", Category: catalog.Repository,
			Script: func() string { return "sudo dnf install -y epel-release" }},
		{Path: nil, Name: "Empty Menu"},
	}
	return menutree.Build(entries)
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(testTree(), distro.Rocky, 100, 30, true, false)
}

func TestNewModelStartsAtRootOverview(t *testing.T) {
	m := newTestModel(t)
	if m.mode != ModeMenu {
		t.Fatalf("expected menu mode, got %v", m.mode)
	}
	current := m.currentLevel()
	if current == nil {
		t.Fatal("missing root level")
	}
	if len(current.Rows) != m.Tree().Len()-1 {
		t.Fatalf("root overview should flatten the whole tree: %d rows, %d nodes",
			len(current.Rows), m.Tree().Len()-1)
	}
}

func TestResultDefaultsToQuit(t *testing.T) {
	m := newTestModel(t)
	run, scriptText, reboot := m.Result()
	if run {
		t.Fatal("run should not be requested by default")
	}
	if reboot {
		t.Fatal("reboot should default to false")
	}
	if !strings.Contains(scriptText, "# No options selected.") {
		t.Fatalf("expected empty-selection script, got:\n%s", scriptText)
	}
}

func TestEnterReviewAndBack(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("i")
	if h.Model().mode != ModeReview {
		t.Fatalf("expected review mode, got %v", h.Model().mode)
	}
	if h.Model().reviewReboot {
		t.Fatal("plain review should not set reboot")
	}
	h.SendKeys("esc")
	if h.Model().mode != ModeMenu {
		t.Fatalf("expected return to menu, got %v", h.Model().mode)
	}

	h.SendKeys("r")
	if !h.Model().reviewReboot {
		t.Fatal("review via r should request reboot")
	}
}

func TestReviewRunRequestsExecution(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("down", "enter") // toggle first item in the overview
	h.SendKeys("i", "r")
	run, scriptText, reboot := h.Model().Result()
	if !run {
		t.Fatal("expected run request after review+run")
	}
	if reboot {
		t.Fatal("unexpected reboot flag")
	}
	if strings.Contains(scriptText, "# No options selected.") {
		t.Fatalf("expected a non-empty script, got:\n%s", scriptText)
	}
}

func TestRebootToggleInReview(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.SendKeys("i", "b")
	if !h.Model().reviewReboot {
		t.Fatal("expected reboot toggled on")
	}
	h.SendKeys("b")
	if h.Model().reviewReboot {
		t.Fatal("expected reboot toggled back off")
	}
}
