package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"elsetup/internal/catalog"
	"elsetup/internal/distro"
	"elsetup/internal/menutree"
	"elsetup/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	OSReleasePath string
	DistroName    string
	CatalogPath   string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
}

// Action describes what the user asked for when the TUI exited.
type Action int

const (
	ActionQuit Action = iota
	ActionRun
)

// Outcome carries the TUI result back to main.
type Outcome struct {
	Action Action
	Script string
	Reboot bool
}

// Run bootstraps the menu tree and executes the Bubble Tea program.
func Run(cfg Config) (Outcome, error) {
	dist := resolveDistro(cfg)

	entries := catalog.Entries(dist)
	extra, err := catalog.LoadOverlay(cfg.CatalogPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("load catalog overlay: %w", err)
	}
	entries = append(entries, extra...)

	tree := menutree.Build(entries)
	model := ui.NewModel(tree, dist, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Outcome{}, err
	}

	run, scriptText, reboot := model.Result()
	outcome := Outcome{Action: ActionQuit, Script: scriptText, Reboot: reboot}
	if run {
		outcome.Action = ActionRun
	}
	return outcome, nil
}

func resolveDistro(cfg Config) distro.Distro {
	if cfg.DistroName != "" {
		return distro.FromID(cfg.DistroName)
	}
	return distro.Detect(cfg.OSReleasePath)
}
