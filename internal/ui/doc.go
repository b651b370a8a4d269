// Package ui contains the Bubble Tea program that powers the installer menu.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, rendering,
// and review/save flows.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the save-filename form is active, messages are consumed by the
//     form first. Otherwise the message is routed through a typed handler
//     registry so each tea.Msg is handled by a focused function (key presses,
//     window resizes, mouse wheel).
//   - Navigation helpers (navigation.go) manage the stack of menu levels and
//     keep the core tree cursor in sync. Filter helpers (input.go) keep all
//     text entry concerns isolated from the event loop.
//
// State ownership:
//   - Menu level state (rows, filter, viewport) lives in
//     internal/ui/state.Level; one Level per open menu depth.
//   - Selection state lives in the menu tree itself; the UI only toggles and
//     re-renders.
//   - The script preview is regenerated from the tree on every toggle and
//     rendered inline or as a right-hand panel depending on terminal width.
package ui
