// Package ui contains the Bubble Tea program that drives an MDI frame: a
// desktop that shows the frame's views as tabs or as windows, plus a command
// menu that exposes the windows menu and every view operation.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the rename form is open it receives every key press. Otherwise
//     messages are routed through a typed handler registry so each tea.Msg is
//     handled by a focused function.
//   - Desktop keys (desktop.go) map straight onto frame and window operations.
//     The command menu (navigation.go, input.go) keeps the filter-first
//     navigation of a stack of menu levels.
//
// State ownership:
//   - The frame in internal/mdi is the single source of truth. It is only
//     touched on the update goroutine: actions return menu.Operation values
//     and the model applies them.
//   - After every update that changed the frame, the windows menu snapshot is
//     published to the internal/state stores through the dispatcher so menu
//     loaders never read the frame directly.
//   - Menu level state lives in internal/ui/state.Level, which tracks items,
//     filtering, selection, and viewport calculations.
//
// Backend interactions:
//   - A backend.Watcher streams config file reloads; applyBackendEvent stores
//     the settings and pushes them into the frame chrome.
//   - Submenu loaders run via tea.Cmd values returned by loadMenuCmd against a
//     context captured on the update goroutine.
package ui
