package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/logging/events"
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/menu"
	"github.com/atomicstack/termdi/internal/ui/command"
)

const (
	moveStep   = 1
	resizeStep = 1
)

func (m *Model) handleDesktopKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.CommandMenu):
		m.openMenu("")
		return nil
	case key.Matches(msg, k.SystemMenu):
		m.openMenu("system")
		return nil
	case key.Matches(msg, k.NewView):
		return m.runAction("view:new", menu.Item{ID: "new", Label: "new"})
	case key.Matches(msg, k.Close):
		return m.runOnActive("view:close", menu.ViewCloseAction)
	case key.Matches(msg, k.Dispose):
		return m.runAction("view:dispose", menu.Item{ID: "dispose", Label: "dispose"})
	case key.Matches(msg, k.Maximize):
		return m.runAction("view:maximize", menu.Item{ID: "maximize", Label: "maximize"})
	case key.Matches(msg, k.Minimize):
		return m.runAction("view:minimize", menu.Item{ID: "minimize", Label: "minimize"})
	case key.Matches(msg, k.Restore):
		return m.runAction("view:restore", menu.Item{ID: "restore", Label: "restore"})
	case key.Matches(msg, k.Rename):
		return m.runOnActive("view:rename", menu.ViewRenameAction)
	case key.Matches(msg, k.Yank):
		return m.runAction("view:copy-title", menu.Item{ID: "copy-title", Label: "copy title"})
	case key.Matches(msg, k.TogglePane):
		return m.runAction("pane:toggle", menu.Item{ID: "toggle", Label: "toggle"})
	case key.Matches(msg, k.Next):
		m.report(m.cycleView(true))
	case key.Matches(msg, k.Previous):
		m.report(m.cycleView(false))
	case key.Matches(msg, k.Select):
		if n, ok := selectNumber(msg); ok {
			m.report(m.windows.ActivateNumber(n))
		}
	case key.Matches(msg, k.IconifyButton):
		m.report(m.pressButton(mdi.ButtonIconify))
	case key.Matches(msg, k.RestoreButton):
		m.report(m.pressButton(mdi.ButtonRestore))
	case key.Matches(msg, k.CloseButton):
		m.report(m.pressButton(mdi.ButtonClose))
	case key.Matches(msg, k.MoveUp):
		m.report(m.moveWindow(0, -moveStep))
	case key.Matches(msg, k.MoveDown):
		m.report(m.moveWindow(0, moveStep))
	case key.Matches(msg, k.MoveLeft):
		m.report(m.moveWindow(-moveStep, 0))
	case key.Matches(msg, k.MoveRight):
		m.report(m.moveWindow(moveStep, 0))
	case key.Matches(msg, k.ShrinkUp):
		m.report(m.resizeWindow(0, -resizeStep))
	case key.Matches(msg, k.GrowDown):
		m.report(m.resizeWindow(0, resizeStep))
	case key.Matches(msg, k.ShrinkLeft):
		m.report(m.resizeWindow(-resizeStep, 0))
	case key.Matches(msg, k.GrowRight):
		m.report(m.resizeWindow(resizeStep, 0))
	}
	return nil
}

// runAction executes a registered menu action against the active view.
func (m *Model) runAction(id string, item menu.Item) tea.Cmd {
	node, ok := m.registry.Find(id)
	if !ok || node.Action == nil {
		m.errMsg = fmt.Sprintf("no action registered for %s", id)
		return nil
	}
	m.errMsg = ""
	return m.bus.Execute(m.menuContext(), command.Request{ID: id, Label: item.Label, Handler: node.Action, Item: item})
}

// runOnActive executes handler with the active view as the selected item.
func (m *Model) runOnActive(id string, handler menu.Action) tea.Cmd {
	ctx := m.menuContext()
	active, ok := ctx.Active()
	if !ok {
		m.errMsg = "no active view"
		return nil
	}
	m.errMsg = ""
	item := menu.Item{ID: active.ID, Label: active.Title}
	return m.bus.Execute(ctx, command.Request{ID: id, Label: active.Title, Handler: handler, Item: item})
}

// cycleView moves the activation to the next or previous focusable view.
func (m *Model) cycleView(forward bool) error {
	active := m.frame.ActiveView()
	if active == nil {
		views := m.frame.Views()
		if len(views) == 0 {
			return nil
		}
		return views[0].SetSelected(true)
	}
	if forward {
		return active.SetSelected(false)
	}
	prev, err := m.frame.PreviousFocusableView(active)
	if err != nil {
		return err
	}
	return m.frame.SetActiveView(prev)
}

func (m *Model) pressButton(t mdi.ButtonType) error {
	events.Frame.Button(t.String())
	return m.frame.PressButton(t)
}

func (m *Model) selectedWindow() *mdi.Window {
	if m.frame.PaneMode() != mdi.Windowed {
		return nil
	}
	w := m.frame.Desktop().Selected()
	if w == nil || w.IsIconified() {
		return nil
	}
	return w
}

func (m *Model) moveWindow(dx, dy int) error {
	w := m.selectedWindow()
	if w == nil {
		return nil
	}
	return m.frame.Desktop().Move(w, dx, dy)
}

func (m *Model) resizeWindow(dw, dh int) error {
	w := m.selectedWindow()
	if w == nil {
		return nil
	}
	return m.frame.Desktop().Resize(w, dw, dh)
}

// report shows err on the status line.
func (m *Model) report(err error) {
	if err != nil {
		m.errMsg = err.Error()
		events.Action.Error(err)
		return
	}
	m.errMsg = ""
}
