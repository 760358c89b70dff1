package mdi

import "fmt"

// ChangeView toggles the pane mode. It re-projects the same views into the
// other container and never emits view events of its own.
func (f *Frame) ChangeView() {
	f.changeView()
}

// SetPaneMode switches to mode when it differs from the current one.
func (f *Frame) SetPaneMode(mode PaneMode) error {
	if !mode.valid() {
		return fmt.Errorf("pane mode %d: %w", int(mode), ErrInvalidArgument)
	}
	if mode != f.mode {
		f.changeView()
	}
	return nil
}

func (f *Frame) changeView() {
	old := f.mode
	switch {
	case len(f.views) == 0 && old == Tabbed:
		f.mode = Windowed
	case len(f.views) == 0:
		f.mode = Tabbed
	case old == Tabbed:
		f.tabsToWindows()
	default:
		f.windowsToTabs()
	}
	f.fireFrame(FrameEvent{Kind: FramePaneChanged, OldMode: old, NewMode: f.mode})
}

func (f *Frame) tabsToWindows() {
	activeView := f.tabs.SelectedView()
	if activeView == nil {
		activeView = f.active
	}
	f.tabs.clear()
	f.mode = Windowed

	for _, v := range f.views {
		w := f.newWindow(v)
		if v.wasIconified {
			f.iconifyWindow(w, reprojection)
			v.state = StateIconified
		} else {
			v.state = StateRestored
		}
	}

	if w := f.desktop.windowFor(activeView); w != nil {
		f.windowSelected(w, reprojection)
		if w.iconified {
			f.deiconifyWindow(w, reprojection)
		}
	}
	f.hideButtons()
}

func (f *Frame) windowsToTabs() {
	activeView := f.active
	if activeView == nil {
		activeView = f.views[0]
	}
	for _, w := range f.desktop.Windows() {
		v := w.view
		if w.iconified {
			v.wasIconified = true
		} else {
			v.bounds = w.bounds
			v.hasBounds = true
		}
		f.desktop.remove(w)
	}
	f.mode = Tabbed
	for _, v := range f.views {
		f.tabs.insert(f.tabs.Len(), tabFor(v))
	}
	f.tabs.setSelected(f.tabs.IndexOf(activeView))
	f.tabSelected(activeView, reprojection)
	f.showButtons()
}

// newWindow creates and places the window for v. Saved geometry is applied
// verbatim; otherwise the cascading location and default size are used and
// the positioner, when set, gets the final say on the location.
func (f *Frame) newWindow(v *View) *Window {
	w := &Window{view: v}
	if v.hasBounds {
		w.bounds = v.bounds
		f.desktop.add(w)
		return w
	}
	width, height := f.desktop.Size()
	x, y := f.locations.next(width, height)
	ww, wh := defaultWindowSize(width, height)
	w.bounds = Rect{X: x, Y: y, W: ww, H: wh}
	if f.positioner != nil {
		w.bounds.X, w.bounds.Y = f.positioner.PositionWindow(w, f.desktop.visible(nil))
	}
	f.desktop.add(w)
	v.bounds = w.bounds
	v.hasBounds = true
	return w
}

// Buttons returns the buttons currently installed in each slot.
func (f *Frame) Buttons() ButtonSet { return f.buttons }

// ButtonOrder returns the slots left to right.
func (f *Frame) ButtonOrder() []ButtonType {
	out := make([]ButtonType, len(f.order))
	copy(out, f.order)
	return out
}

// ButtonsShown reports whether the buttons are currently in the menu bar.
func (f *Frame) ButtonsShown() bool { return f.buttonsShown }

func (f *Frame) ButtonsEnabled() bool { return f.buttonsEnabled }

// SetButtonsEnabled toggles the menu-bar buttons. A tabbed frame holding
// views adds or removes them immediately.
func (f *Frame) SetButtonsEnabled(enabled bool) {
	if enabled == f.buttonsEnabled {
		return
	}
	if !enabled {
		f.hideButtons()
		f.buttonsEnabled = false
	} else {
		f.buttonsEnabled = true
		if len(f.views) > 0 && f.mode == Tabbed {
			f.showButtons()
		}
	}
	f.fireFrame(FrameEvent{Kind: FrameChromeChanged})
}

func (f *Frame) SetIconifyButton(b Button) error {
	return f.setButton(ButtonIconify, b)
}

func (f *Frame) SetRestoreButton(b Button) error {
	return f.setButton(ButtonRestore, b)
}

func (f *Frame) SetCloseButton(b Button) error {
	return f.setButton(ButtonClose, b)
}

// setButton installs b into slot. A mismatched type is rejected; with the
// buttons disabled the call is ignored.
func (f *Frame) setButton(slot ButtonType, b Button) error {
	if b.Type != slot {
		return fmt.Errorf("%s button slot given a %s button: %w", slot, b.Type, ErrInvalidArgument)
	}
	if !f.buttonsEnabled {
		return nil
	}
	switch slot {
	case ButtonIconify:
		f.buttons.Iconify = b
	case ButtonRestore:
		f.buttons.Restore = b
	case ButtonClose:
		f.buttons.Close = b
	}
	if f.buttonsShown {
		f.buttonsShown = false
		f.removeButtonElements()
		f.showButtons()
	}
	f.fireFrame(FrameEvent{Kind: FrameChromeChanged})
	return nil
}

// SetButtonOrder changes the left-to-right slot order.
func (f *Frame) SetButtonOrder(order string) error {
	parsed, err := ParseButtonOrder(order)
	if err != nil {
		return err
	}
	f.order = parsed
	if f.buttonsShown {
		f.buttonsShown = false
		f.removeButtonElements()
		f.showButtons()
	}
	f.fireFrame(FrameEvent{Kind: FrameChromeChanged})
	return nil
}

// PressButton runs a menu-bar button against the active view.
func (f *Frame) PressButton(t ButtonType) error {
	if !f.buttonsShown {
		return fmt.Errorf("%s button is not shown: %w", t, ErrInvalidArgument)
	}
	v := f.active
	if v == nil {
		return nil
	}
	switch t {
	case ButtonIconify:
		return v.SetIconified()
	case ButtonRestore:
		return v.SetRestored()
	case ButtonClose:
		return v.Close()
	}
	return fmt.Errorf("button type %d: %w", int(t), ErrInvalidArgument)
}

func (f *Frame) showButtons() {
	if !f.buttonsEnabled || f.buttonsShown {
		return
	}
	for _, t := range f.order {
		b := f.buttons.get(t)
		f.menuBar.Add(MenuElement{ID: ButtonElementID(t), Label: b.Label, Enabled: true})
	}
	f.buttonsShown = true
}

func (f *Frame) hideButtons() {
	if !f.buttonsShown {
		return
	}
	f.removeButtonElements()
	f.buttonsShown = false
}

func (f *Frame) removeButtonElements() {
	for _, t := range []ButtonType{ButtonIconify, ButtonRestore, ButtonClose} {
		f.menuBar.Remove(ButtonElementID(t))
	}
}

func (f *Frame) TabCloseButtonEnabled() bool { return f.tabs.closeButton }

func (f *Frame) SetTabCloseButtonEnabled(enabled bool) {
	if f.tabs.closeButton == enabled {
		return
	}
	f.tabs.closeButton = enabled
	f.fireFrame(FrameEvent{Kind: FrameChromeChanged})
}

func (f *Frame) SystemMenu() SystemMenu { return f.systemMenu }

func (f *Frame) SetSystemMenu(m SystemMenu) {
	f.systemMenu = m
	f.fireFrame(FrameEvent{Kind: FrameChromeChanged})
}

// SystemMenuItems lists the system menu entries for the tab icon popup.
func (f *Frame) SystemMenuItems() []SystemMenuItem {
	return f.systemMenu.Items()
}

// InvokeSystemMenu runs a system menu entry against v.
func (f *Frame) InvokeSystemMenu(v *View, action SystemAction) error {
	if v == nil || v.frame != f {
		return fmt.Errorf("system menu: view not in frame: %w", ErrInvalidArgument)
	}
	switch action {
	case SystemRestore:
		return v.SetRestored()
	case SystemMinimize:
		return v.SetIconified()
	case SystemClose:
		return v.Close()
	}
	return fmt.Errorf("system menu action %d: %w", int(action), ErrInvalidArgument)
}
