package mdi

import (
	"sort"
	"strings"
)

// Window wraps a view while the frame is in windowed mode. It is discarded
// when the frame leaves windowed mode or the view closes.
type Window struct {
	view      *View
	desktop   *Desktop
	bounds    Rect
	iconified bool
	selected  bool
	disposed  bool
}

func (w *Window) View() *View       { return w.view }
func (w *Window) Title() string     { return w.view.title }
func (w *Window) Icon() Icon        { return w.view.icon }
func (w *Window) Bounds() Rect      { return w.bounds }
func (w *Window) IsIconified() bool { return w.iconified }
func (w *Window) IsSelected() bool  { return w.selected }
func (w *Window) IsDisposed() bool  { return w.disposed }

// windowSelected performs the activation handoff for windowed mode. The
// newly selected view is announced before the previous one is deactivated.
func (f *Frame) windowSelected(w *Window, tr transition) {
	prev := f.active
	f.desktop.setSelected(w)
	f.active = w.view
	if prev != w.view && tr.emits() {
		f.emit(w.view, EventActivated)
		if prev != nil && prev.frame == f {
			f.emit(prev, EventDeactivated)
		}
	}
	f.focusActive()
}

// iconifyWindow records the iconified state on the view and emits Iconified
// for user transitions. Reprojections only set the native flag.
func (f *Frame) iconifyWindow(w *Window, tr transition) {
	v := w.view
	if tr.emits() {
		v.wasIconified = true
		v.bounds = w.bounds
		v.hasBounds = true
		v.state = StateIconified
		f.emit(v, EventIconified)
	}
	w.iconified = true
}

func (f *Frame) deiconifyWindow(w *Window, tr transition) {
	if !w.selected {
		f.windowSelected(w, tr)
	}
	v := w.view
	w.iconified = false
	v.wasIconified = false
	v.state = StateRestored
	if tr.emits() {
		f.emit(v, EventRestored)
	}
}

// maximizeWindow selects w, reopens it silently when iconified, promotes the
// frame to tabbed mode and emits Maximized once the tabs are in place.
func (f *Frame) maximizeWindow(w *Window) {
	v := w.view
	f.prepareMaximize(w)
	if f.mode == Windowed {
		f.changeView()
	}
	v.state = StateMaximized
	f.emit(v, EventMaximized)
}

// desktopMaximized is the desktop's maximize callback. Maximized is emitted
// while the frame is still windowed; the switch to tabs follows.
func (f *Frame) desktopMaximized(w *Window) {
	v := w.view
	f.prepareMaximize(w)
	v.bounds = w.bounds
	v.hasBounds = true
	v.state = StateMaximized
	f.emit(v, EventMaximized)
	if f.mode == Windowed && v.frame == f {
		f.changeView()
	}
}

func (f *Frame) prepareMaximize(w *Window) {
	if !w.selected {
		f.windowSelected(w, userInitiated)
	}
	if w.iconified {
		f.deiconifyWindow(w, reprojection)
	}
	w.view.wasIconified = false
}

// SortViewsByTitle orders views by title, empty titles first. Views with equal
// titles keep their relative order.
func SortViewsByTitle(views []*View) {
	sort.SliceStable(views, func(i, j int) bool {
		return lessTitle(views[i], views[j])
	})
}

func sortWindows(windows []*Window) {
	sort.SliceStable(windows, func(i, j int) bool {
		return lessTitle(windows[i].view, windows[j].view)
	})
}

func lessTitle(a, b *View) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	if a.title == "" || b.title == "" {
		return a.title == "" && b.title != ""
	}
	return strings.Compare(a.title, b.title) < 0
}
