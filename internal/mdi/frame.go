package mdi

import (
	"errors"
	"fmt"
)

// Options configures a new frame.
type Options struct {
	Mode           PaneMode
	Width          int
	Height         int
	ButtonOrder    string
	ButtonsEnabled bool
	TabCloseButton bool
	SystemMenu     SystemMenu
	MenuBar        MenuBar
}

func DefaultOptions() Options {
	return Options{
		Mode:           Tabbed,
		Width:          80,
		Height:         24,
		ButtonOrder:    DefaultButtonOrder,
		ButtonsEnabled: true,
		SystemMenu:     DefaultSystemMenu(),
	}
}

// Frame owns an ordered collection of views and projects them either as tabs
// or as floating windows. All methods must be called from one goroutine.
type Frame struct {
	mode   PaneMode
	views  []*View
	active *View

	tabs    *TabStrip
	desktop *Desktop

	menuBar        MenuBar
	buttons        ButtonSet
	order          []ButtonType
	buttonsEnabled bool
	buttonsShown   bool
	systemMenu     SystemMenu

	counter    int
	locations  locationGenerator
	positioner WindowPositioner

	listeners    []frameListenerEntry
	nextListener ListenerID
}

// NewFrame builds an empty frame.
func NewFrame(opts Options) (*Frame, error) {
	if !opts.Mode.valid() {
		return nil, fmt.Errorf("pane mode %d: %w", int(opts.Mode), ErrInvalidArgument)
	}
	orderText := opts.ButtonOrder
	if orderText == "" {
		orderText = DefaultButtonOrder
	}
	order, err := ParseButtonOrder(orderText)
	if err != nil {
		return nil, err
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("frame size %dx%d: %w", opts.Width, opts.Height, ErrInvalidArgument)
	}
	menuBar := opts.MenuBar
	if menuBar == nil {
		menuBar = NewMenuBar()
	}
	systemMenu := opts.SystemMenu
	if systemMenu == (SystemMenu{}) {
		systemMenu = DefaultSystemMenu()
	}
	f := &Frame{
		mode:           opts.Mode,
		tabs:           newTabStrip(),
		menuBar:        menuBar,
		buttons:        defaultButtons(),
		order:          order,
		buttonsEnabled: opts.ButtonsEnabled,
		systemMenu:     systemMenu,
	}
	f.tabs.closeButton = opts.TabCloseButton
	f.desktop = newDesktop(f, opts.Width, opts.Height)
	return f, nil
}

func (f *Frame) PaneMode() PaneMode { return f.mode }
func (f *Frame) Tabs() *TabStrip    { return f.tabs }
func (f *Frame) Desktop() *Desktop  { return f.desktop }
func (f *Frame) MenuBar() MenuBar   { return f.menuBar }

// Views returns a copy of the views in insertion order.
func (f *Frame) Views() []*View {
	if len(f.views) == 0 {
		return nil
	}
	out := make([]*View, len(f.views))
	copy(out, f.views)
	return out
}

// ActiveView returns the active view. It is nil for an empty frame and may
// be nil in windowed mode when no window is selected.
func (f *Frame) ActiveView() *View { return f.active }

// Resize updates the area available to the projections.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.desktop.resize(width, height)
}

func (f *Frame) SetWindowPositioner(p WindowPositioner) { f.positioner = p }

func (f *Frame) AddFrameListener(l FrameListener) ListenerID {
	if l == nil {
		return 0
	}
	f.nextListener++
	f.listeners = append(f.listeners, frameListenerEntry{id: f.nextListener, listener: l})
	return f.nextListener
}

func (f *Frame) RemoveFrameListener(id ListenerID) bool {
	for i, entry := range f.listeners {
		if entry.id == id {
			f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// AddView attaches v, projects it in the current pane mode, selects it and
// emits Opened.
func (f *Frame) AddView(v *View) error {
	if v == nil {
		return fmt.Errorf("add view: nil view: %w", ErrInvalidArgument)
	}
	if v.frame != nil || v.closed {
		return fmt.Errorf("add view %q: view already attached or closed: %w", v.title, ErrInvalidArgument)
	}
	f.counter++
	if v.title == "" {
		v.title = fmt.Sprintf("Untitled%d", f.counter)
	}
	v.frame = f
	f.views = append(f.views, v)

	switch f.mode {
	case Tabbed:
		if len(f.views) == 1 {
			f.showButtons()
		}
		f.tabs.insert(f.tabs.Len(), tabFor(v))
		v.state = StateMaximized
		f.selectView(v, userInitiated)
	case Windowed:
		w := f.newWindow(v)
		v.state = StateRestored
		f.windowSelected(w, userInitiated)
	}
	f.emit(v, EventOpened)
	return nil
}

// SetActiveView makes v the active view of the current projection.
func (f *Frame) SetActiveView(v *View) error {
	if v == nil {
		return fmt.Errorf("set active view: nil view: %w", ErrInvalidArgument)
	}
	if v.frame != f {
		return fmt.Errorf("set active view %q: view not in frame: %w", v.title, ErrInvalidArgument)
	}
	if f.mode == Windowed {
		if w := f.desktop.windowFor(v); w != nil && !w.selected {
			if err := f.desktop.check(w, ChangeSelect); err != nil {
				return err
			}
		}
	}
	f.selectView(v, userInitiated)
	return nil
}

// NextFocusableView returns the view after v, wrapping to the first. A frame
// holding only v returns v.
func (f *Frame) NextFocusableView(v *View) (*View, error) {
	if v == nil {
		return nil, fmt.Errorf("next focusable view: nil view: %w", ErrInvalidArgument)
	}
	i := f.indexOf(v)
	if i < 0 {
		return nil, fmt.Errorf("next focusable view %q: view not in frame: %w", v.title, ErrInvalidArgument)
	}
	return f.views[(i+1)%len(f.views)], nil
}

// PreviousFocusableView returns the view before v, wrapping to the last.
func (f *Frame) PreviousFocusableView(v *View) (*View, error) {
	if v == nil {
		return nil, fmt.Errorf("previous focusable view: nil view: %w", ErrInvalidArgument)
	}
	i := f.indexOf(v)
	if i < 0 {
		return nil, fmt.Errorf("previous focusable view %q: view not in frame: %w", v.title, ErrInvalidArgument)
	}
	return f.views[(i+len(f.views)-1)%len(f.views)], nil
}

// Close tears the frame down by closing every view. Views whose close policy
// is DoNothingOnClose stay.
func (f *Frame) Close() error {
	var errs []error
	for _, v := range f.Views() {
		if v.frame != f {
			continue
		}
		if err := v.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *Frame) indexOf(v *View) int {
	for i, candidate := range f.views {
		if candidate == v {
			return i
		}
	}
	return -1
}

func (f *Frame) selectView(v *View, tr transition) {
	switch f.mode {
	case Tabbed:
		f.tabs.setSelected(f.tabs.IndexOf(v))
		f.tabSelected(v, tr)
	case Windowed:
		if w := f.desktop.windowFor(v); w != nil {
			f.windowSelected(w, tr)
		}
	}
}

// tabSelected is the tab-selection bookkeeping. The first selection ever
// emits Activated alone; later user selections emit Activated for the new
// view before Deactivated for the previous one.
func (f *Frame) tabSelected(v *View, tr transition) {
	prev := f.active
	f.active = v
	switch {
	case prev == nil:
		f.emit(v, EventActivated)
	case prev != v && tr.emits():
		f.emit(v, EventActivated)
		if prev.frame == f {
			f.emit(prev, EventDeactivated)
		}
	}
	f.focusActive()
}

func (f *Frame) focusActive() {
	if f.active != nil && f.active.focus != nil {
		f.active.focus.Focus()
	}
}

func (f *Frame) closeView(v *View) {
	f.emit(v, EventClosing)
	if v.frame != f || v.policy == DoNothingOnClose {
		return
	}
	f.removeView(v)
}

// removeView drops v from the frame. The successor is derived from v's
// current index. When v was active the successor is selected before v goes
// away, so v sees Deactivated ahead of Closed and Closed stays its last event.
func (f *Frame) removeView(v *View) {
	i := f.indexOf(v)
	if i < 0 {
		return
	}
	next := f.views[(i+1)%len(f.views)]
	wasActive := f.active == v

	switch f.mode {
	case Tabbed:
		if t := f.tabs.IndexOf(v); t >= 0 {
			f.tabs.remove(t)
		}
	case Windowed:
		if w := f.desktop.windowFor(v); w != nil {
			f.desktop.remove(w)
		}
	}
	if wasActive && next != v {
		f.selectView(next, userInitiated)
	}
	f.views = append(f.views[:i], f.views[i+1:]...)
	if f.active == v {
		f.active = nil
	}

	f.emit(v, EventClosed)
	v.frame = nil
	v.closed = true

	if len(f.views) == 0 && f.mode == Tabbed {
		f.hideButtons()
	}
}

func (f *Frame) viewUpdated(v *View) {
	switch f.mode {
	case Tabbed:
		if i := f.tabs.IndexOf(v); i >= 0 {
			f.tabs.setTitleAt(i, v.title)
			f.tabs.setIconAt(i, v.icon)
		}
	}
	f.fireFrame(FrameEvent{Kind: FrameViewUpdated, View: ViewEvent{View: v}})
}

// emit delivers a view event to the view's listeners and then mirrors it to
// the frame listeners.
func (f *Frame) emit(v *View, kind EventKind) {
	v.fire(kind)
	f.fireFrame(FrameEvent{Kind: FrameViewEvent, View: ViewEvent{View: v, Kind: kind}})
}

func (f *Frame) fireFrame(e FrameEvent) {
	if e.Kind != FramePaneChanged {
		e.OldMode = f.mode
		e.NewMode = f.mode
	}
	dispatchFrame(f.listeners, e)
}

func tabFor(v *View) Tab {
	return Tab{Title: v.title, Icon: v.icon, View: v}
}
