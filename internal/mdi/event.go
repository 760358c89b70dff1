package mdi

import "fmt"

// EventKind enumerates the notifications a view delivers to its listeners.
type EventKind int

const (
	EventActivated EventKind = iota
	EventDeactivated
	EventOpened
	EventClosed
	EventIconified
	EventRestored
	EventMaximized
	EventClosing
)

var eventNames = [...]string{
	EventActivated:   "activated",
	EventDeactivated: "deactivated",
	EventOpened:      "opened",
	EventClosed:      "closed",
	EventIconified:   "iconified",
	EventRestored:    "restored",
	EventMaximized:   "maximized",
	EventClosing:     "closing",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// ViewEvent is delivered synchronously to view and frame listeners.
type ViewEvent struct {
	View *View
	Kind EventKind
}

func (e ViewEvent) String() string {
	title := "<nil>"
	if e.View != nil {
		title = e.View.Title()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, title)
}

// FrameEventKind distinguishes frame notifications.
type FrameEventKind int

const (
	// FramePaneChanged follows every pane mode switch.
	FramePaneChanged FrameEventKind = iota
	// FrameViewEvent mirrors a view event after the view's own listeners ran.
	FrameViewEvent
	// FrameViewUpdated reports a title or icon change.
	FrameViewUpdated
	// FrameChromeChanged reports a change to the menu bar buttons or the
	// system menu configuration.
	FrameChromeChanged
)

func (k FrameEventKind) String() string {
	switch k {
	case FramePaneChanged:
		return "pane-changed"
	case FrameViewEvent:
		return "view-event"
	case FrameViewUpdated:
		return "view-updated"
	case FrameChromeChanged:
		return "chrome-changed"
	default:
		return fmt.Sprintf("FrameEventKind(%d)", int(k))
	}
}

// FrameEvent is delivered to frame listeners.
type FrameEvent struct {
	Kind    FrameEventKind
	OldMode PaneMode
	NewMode PaneMode
	View    ViewEvent
}

// ViewListener receives view events.
type ViewListener interface {
	HandleViewEvent(ViewEvent)
}

// ViewListenerFunc adapts a function to ViewListener.
type ViewListenerFunc func(ViewEvent)

func (f ViewListenerFunc) HandleViewEvent(e ViewEvent) { f(e) }

// FrameListener receives frame events.
type FrameListener interface {
	HandleFrameEvent(FrameEvent)
}

// FrameListenerFunc adapts a function to FrameListener.
type FrameListenerFunc func(FrameEvent)

func (f FrameListenerFunc) HandleFrameEvent(e FrameEvent) { f(e) }

// ViewAdapter routes each event kind to an optional callback. Nil callbacks
// are skipped.
type ViewAdapter struct {
	OnActivated   func(ViewEvent)
	OnDeactivated func(ViewEvent)
	OnOpened      func(ViewEvent)
	OnClosed      func(ViewEvent)
	OnIconified   func(ViewEvent)
	OnRestored    func(ViewEvent)
	OnMaximized   func(ViewEvent)
	OnClosing     func(ViewEvent)
}

func (a ViewAdapter) HandleViewEvent(e ViewEvent) {
	var fn func(ViewEvent)
	switch e.Kind {
	case EventActivated:
		fn = a.OnActivated
	case EventDeactivated:
		fn = a.OnDeactivated
	case EventOpened:
		fn = a.OnOpened
	case EventClosed:
		fn = a.OnClosed
	case EventIconified:
		fn = a.OnIconified
	case EventRestored:
		fn = a.OnRestored
	case EventMaximized:
		fn = a.OnMaximized
	case EventClosing:
		fn = a.OnClosing
	}
	if fn != nil {
		fn(e)
	}
}

// ListenerID identifies a registration for later removal.
type ListenerID int

type viewListenerEntry struct {
	id       ListenerID
	listener ViewListener
}

type frameListenerEntry struct {
	id       ListenerID
	listener FrameListener
}

// dispatchView calls every listener in registration order over a snapshot of
// the list. A panicking listener aborts the remaining ones.
func dispatchView(entries []viewListenerEntry, e ViewEvent) {
	if len(entries) == 0 {
		return
	}
	snapshot := make([]viewListenerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		entry.listener.HandleViewEvent(e)
	}
}

func dispatchFrame(entries []frameListenerEntry, e FrameEvent) {
	if len(entries) == 0 {
		return
	}
	snapshot := make([]frameListenerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		entry.listener.HandleFrameEvent(e)
	}
}
