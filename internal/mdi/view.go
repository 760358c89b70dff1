package mdi

import (
	"fmt"

	"github.com/google/uuid"
)

// Icon is a short glyph drawn in front of a view title.
type Icon string

// Content renders the body of a view into the given cell area.
type Content interface {
	Render(width, height int) string
}

// Focuser receives default focus when its view becomes active.
type Focuser interface {
	Focus()
}

// View is a hosted unit of content. Its logical state is independent of the
// container currently projecting it.
type View struct {
	id      uuid.UUID
	frame   *Frame
	closed  bool
	title   string
	icon    Icon
	focus   Focuser
	content Content
	policy  ClosePolicy

	state        State
	wasIconified bool
	bounds       Rect
	hasBounds    bool

	listeners    []viewListenerEntry
	nextListener ListenerID
}

// ViewOption customises a view at construction.
type ViewOption func(*View)

func WithIcon(icon Icon) ViewOption {
	return func(v *View) { v.icon = icon }
}

func WithContent(c Content) ViewOption {
	return func(v *View) { v.content = c }
}

func WithFocusTarget(f Focuser) ViewOption {
	return func(v *View) { v.focus = f }
}

func WithClosePolicy(p ClosePolicy) ViewOption {
	return func(v *View) {
		if p.valid() {
			v.policy = p
		}
	}
}

// WithBounds seeds the geometry used the first time the view gets a window.
func WithBounds(r Rect) ViewOption {
	return func(v *View) {
		if !r.Empty() {
			v.bounds = r
			v.hasBounds = true
		}
	}
}

// NewView creates a detached view. An empty title is replaced with
// "Untitled<N>" when the view is added to a frame.
func NewView(title string, opts ...ViewOption) *View {
	v := &View{
		id:     uuid.New(),
		title:  title,
		policy: DisposeOnClose,
		state:  StateRestored,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View) ID() uuid.UUID            { return v.id }
func (v *View) Title() string            { return v.title }
func (v *View) Icon() Icon               { return v.icon }
func (v *View) Content() Content         { return v.content }
func (v *View) FocusTarget() Focuser     { return v.focus }
func (v *View) ClosePolicy() ClosePolicy { return v.policy }

// Frame returns the owning frame, or nil while detached.
func (v *View) Frame() *Frame { return v.frame }

// WasIconified reports whether the view will come back iconified the next
// time the frame switches to windowed mode.
func (v *View) WasIconified() bool { return v.wasIconified }

// Bounds returns the geometry saved for the view's window.
func (v *View) Bounds() (Rect, bool) { return v.bounds, v.hasBounds }

func (v *View) SetContent(c Content)     { v.content = c }
func (v *View) SetFocusTarget(f Focuser) { v.focus = f }

// SetTitle updates the title and the container currently projecting the view.
func (v *View) SetTitle(title string) {
	v.title = title
	if v.frame != nil {
		v.frame.viewUpdated(v)
	}
}

// SetIcon updates the icon and the container currently projecting the view.
func (v *View) SetIcon(icon Icon) {
	v.icon = icon
	if v.frame != nil {
		v.frame.viewUpdated(v)
	}
}

func (v *View) SetClosePolicy(p ClosePolicy) error {
	if !p.valid() {
		return fmt.Errorf("close policy %d: %w", int(p), ErrInvalidArgument)
	}
	v.policy = p
	return nil
}

// State reports the logical state. Every view of a tabbed frame reports
// StateMaximized whatever was stored.
func (v *View) State() State {
	if v.frame != nil && v.frame.mode == Tabbed {
		return StateMaximized
	}
	return v.state
}

func (v *View) IsMaximized() bool { return v.State() == StateMaximized }
func (v *View) IsIconified() bool { return v.State() == StateIconified }
func (v *View) IsRestored() bool  { return v.State() == StateRestored }

// IsSelected reports whether v is its frame's active view.
func (v *View) IsSelected() bool {
	return v.frame != nil && v.frame.active == v
}

// IsClosed reports whether the view was removed from a frame.
func (v *View) IsClosed() bool { return v.closed }

func (v *View) AddViewListener(l ViewListener) ListenerID {
	if l == nil {
		return 0
	}
	v.nextListener++
	v.listeners = append(v.listeners, viewListenerEntry{id: v.nextListener, listener: l})
	return v.nextListener
}

func (v *View) RemoveViewListener(id ListenerID) bool {
	for i, entry := range v.listeners {
		if entry.id == id {
			v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (v *View) owner() (*Frame, error) {
	if v.frame == nil {
		return nil, fmt.Errorf("view %q is not attached to a frame: %w", v.title, ErrInvalidArgument)
	}
	return v.frame, nil
}

// SetMaximized makes the view active and switches the frame to tabbed mode.
// A second call only re-selects the view.
func (v *View) SetMaximized() error {
	f, err := v.owner()
	if err != nil {
		return err
	}
	if f.mode == Tabbed {
		return f.SetActiveView(v)
	}
	w := f.desktop.windowFor(v)
	if w == nil {
		return nil
	}
	if err := f.desktop.check(w, ChangeMaximize); err != nil {
		return err
	}
	f.maximizeWindow(w)
	return nil
}

// SetIconified iconifies the view's window, switching a tabbed frame to
// windowed mode first. Exactly one Iconified event is emitted.
func (v *View) SetIconified() error {
	f, err := v.owner()
	if err != nil {
		return err
	}
	if f.mode == Windowed {
		w := f.desktop.windowFor(v)
		if w == nil || w.iconified {
			return nil
		}
		if err := f.desktop.check(w, ChangeIconify); err != nil {
			return err
		}
		f.iconifyWindow(w, userInitiated)
		return nil
	}
	f.changeView()
	w := f.desktop.windowFor(v)
	if w == nil {
		return nil
	}
	// the pane switch is a reprojection; only the iconify itself can be vetoed
	if err := f.desktop.check(w, ChangeIconify); err != nil {
		return err
	}
	if w.iconified {
		// the switch already brought the window back as an icon
		f.emit(v, EventIconified)
		return nil
	}
	f.iconifyWindow(w, userInitiated)
	return nil
}

// SetRestored shows the view as a restored window. Exactly one Restored
// event is emitted per state change; restoring a restored window only
// selects it.
func (v *View) SetRestored() error {
	f, err := v.owner()
	if err != nil {
		return err
	}
	if f.mode == Windowed {
		w := f.desktop.windowFor(v)
		if w == nil {
			return nil
		}
		if !w.iconified && v.state == StateRestored {
			return f.SetActiveView(v)
		}
		change := ChangeSelect
		if w.iconified {
			change = ChangeDeiconify
		}
		if err := f.desktop.check(w, change); err != nil {
			return err
		}
	} else {
		f.changeView()
		w := f.desktop.windowFor(v)
		if w == nil {
			return nil
		}
		change := ChangeSelect
		if w.iconified {
			change = ChangeDeiconify
		}
		if err := f.desktop.check(w, change); err != nil {
			return err
		}
	}
	w := f.desktop.windowFor(v)
	if w == nil {
		return nil
	}
	if w.iconified {
		f.deiconifyWindow(w, userInitiated)
		return nil
	}
	f.windowSelected(w, userInitiated)
	v.wasIconified = false
	v.state = StateRestored
	f.emit(v, EventRestored)
	return nil
}

// SetSelected(true) makes v the active view. SetSelected(false) hands the
// activation to the next focusable view when v is active.
func (v *View) SetSelected(selected bool) error {
	f, err := v.owner()
	if err != nil {
		return err
	}
	if selected {
		return f.SetActiveView(v)
	}
	if f.active != v {
		return nil
	}
	next, err := f.NextFocusableView(v)
	if err != nil {
		return err
	}
	if next == v {
		return nil
	}
	return f.SetActiveView(next)
}

// Close emits Closing and then removes the view unless a listener switched
// its close policy to DoNothingOnClose.
func (v *View) Close() error {
	f, err := v.owner()
	if err != nil {
		return err
	}
	if f.mode == Windowed {
		if w := f.desktop.windowFor(v); w != nil {
			if err := f.desktop.check(w, ChangeClose); err != nil {
				return err
			}
		}
	}
	f.closeView(v)
	return nil
}

// Dispose removes the view without a Closing event. It does nothing when the
// close policy is DoNothingOnClose.
func (v *View) Dispose() error {
	f, err := v.owner()
	if err != nil {
		return err
	}
	if v.policy != DisposeOnClose {
		return nil
	}
	f.removeView(v)
	return nil
}

func (v *View) fire(kind EventKind) {
	dispatchView(v.listeners, ViewEvent{View: v, Kind: kind})
}
