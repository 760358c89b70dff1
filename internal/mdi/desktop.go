package mdi

import "fmt"

// Change names a desktop transition that a veto hook may reject.
type Change int

const (
	ChangeSelect Change = iota
	ChangeIconify
	ChangeDeiconify
	ChangeMaximize
	ChangeClose
)

func (c Change) String() string {
	switch c {
	case ChangeSelect:
		return "select"
	case ChangeIconify:
		return "iconify"
	case ChangeDeiconify:
		return "deiconify"
	case ChangeMaximize:
		return "maximize"
	case ChangeClose:
		return "close"
	default:
		return fmt.Sprintf("Change(%d)", int(c))
	}
}

// Veto may reject a user transition on a window. A non-nil error abandons the
// change before anything is mutated.
type Veto func(w *Window, change Change) error

// WindowPositioner places a window that was added without saved geometry.
// visible lists the other non-iconified windows sorted by title.
type WindowPositioner interface {
	PositionWindow(w *Window, visible []*Window) (x, y int)
}

const (
	minWindowWidth  = 12
	minWindowHeight = 3
)

// Desktop hosts the floating windows of a frame in windowed mode. Windows are
// kept in z-order, topmost last.
type Desktop struct {
	frame    *Frame
	windows  []*Window
	selected *Window
	width    int
	height   int
	veto     Veto
}

func newDesktop(f *Frame, width, height int) *Desktop {
	return &Desktop{frame: f, width: width, height: height}
}

func (d *Desktop) Size() (int, int) { return d.width, d.height }

// SetVeto installs the hook consulted before user transitions.
func (d *Desktop) SetVeto(v Veto) { d.veto = v }

// Windows returns the windows bottom to top.
func (d *Desktop) Windows() []*Window {
	if len(d.windows) == 0 {
		return nil
	}
	out := make([]*Window, len(d.windows))
	copy(out, d.windows)
	return out
}

func (d *Desktop) Selected() *Window { return d.selected }

// Iconify collapses w to an icon and emits Iconified.
func (d *Desktop) Iconify(w *Window) error {
	if err := d.owns(w); err != nil {
		return err
	}
	if w.iconified {
		return nil
	}
	if err := d.check(w, ChangeIconify); err != nil {
		return err
	}
	d.frame.iconifyWindow(w, userInitiated)
	return nil
}

// Deiconify reopens an iconified window and emits Restored.
func (d *Desktop) Deiconify(w *Window) error {
	if err := d.owns(w); err != nil {
		return err
	}
	if !w.iconified {
		return nil
	}
	if err := d.check(w, ChangeDeiconify); err != nil {
		return err
	}
	d.frame.deiconifyWindow(w, userInitiated)
	return nil
}

// Maximize promotes the whole frame to tabbed mode with w's view active.
func (d *Desktop) Maximize(w *Window) error {
	if err := d.owns(w); err != nil {
		return err
	}
	if err := d.check(w, ChangeMaximize); err != nil {
		return err
	}
	d.frame.desktopMaximized(w)
	return nil
}

// Close requests closing w's view. Closing is emitted first; the close policy
// decides whether the window goes away.
func (d *Desktop) Close(w *Window) error {
	if err := d.owns(w); err != nil {
		return err
	}
	if err := d.check(w, ChangeClose); err != nil {
		return err
	}
	d.frame.closeView(w.view)
	return nil
}

func (d *Desktop) Select(w *Window) error {
	if err := d.owns(w); err != nil {
		return err
	}
	if w.selected {
		d.raise(w)
		return nil
	}
	if err := d.check(w, ChangeSelect); err != nil {
		return err
	}
	d.frame.windowSelected(w, userInitiated)
	return nil
}

// SetBounds applies r clamped to the minimum window size.
func (d *Desktop) SetBounds(w *Window, r Rect) error {
	if err := d.owns(w); err != nil {
		return err
	}
	if r.W < minWindowWidth {
		r.W = minWindowWidth
	}
	if r.H < minWindowHeight {
		r.H = minWindowHeight
	}
	w.bounds = r
	return nil
}

func (d *Desktop) Move(w *Window, dx, dy int) error {
	if err := d.owns(w); err != nil {
		return err
	}
	r := w.bounds
	r.X += dx
	r.Y += dy
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if d.width > 0 && r.X > d.width-1 {
		r.X = d.width - 1
	}
	if d.height > 0 && r.Y > d.height-1 {
		r.Y = d.height - 1
	}
	return d.SetBounds(w, r)
}

func (d *Desktop) Resize(w *Window, dw, dh int) error {
	if err := d.owns(w); err != nil {
		return err
	}
	r := w.bounds
	r.W += dw
	r.H += dh
	return d.SetBounds(w, r)
}

// Raise moves w to the top of the z-order without selecting it.
func (d *Desktop) Raise(w *Window) error {
	if err := d.owns(w); err != nil {
		return err
	}
	d.raise(w)
	return nil
}

// WindowFor returns the window projecting v, or nil.
func (d *Desktop) WindowFor(v *View) *Window {
	return d.windowFor(v)
}

func (d *Desktop) windowFor(v *View) *Window {
	if v == nil {
		return nil
	}
	for _, w := range d.windows {
		if w.view == v {
			return w
		}
	}
	return nil
}

func (d *Desktop) owns(w *Window) error {
	if w == nil || w.desktop != d || w.disposed {
		return fmt.Errorf("window not on this desktop: %w", ErrInvalidArgument)
	}
	return nil
}

func (d *Desktop) check(w *Window, c Change) error {
	if d.veto == nil {
		return nil
	}
	if err := d.veto(w, c); err != nil {
		return fmt.Errorf("%s %q: %w: %v", c, w.view.title, ErrVetoed, err)
	}
	return nil
}

func (d *Desktop) add(w *Window) {
	w.desktop = d
	d.windows = append(d.windows, w)
}

// remove is the internal dispose path. It never emits events.
func (d *Desktop) remove(w *Window) {
	for i, candidate := range d.windows {
		if candidate == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			break
		}
	}
	if d.selected == w {
		d.selected = nil
	}
	w.selected = false
	w.disposed = true
}

func (d *Desktop) setSelected(w *Window) {
	if d.selected == w {
		d.raise(w)
		return
	}
	if d.selected != nil {
		d.selected.selected = false
	}
	d.selected = w
	if w != nil {
		w.selected = true
		d.raise(w)
	}
}

func (d *Desktop) raise(w *Window) {
	for i, candidate := range d.windows {
		if candidate == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			d.windows = append(d.windows, w)
			return
		}
	}
}

func (d *Desktop) resize(width, height int) {
	d.width = width
	d.height = height
}

// visible lists the non-iconified windows sorted by view title, empty titles
// first.
func (d *Desktop) visible(except *Window) []*Window {
	out := make([]*Window, 0, len(d.windows))
	for _, w := range d.windows {
		if w == except || w.iconified || w.disposed {
			continue
		}
		out = append(out, w)
	}
	sortWindows(out)
	return out
}

// Visible returns the non-iconified windows sorted by view title.
func (d *Desktop) Visible() []*Window {
	return d.visible(nil)
}
