// Package windowsmenu keeps a "Windows" menu in step with a frame: the static
// arrange/restore/close entries with their enablement and a numbered listing
// of the open views.
package windowsmenu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/termdi/internal/logging/events"
	"github.com/atomicstack/termdi/internal/mdi"
)

const (
	DefaultTitle   = "Windows"
	NoWindowsTitle = "No Windows"
)

// StaticEntry is a static item with its current enablement.
type StaticEntry struct {
	Item     Item
	Name     string
	Mnemonic rune
	Enabled  bool
}

// Entry is one row of the window listing.
type Entry struct {
	Number  int
	View    *mdi.View
	Title   string
	State   mdi.State
	Checked bool
	Enabled bool
}

// Menu tracks a frame and recomputes its listing on every frame event.
type Menu struct {
	frame     *mdi.Frame
	title     string
	items     []Item
	entries   []Entry
	listener  mdi.ListenerID
	onRefresh func()
}

type Option func(*Menu)

func WithTitle(title string) Option {
	return func(m *Menu) {
		if title != "" {
			m.title = title
		}
	}
}

// WithItems replaces the static layout. A trailing separator is added when
// the layout does not end with one.
func WithItems(items ...Item) Option {
	return func(m *Menu) {
		if len(items) > 0 {
			m.items = append([]Item(nil), items...)
		}
	}
}

// WithRefreshHook registers fn to run after every recomputation.
func WithRefreshHook(fn func()) Option {
	return func(m *Menu) { m.onRefresh = fn }
}

// New attaches a menu to frame.
func New(frame *mdi.Frame, opts ...Option) *Menu {
	m := &Menu{
		frame: frame,
		title: DefaultTitle,
		items: append([]Item(nil), DefaultItems...),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.items[len(m.items)-1] != ItemSeparator {
		m.items = append(m.items, ItemSeparator)
	}
	m.listener = frame.AddFrameListener(mdi.FrameListenerFunc(func(mdi.FrameEvent) {
		m.Refresh()
	}))
	m.Refresh()
	return m
}

// Close detaches the menu from its frame.
func (m *Menu) Close() {
	m.frame.RemoveFrameListener(m.listener)
}

func (m *Menu) Title() string     { return m.title }
func (m *Menu) Frame() *mdi.Frame { return m.frame }

// SetTitle renames the menu. An empty title restores DefaultTitle.
func (m *Menu) SetTitle(title string) {
	if title == "" {
		title = DefaultTitle
	}
	m.title = title
}

// SetWindowPositioner installs p as the frame's placement hook for new
// windows.
func (m *Menu) SetWindowPositioner(p mdi.WindowPositioner) {
	m.frame.SetWindowPositioner(p)
}

// Refresh rebuilds the listing: views sorted by title, numbered from one,
// with the active view checked.
func (m *Menu) Refresh() {
	views := m.frame.Views()
	mdi.SortViewsByTitle(views)
	entries := make([]Entry, 0, len(views))
	for i, v := range views {
		entries = append(entries, Entry{
			Number:  i + 1,
			View:    v,
			Title:   v.Title(),
			State:   v.State(),
			Checked: v.IsSelected(),
			Enabled: true,
		})
	}
	if len(entries) == 0 {
		entries = append(entries, Entry{Title: NoWindowsTitle})
	}
	m.entries = entries
	if m.onRefresh != nil {
		m.onRefresh()
	}
}

// Entries returns a copy of the current listing.
func (m *Menu) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Static returns the static items in layout order with their enablement.
func (m *Menu) Static() []StaticEntry {
	out := make([]StaticEntry, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, StaticEntry{
			Item:     item,
			Name:     item.Name(),
			Mnemonic: item.Mnemonic(),
			Enabled:  m.Enabled(item),
		})
	}
	return out
}

// Enabled reports whether item can currently be activated.
func (m *Menu) Enabled(item Item) bool {
	if item == ItemSeparator {
		return false
	}
	hasViews := len(m.frame.Views()) > 0
	if item.Bulk() {
		return hasViews
	}
	active := m.frame.ActiveView()
	if active == nil {
		return false
	}
	switch item {
	case ItemClose:
		return true
	case ItemRestore:
		return active.IsIconified() || active.IsMaximized()
	case ItemMaximize:
		return !active.IsMaximized()
	case ItemMinimize:
		return !active.IsIconified()
	}
	return false
}

// Activate runs item. Disabled items are ignored.
func (m *Menu) Activate(item Item) error {
	if !m.Enabled(item) {
		return nil
	}
	active := m.frame.ActiveView()
	switch item {
	case ItemCascade:
		return m.arrange(item, Cascade)
	case ItemTile:
		return m.arrange(item, Tile)
	case ItemTileHorizontal:
		return m.arrange(item, TileHorizontally)
	case ItemTileVertical:
		return m.arrange(item, TileVertically)
	case ItemRestore:
		return active.SetRestored()
	case ItemMinimize:
		return active.SetIconified()
	case ItemMaximize:
		return active.SetMaximized()
	case ItemClose:
		return active.Close()
	case ItemRestoreAll:
		return m.each(func(v *mdi.View) error {
			if v.IsIconified() || v.IsMaximized() {
				return v.SetRestored()
			}
			return nil
		})
	case ItemMinimizeAll:
		return m.each((*mdi.View).SetIconified)
	case ItemMaximizeAll:
		return m.each((*mdi.View).SetMaximized)
	case ItemCloseAll:
		return m.each((*mdi.View).Close)
	}
	return fmt.Errorf("windows menu item %d: %w", int(item), mdi.ErrInvalidArgument)
}

// ActivateEntry brings the listed view forward: maximized in tabbed mode,
// restored and selected in windowed mode.
func (m *Menu) ActivateEntry(v *mdi.View) error {
	if v == nil || v.Frame() != m.frame {
		return fmt.Errorf("windows menu entry: %w", mdi.ErrInvalidArgument)
	}
	if m.frame.PaneMode() == mdi.Tabbed {
		return v.SetMaximized()
	}
	if v.IsIconified() {
		if err := v.SetRestored(); err != nil {
			return err
		}
	}
	if !v.IsSelected() {
		return v.SetSelected(true)
	}
	return nil
}

// ActivateNumber activates the listing entry numbered n.
func (m *Menu) ActivateNumber(n int) error {
	for _, e := range m.entries {
		if e.Number == n && e.View != nil {
			return m.ActivateEntry(e.View)
		}
	}
	return fmt.Errorf("windows menu entry %d: %w", n, mdi.ErrInvalidArgument)
}

func (m *Menu) arrange(item Item, fn arrangeFunc) error {
	if m.frame.PaneMode() == mdi.Tabbed {
		m.frame.ChangeView()
	}
	n, err := fn(m.frame.Desktop())
	if err != nil {
		return fmt.Errorf("%s: %w", item.Name(), err)
	}
	events.Arrange.Apply(item.ID(), n)
	if n > 0 {
		m.Refresh()
	}
	return nil
}

// each applies fn to a snapshot of the views, skipping views closed along
// the way.
func (m *Menu) each(fn func(*mdi.View) error) error {
	var errs []error
	for _, v := range m.frame.Views() {
		if v.Frame() != m.frame {
			continue
		}
		if err := fn(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
