package menu

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/windowsmenu"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
}

// Level describes a breadcrumb component for display purposes.
type Level struct {
	ID    string
	Title string
	Items []Item
}

// Context carries the frame snapshot menu loaders read from.
type Context struct {
	Mode         mdi.PaneMode
	Views        []ViewEntry
	ActiveID     string
	Static       []windowsmenu.StaticEntry
	SystemMenu   []mdi.SystemMenuItem
	WindowsTitle string
}

// ViewEntry is one row of the numbered window listing.
type ViewEntry struct {
	ID     string
	Number int
	Title  string
	State  mdi.State
	Active bool
}

// Active returns the entry for the active view.
func (c Context) Active() (ViewEntry, bool) {
	for _, entry := range c.Views {
		if entry.Active {
			return entry, true
		}
	}
	return ViewEntry{}, false
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// Target is what an Operation runs against.
type Target struct {
	Frame   *mdi.Frame
	Windows *windowsmenu.Menu
	NewView func(title string) *mdi.View
}

// Operation is a frame mutation produced by an action. The frame is not safe
// for concurrent use, so the UI runs Apply on its own goroutine.
type Operation struct {
	ID    string
	Label string
	Apply func(Target) (string, error)
}

// RenamePrompt requests interactive input for a view title.
type RenamePrompt struct {
	Context Context
	ViewID  string
	Initial string
}

// RootItems returns the top-level menu entries.
func RootItems() []Item {
	return []Item{
		{ID: "view", Label: "view"},
		{ID: "window", Label: "window"},
		{ID: "arrange", Label: "arrange"},
		{ID: "pane", Label: "pane"},
		{ID: "system", Label: "system"},
	}
}

// CategoryLoaders lists submenu loaders keyed by root item ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		"view":    loadViewMenu,
		"window":  loadWindowMenu,
		"arrange": loadArrangeMenu,
		"pane":    loadPaneMenu,
		"system":  loadSystemMenu,
	}
}

// ActionHandlers maps submenu identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	handlers := map[string]Action{
		"view:new":        ViewNewAction,
		"view:rename":     ViewRenameAction,
		"view:maximize":   ViewMaximizeAction,
		"view:minimize":   ViewMinimizeAction,
		"view:restore":    ViewRestoreAction,
		"view:close":      ViewCloseAction,
		"view:dispose":    ViewDisposeAction,
		"view:copy-title": ViewCopyTitleAction,
		"window":          WindowActivateAction,
		"pane:toggle":     PaneToggleAction,
		"pane:tabbed":     PaneTabbedAction,
		"pane:windowed":   PaneWindowedAction,
		"system:restore":  SystemMenuAction(mdi.SystemRestore),
		"system:minimize": SystemMenuAction(mdi.SystemMinimize),
		"system:close":    SystemMenuAction(mdi.SystemClose),
	}
	for _, item := range windowsmenu.DefaultItems {
		if item == windowsmenu.ItemSeparator {
			continue
		}
		handlers["arrange:"+item.ID()] = ArrangeAction(item)
	}
	return handlers
}

// ActionLoaders enumerates loaders for nested submenu actions.
func ActionLoaders() map[string]Loader {
	return map[string]Loader{
		"view:rename": loadViewPickMenu,
		"view:close":  loadViewPickMenu,
	}
}

func menuItemsFromIDs(ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Label: prettyLabel(id)})
	}
	return items
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func operation(id, label string, apply func(Target) (string, error)) tea.Cmd {
	return func() tea.Msg {
		return Operation{ID: id, Label: label, Apply: apply}
	}
}

func failed(err error) tea.Cmd {
	return func() tea.Msg { return ActionResult{Err: err} }
}
