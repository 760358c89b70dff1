package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/logging/events"
	"github.com/atomicstack/termdi/internal/mdi"
)

var (
	writeClipboardFn = clipboard.WriteAll

	errNoActiveView = errors.New("no active view")
)

func loadViewMenu(Context) ([]Item, error) {
	items := []string{
		"new",
		"rename",
		"maximize",
		"minimize",
		"restore",
		"close",
		"dispose",
		"copy-title",
	}
	return menuItemsFromIDs(items), nil
}

// loadViewPickMenu lists the views, active one first.
func loadViewPickMenu(ctx Context) ([]Item, error) {
	ordered := make([]ViewEntry, 0, len(ctx.Views))
	var active *ViewEntry
	for _, entry := range ctx.Views {
		if entry.Active {
			e := entry
			active = &e
			continue
		}
		ordered = append(ordered, entry)
	}
	if active != nil {
		ordered = append([]ViewEntry{*active}, ordered...)
	}
	items := make([]Item, 0, len(ordered))
	for _, entry := range ordered {
		label := entry.Title
		if entry.Active {
			label = "[active] " + label
		}
		items = append(items, Item{ID: entry.ID, Label: label})
	}
	return items, nil
}

// FindView resolves a view by its string ID.
func FindView(f *mdi.Frame, id string) *mdi.View {
	id = strings.TrimSpace(id)
	if f == nil || id == "" {
		return nil
	}
	for _, v := range f.Views() {
		if v.ID().String() == id {
			return v
		}
	}
	return nil
}

func splitViewIDs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})
	ids := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		ids = append(ids, part)
	}
	return ids
}

func ViewNewAction(ctx Context, item Item) tea.Cmd {
	return operation("view:new", item.Label, func(t Target) (string, error) {
		if t.NewView == nil {
			return "", fmt.Errorf("no view factory configured")
		}
		v := t.NewView("")
		if err := t.Frame.AddView(v); err != nil {
			return "", err
		}
		events.View.Create(v.ID().String(), v.Title())
		return fmt.Sprintf("Opened %s", v.Title()), nil
	})
}

func ViewRenameAction(ctx Context, item Item) tea.Cmd {
	target := strings.TrimSpace(item.ID)
	if target == "" {
		return failed(fmt.Errorf("invalid view selection"))
	}
	initial := ""
	for _, entry := range ctx.Views {
		if entry.ID == target {
			initial = entry.Title
			break
		}
	}
	events.View.RenamePrompt(target)
	return func() tea.Msg {
		return RenamePrompt{Context: ctx, ViewID: target, Initial: initial}
	}
}

// RenameCommand retitles the view with the given ID.
func RenameCommand(viewID, title string) tea.Cmd {
	return operation("view:rename", title, func(t Target) (string, error) {
		v := FindView(t.Frame, viewID)
		if v == nil {
			return "", fmt.Errorf("view %s: %w", viewID, mdi.ErrInvalidArgument)
		}
		old := v.Title()
		v.SetTitle(title)
		events.View.Rename(viewID, title)
		return fmt.Sprintf("Renamed %s to %s", old, title), nil
	})
}

func ViewMaximizeAction(ctx Context, item Item) tea.Cmd {
	return activeOperation("view:maximize", item.Label, "Maximized", (*mdi.View).SetMaximized)
}

func ViewMinimizeAction(ctx Context, item Item) tea.Cmd {
	return activeOperation("view:minimize", item.Label, "Minimized", (*mdi.View).SetIconified)
}

func ViewRestoreAction(ctx Context, item Item) tea.Cmd {
	return activeOperation("view:restore", item.Label, "Restored", (*mdi.View).SetRestored)
}

func ViewDisposeAction(ctx Context, item Item) tea.Cmd {
	return activeOperation("view:dispose", item.Label, "Disposed", (*mdi.View).Dispose)
}

func ViewCloseAction(ctx Context, item Item) tea.Cmd {
	ids := splitViewIDs(item.ID)
	if len(ids) == 0 {
		return failed(fmt.Errorf("invalid view selection"))
	}
	return operation("view:close", item.Label, func(t Target) (string, error) {
		var errs []error
		closed := make([]string, 0, len(ids))
		for _, id := range ids {
			v := FindView(t.Frame, id)
			if v == nil {
				continue
			}
			title := v.Title()
			if err := v.Close(); err != nil {
				errs = append(errs, err)
				continue
			}
			closed = append(closed, title)
		}
		if err := errors.Join(errs...); err != nil {
			return "", err
		}
		if len(closed) == 0 {
			return "", fmt.Errorf("no matching views to close")
		}
		return fmt.Sprintf("Closed %s", strings.Join(closed, ", ")), nil
	})
}

func ViewCopyTitleAction(ctx Context, item Item) tea.Cmd {
	return operation("view:copy-title", item.Label, func(t Target) (string, error) {
		return CopyTitle(t.Frame.ActiveView())
	})
}

// CopyTitle places the view's title on the system clipboard.
func CopyTitle(v *mdi.View) (string, error) {
	if v == nil {
		return "", errNoActiveView
	}
	if err := writeClipboardFn(v.Title()); err != nil {
		return "", fmt.Errorf("copy title: %w", err)
	}
	events.View.Yank(v.ID().String())
	return fmt.Sprintf("Copied %q", v.Title()), nil
}

func activeOperation(id, label, verb string, fn func(*mdi.View) error) tea.Cmd {
	return operation(id, label, func(t Target) (string, error) {
		v := t.Frame.ActiveView()
		if v == nil {
			return "", errNoActiveView
		}
		title := v.Title()
		if err := fn(v); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s", verb, title), nil
	})
}
