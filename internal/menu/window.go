package menu

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/format/table"
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/windowsmenu"
)

// loadWindowMenu renders the numbered listing of the windows menu.
func loadWindowMenu(ctx Context) ([]Item, error) {
	return WindowListItems(ctx), nil
}

// WindowListItems formats the listing as aligned columns: number, check
// mark, title and state.
func WindowListItems(ctx Context) []Item {
	if len(ctx.Views) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(ctx.Views))
	ids := make([]string, 0, len(ctx.Views))
	for _, entry := range ctx.Views {
		mark := " "
		if entry.Active {
			mark = "✓"
		}
		title := entry.Title
		if strings.TrimSpace(title) == "" {
			title = "(untitled)"
		}
		rows = append(rows, []string{strconv.Itoa(entry.Number), mark, title, entry.State.String()})
		ids = append(ids, entry.ID)
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignLeft})
	items := make([]Item, len(aligned))
	for i, label := range aligned {
		items[i] = Item{ID: ids[i], Label: label}
	}
	return items
}

func WindowActivateAction(ctx Context, item Item) tea.Cmd {
	id := strings.TrimSpace(item.ID)
	if id == "" {
		return failed(fmt.Errorf("invalid window selection"))
	}
	return operation("window", item.Label, func(t Target) (string, error) {
		v := FindView(t.Frame, id)
		if v == nil {
			return "", fmt.Errorf("view %s: %w", id, mdi.ErrInvalidArgument)
		}
		if err := t.Windows.ActivateEntry(v); err != nil {
			return "", err
		}
		return fmt.Sprintf("Activated %s", v.Title()), nil
	})
}

// ViewEntriesFromMenu converts a windows-menu listing. The placeholder row
// shown for an empty frame is dropped.
func ViewEntriesFromMenu(entries []windowsmenu.Entry) []ViewEntry {
	out := make([]ViewEntry, 0, len(entries))
	for _, e := range entries {
		if e.View == nil {
			continue
		}
		out = append(out, ViewEntry{
			ID:     e.View.ID().String(),
			Number: e.Number,
			Title:  e.Title,
			State:  e.State,
			Active: e.Checked,
		})
	}
	return out
}
