package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/logging/events"
	"github.com/atomicstack/termdi/internal/mdi"
)

func loadPaneMenu(ctx Context) ([]Item, error) {
	other := mdi.Windowed
	if ctx.Mode == mdi.Windowed {
		other = mdi.Tabbed
	}
	return []Item{
		{ID: "toggle", Label: fmt.Sprintf("Toggle (%s → %s)", ctx.Mode, other)},
		{ID: "tabbed", Label: "Tabbed"},
		{ID: "windowed", Label: "Windowed"},
	}, nil
}

func PaneToggleAction(ctx Context, item Item) tea.Cmd {
	return operation("pane:toggle", item.Label, func(t Target) (string, error) {
		from := t.Frame.PaneMode()
		t.Frame.ChangeView()
		to := t.Frame.PaneMode()
		events.Frame.PaneChanged(from.String(), to.String())
		return fmt.Sprintf("Switched to %s", to), nil
	})
}

func PaneTabbedAction(ctx Context, item Item) tea.Cmd {
	return paneModeOperation(item, mdi.Tabbed)
}

func PaneWindowedAction(ctx Context, item Item) tea.Cmd {
	return paneModeOperation(item, mdi.Windowed)
}

func paneModeOperation(item Item, mode mdi.PaneMode) tea.Cmd {
	return operation("pane:"+mode.String(), item.Label, func(t Target) (string, error) {
		from := t.Frame.PaneMode()
		if err := t.Frame.SetPaneMode(mode); err != nil {
			return "", err
		}
		if from != mode {
			events.Frame.PaneChanged(from.String(), mode.String())
		}
		return fmt.Sprintf("Pane mode %s", mode), nil
	})
}
