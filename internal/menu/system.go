package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/mdi"
)

var systemActionIDs = map[mdi.SystemAction]string{
	mdi.SystemRestore:  "restore",
	mdi.SystemMinimize: "minimize",
	mdi.SystemClose:    "close",
}

// loadSystemMenu lists the system menu of the active view. It is empty when
// no view is active.
func loadSystemMenu(ctx Context) ([]Item, error) {
	if _, ok := ctx.Active(); !ok {
		return nil, nil
	}
	items := make([]Item, 0, len(ctx.SystemMenu))
	for _, entry := range ctx.SystemMenu {
		id, ok := systemActionIDs[entry.Action]
		if !ok {
			continue
		}
		items = append(items, Item{ID: id, Label: mnemonicLabel(entry.Text, entry.Mnemonic)})
	}
	return items, nil
}

func SystemMenuAction(action mdi.SystemAction) Action {
	return func(ctx Context, item Item) tea.Cmd {
		return operation("system:"+systemActionIDs[action], item.Label, func(t Target) (string, error) {
			v := t.Frame.ActiveView()
			if v == nil {
				return "", errNoActiveView
			}
			title := v.Title()
			if err := t.Frame.InvokeSystemMenu(v, action); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s %s", item.Label, title), nil
		})
	}
}
