package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/windowsmenu"
)

// loadArrangeMenu lists the enabled static items of the windows menu.
func loadArrangeMenu(ctx Context) ([]Item, error) {
	items := make([]Item, 0, len(ctx.Static))
	for _, entry := range ctx.Static {
		if entry.Item == windowsmenu.ItemSeparator || !entry.Enabled {
			continue
		}
		items = append(items, Item{ID: entry.Item.ID(), Label: mnemonicLabel(entry.Name, entry.Mnemonic)})
	}
	return items, nil
}

func ArrangeAction(item windowsmenu.Item) Action {
	return func(ctx Context, selected Item) tea.Cmd {
		return operation("arrange:"+item.ID(), selected.Label, func(t Target) (string, error) {
			if !t.Windows.Enabled(item) {
				return "", fmt.Errorf("%s is not available", item.Name())
			}
			if err := t.Windows.Activate(item); err != nil {
				return "", err
			}
			return item.Name(), nil
		})
	}
}

func mnemonicLabel(text string, mnemonic rune) string {
	if mnemonic == 0 {
		return "    " + text
	}
	return fmt.Sprintf("[%c] %s", mnemonic, text)
}
