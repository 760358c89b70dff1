package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/logging"
	"github.com/atomicstack/termdi/internal/logging/events"
	"github.com/atomicstack/termdi/internal/menu"
	"github.com/atomicstack/termdi/internal/ui/command"
)

// openMenu shows the command menu, optionally descending straight into the
// submenu with the given registry id.
func (m *Model) openMenu(id string) {
	root := m.stack[0]
	m.stack = []*level{root}
	root.SetFilter("", 0)
	root.ClearSelection()
	m.mode = ModeMenu
	m.errMsg = ""
	if id == "" || id == root.ID {
		m.syncViewport(root)
		return
	}
	node, ok := m.registry.Find(id)
	if !ok || node.Loader == nil {
		return
	}
	items, err := node.Loader(m.menuContext())
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}
	if idx := root.IndexOf(id); idx >= 0 {
		root.LastCursor = idx
		root.Cursor = idx
	}
	lvl := newLevel(node.ID, node.ID, items, node)
	m.applyNodeSettings(lvl)
	m.syncViewport(lvl)
	m.stack = append(m.stack, lvl)
}

// closeMenu returns to the desktop. A menu rooted at a submenu keeps that
// submenu as its root.
func (m *Model) closeMenu() {
	m.stack = m.stack[:1]
	m.stack[0].SetFilter("", 0)
	m.stack[0].ClearSelection()
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.mode = ModeDesktop
}

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		m.closeMenu()
		return nil
	}
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	if parent != nil {
		if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
			parent.Cursor = parent.LastCursor
		} else if idx := parent.IndexOf(current.ID); idx >= 0 {
			parent.Cursor = idx
		} else if len(parent.Items) > 0 {
			parent.Cursor = len(parent.Items) - 1
		}
		parent.LastCursor = -1
		m.syncViewport(parent)
	}
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil || len(current.Items) == 0 {
		return nil
	}
	ctx := m.menuContext()
	item := current.Items[current.Cursor]
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	beforeCursor := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, beforeCursor)
	node := current.Node
	if node == nil {
		node, _ = m.registry.Find(current.ID)
	}
	if current.MultiSelect {
		if selected := current.SelectedItems(); len(selected) > 0 {
			ids := make([]string, 0, len(selected))
			labels := make([]string, 0, len(selected))
			for _, sel := range selected {
				ids = append(ids, sel.ID)
				labels = append(labels, sel.Label)
			}
			item = menu.Item{ID: strings.Join(ids, "\n"), Label: strings.Join(labels, ", ")}
			current.ClearSelection()
		}
	}
	if node != nil {
		if child, ok := node.Children[item.ID]; ok {
			if child.Loader != nil {
				current.LastCursor = current.Cursor
				m.startPending(child.ID, item.Label)
				return m.loadMenuCmd(child.ID, item.Label, child.Loader)
			}
			if child.Action != nil {
				m.startPending(child.ID, item.Label)
				return m.bus.Execute(ctx, command.Request{ID: child.ID, Label: item.Label, Handler: child.Action, Item: item})
			}
		}
		if node.Action != nil {
			m.startPending(node.ID, item.Label)
			return m.bus.Execute(ctx, command.Request{ID: node.ID, Label: item.Label, Handler: node.Action, Item: item})
		}
	}
	m.setInfo(fmt.Sprintf("Selected %s (no action defined yet)", item.Label))
	return nil
}

func (m *Model) startPending(id, label string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor > 0 {
				current.Cursor--
			} else {
				current.Cursor = n - 1
			}
			events.UI.MenuCursor(current.ID, current.Cursor)
			m.syncViewport(current)
			m.ensurePreviewForLevel(current)
		}
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor < n-1 {
				current.Cursor++
			} else {
				current.Cursor = 0
			}
			events.UI.MenuCursor(current.ID, current.Cursor)
			m.syncViewport(current)
			m.ensurePreviewForLevel(current)
		}
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
		m.ensurePreviewForLevel(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
		m.ensurePreviewForLevel(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
		m.ensurePreviewForLevel(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
		m.ensurePreviewForLevel(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeDesktop:
		return m.handleDesktopKey(keyMsg)
	case ModeMenu:
		return m.handleMenuKey(keyMsg)
	}
	return nil
}

func (m *Model) handleMenuKey(keyMsg tea.KeyMsg) tea.Cmd {
	if keyMsg.Type == tea.KeyTab {
		if current := m.currentLevel(); current != nil && current.MultiSelect {
			current.ToggleCurrentSelection()
		}
		return nil
	}
	if keyMsg.String() == "?" {
		if current := m.currentLevel(); current != nil && current.Filter == "" {
			m.closeMenu()
			return nil
		}
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(categoryLoadedMsg)
	if !ok {
		return nil
	}
	if update.id != m.pendingID {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if update.err != nil {
		m.errMsg = update.err.Error()
		return nil
	}
	m.errMsg = ""
	node, _ := m.registry.Find(update.id)
	level := newLevel(update.id, update.title, update.items, node)
	m.applyNodeSettings(level)
	m.syncViewport(level)
	m.stack = append(m.stack, level)
	m.ensurePreviewForLevel(level)
	if len(level.Items) == 0 {
		m.setInfo("No entries found.")
	} else if m.infoMsg != "" {
		m.clearInfo()
	}
	return nil
}

func (m *Model) applyNodeSettings(l *level) {
	if l == nil {
		return
	}
	if l.Node == nil {
		if node, ok := m.registry.Find(l.ID); ok {
			l.Node = node
		}
	}
	if l.Node != nil {
		l.MultiSelect = l.Node.MultiSelect
	}
}

// refreshLevels reloads every open submenu from the current stores so the
// listings follow the frame while the menu is open.
func (m *Model) refreshLevels() {
	ctx := m.menuContext()
	for i, lvl := range m.stack {
		if i == 0 && m.rootMenuID == "" {
			continue
		}
		m.applyNodeSettings(lvl)
		if lvl.Node == nil || lvl.Node.Loader == nil {
			continue
		}
		items, err := lvl.Node.Loader(ctx)
		if err != nil {
			logging.Error(err)
			continue
		}
		lvl.UpdateItems(items)
		m.syncViewport(lvl)
	}
	if current := m.currentLevel(); current != nil {
		m.ensurePreviewForLevel(current)
	}
}

// applyRootMenuOverride makes the given submenu the menu root and opens the
// menu on it.
func (m *Model) applyRootMenuOverride(requested string) {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		m.rootMenuID = ""
		m.rootTitle = defaultRootTitle
		return
	}
	if m.registry == nil {
		return
	}
	id := strings.ToLower(trimmed)
	node, ok := m.registry.Find(id)
	if !ok {
		m.errMsg = fmt.Sprintf("Unknown root menu %q", trimmed)
		m.rootMenuID = ""
		m.rootTitle = defaultRootTitle
		return
	}

	items := []menu.Item(nil)
	if node.Loader != nil {
		loaded, err := node.Loader(m.menuContext())
		if err != nil {
			logging.Error(err)
			m.errMsg = fmt.Sprintf("Failed to load %s menu: %v", id, err)
		} else {
			items = loaded
			m.errMsg = ""
		}
	} else {
		m.errMsg = ""
	}

	title := headerSegmentCleaner.Replace(node.ID)
	title = strings.TrimSpace(title)
	root := newLevel(node.ID, title, items, node)
	m.applyNodeSettings(root)
	m.syncViewport(root)
	m.stack = []*level{root}
	m.rootMenuID = node.ID
	m.mode = ModeMenu
	m.ensurePreviewForLevel(root)

	segment := headerSegmentForLevel(root)
	if segment == "" {
		segment = title
	}
	if segment == "" {
		segment = node.ID
	}
	m.rootTitle = segment
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
