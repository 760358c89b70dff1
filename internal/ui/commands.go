package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/logging"
	"github.com/atomicstack/termdi/internal/logging/events"
	"github.com/atomicstack/termdi/internal/menu"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.finishAction(result.Info, result.Err)
	return nil
}

// handleOperationMsg applies a frame mutation produced by an action. The
// frame is only ever touched from Update.
func (m *Model) handleOperationMsg(msg tea.Msg) tea.Cmd {
	op, ok := msg.(menu.Operation)
	if !ok || op.Apply == nil {
		return nil
	}
	info, err := op.Apply(m.target())
	m.finishAction(info, err)
	return nil
}

func (m *Model) finishAction(info string, err error) {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if err != nil {
		m.errMsg = err.Error()
		m.forceClearInfo()
		events.Action.Error(err)
		return
	}
	m.errMsg = ""
	if info != "" && m.verbose {
		m.setInfo(info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(info)
	if m.mode == ModeMenu {
		m.closeMenu()
	}
}

// loadMenuCmd runs loader off the update loop against a snapshot of the
// stores taken now.
func (m *Model) loadMenuCmd(id, title string, loader menu.Loader) tea.Cmd {
	ctx := m.menuContext()
	return func() tea.Msg {
		items, err := loader(ctx)
		if err != nil {
			logging.Error(err)
		}
		return categoryLoadedMsg{id: id, title: title, items: items, err: err}
	}
}

// categoryLoadedMsg mirrors the async loader response.
type categoryLoadedMsg struct {
	id    string
	title string
	items []menu.Item
	err   error
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		Mode:         m.views.Mode(),
		Views:        m.views.Entries(),
		ActiveID:     m.views.ActiveID(),
		Static:       m.chrome.Static(),
		SystemMenu:   m.chrome.SystemMenu(),
		WindowsTitle: m.chrome.Title(),
	}
}
