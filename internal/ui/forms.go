package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/menu"
)

var errViewGone = errors.New("view is no longer open")

func (m *Model) handleRenameForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.renameForm == nil {
		m.mode = ModeDesktop
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		// results and backend events still reach their handlers
		return false, nil
	}
	cmd, done, cancel := m.renameForm.Update(msg)
	if cancel {
		m.renameForm = nil
		m.closeMenu()
		return true, cmd
	}
	if done {
		target := m.renameForm.Target()
		title := m.renameForm.Value()
		actionID := m.renameForm.ActionID()
		pendingLabel := m.renameForm.PendingLabel()
		m.renameForm = nil
		m.closeMenu()
		m.startPending(actionID, pendingLabel)
		if cmd == nil {
			cmd = menu.RenameCommand(target, title)
		}
		return true, cmd
	}
	return true, cmd
}

func (m *Model) startRenameForm(prompt menu.RenamePrompt) {
	m.renameForm = menu.NewRenameForm(prompt)
	m.mode = ModeRenameForm
}

func (m *Model) viewRenameForm(header string) string {
	return m.viewFormWithHeader(m.renameForm.Title(), m.renameForm.InputView(), m.renameForm.Help(), header)
}

func (m *Model) viewFormWithHeader(title, input, help, header string) string {
	lines := []string{
		title,
		"",
		input,
		"",
		help,
	}
	if header != "" {
		lines = append([]string{header}, lines...)
	}
	if m.errMsg != "" && styles.Error != nil {
		lines = append(lines, "", styles.Error.Render("Error: "+m.errMsg))
	}
	return strings.Join(lines, "\n")
}
