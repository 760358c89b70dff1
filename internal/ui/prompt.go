package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/menu"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises the common prompt flow: reset the pending state and
// run the provided action. The action can return a promptResult to control
// follow-up behaviour (command to run, informational message, or error).
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

func (m *Model) handleRenamePromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.RenamePrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		if menu.FindView(m.frame, prompt.ViewID) == nil {
			return promptResult{Err: errViewGone}
		}
		m.startRenameForm(prompt)
		return promptResult{}
	})
}
