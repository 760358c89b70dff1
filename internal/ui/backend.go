package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/backend"
	"github.com/atomicstack/termdi/internal/logging"
	"github.com/atomicstack/termdi/internal/logging/events"
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/menu"
	"github.com/atomicstack/termdi/internal/state"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		if evt.Kind == backend.KindConfig {
			events.Config.Error(m.settings.Source(), evt.Err)
		}
		return
	}

	res := m.dispatcher.Handle(evt)
	if res.SettingsUpdated {
		if err := m.applySettings(m.settings.Settings()); err != nil {
			m.backendState[evt.Kind] = err
			m.backendLastErr = err.Error()
			logging.Error(err)
		} else {
			events.Config.Reload(m.settings.Source())
			m.setInfo(fmt.Sprintf("Reloaded %s", m.settings.Source()))
		}
	}
	if res.ViewsUpdated || res.ChromeUpdated {
		m.refreshLevels()
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

// applySettings pushes reloaded chrome settings into the frame and the
// windows menu.
func (m *Model) applySettings(s state.Settings) error {
	if err := m.frame.SetButtonOrder(s.ButtonOrder); err != nil {
		return err
	}
	m.frame.SetButtonsEnabled(s.ButtonsEnabled)
	m.frame.SetTabCloseButtonEnabled(s.TabCloseButton)
	if s.SystemMenu != (mdi.SystemMenu{}) {
		m.frame.SetSystemMenu(s.SystemMenu)
	}
	m.windows.SetTitle(s.WindowsTitle)
	m.markSnapshotDirty()
	return nil
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}

func (m *Model) markSnapshotDirty() {
	m.snapshotDirty = true
}

// syncSnapshot publishes the windows menu state to the stores the menu
// loaders read.
func (m *Model) syncSnapshot() {
	m.snapshotDirty = false
	if m.windows == nil {
		return
	}
	m.applyBackendEvent(backend.Event{Kind: backend.KindFrame, Data: menu.TakeSnapshot(m.windows)})
}

// traceFrameEvent records frame notifications for the trace log and the
// status line.
func (m *Model) traceFrameEvent(e mdi.FrameEvent) {
	switch e.Kind {
	case mdi.FrameViewEvent:
		v := e.View.View
		if v == nil {
			return
		}
		events.View.Event(e.View.Kind.String(), v.ID().String(), v.Title())
		m.lastEvent = e.View.String()
	case mdi.FramePaneChanged:
		m.lastEvent = fmt.Sprintf("pane %s → %s", e.OldMode, e.NewMode)
	case mdi.FrameChromeChanged:
		events.Frame.Chrome()
	}
}
