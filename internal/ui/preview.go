package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/menu"
)

type previewKind int

const (
	previewKindNone previewKind = iota
	previewKindView
)

const (
	previewFallbackWidth  = 40
	previewFallbackHeight = 12
	previewScrollStep     = 3
)

type previewData struct {
	kind         previewKind
	target       string
	label        string
	lines        []string
	err          string
	scrollOffset int // clamped by renderPreviewPanel
}

// ensurePreviewForLevel renders the content of the view under the cursor.
// Content lives on the frame so this runs on the update loop.
func (m *Model) ensurePreviewForLevel(level *level) {
	if level == nil {
		return
	}
	kind := previewKindForLevel(level.ID)
	if kind == previewKindNone || len(level.Items) == 0 {
		m.clearPreview(level.ID)
		return
	}
	if level.Cursor < 0 || level.Cursor >= len(level.Items) {
		level.Cursor = 0
	}
	item := level.Items[level.Cursor]
	if item.ID == "" {
		m.clearPreview(level.ID)
		return
	}
	if m.preview == nil {
		m.preview = make(map[string]*previewData)
	}
	data := &previewData{kind: kind, target: item.ID, label: strings.Join(strings.Fields(item.Label), " ")}
	if existing, ok := m.preview[level.ID]; ok && existing.target == item.ID {
		data.scrollOffset = existing.scrollOffset
	}
	v := menu.FindView(m.frame, item.ID)
	if v == nil {
		data.err = errViewGone.Error()
	} else {
		data.label = v.Title()
		data.lines = m.viewPreviewLines(v)
	}
	m.preview[level.ID] = data
}

func (m *Model) viewPreviewLines(v *mdi.View) []string {
	w, h := m.previewPanelWidth()-2, m.height-4
	if w <= 0 {
		w = previewFallbackWidth
	}
	if h <= 0 {
		h = previewFallbackHeight
	}
	lines := []string{fmt.Sprintf("state: %s", v.State())}
	if win := m.frame.Desktop().WindowFor(v); win != nil {
		lines = append(lines, fmt.Sprintf("bounds: %s", win.Bounds()))
	}
	if c := v.Content(); c != nil {
		lines = append(lines, "")
		lines = append(lines, strings.Split(c.Render(w, h), "\n")...)
	}
	return lines
}

func (m *Model) clearPreview(levelID string) {
	if levelID == "" || m.preview == nil {
		return
	}
	delete(m.preview, levelID)
}

func (m *Model) activePreview() *previewData {
	if len(m.stack) == 0 || m.preview == nil {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	return m.preview[current.ID]
}

func previewKindForLevel(id string) previewKind {
	switch id {
	case "window", "view:rename", "view:close":
		return previewKindView
	default:
		return previewKindNone
	}
}

// handleMouseMsg scrolls the preview panel with the mouse wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.mode != ModeMenu || !m.hasSidePreview() {
		return nil
	}
	preview := m.activePreview()
	if preview == nil {
		return nil
	}
	innerH := m.height - 2
	if innerH < 1 {
		innerH = 1
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		preview.scrollOffset -= previewScrollStep
		if preview.scrollOffset < 0 {
			preview.scrollOffset = 0
		}
	case tea.MouseButtonWheelDown:
		maxOffset := len(preview.lines) - innerH
		if maxOffset < 0 {
			maxOffset = 0
		}
		preview.scrollOffset += previewScrollStep
		if preview.scrollOffset > maxOffset {
			preview.scrollOffset = maxOffset
		}
	}
	return nil
}
