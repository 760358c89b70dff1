package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/menu"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed)
	current := m.currentLevel()
	current.UpdateItems([]menu.Item{{ID: "one"}})
	handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if current.Filter != "abc" {
		t.Fatalf("expected filter 'abc', got %q", current.Filter)
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed)
	current := m.currentLevel()
	current.UpdateItems([]menu.Item{{ID: "one"}})
	current.SetFilter("abc", 3)

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}); !handled {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}); !handled {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestHandleTextInputIgnoresAltRunes(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed)
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true}); handled {
		t.Fatalf("expected alt runes to pass through")
	}
}

func TestFilterNarrowsRootMenu(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed)
	h := NewHarness(m)
	h.Send(runes(":"))
	h.Send(runes("arr"))
	current := m.currentLevel()
	if len(current.Items) != 1 || current.Items[0].ID != "arrange" {
		t.Fatalf("expected only arrange to match, got %#v", current.Items)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	if current.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", current.Filter)
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed)
	current := m.currentLevel()
	current.SetFilter("", 0)
	prompt, _ := m.filterPrompt()
	if prompt == "" {
		t.Fatalf("expected non-empty prompt")
	}
	if !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}
