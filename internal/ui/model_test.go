package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/windowsmenu"
)

func newTestFrame(t *testing.T, mode mdi.PaneMode, titles ...string) *mdi.Frame {
	t.Helper()
	opts := mdi.DefaultOptions()
	opts.Mode = mode
	frame, err := mdi.NewFrame(opts)
	if err != nil {
		t.Fatalf("new frame: %v", err)
	}
	for _, title := range titles {
		if err := frame.AddView(NewNoteView(title)); err != nil {
			t.Fatalf("add view %q: %v", title, err)
		}
	}
	return frame
}

func newTestModel(t *testing.T, mode mdi.PaneMode, titles ...string) *Model {
	t.Helper()
	m := NewModel(newTestFrame(t, mode, titles...), Options{Width: 100, Height: 30})
	t.Cleanup(m.Close)
	return m
}

func viewByTitle(t *testing.T, f *mdi.Frame, title string) *mdi.View {
	t.Helper()
	for _, v := range f.Views() {
		if v.Title() == title {
			return v
		}
	}
	t.Fatalf("no view titled %q", title)
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func altDigit(d string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(d), Alt: true}
}

func TestMenuHeaderRootLevel(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed)
	got := m.menuHeader()
	want := defaultRootTitle
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMenuHeaderNestedLevels(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed)
	m.stack = append(m.stack, newLevel("view", "view", nil, nil))
	m.stack = append(m.stack, newLevel("view:copy-title", "Copy title", nil, nil))
	got := m.menuHeader()
	want := "view→copy title"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRootMenuOverrideSetsInitialLevel(t *testing.T) {
	frame := newTestFrame(t, mdi.Tabbed, "alpha", "beta")
	m := NewModel(frame, Options{RootMenu: "window"})
	defer m.Close()
	if got := m.stack[0].ID; got != "window" {
		t.Fatalf("expected root id window, got %s", got)
	}
	if m.rootMenuID != "window" {
		t.Fatalf("expected rootMenuID to be window, got %s", m.rootMenuID)
	}
	if m.Mode() != ModeMenu {
		t.Fatalf("expected the menu to open, got mode %d", m.Mode())
	}
	if header := m.menuHeader(); header != "window" {
		t.Fatalf("expected header window, got %s", header)
	}
	if n := len(m.stack[0].Items); n != 2 {
		t.Fatalf("expected two window entries, got %d", n)
	}
}

func TestInvalidRootMenuFallsBackToDefault(t *testing.T) {
	frame := newTestFrame(t, mdi.Tabbed)
	m := NewModel(frame, Options{RootMenu: "does-not-exist"})
	defer m.Close()
	if got := m.stack[0].ID; got != "root" {
		t.Fatalf("expected default root id, got %s", got)
	}
	if m.rootMenuID != "" {
		t.Fatalf("expected empty rootMenuID, got %s", m.rootMenuID)
	}
	if m.errMsg == "" {
		t.Fatalf("expected error message for invalid root menu")
	}
	if m.Mode() != ModeDesktop {
		t.Fatalf("expected desktop mode, got %d", m.Mode())
	}
}

func TestNewModelPublishesSnapshot(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "beta", "alpha")
	entries := m.views.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	if entries[0].Title != "alpha" || entries[1].Title != "beta" {
		t.Fatalf("expected entries sorted by title, got %#v", entries)
	}
	active := m.Frame().ActiveView()
	if active == nil || m.views.ActiveID() != active.ID().String() {
		t.Fatalf("expected active id to follow the frame")
	}
	if got := m.chrome.Title(); got != windowsmenu.DefaultTitle {
		t.Fatalf("expected chrome title %q, got %q", windowsmenu.DefaultTitle, got)
	}
}

func TestSnapshotFollowsFrameChanges(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "one")
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	if n := len(m.Frame().Views()); n != 2 {
		t.Fatalf("expected a second view, got %d", n)
	}
	if n := len(m.views.Entries()); n != 2 {
		t.Fatalf("expected store to list two views, got %d", n)
	}
	if m.snapshotDirty {
		t.Fatalf("expected snapshot to be synced after update")
	}
}

func TestDesktopTogglePane(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "one", "two")
	h := NewHarness(m)
	h.Send(runes("v"))
	if mode := m.Frame().PaneMode(); mode != mdi.Windowed {
		t.Fatalf("expected windowed mode, got %s", mode)
	}
	if m.views.Mode() != mdi.Windowed {
		t.Fatalf("expected store mode to follow, got %s", m.views.Mode())
	}
	h.Send(runes("v"))
	if mode := m.Frame().PaneMode(); mode != mdi.Tabbed {
		t.Fatalf("expected tabbed mode, got %s", mode)
	}
}

func TestDesktopMinimize(t *testing.T) {
	m := newTestModel(t, mdi.Windowed, "one", "two")
	h := NewHarness(m)
	active := m.Frame().ActiveView()
	h.Send(runes("N"))
	if !active.IsIconified() {
		t.Fatalf("expected %s to be iconified, got %s", active.Title(), active.State())
	}
	view := m.View()
	if !strings.Contains(view, active.Title()) {
		t.Fatalf("expected icon for %s on the desktop", active.Title())
	}
}

func TestDesktopRestoreSwitchesToWindows(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "one", "two")
	h := NewHarness(m)
	active := m.Frame().ActiveView()
	h.Send(runes("R"))
	if mode := m.Frame().PaneMode(); mode != mdi.Windowed {
		t.Fatalf("expected windowed mode, got %s", mode)
	}
	if active.State() != mdi.StateRestored {
		t.Fatalf("expected restored, got %s", active.State())
	}
}

func TestDesktopMaximizeSwitchesToTabs(t *testing.T) {
	m := newTestModel(t, mdi.Windowed, "one", "two")
	h := NewHarness(m)
	h.Send(runes("M"))
	if mode := m.Frame().PaneMode(); mode != mdi.Tabbed {
		t.Fatalf("expected maximize to switch to tabs, got %s", mode)
	}
	if m.errMsg != "" {
		t.Fatalf("unexpected error %q", m.errMsg)
	}
}

func TestDesktopCloseActiveView(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "one", "two")
	h := NewHarness(m)
	active := m.Frame().ActiveView()
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if !active.IsClosed() {
		t.Fatalf("expected active view closed")
	}
	if n := len(m.views.Entries()); n != 1 {
		t.Fatalf("expected one remaining entry, got %d", n)
	}
}

func TestDesktopSelectByNumber(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "charlie", "alpha", "bravo")
	h := NewHarness(m)
	h.Send(altDigit("1"))
	if got := m.Frame().ActiveView().Title(); got != "alpha" {
		t.Fatalf("expected alpha active, got %s", got)
	}
	h.Send(altDigit("3"))
	if got := m.Frame().ActiveView().Title(); got != "charlie" {
		t.Fatalf("expected charlie active, got %s", got)
	}
	h.Send(altDigit("9"))
	if m.errMsg == "" {
		t.Fatalf("expected error for a missing entry")
	}
}

func TestDesktopCycleViews(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "a", "b", "c")
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Frame().ActiveView().Title(); got != "a" {
		t.Fatalf("expected wrap to a, got %s", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.Frame().ActiveView().Title(); got != "c" {
		t.Fatalf("expected back to c, got %s", got)
	}
}

func TestDesktopMoveSelectedWindow(t *testing.T) {
	m := newTestModel(t, mdi.Windowed, "one")
	w := m.Frame().Desktop().Selected()
	if w == nil {
		t.Fatalf("expected a selected window")
	}
	before := w.Bounds()
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	after := w.Bounds()
	if after.X != before.X+1 || after.Y != before.Y+1 {
		t.Fatalf("expected window moved by one cell, got %s from %s", after, before)
	}
}

func TestDesktopCloseButton(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "one", "two")
	h := NewHarness(m)
	active := m.Frame().ActiveView()
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	if !active.IsClosed() {
		t.Fatalf("expected close button to close the active view")
	}
}

func TestDesktopButtonsHiddenInWindowedMode(t *testing.T) {
	m := newTestModel(t, mdi.Windowed, "one")
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n"), Alt: true})
	if m.errMsg == "" {
		t.Fatalf("expected error pressing a hidden button")
	}
}

func TestRenameFlow(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "old")
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyF2})
	if m.Mode() != ModeRenameForm {
		t.Fatalf("expected rename form, got mode %d", m.Mode())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	h.Send(runes("notes"))
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode() != ModeDesktop {
		t.Fatalf("expected desktop after rename, got mode %d", m.Mode())
	}
	if got := m.Frame().ActiveView().Title(); got != "notes" {
		t.Fatalf("expected title notes, got %q", got)
	}
	if got := m.views.Entries()[0].Title; got != "notes" {
		t.Fatalf("expected store to carry new title, got %q", got)
	}
}

func TestRenameFlowEscapeCancels(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed, "keep")
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyF2})
	h.Send(runes("xx"))
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Mode() != ModeDesktop {
		t.Fatalf("expected desktop after cancel, got mode %d", m.Mode())
	}
	if got := m.Frame().ActiveView().Title(); got != "keep" {
		t.Fatalf("expected title unchanged, got %q", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, mdi.Tabbed)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
