package windowsmenu

import (
	"testing"

	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func newFrame(t *testing.T, mode mdi.PaneMode, titles ...string) (*mdi.Frame, []*mdi.View) {
	t.Helper()
	return testutil.NewFrame(t, mode, titles...)
}

func enabledSet(m *Menu) map[Item]bool {
	out := make(map[Item]bool)
	for _, e := range m.Static() {
		if e.Item != ItemSeparator {
			out[e.Item] = e.Enabled
		}
	}
	return out
}

func TestEmptyFrameListsNoWindows(t *testing.T) {
	f, _ := newFrame(t, mdi.Tabbed)
	m := New(f)
	entries := m.Entries()
	if len(entries) != 1 || entries[0].Title != NoWindowsTitle || entries[0].Enabled {
		t.Fatalf("expected a disabled %q entry, got %+v", NoWindowsTitle, entries)
	}
	for item, enabled := range enabledSet(m) {
		if enabled {
			t.Fatalf("expected %s disabled on an empty frame", item.Name())
		}
	}
}

func TestClosingLastViewDisablesBulkItems(t *testing.T) {
	f, views := newFrame(t, mdi.Tabbed, "A")
	m := New(f)
	if !m.Enabled(ItemCloseAll) || !m.Enabled(ItemTile) {
		t.Fatalf("expected bulk items enabled with a view present")
	}
	if err := m.Activate(ItemClose); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !views[0].IsClosed() {
		t.Fatalf("expected A closed")
	}
	for _, item := range []Item{ItemCloseAll, ItemMinimizeAll, ItemMaximizeAll, ItemRestoreAll, ItemCascade, ItemTile, ItemTileHorizontal, ItemTileVertical} {
		if m.Enabled(item) {
			t.Fatalf("expected %s disabled after the last close", item.Name())
		}
	}
	if got := m.Entries()[0].Title; got != NoWindowsTitle {
		t.Fatalf("expected listing to refresh to %q, got %q", NoWindowsTitle, got)
	}
}

func TestListingSortedAndNumbered(t *testing.T) {
	f, views := newFrame(t, mdi.Tabbed, "beta", "alpha", "x", "alpha")
	views[2].SetTitle("")
	m := New(f)

	var got []string
	for _, e := range m.Entries() {
		got = append(got, e.Title)
	}
	if diff := cmp.Diff([]string{"", "alpha", "alpha", "beta"}, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	entries := m.Entries()
	if entries[1].View != views[1] || entries[2].View != views[3] {
		t.Fatalf("expected equal titles to keep insertion order")
	}
	for i, e := range entries {
		if e.Number != i+1 {
			t.Fatalf("expected entry %d numbered %d, got %d", i, i+1, e.Number)
		}
	}
	if !entries[2].Checked {
		t.Fatalf("expected the active view to be checked")
	}
	checked := 0
	for _, e := range entries {
		if e.Checked {
			checked++
		}
	}
	if checked != 1 {
		t.Fatalf("expected exactly one checked entry, got %d", checked)
	}
}

func TestEnablementFollowsActiveState(t *testing.T) {
	f, views := newFrame(t, mdi.Tabbed, "A", "B")
	m := New(f)

	check := func(name string, want map[Item]bool) {
		t.Helper()
		got := enabledSet(m)
		for item, enabled := range want {
			if got[item] != enabled {
				t.Fatalf("%s: expected %s enabled=%v, got %v", name, item.Name(), enabled, got[item])
			}
		}
	}

	check("maximized", map[Item]bool{ItemClose: true, ItemRestore: true, ItemMaximize: false, ItemMinimize: true})

	if err := views[1].SetRestored(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	check("restored", map[Item]bool{ItemClose: true, ItemRestore: false, ItemMaximize: true, ItemMinimize: true})

	if err := views[1].SetIconified(); err != nil {
		t.Fatalf("iconify: %v", err)
	}
	check("iconified", map[Item]bool{ItemClose: true, ItemRestore: true, ItemMaximize: true, ItemMinimize: false})
}

func TestActivateEntry(t *testing.T) {
	f, views := newFrame(t, mdi.Tabbed, "A", "B")
	m := New(f)
	if err := m.ActivateEntry(views[0]); err != nil {
		t.Fatalf("activate A: %v", err)
	}
	if f.ActiveView() != views[0] || f.PaneMode() != mdi.Tabbed {
		t.Fatalf("expected A maximized in tabbed mode")
	}

	f.ChangeView()
	if err := views[1].SetIconified(); err != nil {
		t.Fatalf("iconify: %v", err)
	}
	if err := m.ActivateNumber(2); err != nil {
		t.Fatalf("activate number 2: %v", err)
	}
	if !views[1].IsRestored() || !views[1].IsSelected() {
		t.Fatalf("expected B restored and selected, got %s", views[1].State())
	}
	if err := m.ActivateNumber(9); err == nil {
		t.Fatalf("expected an error for an unknown number")
	}
}

func TestBulkOperations(t *testing.T) {
	f, views := newFrame(t, mdi.Tabbed, "A", "B", "C")
	m := New(f)

	if err := m.Activate(ItemMinimizeAll); err != nil {
		t.Fatalf("minimize all: %v", err)
	}
	for _, v := range views {
		if !v.IsIconified() {
			t.Fatalf("expected %s iconified", v.Title())
		}
	}
	if err := m.Activate(ItemRestoreAll); err != nil {
		t.Fatalf("restore all: %v", err)
	}
	for _, v := range views {
		if !v.IsRestored() {
			t.Fatalf("expected %s restored, got %s", v.Title(), v.State())
		}
	}
	if err := m.Activate(ItemMaximizeAll); err != nil {
		t.Fatalf("maximize all: %v", err)
	}
	if f.PaneMode() != mdi.Tabbed {
		t.Fatalf("expected tabbed mode after maximize all")
	}
	if err := m.Activate(ItemCloseAll); err != nil {
		t.Fatalf("close all: %v", err)
	}
	if len(f.Views()) != 0 {
		t.Fatalf("expected every view closed, got %d", len(f.Views()))
	}
}

func TestRefreshHookRunsOnFrameEvents(t *testing.T) {
	f, _ := newFrame(t, mdi.Tabbed)
	calls := 0
	m := New(f, WithRefreshHook(func() { calls++ }))
	start := calls
	if err := f.AddView(mdi.NewView("A")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if calls <= start {
		t.Fatalf("expected refresh after adding a view")
	}
	m.Close()
	before := calls
	f.ChangeView()
	if calls != before {
		t.Fatalf("expected no refresh after close")
	}
}

func TestCustomItemsGetTrailingSeparator(t *testing.T) {
	f, _ := newFrame(t, mdi.Tabbed)
	m := New(f, WithTitle("Fenster"), WithItems(ItemTile, ItemCascade))
	static := m.Static()
	got := []Item{static[0].Item, static[1].Item, static[2].Item}
	if diff := cmp.Diff([]Item{ItemTile, ItemCascade, ItemSeparator}, got); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	if m.Title() != "Fenster" {
		t.Fatalf("expected custom title, got %q", m.Title())
	}
	if static[0].Mnemonic != 'T' || static[1].Name != "Cascade" {
		t.Fatalf("unexpected static entries %+v", static[:2])
	}
	if item, ok := ParseItem("tile-vertical"); !ok || item != ItemTileVertical {
		t.Fatalf("expected tile-vertical to parse, got %v %v", item, ok)
	}
}

func TestSetTitleFallsBackToDefault(t *testing.T) {
	f, _ := newFrame(t, mdi.Tabbed)
	m := New(f, WithTitle("Views"))
	if m.Title() != "Views" {
		t.Fatalf("expected Views, got %q", m.Title())
	}
	m.SetTitle("")
	if m.Title() != DefaultTitle {
		t.Fatalf("expected %q, got %q", DefaultTitle, m.Title())
	}
}

func TestMinimizeAllNotifiesEachView(t *testing.T) {
	f, _ := newFrame(t, mdi.Windowed, "A", "B")
	m := New(f)
	rec := testutil.Record(t, f)
	if err := m.Activate(ItemMinimizeAll); err != nil {
		t.Fatalf("minimize all: %v", err)
	}
	for _, title := range []string{"A", "B"} {
		if n := rec.Count("iconified(" + title + ")"); n != 1 {
			t.Fatalf("expected one iconified event for %s, got %v", title, rec.Events())
		}
	}
}
