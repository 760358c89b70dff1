package mdi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddViewsSelectsLastAndIconifySwitchesToWindowed(t *testing.T) {
	rec := &recorder{}
	f := newTestFrame(t, Tabbed)
	views := addViews(t, f, rec, "A", "B", "C")
	a, b, c := views[0], views[1], views[2]

	want := []string{
		"activated(A)", "opened(A)",
		"activated(B)", "deactivated(A)", "opened(B)",
		"activated(C)", "deactivated(B)", "opened(C)",
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Fatalf("unexpected add sequence (-want +got):\n%s", diff)
	}
	if f.ActiveView() != c {
		t.Fatalf("expected C active, got %v", f.ActiveView())
	}

	rec.reset()
	if err := c.SetIconified(); err != nil {
		t.Fatalf("iconify: %v", err)
	}
	if f.PaneMode() != Windowed {
		t.Fatalf("expected windowed pane mode, got %s", f.PaneMode())
	}
	if got := len(f.Desktop().Windows()); got != 3 {
		t.Fatalf("expected 3 windows, got %d", got)
	}
	for _, v := range []*View{a, b, c} {
		if f.Desktop().WindowFor(v) == nil {
			t.Fatalf("expected a window for %s", v.Title())
		}
	}
	if diff := cmp.Diff([]string{"iconified(C)"}, rec.events); diff != "" {
		t.Fatalf("unexpected iconify sequence (-want +got):\n%s", diff)
	}
	if !c.IsIconified() || !f.Desktop().WindowFor(c).IsIconified() {
		t.Fatalf("expected C iconified")
	}
	if !a.IsRestored() || !b.IsRestored() {
		t.Fatalf("expected A and B restored, got %s and %s", a.State(), b.State())
	}
}

func TestSetSelectedActivatesBeforeDeactivating(t *testing.T) {
	rec := &recorder{}
	f := newTestFrame(t, Tabbed)
	views := addViews(t, f, rec, "A", "B")
	a, b := views[0], views[1]
	if err := a.SetSelected(true); err != nil {
		t.Fatalf("select A: %v", err)
	}
	rec.reset()

	if err := b.SetSelected(true); err != nil {
		t.Fatalf("select B: %v", err)
	}
	if diff := cmp.Diff([]string{"activated(B)", "deactivated(A)"}, rec.events); diff != "" {
		t.Fatalf("unexpected selection sequence (-want +got):\n%s", diff)
	}
	if a.IsSelected() || !b.IsSelected() {
		t.Fatalf("expected only B selected, got A=%v B=%v", a.IsSelected(), b.IsSelected())
	}
}

func TestSetSelectedFalseMovesToNextView(t *testing.T) {
	rec := &recorder{}
	f := newTestFrame(t, Tabbed)
	views := addViews(t, f, rec, "A", "B", "C")
	rec.reset()

	if err := views[0].SetSelected(false); err != nil {
		t.Fatalf("deselect inactive view: %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected no events for inactive view, got %v", rec.events)
	}
	if err := views[2].SetSelected(false); err != nil {
		t.Fatalf("deselect C: %v", err)
	}
	if f.ActiveView() != views[0] {
		t.Fatalf("expected wraparound to A, got %s", f.ActiveView().Title())
	}
}

func TestCloseSingleView(t *testing.T) {
	rec := &recorder{}
	f := newTestFrame(t, Tabbed)
	a := addViews(t, f, rec, "A")[0]
	rec.reset()

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if diff := cmp.Diff([]string{"closing(A)", "closed(A)"}, rec.events); diff != "" {
		t.Fatalf("unexpected close sequence (-want +got):\n%s", diff)
	}
	if len(f.Views()) != 0 {
		t.Fatalf("expected no views, got %d", len(f.Views()))
	}
	if f.ActiveView() != nil {
		t.Fatalf("expected no active view")
	}
	if f.ButtonsShown() || len(f.MenuBar().Elements()) != 0 {
		t.Fatalf("expected buttons removed, got %v", f.MenuBar().Elements())
	}
	if !a.IsClosed() || a.Frame() != nil {
		t.Fatalf("expected A detached after close")
	}
	if err := f.AddView(a); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected closed view to be rejected, got %v", err)
	}
}

func TestCloseActiveWindowDeactivatesBeforeClosed(t *testing.T) {
	rec := &recorder{}
	f := newTestFrame(t, Windowed)
	views := addViews(t, f, rec, "A", "B", "C")
	if err := views[1].SetSelected(true); err != nil {
		t.Fatalf("select B: %v", err)
	}
	rec.reset()

	if err := views[1].Close(); err != nil {
		t.Fatalf("close B: %v", err)
	}
	want := []string{"closing(B)", "activated(C)", "deactivated(B)", "closed(B)"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Fatalf("unexpected close sequence (-want +got):\n%s", diff)
	}
	if f.ActiveView() != views[2] || !f.Desktop().WindowFor(views[2]).IsSelected() {
		t.Fatalf("expected C window selected")
	}
	if got := len(f.Desktop().Windows()); got != 2 {
		t.Fatalf("expected 2 windows, got %d", got)
	}
}

func TestRapidClosesInTabbedModeUseCurrentIndex(t *testing.T) {
	rec := &recorder{}
	f := newTestFrame(t, Tabbed)
	views := addViews(t, f, rec, "A", "B", "C")
	if err := views[0].SetSelected(true); err != nil {
		t.Fatalf("select A: %v", err)
	}
	rec.reset()

	for _, v := range f.Views() {
		if err := v.Close(); err != nil {
			t.Fatalf("close %s: %v", v.Title(), err)
		}
	}
	want := []string{
		"closing(A)", "activated(B)", "deactivated(A)", "closed(A)",
		"closing(B)", "activated(C)", "deactivated(B)", "closed(B)",
		"closing(C)", "closed(C)",
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Fatalf("unexpected close sequence (-want +got):\n%s", diff)
	}
	if f.Tabs().Len() != 0 || f.Tabs().Selected() != -1 {
		t.Fatalf("expected empty tab strip, got %d tabs selected %d", f.Tabs().Len(), f.Tabs().Selected())
	}
}

func TestClosingListenerCanKeepView(t *testing.T) {
	rec := &recorder{}
	f := newTestFrame(t, Tabbed)
	a := addViews(t, f, rec, "A")[0]
	a.AddViewListener(ViewAdapter{OnClosing: func(e ViewEvent) {
		_ = e.View.SetClosePolicy(DoNothingOnClose)
	}})
	rec.reset()

	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if diff := cmp.Diff([]string{"closing(A)"}, rec.events); diff != "" {
		t.Fatalf("unexpected events (-want +got):\n%s", diff)
	}
	if len(f.Views()) != 1 || a.IsClosed() {
		t.Fatalf("expected A to stay in the frame")
	}
}

func TestDisposeSkipsClosingAndHonoursPolicy(t *testing.T) {
	rec := &recorder{}
	f := newTestFrame(t, Windowed)
	views := addViews(t, f, rec, "A", "B")
	rec.reset()

	if err := views[0].SetClosePolicy(DoNothingOnClose); err != nil {
		t.Fatalf("set policy: %v", err)
	}
	if err := views[0].Dispose(); err != nil {
		t.Fatalf("dispose A: %v", err)
	}
	if len(rec.events) != 0 || len(f.Views()) != 2 {
		t.Fatalf("expected dispose to be ignored, got %v", rec.events)
	}
	if err := views[1].Dispose(); err != nil {
		t.Fatalf("dispose B: %v", err)
	}
	want := []string{"activated(A)", "deactivated(B)", "closed(B)"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Fatalf("unexpected dispose sequence (-want +got):\n%s", diff)
	}
	if err := views[0].SetClosePolicy(ClosePolicy(9)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid policy error, got %v", err)
	}
}

func TestNextFocusableViewWraps(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	views := addViews(t, f, nil, "A", "B", "C")

	next, err := f.NextFocusableView(views[2])
	if err != nil || next != views[0] {
		t.Fatalf("expected A after C, got %v (%v)", next, err)
	}
	prev, err := f.PreviousFocusableView(views[0])
	if err != nil || prev != views[2] {
		t.Fatalf("expected C before A, got %v (%v)", prev, err)
	}

	single := newTestFrame(t, Tabbed)
	only := addViews(t, single, nil, "A")[0]
	next, err = single.NextFocusableView(only)
	if err != nil || next != only {
		t.Fatalf("expected self loop, got %v (%v)", next, err)
	}
	if _, err := single.NextFocusableView(views[0]); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected foreign view error, got %v", err)
	}
	if _, err := single.NextFocusableView(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected nil view error, got %v", err)
	}
}

func TestInvalidArgumentsDoNotMutate(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	views := addViews(t, f, nil, "A", "B")
	other := newTestFrame(t, Tabbed)
	foreign := addViews(t, other, nil, "X")[0]

	if err := f.SetActiveView(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected nil view error, got %v", err)
	}
	if err := f.SetActiveView(foreign); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected foreign view error, got %v", err)
	}
	if f.ActiveView() != views[1] {
		t.Fatalf("expected B to stay active")
	}
	if err := f.SetPaneMode(PaneMode(5)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid pane mode error, got %v", err)
	}
	if f.PaneMode() != Tabbed {
		t.Fatalf("expected tabbed mode to remain")
	}
	if err := f.AddView(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected nil add error, got %v", err)
	}
	if err := f.AddView(foreign); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected attached view error, got %v", err)
	}
	detached := NewView("D")
	if err := detached.SetMaximized(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected detached view error, got %v", err)
	}
}

func TestUntitledViewsAreNumberedByCounter(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	first := NewView("")
	named := NewView("named")
	second := NewView("")
	for _, v := range []*View{first, named, second} {
		if err := f.AddView(v); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if first.Title() != "Untitled1" || second.Title() != "Untitled3" {
		t.Fatalf("expected Untitled1 and Untitled3, got %q and %q", first.Title(), second.Title())
	}
}

func TestSetTitleUpdatesTab(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	v := addViews(t, f, nil, "A")[0]
	var updates int
	f.AddFrameListener(FrameListenerFunc(func(e FrameEvent) {
		if e.Kind == FrameViewUpdated {
			updates++
		}
	}))
	v.SetTitle("renamed")
	v.SetIcon("*")
	tab := f.Tabs().Tabs()[0]
	if tab.Title != "renamed" || tab.Icon != "*" {
		t.Fatalf("expected tab to follow view metadata, got %+v", tab)
	}
	if updates != 2 {
		t.Fatalf("expected 2 update notifications, got %d", updates)
	}
}

func TestFrameListenerSeesViewAndPaneEvents(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	var got []string
	f.AddFrameListener(FrameListenerFunc(func(e FrameEvent) {
		switch e.Kind {
		case FramePaneChanged:
			got = append(got, e.Kind.String()+":"+e.OldMode.String()+">"+e.NewMode.String())
		case FrameViewEvent:
			got = append(got, e.View.String())
		}
	}))
	addViews(t, f, nil, "A")
	f.ChangeView()
	want := []string{"activated(A)", "opened(A)", "pane-changed:tabbed>windowed"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected frame events (-want +got):\n%s", diff)
	}
}

func TestEmptyFrameChangeViewOnlyFlipsMode(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	var kinds []FrameEventKind
	id := f.AddFrameListener(FrameListenerFunc(func(e FrameEvent) { kinds = append(kinds, e.Kind) }))
	f.ChangeView()
	if f.PaneMode() != Windowed {
		t.Fatalf("expected windowed mode")
	}
	if err := f.SetPaneMode(Tabbed); err != nil {
		t.Fatalf("set pane mode: %v", err)
	}
	if diff := cmp.Diff([]FrameEventKind{FramePaneChanged, FramePaneChanged}, kinds); diff != "" {
		t.Fatalf("unexpected frame events (-want +got):\n%s", diff)
	}
	if !f.RemoveFrameListener(id) || f.RemoveFrameListener(id) {
		t.Fatalf("expected listener removal to succeed exactly once")
	}
}

func TestListenerPanicAbortsDispatch(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	v := NewView("A")
	var reached bool
	v.AddViewListener(ViewListenerFunc(func(ViewEvent) { panic("listener fault") }))
	v.AddViewListener(ViewListenerFunc(func(ViewEvent) { reached = true }))

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		if reached {
			t.Fatalf("expected later listeners to be skipped")
		}
	}()
	_ = f.AddView(v)
}

func TestRemoveViewListener(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	rec := &recorder{}
	v := NewView("A")
	id := v.AddViewListener(rec)
	if !v.RemoveViewListener(id) {
		t.Fatalf("expected listener removal")
	}
	if err := f.AddView(v); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected removed listener to stay silent, got %v", rec.events)
	}
}

func TestFrameCloseClosesEveryView(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	views := addViews(t, f, nil, "A", "B", "C")
	if err := views[1].SetClosePolicy(DoNothingOnClose); err != nil {
		t.Fatalf("set policy: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close frame: %v", err)
	}
	remaining := f.Views()
	if len(remaining) != 1 || remaining[0] != views[1] {
		t.Fatalf("expected only B to remain, got %d views", len(remaining))
	}
	if f.ActiveView() != views[1] {
		t.Fatalf("expected B active")
	}
}

func TestFocusTargetReceivesFocus(t *testing.T) {
	f := newTestFrame(t, Tabbed)
	target := &focusCounter{}
	v := NewView("A", WithFocusTarget(target))
	if err := f.AddView(v); err != nil {
		t.Fatalf("add: %v", err)
	}
	addViews(t, f, nil, "B")
	if err := v.SetSelected(true); err != nil {
		t.Fatalf("select: %v", err)
	}
	if target.n != 2 {
		t.Fatalf("expected focus twice, got %d", target.n)
	}
}

type focusCounter struct{ n int }

func (c *focusCounter) Focus() { c.n++ }
