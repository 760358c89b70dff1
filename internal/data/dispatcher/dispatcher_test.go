package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/termdi/internal/backend"
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/menu"
	"github.com/atomicstack/termdi/internal/state"
)

func newDispatcher() (*Dispatcher, state.ViewStore, state.ChromeStore, state.SettingsStore) {
	v := state.NewViewStore()
	c := state.NewChromeStore()
	s := state.NewSettingsStore(state.DefaultSettings())
	return New(v, c, s), v, c, s
}

func TestHandleFrameSnapshot(t *testing.T) {
	d, views, chrome, _ := newDispatcher()
	snap := menu.Snapshot{
		Mode:       mdi.Windowed,
		Views:      []menu.ViewEntry{{ID: "a", Number: 1, Title: "A", Active: true}},
		ActiveID:   "a",
		SystemMenu: mdi.DefaultSystemMenu().Items(),
		Title:      "Views",
	}
	res := d.Handle(backend.Event{Kind: backend.KindFrame, Data: snap})
	if !res.ViewsUpdated || !res.ChromeUpdated || res.SettingsUpdated {
		t.Fatalf("unexpected result %#v", res)
	}
	if views.Mode() != mdi.Windowed || views.ActiveID() != "a" || len(views.Entries()) != 1 {
		t.Fatalf("view store not updated")
	}
	if chrome.Title() != "Views" || len(chrome.SystemMenu()) != 3 {
		t.Fatalf("chrome store not updated")
	}
}

func TestHandleConfigSettings(t *testing.T) {
	d, _, _, settings := newDispatcher()
	next := state.DefaultSettings()
	next.ButtonOrder = "crm"
	res := d.Handle(backend.Event{Kind: backend.KindConfig, Data: next})
	if !res.SettingsUpdated {
		t.Fatalf("expected settings update")
	}
	if settings.Settings().ButtonOrder != "crm" {
		t.Fatalf("expected crm, got %q", settings.Settings().ButtonOrder)
	}
}

func TestHandleIgnoresErrorsAndForeignData(t *testing.T) {
	d, _, _, settings := newDispatcher()
	if res := d.Handle(backend.Event{Kind: backend.KindConfig, Err: errors.New("bad")}); res != (Result{}) {
		t.Fatalf("expected empty result on error, got %#v", res)
	}
	if res := d.Handle(backend.Event{Kind: backend.KindFrame, Data: "nope"}); res != (Result{}) {
		t.Fatalf("expected empty result for foreign data, got %#v", res)
	}
	if settings.Settings().ButtonOrder != mdi.DefaultButtonOrder {
		t.Fatalf("expected settings untouched")
	}
}
