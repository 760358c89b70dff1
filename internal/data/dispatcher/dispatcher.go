package dispatcher

import (
	"github.com/atomicstack/termdi/internal/backend"
	"github.com/atomicstack/termdi/internal/menu"
	"github.com/atomicstack/termdi/internal/state"
)

type Result struct {
	ViewsUpdated    bool
	ChromeUpdated   bool
	SettingsUpdated bool
}

type Dispatcher struct {
	views    state.ViewStore
	chrome   state.ChromeStore
	settings state.SettingsStore
}

func New(v state.ViewStore, c state.ChromeStore, s state.SettingsStore) *Dispatcher {
	return &Dispatcher{views: v, chrome: c, settings: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindFrame:
		if snapshot, ok := evt.Data.(menu.Snapshot); ok {
			d.views.SetEntries(snapshot.Views)
			d.views.SetActiveID(snapshot.ActiveID)
			d.views.SetMode(snapshot.Mode)
			res.ViewsUpdated = true

			d.chrome.SetStatic(snapshot.Static)
			d.chrome.SetSystemMenu(snapshot.SystemMenu)
			d.chrome.SetTitle(snapshot.Title)
			res.ChromeUpdated = true
		}
	case backend.KindConfig:
		if settings, ok := evt.Data.(state.Settings); ok {
			d.settings.SetSettings(settings)
			res.SettingsUpdated = true
		}
	}
	return res
}
