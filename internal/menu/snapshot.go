package menu

import (
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/windowsmenu"
)

// Snapshot captures what menu loaders need from a frame and its windows
// menu at one point in time.
type Snapshot struct {
	Mode       mdi.PaneMode
	Views      []ViewEntry
	ActiveID   string
	Static     []windowsmenu.StaticEntry
	SystemMenu []mdi.SystemMenuItem
	Title      string
}

// TakeSnapshot reads the current listing from wm.
func TakeSnapshot(wm *windowsmenu.Menu) Snapshot {
	f := wm.Frame()
	snap := Snapshot{
		Mode:       f.PaneMode(),
		Views:      ViewEntriesFromMenu(wm.Entries()),
		Static:     wm.Static(),
		SystemMenu: f.SystemMenuItems(),
		Title:      wm.Title(),
	}
	if v := f.ActiveView(); v != nil {
		snap.ActiveID = v.ID().String()
	}
	return snap
}
