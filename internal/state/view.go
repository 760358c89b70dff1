package state

import (
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/menu"
)

// ViewStore holds the last published listing of the frame's views.
type ViewStore interface {
	Entries() []menu.ViewEntry
	SetEntries([]menu.ViewEntry)
	ActiveID() string
	SetActiveID(string)
	Mode() mdi.PaneMode
	SetMode(mdi.PaneMode)
}

type viewStore struct {
	entries  []menu.ViewEntry
	activeID string
	mode     mdi.PaneMode
}

func NewViewStore() ViewStore {
	return &viewStore{}
}

func (v *viewStore) Entries() []menu.ViewEntry {
	return cloneViewEntries(v.entries)
}

func (v *viewStore) SetEntries(entries []menu.ViewEntry) {
	v.entries = cloneViewEntries(entries)
}

func (v *viewStore) ActiveID() string {
	return v.activeID
}

func (v *viewStore) SetActiveID(id string) {
	v.activeID = id
}

func (v *viewStore) Mode() mdi.PaneMode {
	return v.mode
}

func (v *viewStore) SetMode(mode mdi.PaneMode) {
	v.mode = mode
}

func cloneViewEntries(entries []menu.ViewEntry) []menu.ViewEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.ViewEntry, len(entries))
	copy(dup, entries)
	return dup
}
