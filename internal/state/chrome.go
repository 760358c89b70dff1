package state

import (
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/windowsmenu"
)

// ChromeStore holds the windows-menu items and system-menu entries the menu
// loaders render.
type ChromeStore interface {
	Static() []windowsmenu.StaticEntry
	SetStatic([]windowsmenu.StaticEntry)
	SystemMenu() []mdi.SystemMenuItem
	SetSystemMenu([]mdi.SystemMenuItem)
	Title() string
	SetTitle(string)
}

type chromeStore struct {
	static     []windowsmenu.StaticEntry
	systemMenu []mdi.SystemMenuItem
	title      string
}

func NewChromeStore() ChromeStore {
	return &chromeStore{title: windowsmenu.DefaultTitle}
}

func (c *chromeStore) Static() []windowsmenu.StaticEntry {
	if len(c.static) == 0 {
		return nil
	}
	return append([]windowsmenu.StaticEntry(nil), c.static...)
}

func (c *chromeStore) SetStatic(entries []windowsmenu.StaticEntry) {
	c.static = append([]windowsmenu.StaticEntry(nil), entries...)
}

func (c *chromeStore) SystemMenu() []mdi.SystemMenuItem {
	if len(c.systemMenu) == 0 {
		return nil
	}
	return append([]mdi.SystemMenuItem(nil), c.systemMenu...)
}

func (c *chromeStore) SetSystemMenu(items []mdi.SystemMenuItem) {
	c.systemMenu = append([]mdi.SystemMenuItem(nil), items...)
}

func (c *chromeStore) Title() string {
	return c.title
}

func (c *chromeStore) SetTitle(title string) {
	c.title = title
}
