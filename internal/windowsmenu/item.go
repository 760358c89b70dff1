package windowsmenu

import "fmt"

// Item is a static entry placed above the window listing.
type Item int

const (
	ItemCascade Item = iota
	ItemTile
	ItemTileHorizontal
	ItemTileVertical
	ItemRestore
	ItemRestoreAll
	ItemMinimize
	ItemMinimizeAll
	ItemMaximize
	ItemMaximizeAll
	ItemSeparator
	ItemClose
	ItemCloseAll
)

type itemInfo struct {
	id       string
	name     string
	mnemonic rune
	bulk     bool
}

var itemTable = map[Item]itemInfo{
	ItemCascade:        {id: "cascade", name: "Cascade", mnemonic: 'C', bulk: true},
	ItemTile:           {id: "tile", name: "Tile", mnemonic: 'T', bulk: true},
	ItemTileHorizontal: {id: "tile-horizontal", name: "Tile Horizontally", mnemonic: 'H', bulk: true},
	ItemTileVertical:   {id: "tile-vertical", name: "Tile Vertically", mnemonic: 'V', bulk: true},
	ItemRestore:        {id: "restore", name: "Restore", mnemonic: 'R'},
	ItemRestoreAll:     {id: "restore-all", name: "Restore All", mnemonic: 'E', bulk: true},
	ItemMinimize:       {id: "minimize", name: "Minimize", mnemonic: 'M'},
	ItemMinimizeAll:    {id: "minimize-all", name: "Minimize All", mnemonic: 'I', bulk: true},
	ItemMaximize:       {id: "maximize", name: "Maximize", mnemonic: 'A'},
	ItemMaximizeAll:    {id: "maximize-all", name: "Maximize All", mnemonic: 'X', bulk: true},
	ItemSeparator:      {id: "separator"},
	ItemClose:          {id: "close", name: "Close"},
	ItemCloseAll:       {id: "close-all", name: "Close All", bulk: true},
}

// DefaultItems is the static layout used when none is given.
var DefaultItems = []Item{
	ItemClose, ItemCloseAll,
	ItemSeparator,
	ItemCascade, ItemTile, ItemTileHorizontal, ItemTileVertical,
	ItemSeparator,
	ItemRestore, ItemMinimize, ItemMaximize,
	ItemSeparator,
	ItemRestoreAll, ItemMinimizeAll, ItemMaximizeAll,
}

func (i Item) ID() string {
	if info, ok := itemTable[i]; ok {
		return info.id
	}
	return fmt.Sprintf("item-%d", int(i))
}

func (i Item) Name() string { return itemTable[i].name }

// Mnemonic returns the keyboard mnemonic or 0 when the item has none.
func (i Item) Mnemonic() rune { return itemTable[i].mnemonic }

// Bulk reports whether the item acts on every view.
func (i Item) Bulk() bool { return itemTable[i].bulk }

// ParseItem resolves an item by its id.
func ParseItem(id string) (Item, bool) {
	for item, info := range itemTable {
		if info.id == id {
			return item, true
		}
	}
	return 0, false
}
