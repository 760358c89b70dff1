package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the desktop keybindings. The command menu keeps its own
// filter-first handling.
type KeyMap struct {
	// Views
	NewView  key.Binding
	Close    key.Binding
	Dispose  key.Binding
	Next     key.Binding
	Previous key.Binding
	Maximize key.Binding
	Minimize key.Binding
	Restore  key.Binding
	Rename   key.Binding
	Yank     key.Binding
	Select   key.Binding

	// Frame
	TogglePane key.Binding
	SystemMenu key.Binding

	// Menu-bar buttons
	IconifyButton key.Binding
	RestoreButton key.Binding
	CloseButton   key.Binding

	// Windows
	MoveUp      key.Binding
	MoveDown    key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	GrowDown    key.Binding
	ShrinkUp    key.Binding
	ShrinkLeft  key.Binding
	GrowRight   key.Binding
	CommandMenu key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewView: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "new view"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close"),
		),
		Dispose: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "dispose"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev view"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "maximize"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "minimize"),
		),
		Restore: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "restore"),
		),
		Rename: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "rename"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy title"),
		),
		Select: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("M-1..9", "select"),
		),
		TogglePane: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "tabs/windows"),
		),
		SystemMenu: key.NewBinding(
			key.WithKeys("alt+-"),
			key.WithHelp("M--", "system menu"),
		),
		IconifyButton: key.NewBinding(
			key.WithKeys("alt+n"),
			key.WithHelp("M-n", "minimize button"),
		),
		RestoreButton: key.NewBinding(
			key.WithKeys("alt+r"),
			key.WithHelp("M-r", "restore button"),
		),
		CloseButton: key.NewBinding(
			key.WithKeys("alt+x"),
			key.WithHelp("M-x", "close button"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("arrows", "move window"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("arrows", "move window"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("arrows", "move window"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("arrows", "move window"),
		),
		ShrinkUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("S-arrows", "resize window"),
		),
		GrowDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("S-arrows", "resize window"),
		),
		ShrinkLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("S-arrows", "resize window"),
		),
		GrowRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("S-arrows", "resize window"),
		),
		CommandMenu: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "commands"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CommandMenu, k.NewView, k.Close, k.Next, k.TogglePane, k.Maximize, k.Minimize, k.Restore, k.Rename, k.Quit}
}

// selectNumber returns the digit of an alt+N key press.
func selectNumber(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(string(msg.Runes))
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n, true
}
