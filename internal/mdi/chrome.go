package mdi

import (
	"fmt"
	"strings"
)

// ButtonType names a menu-bar button slot.
type ButtonType int

const (
	ButtonIconify ButtonType = iota
	ButtonRestore
	ButtonClose
)

func (t ButtonType) String() string {
	switch t {
	case ButtonIconify:
		return "iconify"
	case ButtonRestore:
		return "restore"
	case ButtonClose:
		return "close"
	default:
		return fmt.Sprintf("ButtonType(%d)", int(t))
	}
}

// DefaultButtonOrder lists the button slots left to right: m(inimize),
// r(estore), c(lose).
const DefaultButtonOrder = "mrc"

var orderLetters = map[rune]ButtonType{
	'm': ButtonIconify,
	'r': ButtonRestore,
	'c': ButtonClose,
}

// ParseButtonOrder validates a permutation of "mrc".
func ParseButtonOrder(order string) ([]ButtonType, error) {
	order = strings.ToLower(strings.TrimSpace(order))
	if len(order) != 3 {
		return nil, fmt.Errorf("button order %q must name m, r and c once: %w", order, ErrInvalidArgument)
	}
	seen := make(map[ButtonType]bool, 3)
	out := make([]ButtonType, 0, 3)
	for _, r := range order {
		t, ok := orderLetters[r]
		if !ok || seen[t] {
			return nil, fmt.Errorf("button order %q must name m, r and c once: %w", order, ErrInvalidArgument)
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

// Button is a chrome button shown in the menu bar while the frame is tabbed.
type Button struct {
	Type    ButtonType
	Label   string
	Tooltip string
}

// NewButton returns a button with the default label for t.
func NewButton(t ButtonType) Button {
	switch t {
	case ButtonIconify:
		return Button{Type: t, Label: "_", Tooltip: "Minimize"}
	case ButtonRestore:
		return Button{Type: t, Label: "▫", Tooltip: "Restore"}
	default:
		return Button{Type: ButtonClose, Label: "x", Tooltip: "Close"}
	}
}

// ButtonSet holds the button currently installed in each slot.
type ButtonSet struct {
	Iconify Button
	Restore Button
	Close   Button
}

func defaultButtons() ButtonSet {
	return ButtonSet{
		Iconify: NewButton(ButtonIconify),
		Restore: NewButton(ButtonRestore),
		Close:   NewButton(ButtonClose),
	}
}

func (s ButtonSet) get(t ButtonType) Button {
	switch t {
	case ButtonIconify:
		return s.Iconify
	case ButtonRestore:
		return s.Restore
	default:
		return s.Close
	}
}

// ButtonElementID returns the menu bar element id used for button type t.
func ButtonElementID(t ButtonType) string {
	return "button:" + t.String()
}

// MenuElement is an arbitrary element hosted by a menu bar.
type MenuElement struct {
	ID      string
	Label   string
	Enabled bool
}

// MenuBar hosts chrome elements.
type MenuBar interface {
	Add(e MenuElement)
	Remove(id string) bool
	SetEnabled(id string, enabled bool) bool
	Elements() []MenuElement
}

type menuBar struct {
	elements []MenuElement
}

// NewMenuBar returns an in-memory menu bar.
func NewMenuBar() MenuBar {
	return &menuBar{}
}

func (m *menuBar) Add(e MenuElement) {
	for i := range m.elements {
		if m.elements[i].ID == e.ID {
			m.elements[i] = e
			return
		}
	}
	m.elements = append(m.elements, e)
}

func (m *menuBar) Remove(id string) bool {
	for i := range m.elements {
		if m.elements[i].ID == id {
			m.elements = append(m.elements[:i], m.elements[i+1:]...)
			return true
		}
	}
	return false
}

func (m *menuBar) SetEnabled(id string, enabled bool) bool {
	for i := range m.elements {
		if m.elements[i].ID == id {
			m.elements[i].Enabled = enabled
			return true
		}
	}
	return false
}

func (m *menuBar) Elements() []MenuElement {
	if len(m.elements) == 0 {
		return nil
	}
	out := make([]MenuElement, len(m.elements))
	copy(out, m.elements)
	return out
}

// MenuText is a labelled entry with a keyboard mnemonic.
type MenuText struct {
	Text     string
	Mnemonic rune
}

// SystemMenu configures the per-view restore/minimize/close popup.
type SystemMenu struct {
	Restore  MenuText
	Minimize MenuText
	Close    MenuText
}

func DefaultSystemMenu() SystemMenu {
	return SystemMenu{
		Restore:  MenuText{Text: "Restore", Mnemonic: 'R'},
		Minimize: MenuText{Text: "Minimize", Mnemonic: 'N'},
		Close:    MenuText{Text: "Close", Mnemonic: 'C'},
	}
}

// SystemAction identifies a system menu entry.
type SystemAction int

const (
	SystemRestore SystemAction = iota
	SystemMinimize
	SystemClose
)

// SystemMenuItem is one entry of a view's system menu.
type SystemMenuItem struct {
	Action SystemAction
	MenuText
}

func (s SystemMenu) Items() []SystemMenuItem {
	return []SystemMenuItem{
		{Action: SystemRestore, MenuText: s.Restore},
		{Action: SystemMinimize, MenuText: s.Minimize},
		{Action: SystemClose, MenuText: s.Close},
	}
}
