package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/state"
)

// File is the on-disk TOML settings layout.
type File struct {
	ButtonOrder    string          `toml:"button_order"`
	ButtonsEnabled *bool           `toml:"buttons_enabled"`
	TabCloseButton *bool           `toml:"tab_close_button"`
	SystemMenu     SystemMenuFile  `toml:"system_menu"`
	WindowsMenu    WindowsMenuFile `toml:"windows_menu"`
}

type SystemMenuFile struct {
	Restore  MenuTextFile `toml:"restore"`
	Minimize MenuTextFile `toml:"minimize"`
	Close    MenuTextFile `toml:"close"`
}

type MenuTextFile struct {
	Text     string `toml:"text"`
	Mnemonic string `toml:"mnemonic"`
}

type WindowsMenuFile struct {
	Title string `toml:"title"`
}

const DefaultConfigToml = `# termdi configuration

# Menu-bar buttons shown while tabbed, left to right:
# m(inimize), r(estore), c(lose).
button_order = "mrc"
buttons_enabled = true
tab_close_button = false

[system_menu]
restore = { text = "Restore", mnemonic = "R" }
minimize = { text = "Minimize", mnemonic = "N" }
close = { text = "Close", mnemonic = "C" }

[windows_menu]
title = "Windows"
`

// LoadFile reads and validates the TOML settings at path. Keys left out keep
// their defaults.
func LoadFile(path string) (state.Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return state.Settings{}, err
	}
	settings, err := ParseFile(raw)
	if err != nil {
		return state.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// ParseFile decodes TOML settings. Unknown keys are rejected.
func ParseFile(raw []byte) (state.Settings, error) {
	var f File
	md, err := toml.Decode(string(raw), &f)
	if err != nil {
		return state.Settings{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return state.Settings{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return f.Settings(state.DefaultSettings())
}

// Settings overlays f onto base.
func (f File) Settings(base state.Settings) (state.Settings, error) {
	out := base
	if f.ButtonOrder != "" {
		if _, err := mdi.ParseButtonOrder(f.ButtonOrder); err != nil {
			return state.Settings{}, err
		}
		out.ButtonOrder = strings.ToLower(strings.TrimSpace(f.ButtonOrder))
	}
	if f.ButtonsEnabled != nil {
		out.ButtonsEnabled = *f.ButtonsEnabled
	}
	if f.TabCloseButton != nil {
		out.TabCloseButton = *f.TabCloseButton
	}
	var err error
	if out.SystemMenu.Restore, err = f.SystemMenu.Restore.apply("restore", out.SystemMenu.Restore); err != nil {
		return state.Settings{}, err
	}
	if out.SystemMenu.Minimize, err = f.SystemMenu.Minimize.apply("minimize", out.SystemMenu.Minimize); err != nil {
		return state.Settings{}, err
	}
	if out.SystemMenu.Close, err = f.SystemMenu.Close.apply("close", out.SystemMenu.Close); err != nil {
		return state.Settings{}, err
	}
	if title := strings.TrimSpace(f.WindowsMenu.Title); title != "" {
		out.WindowsTitle = title
	}
	return out, nil
}

func (m MenuTextFile) apply(name string, base mdi.MenuText) (mdi.MenuText, error) {
	if m.Text != "" {
		base.Text = m.Text
	}
	if m.Mnemonic != "" {
		if utf8.RuneCountInString(m.Mnemonic) != 1 {
			return mdi.MenuText{}, fmt.Errorf("system_menu.%s.mnemonic %q must be a single character: %w", name, m.Mnemonic, mdi.ErrInvalidArgument)
		}
		r, _ := utf8.DecodeRuneInString(m.Mnemonic)
		base.Mnemonic = r
	}
	return base, nil
}
