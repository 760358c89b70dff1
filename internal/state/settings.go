package state

import "github.com/atomicstack/termdi/internal/mdi"

// Settings are the chrome options that can change while the program runs.
type Settings struct {
	ButtonOrder    string
	ButtonsEnabled bool
	TabCloseButton bool
	SystemMenu     mdi.SystemMenu
	WindowsTitle   string
}

// DefaultSettings mirrors mdi.DefaultOptions.
func DefaultSettings() Settings {
	opts := mdi.DefaultOptions()
	return Settings{
		ButtonOrder:    opts.ButtonOrder,
		ButtonsEnabled: opts.ButtonsEnabled,
		TabCloseButton: opts.TabCloseButton,
		SystemMenu:     opts.SystemMenu,
	}
}

// Options folds s into base.
func (s Settings) Options(base mdi.Options) mdi.Options {
	base.ButtonOrder = s.ButtonOrder
	base.ButtonsEnabled = s.ButtonsEnabled
	base.TabCloseButton = s.TabCloseButton
	base.SystemMenu = s.SystemMenu
	return base
}

// SettingsStore remembers the most recently loaded settings and where they
// came from.
type SettingsStore interface {
	Settings() Settings
	SetSettings(Settings)
	Source() string
	SetSource(string)
}

type settingsStore struct {
	settings Settings
	source   string
}

func NewSettingsStore(initial Settings) SettingsStore {
	return &settingsStore{settings: initial}
}

func (s *settingsStore) Settings() Settings        { return s.settings }
func (s *settingsStore) SetSettings(next Settings) { s.settings = next }
func (s *settingsStore) Source() string            { return s.source }
func (s *settingsStore) SetSource(path string)     { s.source = path }
