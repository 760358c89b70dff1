package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/backend"
	"github.com/atomicstack/termdi/internal/logging"
	"github.com/atomicstack/termdi/internal/logging/events"
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/state"
	"github.com/atomicstack/termdi/internal/ui"
)

const reloadInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Mode       mdi.PaneMode
	Views      int
	ConfigPath string
	Settings   state.Settings
	// Reload re-reads ConfigPath when it changes on disk. Nil disables
	// watching.
	Reload   func(path string) (state.Settings, error) `json:"-"`
	RootMenu string
}

// NewFrame builds the frame described by cfg and opens its initial views.
func NewFrame(cfg Config) (*mdi.Frame, error) {
	opts := cfg.Settings.Options(mdi.DefaultOptions())
	opts.Mode = cfg.Mode
	if cfg.Width > 0 {
		opts.Width = cfg.Width
	}
	if cfg.Height > 0 {
		opts.Height = cfg.Height
	}
	frame, err := mdi.NewFrame(opts)
	if err != nil {
		return nil, fmt.Errorf("new frame: %w", err)
	}
	for i := 0; i < cfg.Views; i++ {
		if err := frame.AddView(ui.NewNoteView("")); err != nil {
			return nil, fmt.Errorf("open view %d: %w", i+1, err)
		}
	}
	return frame, nil
}

// startWatcher watches the settings file when its directory exists. A missing
// directory is not an error: there is simply nothing to reload.
func startWatcher(cfg Config) (*backend.Watcher, error) {
	if cfg.ConfigPath == "" || cfg.Reload == nil {
		return nil, nil
	}
	if info, err := os.Stat(filepath.Dir(cfg.ConfigPath)); err != nil || !info.IsDir() {
		return nil, nil
	}
	reload := cfg.Reload
	w, err := backend.NewWatcher(cfg.ConfigPath, reloadInterval, func(path string) (interface{}, error) {
		return reload(path)
	})
	if err != nil {
		return nil, err
	}
	events.Config.Watch(w.Path())
	return w, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	frame, err := NewFrame(cfg)
	if err != nil {
		return err
	}
	watcher, err := startWatcher(cfg)
	if err != nil {
		// the desktop still works without live reload
		logging.Error(err)
	}
	if watcher != nil {
		defer watcher.Stop()
	}
	model := ui.NewModel(frame, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Watcher:    watcher,
		RootMenu:   cfg.RootMenu,
		Settings:   cfg.Settings,
		ConfigPath: cfg.ConfigPath,
	})
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	events.App.Stop(len(frame.Views()))
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
