package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/testutil"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/nonexistent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Mode != mdi.Tabbed {
		t.Fatalf("expected tabbed default, got %v", cfg.App.Mode)
	}
	if cfg.App.Views != defaultViews {
		t.Fatalf("expected %d views, got %d", defaultViews, cfg.App.Views)
	}
	if cfg.App.ConfigPath != "/nonexistent/.config/termdi/config.toml" {
		t.Fatalf("unexpected default config path %q", cfg.App.ConfigPath)
	}
	if cfg.App.Settings.ButtonOrder != mdi.DefaultButtonOrder {
		t.Fatalf("expected default button order, got %q", cfg.App.Settings.ButtonOrder)
	}
	if cfg.App.Reload == nil {
		t.Fatalf("expected reload hook")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"TERMDI_WIDTH=100",
		"TERMDI_HEIGHT=30",
		"TERMDI_MODE=windowed",
		"TERMDI_TRACE=true",
		"TERMDI_VIEWS=5",
		"XDG_CONFIG_HOME=/xdg",
	}
	cfg, err := LoadArgs([]string{"-width", "120", "-views", "2", "-menu", "window"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 30 {
		t.Fatalf("expected 120x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.Mode != mdi.Windowed {
		t.Fatalf("expected windowed from env, got %v", cfg.App.Mode)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if cfg.App.Views != 2 {
		t.Fatalf("expected flag to win for views, got %d", cfg.App.Views)
	}
	if cfg.App.RootMenu != "window" {
		t.Fatalf("expected root menu window, got %q", cfg.App.RootMenu)
	}
	if cfg.Flags["mode"] != "windowed" || cfg.Flags["width"] != "120" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
	if cfg.App.ConfigPath != "/xdg/termdi/config.toml" {
		t.Fatalf("expected XDG config path, got %q", cfg.App.ConfigPath)
	}
}

func TestLoadArgsRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"-width", "-1"},
		{"-height", "-2"},
		{"-views", "-1"},
		{"-mode", "stacked"},
		{"-unknown"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestLoadArgsReadsConfigFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.toml", "button_order = \"cmr\"\ntab_close_button = true\n")
	cfg, err := LoadArgs([]string{"-config", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Settings.ButtonOrder != "cmr" || !cfg.App.Settings.TabCloseButton {
		t.Fatalf("expected settings from file, got %#v", cfg.App.Settings)
	}
	if !cfg.App.Settings.ButtonsEnabled {
		t.Fatalf("expected omitted keys to keep defaults")
	}
}

func TestLoadArgsMissingConfigFileIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, err := LoadArgs([]string{"-config", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.ConfigPath != path {
		t.Fatalf("expected path kept for watching, got %q", cfg.App.ConfigPath)
	}
}

func TestParseDefaultConfigToml(t *testing.T) {
	settings, err := ParseFile([]byte(DefaultConfigToml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.SystemMenu != mdi.DefaultSystemMenu() {
		t.Fatalf("expected default system menu, got %#v", settings.SystemMenu)
	}
	if settings.WindowsTitle != "Windows" {
		t.Fatalf("expected Windows title, got %q", settings.WindowsTitle)
	}
}

func TestParseFileOverridesSystemMenu(t *testing.T) {
	raw := `
[system_menu]
minimize = { text = "Iconify", mnemonic = "I" }
`
	settings, err := ParseFile([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.SystemMenu.Minimize != (mdi.MenuText{Text: "Iconify", Mnemonic: 'I'}) {
		t.Fatalf("unexpected minimize entry %#v", settings.SystemMenu.Minimize)
	}
	if settings.SystemMenu.Restore.Text != "Restore" {
		t.Fatalf("expected restore untouched, got %#v", settings.SystemMenu.Restore)
	}
}

func TestParseFileErrors(t *testing.T) {
	cases := map[string]string{
		"bad order":    `button_order = "mmc"`,
		"mnemonic":     "[system_menu]\nclose = { mnemonic = \"CL\" }",
		"unknown key":  `colour = "red"`,
		"syntax error": `button_order = `,
	}
	for name, raw := range cases {
		if _, err := ParseFile([]byte(raw)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	_, err := ParseFile([]byte(`button_order = "xyz"`))
	if !errors.Is(err, mdi.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLoadFileWrapsPath(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "bad.toml", `button_order = "q"`)
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error mentioning %s, got %v", path, err)
	}
}

func TestValidateRejectsBadOrder(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.App.Settings.ButtonOrder = "rm"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}
