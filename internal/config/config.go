package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/termdi/internal/app"
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/state"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWidth      = "TERMDI_WIDTH"
	envHeight     = "TERMDI_HEIGHT"
	envShowFooter = "TERMDI_FOOTER"
	envVerbose    = "TERMDI_VERBOSE"
	envTrace      = "TERMDI_TRACE"
	envLogFile    = "TERMDI_LOG_FILE"
	envConfigFile = "TERMDI_CONFIG"
	envMode       = "TERMDI_MODE"
	envViews      = "TERMDI_VIEWS"
	envRootMenu   = "TERMDI_ROOT_MENU"

	defaultViews = 3
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("termdi", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	configFile := fs.String("config", envOrDefault(env, envConfigFile, defaultConfigPath(env)), "path to the TOML settings file")
	mode := fs.String("mode", envOrDefault(env, envMode, mdi.Tabbed.String()), "initial pane mode: tabbed or windowed")
	views := fs.Int("views", envOrInt(env, envViews, defaultViews), "number of views to open at startup")
	rootMenu := fs.String("menu", envOrDefault(env, envRootMenu, ""), "open the command menu at this submenu (e.g. window)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *views < 0 {
		return Config{}, fmt.Errorf("views must be >= 0 (got %d)", *views)
	}
	paneMode, err := mdi.ParsePaneMode(*mode)
	if err != nil {
		return Config{}, err
	}

	settings := state.DefaultSettings()
	if *configFile != "" {
		if _, statErr := os.Stat(*configFile); statErr == nil {
			loaded, err := LoadFile(*configFile)
			if err != nil {
				return Config{}, err
			}
			settings = loaded
		}
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Mode:       paneMode,
			Views:      *views,
			ConfigPath: *configFile,
			Settings:   settings,
			Reload:     LoadFile,
			RootMenu:   *rootMenu,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
			"config":  *configFile,
			"mode":    paneMode.String(),
			"views":   strconv.Itoa(*views),
			"menu":    *rootMenu,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// defaultConfigPath resolves $XDG_CONFIG_HOME/termdi/config.toml, falling back
// to ~/.config. The file does not need to exist.
func defaultConfigPath(env map[string]string) string {
	base := strings.TrimSpace(env["XDG_CONFIG_HOME"])
	if base == "" {
		home := strings.TrimSpace(env["HOME"])
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "termdi", "config.toml")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the chrome settings a frame will be built from.
func Validate(cfg Config) error {
	if _, err := mdi.ParseButtonOrder(cfg.App.Settings.ButtonOrder); err != nil {
		return err
	}
	if cfg.App.Mode != mdi.Tabbed && cfg.App.Mode != mdi.Windowed {
		return fmt.Errorf("pane mode %d: %w", int(cfg.App.Mode), mdi.ErrInvalidArgument)
	}
	return nil
}
