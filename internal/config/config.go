// Package config loads settings from defaults, TOML files, environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/tasks/internal/logging"
	"github.com/idilsaglam/tasks/internal/ui"
)

const (
	// AppName is the configuration directory name.
	AppName = "tasks"

	// FileName is the config file looked up in the user config dir.
	FileName = "config.toml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every user-tunable setting.
type Config struct {
	Theme     string `toml:"theme"`
	Color     string `toml:"color"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	TUI       bool   `toml:"tui"`

	// Path is the explicit config file, if any (computed).
	Path string `toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:     "classic",
		Color:     ColorAuto,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/tasks or $HOME/.config/tasks.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// UserConfigPath is the config file read when present.
func UserConfigPath() string {
	return filepath.Join(DefaultConfigDir(), FileName)
}

// Load resolves configuration in priority order:
// 1. Defaults
// 2. User config file (optional)
// 3. File named by -config (must exist)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	var (
		path, theme, level, format string
		noColor, tui               bool
	)
	fs.StringVar(&path, "config", "", "path to a TOML config file")
	fs.StringVar(&theme, "theme", "", "color theme: "+strings.Join(ui.Themes(), ", "))
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&tui, "tui", false, "start the full-screen interface")
	fs.StringVar(&level, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&format, "log-format", "", "log format: text, json, logfmt")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	cfg := Default()

	if p := UserConfigPath(); fileExists(p) {
		if err := loadFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.Path = path
	}

	loadFromEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = theme
		case "no-color":
			if noColor {
				cfg.Color = ColorNever
			}
		case "tui":
			cfg.TUI = tui
		case "log-level":
			cfg.LogLevel = level
		case "log-format":
			cfg.LogFormat = format
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component understands.
func (c *Config) Validate() error {
	var errs []error
	if !ui.ValidTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.Themes(), ", ")))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v, ok := os.LookupEnv("TASKS_THEME"); ok && v != "" {
		cfg.Theme = v
	}
	if v, ok := os.LookupEnv("TASKS_COLOR"); ok && v != "" {
		cfg.Color = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("TASKS_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("TASKS_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
