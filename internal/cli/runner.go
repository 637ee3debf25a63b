package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/idilsaglam/tasks/internal/config"
	"github.com/idilsaglam/tasks/internal/logging"
	"github.com/idilsaglam/tasks/internal/store"
	"github.com/idilsaglam/tasks/internal/tui"
	"github.com/idilsaglam/tasks/internal/ui"
)

// Run loads configuration, then drives one session over a fresh store.
// It returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { PrintHelp(stderr, fs) }

	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		ui.Fail(stderr, err.Error())
		return 2
	}

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(cfg.Color == config.ColorAlways, cfg.Color == config.ColorNever)
	logger := logging.FromConfig(stderr, cfg.LogLevel, cfg.LogFormat)
	logger.Debug("config loaded", "theme", cfg.Theme, "color", cfg.Color, "tui", cfg.TUI, "file", cfg.Path)

	st := store.New()
	if cfg.TUI {
		if err := tui.Run(st, stdin, stdout, logger); err != nil {
			ui.Fail(stderr, "tui: "+err.Error())
			return 1
		}
		return 0
	}

	if err := NewSession(st, stdin, stdout, stderr, logger).Run(); err != nil {
		ui.Fail(stderr, "read input: "+err.Error())
		return 1
	}
	return 0
}

func PrintHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, `tasks - an interactive task tracker

Usage:
  tasks [flags]

Tasks live in memory for the session only; choose Exit (8) to quit.

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Config file: %s
Environment: TASKS_THEME, TASKS_COLOR, TASKS_LOG_LEVEL, TASKS_LOG_FORMAT
`, config.UserConfigPath())
}
