package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at an empty temp dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"TASKS_THEME", "TASKS_COLOR", "TASKS_LOG_LEVEL", "TASKS_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	return dir
}

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return Load(fs, args)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultConfigDirUsesXDG(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, AppName), DefaultConfigDir())
	assert.Equal(t, filepath.Join(dir, AppName, FileName), UserConfigPath())
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, AppName, FileName), `
theme = "neon"
log_level = "info"
tui = true
`)
	explicit := filepath.Join(t.TempDir(), "override.toml")
	writeFile(t, explicit, `log_format = "json"`)
	t.Setenv("TASKS_LOG_LEVEL", "error")
	t.Setenv("TASKS_THEME", "classic")

	cfg, err := load(t, "-config", explicit, "-theme", "mono", "-no-color")
	require.NoError(t, err)

	assert.Equal(t, "mono", cfg.Theme, "flag beats env")
	assert.Equal(t, "error", cfg.LogLevel, "env beats file")
	assert.Equal(t, "json", cfg.LogFormat, "explicit file applies")
	assert.True(t, cfg.TUI, "user file applies")
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, explicit, cfg.Path)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, `colour = "never"`)

	_, err := load(t, "-config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: colour")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := load(t, "-config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadValidates(t *testing.T) {
	isolate(t)
	t.Setenv("TASKS_COLOR", "sometimes")

	_, err := load(t, "-theme", "solarized", "-log-level", "trace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "solarized"`)
	assert.Contains(t, err.Error(), `unknown color mode "sometimes"`)
	assert.Contains(t, err.Error(), `unknown log level "trace"`)
}

func TestLoadHelpAndStrayArgs(t *testing.T) {
	isolate(t)

	_, err := load(t, "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = load(t, "extra")
	assert.EqualError(t, err, "unexpected argument: extra")
}
