package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/tasks/internal/ui"
)

func runCLI(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"TASKS_THEME", "TASKS_COLOR", "TASKS_LOG_LEVEL", "TASKS_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	t.Cleanup(func() {
		ui.SetTheme("classic")
		ui.SetColorForcing(false, false)
	})

	var out, errOut bytes.Buffer
	code = Run(args, strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunSession(t *testing.T) {
	code, out, errOut := runCLI(t, "1\nBuy milk\n3\n3\n8\n", "-theme", "mono")

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "+ Task added successfully!")
	assert.Contains(t, out, "1. [ ] Priority: 3 - Buy milk")
}

func TestRunDebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "1\nBuy milk\n3\n8\n", "-theme", "mono", "-log-level", "debug", "-log-format", "logfmt")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "task added")
	assert.Contains(t, errOut, "priority=3")
}

func TestRunBadConfig(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-theme", "solarized")

	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `unknown theme "solarized"`)
}

func TestRunHelp(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-h")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Usage:")
	assert.Contains(t, errOut, "-theme")
	assert.Contains(t, errOut, "TASKS_THEME")
}
