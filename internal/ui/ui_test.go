package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func useMono(t *testing.T) {
	t.Helper()
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	SetTheme("nope")
	assert.Equal(t, "classic", Current().Name)
	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("classic")
}

func TestValidTheme(t *testing.T) {
	assert.True(t, ValidTheme("mono"))
	assert.True(t, ValidTheme("Classic"))
	assert.False(t, ValidTheme("solarized"))
	assert.ElementsMatch(t, []string{"classic", "neon", "mono"}, Themes())
}

func TestMonoIsPlain(t *testing.T) {
	useMono(t)
	SetColorForcing(true, false)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		lipgloss.SetColorProfile(termenv.Ascii)
	})

	assert.False(t, ColorEnabled())
	assert.Equal(t, "hello", C(Current().Success, "hello"))
}

func TestOKAndFail(t *testing.T) {
	useMono(t)
	var out, errOut bytes.Buffer

	OK(&out, "added")
	Fail(&errOut, "broken")

	assert.Equal(t, "+ added\n", out.String())
	assert.Equal(t, "! broken\n", errOut.String())
}

func TestProgressBar(t *testing.T) {
	useMono(t)
	assert.Equal(t, "#####..... 1/2", ProgressBar(1, 2, 10))
	assert.Equal(t, "..... 0/0", ProgressBar(0, 0, 3))
	assert.Equal(t, "##### 4/4", ProgressBar(4, 4, 5))
}

func TestSummary(t *testing.T) {
	useMono(t)
	assert.Equal(t, "Task List:  + 2  • 1", Summary(2, 1))
}

func TestPanelFramesLines(t *testing.T) {
	useMono(t)
	var out bytes.Buffer

	Panel(&out, []string{"ab", "c"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, []string{"+----+", "| ab |", "| c  |", "+----+"}, lines)
}
