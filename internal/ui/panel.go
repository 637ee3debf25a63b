package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar with a done/total count.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	t := current
	return strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled) +
		fmt.Sprintf(" %d/%d", done, total)
}

// Summary is the header line shown above the full list.
func Summary(done, pending int) string {
	t := current
	return fmt.Sprintf("%s  %s %d  %s %d",
		C(t.Title, "Task List:"),
		C(t.Success, t.SymOK), done,
		C(t.Pending, "•"), pending,
	)
}

// Panel draws lines inside a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	style := Frame()
	if !ColorEnabled() {
		style = style.UnsetBorderForeground()
	}
	fmt.Fprintln(w, style.Render(strings.Join(lines, "\n")))
}

// Frame is the bordered, padded box style of the current theme.
func Frame() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(current.Border).
		Padding(0, 1)
	if current.BorderColor != "" {
		style = style.BorderForeground(current.BorderColor)
	}
	return style
}
