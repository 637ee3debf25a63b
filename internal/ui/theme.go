package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, markers and panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done                                          lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.Color
	MarkDone, MarkPending                         string
	SymOK, SymFail                                string
	BarFull, BarEmpty                             string
	// Plain disables styling regardless of the terminal.
	Plain bool
}

var themeNames = []string{"classic", "neon", "mono"}

// Themes lists the selectable theme names.
func Themes() []string { return slices.Clone(themeNames) }

// ValidTheme reports whether name selects a known theme.
func ValidTheme(name string) bool {
	return slices.Contains(themeNames, strings.ToLower(name))
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:    "classic",
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Border:  lipgloss.NormalBorder(), BorderColor: lipgloss.Color("8"),
		MarkDone: "✓", MarkPending: " ",
		SymOK: "✔", SymFail: "✖",
		BarFull: "█", BarEmpty: "░",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:    "neon",
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")), // bright magenta
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
			Border:  lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("13"),
			MarkDone: "◼", MarkPending: " ",
			SymOK: "✔", SymFail: "✖",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		current = Theme{
			Name: "mono",
			Border: lipgloss.Border{
				Top: "-", Bottom: "-", Left: "|", Right: "|",
				TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
			},
			MarkDone: "x", MarkPending: " ",
			SymOK: "+", SymFail: "!",
			BarFull: "#", BarEmpty: ".",
			Plain: true,
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
