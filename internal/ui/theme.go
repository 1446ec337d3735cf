package ui

import "github.com/charmbracelet/lipgloss"

// Colors is a named palette used across all terminal output.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme bundles a palette with the NoColor switch. When NoColor is set,
// every style helper degrades to plain text.
type Theme struct {
	Name    string
	NoColor bool
	Colors  Colors
}

var palettes = map[string]Colors{
	"charm": {
		Primary:   "#7D56F4",
		Secondary: "#EE6FF8",
		Success:   "#04B575",
		Error:     "#FF5F87",
		Muted:     "#6B7280",
	},
	"ocean": {
		Primary:   "#00AFFF",
		Secondary: "#5FD7FF",
		Success:   "#00D787",
		Error:     "#FF5F5F",
		Muted:     "#8A8A8A",
	},
}

// ThemeNames returns the known theme names.
func ThemeNames() []string {
	return []string{"charm", "ocean"}
}

// KnownTheme reports whether name is a shipped palette.
func KnownTheme(name string) bool {
	_, ok := palettes[name]
	return ok
}

// NewTheme creates a theme by palette name. Unknown names fall back to
// the charm palette.
func NewTheme(name string, noColor bool) *Theme {
	colors, ok := palettes[name]
	if !ok {
		name = "charm"
		colors = palettes[name]
	}
	return &Theme{Name: name, NoColor: noColor, Colors: colors}
}

// Title renders a section heading.
func (t *Theme) Title(s string) string {
	if t.NoColor {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Primary)).Render(s)
}

// Accent renders secondary-colored text.
func (t *Theme) Accent(s string) string {
	if t.NoColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Secondary)).Render(s)
}

// Muted renders de-emphasized text.
func (t *Theme) Muted(s string) string {
	if t.NoColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted)).Render(s)
}

// Success renders a success marker.
func (t *Theme) Success(s string) string {
	if t.NoColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success)).Render(s)
}
