package output

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used when the configuration names no theme.
const DefaultTheme = "default"

// Palette holds the colors of one theme.
type Palette struct {
	Noun    lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Failure lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
}

var themes = map[string]Palette{
	"default": {
		Noun:    lipgloss.Color("14"),
		Success: lipgloss.Color("82"),
		Warning: lipgloss.Color("220"),
		Failure: lipgloss.Color("196"),
		Accent:  lipgloss.Color("12"),
	},
	"dracula": {
		Noun:    lipgloss.Color("#8be9fd"),
		Success: lipgloss.Color("#50fa7b"),
		Warning: lipgloss.Color("#f1fa8c"),
		Failure: lipgloss.Color("#ff5555"),
		Accent:  lipgloss.Color("#bd93f9"),
	},
	"mono": {
		Noun:    lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Failure: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
	},
}

// Themes returns the known theme names, sorted.
func Themes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsValidTheme reports whether name is a known theme.
func IsValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// Styles are the semantic styles derived from a theme.
type Styles struct {
	// Heading styles section titles such as "Summary:" and "Next steps:".
	Heading lipgloss.Style

	// Noun styles identifiable nouns: template identifiers, paths, project names.
	Noun lipgloss.Style

	// Success styles completion lines and checkmarks.
	Success lipgloss.Style

	// Warning styles non-fatal problems.
	Warning lipgloss.Style

	// Failure styles cross marks.
	Failure lipgloss.Style

	// Bullet styles list arrows.
	Bullet lipgloss.Style

	// Dim styles structural chrome.
	Dim lipgloss.Style
}

// NewStyles builds the styles of the named theme, falling back to the default theme.
func NewStyles(theme string) Styles {
	p, ok := themes[theme]
	if !ok {
		p = themes[DefaultTheme]
	}

	return Styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(p.Warning),
		Noun:    lipgloss.NewStyle().Foreground(p.Noun),
		Success: lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
		Failure: lipgloss.NewStyle().Foreground(p.Failure),
		Bullet:  lipgloss.NewStyle().Foreground(p.Accent),
		Dim:     lipgloss.NewStyle().Faint(true),
	}
}

// Check renders a step that completed.
func (s Styles) Check(msg string) string {
	return fmt.Sprintf("   └─ %s %s", s.Success.Render("✓"), msg)
}

// Cross renders a step that was skipped or failed.
func (s Styles) Cross(msg string) string {
	return fmt.Sprintf("   └─ %s %s", s.Failure.Render("✗"), s.Failure.Render(msg))
}

// Step renders the start of a step.
func (s Styles) Step(msg string) string {
	return fmt.Sprintf("└─ %s %s", s.Bullet.Render("►"), msg)
}

// Item renders one line of a list.
func (s Styles) Item(label, value string) string {
	if label == "" {
		return fmt.Sprintf("   %s %s", s.Bullet.Render("→"), value)
	}
	return fmt.Sprintf("   %s %s: %s", s.Bullet.Render("→"), label, s.Noun.Render(value))
}
