package card

import "github.com/charmbracelet/lipgloss"

// Palette keeps the raw colors so non-terminal outputs (PDF) can reuse them.
type Palette struct {
	Primary   string
	Secondary string
	Subtle    string
	Heading   string
	Value     string
	Link      string
}

type Theme struct {
	Name    string
	Palette Palette
	Border  lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style
	Subtle  lipgloss.Style
	Accent  lipgloss.Style
	Value   lipgloss.Style
	Link    lipgloss.Style
}

func newTheme(name string, p Palette) Theme {
	color := func(c string) lipgloss.Style {
		if c == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Theme{
		Name:    name,
		Palette: p,
		Border:  color(p.Primary),
		Title:   color(p.Primary).Bold(true),
		Heading: color(p.Heading),
		Subtle:  color(p.Subtle),
		Accent:  color(p.Secondary),
		Value:   color(p.Value),
		Link:    color(p.Link).Underline(true),
	}
}

var Themes = map[string]Theme{
	"default": newTheme("Default", Palette{
		Primary:   "#654FF0",
		Secondary: "#4FF0B5",
		Subtle:    "#AFB7C0",
		Heading:   "#F04F89",
		Value:     "#FFFFFF",
		Link:      "#7CFC00",
	}),
	"dracula": newTheme("Dracula", Palette{
		Primary:   "#BD93F9", // Purple
		Secondary: "#8BE9FD", // Cyan
		Subtle:    "#6272A4", // Comment
		Heading:   "#FF79C6", // Pink
		Value:     "#F8F8F2",
		Link:      "#50FA7B", // Green
	}),
	"mono": newTheme("Mono", Palette{}),
}

// ThemeByName returns the named theme, or the default one when unknown.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
