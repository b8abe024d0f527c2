package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Base        lipgloss.Style
	Border      lipgloss.Color
	Header      lipgloss.Style
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
	AdBadge     lipgloss.Style
	Headline    lipgloss.Style
	URL         lipgloss.Style
	Description lipgloss.Style
	CounterOK   lipgloss.Style
	CounterWarn lipgloss.Style
	CounterOver lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("63"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		AdBadge:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Headline:    lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Bold(true),
		URL:         lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CounterOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		CounterWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		CounterOver: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:        "Dracula",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("62"),                                             // Purple
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),            // White
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		AdBadge:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Headline:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true), // Cyan
		URL:         lipgloss.NewStyle().Foreground(lipgloss.Color("120")),            // Green
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),            // White
		CounterOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		CounterWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		CounterOver: lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Red/Pink
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
	},
	"mono": {
		Name:        "Mono",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("245"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		AdBadge:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Headline:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		URL:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Underline(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		CounterOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		CounterWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		CounterOver: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	},
}

// Frames holds the bordered containers shared across views. Border color is
// applied at render time from the active theme.
var Frames = struct {
	Header lipgloss.Style
	Card   lipgloss.Style
	Modal  lipgloss.Style
	Footer lipgloss.Style
}{
	Header: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Card:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Modal:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Footer: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// ResolveTheme returns the named theme, falling back to default.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
