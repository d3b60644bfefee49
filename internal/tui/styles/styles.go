// Package styles defines the lipgloss palettes for the TUI. Two palettes
// exist so the theme can be toggled at runtime.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"gantterm/internal/chart"
)

// Palette is one named set of styles covering the whole application.
type Palette struct {
	Name string

	Title     lipgloss.Style
	Subtle    lipgloss.Style
	StatusBar lipgloss.Style
	Notice    lipgloss.Style
	Error     lipgloss.Style

	ChartHeader    lipgloss.Style
	ChartGrid      lipgloss.Style
	ChartBar       lipgloss.Style
	ChartProgress  lipgloss.Style
	ChartMilestone lipgloss.Style
	ChartLabel     lipgloss.Style
	ChartSelected  lipgloss.Style
	ChartToday     lipgloss.Style
}

// Dark is the default palette.
func Dark() Palette {
	primary := lipgloss.Color("#5FAFAF")   // teal accent
	secondary := lipgloss.Color("#666666") // gray for secondary text
	success := lipgloss.Color("#87AF87")   // muted sage
	warn := lipgloss.Color("#D7AF5F")      // amber for milestones
	danger := lipgloss.Color("#AF5F5F")    // muted terracotta

	return Palette{
		Name: "dark",

		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtle:    lipgloss.NewStyle().Foreground(secondary),
		StatusBar: lipgloss.NewStyle().Foreground(secondary),
		Notice:    lipgloss.NewStyle().Foreground(success),
		Error:     lipgloss.NewStyle().Foreground(danger),

		ChartHeader:    lipgloss.NewStyle().Foreground(secondary),
		ChartGrid:      lipgloss.NewStyle().Foreground(secondary),
		ChartBar:       lipgloss.NewStyle().Foreground(primary),
		ChartProgress:  lipgloss.NewStyle().Foreground(success),
		ChartMilestone: lipgloss.NewStyle().Foreground(warn),
		ChartLabel:     lipgloss.NewStyle(),
		ChartSelected:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		ChartToday:     lipgloss.NewStyle().Foreground(danger),
	}
}

// Light is the alternate palette for light terminals.
func Light() Palette {
	primary := lipgloss.Color("#2E7D7D")
	secondary := lipgloss.Color("#999999")
	success := lipgloss.Color("#4E7D4E")
	warn := lipgloss.Color("#B08020")
	danger := lipgloss.Color("#B04040")

	return Palette{
		Name: "light",

		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtle:    lipgloss.NewStyle().Foreground(secondary),
		StatusBar: lipgloss.NewStyle().Foreground(secondary),
		Notice:    lipgloss.NewStyle().Foreground(success),
		Error:     lipgloss.NewStyle().Foreground(danger),

		ChartHeader:    lipgloss.NewStyle().Foreground(secondary),
		ChartGrid:      lipgloss.NewStyle().Foreground(secondary),
		ChartBar:       lipgloss.NewStyle().Foreground(primary),
		ChartProgress:  lipgloss.NewStyle().Foreground(success),
		ChartMilestone: lipgloss.NewStyle().Foreground(warn),
		ChartLabel:     lipgloss.NewStyle(),
		ChartSelected:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		ChartToday:     lipgloss.NewStyle().Foreground(danger),
	}
}

// ForName returns the palette with the given name, defaulting to dark.
func ForName(name string) Palette {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// ChartTheme adapts the palette to the chart renderer.
func (p Palette) ChartTheme() chart.Theme {
	return chart.Theme{
		Header:    p.ChartHeader,
		Grid:      p.ChartGrid,
		Bar:       p.ChartBar,
		Progress:  p.ChartProgress,
		Milestone: p.ChartMilestone,
		Label:     p.ChartLabel,
		Selected:  p.ChartSelected,
		Today:     p.ChartToday,
	}
}

// Toggle returns the other palette.
func (p Palette) Toggle() Palette {
	if p.Name == "dark" {
		return Light()
	}
	return Dark()
}
