package components

import (
	"strings"

	"gantterm/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual key hints, replaced
// by a transient notice when one is active.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width. A non-empty
// notice takes precedence over the hint items; hints are joined with " • ".
func (s StatusBar) Render(width int, items []string, notice string, p styles.Palette) string {
	if notice != "" {
		return p.Notice.Width(width).Render(notice)
	}
	if len(items) == 0 {
		return p.StatusBar.Width(width).Render("")
	}
	return p.StatusBar.Width(width).Render(strings.Join(items, " • "))
}
