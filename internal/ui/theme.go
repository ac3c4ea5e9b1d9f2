package ui

import "github.com/charmbracelet/lipgloss"

// palette holds the colors of one theme.
type palette struct {
	fg, bg, muted, accent, overdue, border, errFg lipgloss.Color
}

var (
	lightPalette = palette{
		fg:      lipgloss.Color("235"),
		bg:      lipgloss.Color("255"),
		muted:   lipgloss.Color("244"),
		accent:  lipgloss.Color("25"),
		overdue: lipgloss.Color("160"),
		border:  lipgloss.Color("250"),
		errFg:   lipgloss.Color("124"),
	}
	darkPalette = palette{
		fg:      lipgloss.Color("252"),
		bg:      lipgloss.Color("234"),
		muted:   lipgloss.Color("242"),
		accent:  lipgloss.Color("75"),
		overdue: lipgloss.Color("203"),
		border:  lipgloss.Color("238"),
		errFg:   lipgloss.Color("210"),
	}
)

// styles are the rendered styles for one theme.
type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	row      lipgloss.Style
	selected lipgloss.Style
	desc     lipgloss.Style
	date     lipgloss.Style
	overdue  lipgloss.Style
	label    lipgloss.Style
	sheet    lipgloss.Style
	status   lipgloss.Style
	muted    lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return styles{
		app:      lipgloss.NewStyle().Foreground(p.fg).Background(p.bg).Padding(1, 2),
		title:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		row:      lipgloss.NewStyle().Foreground(p.fg),
		selected: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		desc:     lipgloss.NewStyle().Foreground(p.muted),
		date:     lipgloss.NewStyle().Foreground(p.muted),
		overdue:  lipgloss.NewStyle().Foreground(p.overdue).Bold(true),
		label:    lipgloss.NewStyle().Foreground(p.accent).Width(13),
		sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		status: lipgloss.NewStyle().Foreground(p.errFg),
		muted:  lipgloss.NewStyle().Foreground(p.muted),
	}
}
