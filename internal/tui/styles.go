package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary = lipgloss.Color("39")  // blue
	ColorAccent  = lipgloss.Color("170") // purple
	ColorSuccess = lipgloss.Color("42")  // green
	ColorDanger  = lipgloss.Color("196") // red
	ColorMuted   = lipgloss.Color("241") // gray
	ColorBorder  = lipgloss.Color("238")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveColumnStyle = ColumnStyle.
				BorderForeground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	FieldNameStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedFieldStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	ResultLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ResultValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)
