package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// List items
	Item        lipgloss.Style // bordered item box
	HoveredItem lipgloss.Style
	ItemLine    lipgloss.Style // single-row item
	HoveredLine lipgloss.Style

	// Scrollbar
	ScrollTrack    lipgloss.Style
	ScrollThumb    lipgloss.Style
	ScrollArrow    lipgloss.Style
	ScrollDisabled lipgloss.Style

	// Window chrome
	MenuBar   lipgloss.Style
	MenuItem  lipgloss.Style
	MenuKey   lipgloss.Style
	StatusBar lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	Dialog    lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// DefaultStyles returns the default application styles
func DefaultStyles() Styles {
	border := lipgloss.NormalBorder()
	return Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder),
		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocused),

		Title: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Body:  lipgloss.NewStyle().Foreground(ColorForeground),
		Muted: lipgloss.NewStyle().Foreground(ColorMuted),
		Bold:  lipgloss.NewStyle().Bold(true).Foreground(ColorForeground),

		Item: lipgloss.NewStyle().
			Border(border).
			BorderForeground(ColorBorder).
			Foreground(ColorForeground),
		HoveredItem: lipgloss.NewStyle().
			Border(border).
			BorderForeground(ColorBorderFocused).
			Foreground(ColorPrimary),
		ItemLine:    lipgloss.NewStyle().Foreground(ColorForeground).Background(ColorSurface1),
		HoveredLine: lipgloss.NewStyle().Foreground(ColorForeground).Background(ColorSelection),

		ScrollTrack:    lipgloss.NewStyle().Foreground(ColorBorder),
		ScrollThumb:    lipgloss.NewStyle().Foreground(ColorPrimary),
		ScrollArrow:    lipgloss.NewStyle().Foreground(ColorMuted),
		ScrollDisabled: lipgloss.NewStyle().Foreground(ColorSurface2),

		MenuBar:   lipgloss.NewStyle().Background(ColorSurface1).Foreground(ColorForeground),
		MenuItem:  lipgloss.NewStyle().Background(ColorSurface1).Foreground(ColorForeground).Padding(0, 1),
		MenuKey:   lipgloss.NewStyle().Background(ColorSurface1).Foreground(ColorWarning).Underline(true),
		StatusBar: lipgloss.NewStyle().Background(ColorSurface2).Foreground(ColorMuted),
		HelpKey:   lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true),
		HelpDesc:  lipgloss.NewStyle().Foreground(ColorMuted),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocused).
			Padding(1, 2),

		ToastInfo:    lipgloss.NewStyle().Foreground(ColorInfo),
		ToastSuccess: lipgloss.NewStyle().Foreground(ColorSuccess),
		ToastError:   lipgloss.NewStyle().Foreground(ColorError),
	}
}
