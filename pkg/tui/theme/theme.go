package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme collects the lipgloss styles used by the timeline UI.
type Theme struct {
	Title    lipgloss.Style
	DayLabel lipgloss.Style
	Weekend  lipgloss.Style
	GridDot  lipgloss.Style

	Bar          lipgloss.Style
	BarSelected  lipgloss.Style
	BarPreview   lipgloss.Style
	BarHighlight lipgloss.Style

	Panel  PanelTheme
	Footer FooterTheme
}

// PanelTheme styles the history detail pane.
type PanelTheme struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Date   lipgloss.Style
}

// FooterTheme styles the status and help lines.
type FooterTheme struct {
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		DayLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Weekend:  lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
		GridDot:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		Bar:          lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		BarSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Bold(true),
		BarPreview:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("240")),
		BarHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("212")).Bold(true),

		Panel: PanelTheme{
			Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
			Header: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Body:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Date:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
	}
}
