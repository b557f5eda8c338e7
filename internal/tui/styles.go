package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibdrv/internal/ui"
)

// Styles are rebuilt from the ui theme by initTUIStyles.
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	positionStyle    lipgloss.Style
	valueStyle       lipgloss.Style
	errorStyle       lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds the styles from the current ui theme. Run calls it
// again because the theme may change after package init.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	positionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Value)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
}
