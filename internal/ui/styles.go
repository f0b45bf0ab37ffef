package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	colorCPUFill    = "51"  // cyan
	colorMemoryFill = "201" // magenta
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	gaugeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)
)

// newBar builds the filled-percentage bar for a gauge. The integer label is
// rendered by the view, not the bar.
func newBar(color string) progress.Model {
	return progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
	)
}
