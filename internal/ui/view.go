package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sysgauge/internal/layout"
)

// View paints one frame into the three layout regions. Nothing is drawn
// after the Running -> Exiting transition.
func (m Model) View() string {
	if m.st == stateExiting {
		return ""
	}

	regions := layout.Split(layout.Rect{Width: m.width, Height: m.height})

	parts := make([]string, 0, 3)
	if !regions.Title.Empty() {
		parts = append(parts, m.renderTitle(regions.Title))
	}
	if !regions.CPU.Empty() {
		parts = append(parts, renderGauge("CPU Usage", m.reading.CPUPercent, m.cpuBar, regions.CPU))
	}
	if !regions.Memory.Empty() {
		parts = append(parts, renderGauge("Memory Usage", m.reading.MemoryPercent, m.memBar, regions.Memory))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderTitle(r layout.Rect) string {
	text := titleStyle.Render(m.cfg.Title) + subtleStyle.Render(" (press 'q' to quit)")
	return lipgloss.NewStyle().
		Width(r.Width).
		Height(r.Height).
		MaxWidth(r.Width).
		MaxHeight(r.Height).
		Render(text)
}

// renderGauge draws a titled, bordered box holding a filled-percentage bar
// and an integer label. Readings are clamped into [0,100] here regardless of
// what the provider reported; a display accommodation, not a sampler
// guarantee.
func renderGauge(title string, pct float64, bar progress.Model, r layout.Rect) string {
	shown := clampPercent(pct)
	label := fmt.Sprintf("%3d%%", int(math.Round(shown)))

	if r.Width < 6 || r.Height < 3 {
		// No room for a border; draw the bar bare.
		bar.Width = max(r.Width-len(label)-1, 1)
		line := bar.ViewAs(shown/100) + " " + labelStyle.Render(label)
		return lipgloss.NewStyle().
			Height(r.Height).
			MaxWidth(r.Width).
			MaxHeight(r.Height).
			Render(line)
	}

	innerW := r.Width - 4 // border and padding
	innerH := r.Height - 2
	bar.Width = max(innerW-len(label)-1, 1)

	var body strings.Builder
	body.WriteString(labelStyle.Render(title))
	if innerH >= 2 {
		body.WriteString("\n")
	} else {
		body.WriteString(" ")
	}
	body.WriteString(bar.ViewAs(shown / 100))
	body.WriteString(" ")
	body.WriteString(labelStyle.Render(label))

	return gaugeBoxStyle.
		Width(r.Width - 2).
		Height(innerH).
		MaxHeight(r.Height).
		Render(body.String())
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
