package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/sysgauge/internal/config"
	"github.com/Dicklesworthstone/sysgauge/internal/metrics"
)

// Run starts the dashboard against the real host provider and blocks until
// quit or fatal error. Bubble Tea owns the terminal lifecycle: raw mode and
// the alternate screen are acquired before the first frame and restored on
// every exit path, including error returns.
func Run(cfg config.Config) error {
	m := NewModel(metrics.NewSampler(metrics.NewGopsutilProvider()), cfg)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
