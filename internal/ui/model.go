// Package ui implements the dashboard's render loop as a Bubble Tea model.
//
// Each tick partitions the screen, pulls fresh readings from the sampler,
// paints the title and both gauges, then waits on the event loop until the
// pacing timer or a key arrives. The loop is single-threaded and
// cooperative; the only suspension point is Bubble Tea's bounded event wait.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/sysgauge/internal/config"
	"github.com/Dicklesworthstone/sysgauge/internal/metrics"
)

// state tracks the render loop's lifecycle. The single transition is
// stateRunning -> stateExiting, on a quit key or a fatal sampling error.
type state int

const (
	stateRunning state = iota
	stateExiting
)

// Model drives the tick loop: layout, sample, draw, wait, pace.
type Model struct {
	cfg     config.Config
	sampler *metrics.Sampler

	st      state
	width   int
	height  int
	reading metrics.Reading
	sampled bool
	err     error

	cpuBar progress.Model
	memBar progress.Model
}

func NewModel(s *metrics.Sampler, cfg config.Config) Model {
	return Model{
		cfg:     cfg,
		sampler: s,
		width:   80,
		height:  24,
		cpuBar:  newBar(colorCPUFill),
		memBar:  newBar(colorMemoryFill),
	}
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Messages
type (
	tickMsg   struct{}
	sampleMsg struct {
		reading metrics.Reading
		err     error
	}
)

// tickCmd paces the loop: one tickMsg after the configured interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.Interval, func(time.Time) tea.Msg { return tickMsg{} })
}

// sampleCmd refreshes the provider and reads both percentages.
func (m Model) sampleCmd() tea.Cmd {
	return func() tea.Msg {
		r, err := m.sampler.Sample()
		return sampleMsg{reading: r, err: err}
	}
}

// Init takes the first sample immediately; the first CPU reading may be
// near-zero until the provider has a delta to measure against.
func (m Model) Init() tea.Cmd { return m.sampleCmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.st = stateExiting
			return m, tea.Quit
		}
		// All other keys are ignored; the loop proceeds to its next tick.

	case tickMsg:
		if m.st == stateExiting {
			return m, nil
		}
		return m, m.sampleCmd()

	case sampleMsg:
		if msg.err != nil {
			m.err = msg.err
			m.st = stateExiting
			return m, tea.Quit
		}
		m.reading = msg.reading
		m.sampled = true
		return m, m.tickCmd()
	}
	return m, nil
}
