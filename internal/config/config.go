// Package config carries sysgauge's fixed runtime policy.
package config

import "time"

// Config holds the dashboard's policy knobs. The refresh cadence is
// deliberately not user-configurable; it bounds sampling frequency and
// redraw rate, not correctness.
type Config struct {
	// Interval is the pause between render-loop ticks.
	Interval time.Duration
	// Title is the dashboard heading.
	Title string
}

func Default() Config {
	return Config{
		Interval: 250 * time.Millisecond,
		Title:    "System Monitor",
	}
}
