package metrics

import (
	"errors"
	"fmt"
)

// Fatal configuration errors: a host reporting these cannot be monitored
// meaningfully, so the session aborts instead of displaying nonsense.
var (
	ErrNoCPUCores    = errors.New("provider reported zero CPU cores")
	ErrNoTotalMemory = errors.New("provider reported zero total memory")
)

// Reading is one tick's worth of utilization percentages. Values come
// straight from the provider arithmetic and are not clamped; the display
// layer clamps into [0,100] before rendering.
type Reading struct {
	CPUPercent    float64
	MemoryPercent float64
}

// Sampler turns raw provider figures into usage percentages.
type Sampler struct {
	provider Provider
}

func NewSampler(p Provider) *Sampler {
	return &Sampler{provider: p}
}

// Refresh re-queries the provider. Every requested refresh goes through;
// providers are expected to cache internally if querying is expensive.
func (s *Sampler) Refresh() error {
	return s.provider.Refresh()
}

// CPUUsagePercent triggers a CPU-specific refresh and returns the arithmetic
// mean of the per-core utilization percentages. Zero reported cores is a
// fatal configuration error, never a NaN.
func (s *Sampler) CPUUsagePercent() (float64, error) {
	cores, err := s.provider.CPUPercents()
	if err != nil {
		return 0, err
	}
	if len(cores) == 0 {
		return 0, ErrNoCPUCores
	}
	var sum float64
	for _, c := range cores {
		sum += c
	}
	return sum / float64(len(cores)), nil
}

// MemoryUsagePercent returns 100*used/total using the values from the last
// full refresh. It does not itself force a refresh. Zero total memory is a
// fatal configuration error, never a division by zero.
func (s *Sampler) MemoryUsagePercent() (float64, error) {
	used, total, err := s.provider.MemoryStat()
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, ErrNoTotalMemory
	}
	return 100 * float64(used) / float64(total), nil
}

// Sample performs a full refresh and returns both readings.
func (s *Sampler) Sample() (Reading, error) {
	if err := s.Refresh(); err != nil {
		return Reading{}, fmt.Errorf("sample: %w", err)
	}
	cpuPct, err := s.CPUUsagePercent()
	if err != nil {
		return Reading{}, err
	}
	memPct, err := s.MemoryUsagePercent()
	if err != nil {
		return Reading{}, err
	}
	return Reading{CPUPercent: cpuPct, MemoryPercent: memPct}, nil
}
