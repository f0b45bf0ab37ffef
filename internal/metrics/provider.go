// Package metrics reads host CPU and memory utilization through an injected
// provider capability.
package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Provider is the OS metrics capability the Sampler reads through. The real
// implementation wraps gopsutil; tests inject a fake.
type Provider interface {
	// Refresh re-queries the OS and caches a fresh memory snapshot.
	Refresh() error

	// CPUPercents performs a CPU-specific refresh and returns per-core
	// utilization percentages measured since the previous call. CPU usage
	// is a rate, so a one-shot sample is meaningless; the first reading
	// after construction may be stale.
	CPUPercents() ([]float64, error)

	// MemoryStat returns used and total physical memory in bytes as of the
	// last Refresh. Reading before any Refresh returns stale zeros.
	MemoryStat() (used, total uint64, err error)
}

type gopsutilProvider struct {
	vm *mem.VirtualMemoryStat
}

// NewGopsutilProvider returns a Provider backed by gopsutil. Construction
// takes a priming CPU read so the first CPUPercents call has a time delta to
// measure against.
func NewGopsutilProvider() Provider {
	_, _ = cpu.Percent(0, true)
	return &gopsutilProvider{}
}

func (p *gopsutilProvider) Refresh() error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("refresh memory: %w", err)
	}
	p.vm = vm
	return nil
}

func (p *gopsutilProvider) CPUPercents() ([]float64, error) {
	pcts, err := cpu.Percent(0, true)
	if err != nil {
		return nil, fmt.Errorf("refresh cpu: %w", err)
	}
	return pcts, nil
}

func (p *gopsutilProvider) MemoryStat() (uint64, uint64, error) {
	if p.vm == nil {
		return 0, 0, nil
	}
	return p.vm.Used, p.vm.Total, nil
}
