package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a deterministic stand-in for the OS metrics provider.
type fakeProvider struct {
	cores      []float64
	used       uint64
	total      uint64
	refreshErr error
	cpuErr     error
	refreshes  int
}

func (f *fakeProvider) Refresh() error {
	f.refreshes++
	return f.refreshErr
}

func (f *fakeProvider) CPUPercents() ([]float64, error) {
	return f.cores, f.cpuErr
}

func (f *fakeProvider) MemoryStat() (uint64, uint64, error) {
	return f.used, f.total, nil
}

func TestCPUUsagePercent_MeanOfCores(t *testing.T) {
	s := NewSampler(&fakeProvider{cores: []float64{10, 20, 30, 40}})

	got, err := s.CPUUsagePercent()
	require.NoError(t, err)
	assert.Equal(t, 25.0, got)
}

func TestCPUUsagePercent_SingleCore(t *testing.T) {
	s := NewSampler(&fakeProvider{cores: []float64{73.5}})

	got, err := s.CPUUsagePercent()
	require.NoError(t, err)
	assert.Equal(t, 73.5, got)
}

func TestCPUUsagePercent_ZeroCoresIsFatal(t *testing.T) {
	s := NewSampler(&fakeProvider{cores: nil})

	_, err := s.CPUUsagePercent()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCPUCores)
}

func TestCPUUsagePercent_ProviderErrorPropagates(t *testing.T) {
	boom := errors.New("cpu read failed")
	s := NewSampler(&fakeProvider{cpuErr: boom})

	_, err := s.CPUUsagePercent()
	assert.ErrorIs(t, err, boom)
}

func TestMemoryUsagePercent_ExactRatio(t *testing.T) {
	s := NewSampler(&fakeProvider{used: 4294967296, total: 8589934592})

	got, err := s.MemoryUsagePercent()
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)
}

func TestMemoryUsagePercent_ZeroTotalIsFatal(t *testing.T) {
	s := NewSampler(&fakeProvider{used: 0, total: 0})

	_, err := s.MemoryUsagePercent()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTotalMemory)
}

func TestMemoryUsagePercent_NotClampedAtSamplerBoundary(t *testing.T) {
	// A misbehaving provider reporting used > total propagates an
	// out-of-range percentage; clamping is the display layer's job.
	s := NewSampler(&fakeProvider{used: 12, total: 8})

	got, err := s.MemoryUsagePercent()
	require.NoError(t, err)
	assert.Equal(t, 150.0, got)
}

func TestRefresh_NeverSkipped(t *testing.T) {
	fp := &fakeProvider{cores: []float64{1}, used: 1, total: 2}
	s := NewSampler(fp)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Refresh())
	}
	assert.Equal(t, 5, fp.refreshes)
}

func TestSample_FullTick(t *testing.T) {
	fp := &fakeProvider{
		cores: []float64{10, 20, 30, 40},
		used:  2 * 1024 * 1024 * 1024,
		total: 8 * 1024 * 1024 * 1024,
	}
	s := NewSampler(fp)

	r, err := s.Sample()
	require.NoError(t, err)
	assert.Equal(t, 25.0, r.CPUPercent)
	assert.Equal(t, 25.0, r.MemoryPercent)
	assert.Equal(t, 1, fp.refreshes, "Sample performs exactly one full refresh")
}

func TestSample_RefreshErrorWrapped(t *testing.T) {
	boom := errors.New("provider down")
	s := NewSampler(&fakeProvider{refreshErr: boom})

	_, err := s.Sample()
	assert.ErrorIs(t, err, boom)
}

func TestSample_ZeroCoresAborts(t *testing.T) {
	s := NewSampler(&fakeProvider{cores: nil, used: 1, total: 2})

	_, err := s.Sample()
	assert.ErrorIs(t, err, ErrNoCPUCores)
}
