package control_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/momentics/splitvec/control"
	"github.com/momentics/splitvec/pool"
	"github.com/momentics/splitvec/split"
)

func TestMetricsRegistryBasic(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Set("foo.count", int64(42))
	reg.Set("bar.status", "ok")

	metrics := reg.GetSnapshot()
	require.Equal(t, int64(42), metrics["foo.count"])
	require.Equal(t, "ok", metrics["bar.status"])
	require.False(t, reg.Updated().IsZero())
}

func TestSplitMetricsCountsLifecycle(t *testing.T) {
	promReg := prometheus.NewRegistry()
	mr := control.NewMetricsRegistry()
	m, err := control.NewSplitMetrics(promReg, mr)
	require.NoError(t, err)

	host := pool.FromSlice([]int{1, 2, 3})
	for i := 0; i < 2; i++ {
		content, ext, err := split.Split[int](host, 3, split.WithObserver(m))
		require.NoError(t, err)
		_, err = ext.ExtendFromSlice(content.Slice()[:3])
		require.NoError(t, err)
		require.Error(t, ext.Push(0))
		require.NoError(t, ext.Commit())
	}

	require.Equal(t, 9, host.Len())
	require.Equal(t, int64(2), m.Snapshot()[control.KeySplits])
	require.Equal(t, int64(6), m.Snapshot()[control.KeyCommittedElements])
	require.Equal(t, int64(2), mr.GetSnapshot()[control.KeyOverflows])

	families, err := promReg.Gather()
	require.NoError(t, err)
	values := make(map[string]float64, len(families))
	for _, mf := range families {
		metric := mf.GetMetric()[0]
		if h := metric.GetHistogram(); h != nil {
			values[mf.GetName()] = h.GetSampleSum()
			continue
		}
		values[mf.GetName()] = metric.GetCounter().GetValue()
	}
	require.Equal(t, map[string]float64{
		"splitvec_splits_total":            2,
		"splitvec_commits_total":           2,
		"splitvec_capacity_exceeded_total": 2,
		"splitvec_committed_elements":      6,
	}, values)
}

func TestSplitMetricsDuplicateRegistration(t *testing.T) {
	promReg := prometheus.NewRegistry()
	_, err := control.NewSplitMetrics(promReg, nil)
	require.NoError(t, err)
	_, err = control.NewSplitMetrics(promReg, nil)
	require.Error(t, err)
}

func TestSplitMetricsWithoutRegisterer(t *testing.T) {
	m, err := control.NewSplitMetrics(nil, nil)
	require.NoError(t, err)
	m.OnSplit(0, 1)
	m.OnCapacityExceeded(0, 1)
	require.Equal(t, int64(1), m.Snapshot()[control.KeyOverflows])
}
