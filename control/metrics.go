// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for split lifecycle monitoring.
// Exposes counters in a thread-safe map with dynamic registration and as
// Prometheus collectors.

package control

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/splitvec/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last Set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// Registry keys written by SplitMetrics.
const (
	KeySplits            = "split.total"
	KeyCommits           = "split.commits"
	KeyOverflows         = "split.capacity_exceeded"
	KeyCommittedElements = "split.committed_elements"
)

// SplitMetrics counts split lifecycle events. It implements
// api.SplitObserver.
type SplitMetrics struct {
	splits    prometheus.Counter
	commits   prometheus.Counter
	overflows prometheus.Counter
	committed prometheus.Histogram

	nSplits    atomic.Int64
	nCommits   atomic.Int64
	nOverflows atomic.Int64
	nElements  atomic.Int64

	registry *MetricsRegistry
}

// NewSplitMetrics builds the collectors and registers them with reg when it
// is non-nil. Totals are mirrored into mr when it is non-nil.
func NewSplitMetrics(reg prometheus.Registerer, mr *MetricsRegistry) (*SplitMetrics, error) {
	m := &SplitMetrics{
		splits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "splitvec",
			Name:      "splits_total",
			Help:      "Number of content/extension splits taken.",
		}),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "splitvec",
			Name:      "commits_total",
			Help:      "Number of extensions committed into their host.",
		}),
		overflows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "splitvec",
			Name:      "capacity_exceeded_total",
			Help:      "Number of writes rejected because the reservation was full.",
		}),
		committed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "splitvec",
			Name:      "committed_elements",
			Help:      "Elements folded into the host per commit.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		registry: mr,
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.splits, m.commits, m.overflows, m.committed} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *SplitMetrics) OnSplit(base, reserved int) {
	m.splits.Inc()
	m.mirror(KeySplits, m.nSplits.Add(1))
}

func (m *SplitMetrics) OnCommit(base, written, reserved int) {
	m.commits.Inc()
	m.committed.Observe(float64(written))
	m.mirror(KeyCommits, m.nCommits.Add(1))
	m.mirror(KeyCommittedElements, m.nElements.Add(int64(written)))
}

func (m *SplitMetrics) OnCapacityExceeded(base, reserved int) {
	m.overflows.Inc()
	m.mirror(KeyOverflows, m.nOverflows.Add(1))
}

// Snapshot returns the running totals.
func (m *SplitMetrics) Snapshot() map[string]int64 {
	return map[string]int64{
		KeySplits:            m.nSplits.Load(),
		KeyCommits:           m.nCommits.Load(),
		KeyOverflows:         m.nOverflows.Load(),
		KeyCommittedElements: m.nElements.Load(),
	}
}

func (m *SplitMetrics) mirror(key string, v int64) {
	if m.registry != nil {
		m.registry.Set(key, v)
	}
}

var _ api.SplitObserver = (*SplitMetrics)(nil)
