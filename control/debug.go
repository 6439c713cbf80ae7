// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug probe registry for internal inspection.

package control

import "sync"

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook, replacing any previous one.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// RegisterSplitProbes exposes metrics totals and recent commits. Either
// argument may be nil.
func (dp *DebugProbes) RegisterSplitProbes(m *SplitMetrics, h *History) {
	if m != nil {
		dp.RegisterProbe("split.metrics", func() any { return m.Snapshot() })
	}
	if h != nil {
		dp.RegisterProbe("split.history", func() any { return h.Records() })
		dp.RegisterProbe("split.overflows", func() any { return h.Overflows() })
	}
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
