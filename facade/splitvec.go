// File: facade/splitvec.go
// Unified facade layer for splitvec.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime aggregates the ambient components a split needs in production:
// a logger, Prometheus metrics mirrored into a metrics registry, a commit
// history, a reloadable config store and debug probes. It hands out split
// options wired to all of them.

package facade

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/control"
	"github.com/momentics/splitvec/log"
	"github.com/momentics/splitvec/pool"
	"github.com/momentics/splitvec/split"
)

// Config holds parameters immutable per run. DefaultReserve can be changed
// later through the config store.
type Config struct {
	LogLevel       string `toml:"log_level"`       // debug, info, warn, error
	LogJSON        bool   `toml:"log_json"`        // JSON instead of console encoding
	DefaultReserve int    `toml:"default_reserve"` // Initial capacity for new Vecs
	MaxCapacity    int    `toml:"max_capacity"`    // Host capacity limit, 0 = unbounded
	HistoryLimit   int    `toml:"history_limit"`   // Commits retained for debug dumps
	EnableMetrics  bool   `toml:"enable_metrics"`  // Register Prometheus collectors
	EnableDebug    bool   `toml:"enable_debug"`    // Register debug probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		LogJSON:        false,
		DefaultReserve: 4096,
		MaxCapacity:    0,
		HistoryLimit:   64,
		EnableMetrics:  true,
		EnableDebug:    true,
	}
}

// Validate rejects negative sizes and unknown log levels.
func (c *Config) Validate() error {
	if c.DefaultReserve < 0 || c.MaxCapacity < 0 || c.HistoryLimit < 0 {
		return fmt.Errorf("%w: negative size in config %+v", api.ErrInvalidArgument, *c)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", api.ErrInvalidArgument, c.LogLevel)
	}
	return nil
}

// Runtime is the main facade type.
type Runtime struct {
	config   *Config
	logger   log.Logger
	store    *control.ConfigStore
	registry *control.MetricsRegistry
	prom     *prometheus.Registry
	metrics  *control.SplitMetrics
	history  *control.History
	debug    *control.DebugProbes
	observer api.SplitObserver
}

// New builds a Runtime. A nil cfg means DefaultConfig; a nil logger is
// built from cfg.
func New(cfg *Config, logger log.Logger) (*Runtime, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		level, _ := log.ParseLevel(cfg.LogLevel)
		logger = log.New(nil, level, cfg.LogJSON)
	}
	r := &Runtime{
		config:   cfg,
		logger:   logger.Named("splitvec"),
		registry: control.NewMetricsRegistry(),
		history:  control.NewHistory(cfg.HistoryLimit),
		store: control.NewConfigStore(map[string]any{
			control.CfgDefaultReserve: cfg.DefaultReserve,
			control.CfgMaxCapacity:    cfg.MaxCapacity,
			control.CfgHistoryLimit:   cfg.HistoryLimit,
		}),
	}

	var reg prometheus.Registerer
	if cfg.EnableMetrics {
		r.prom = prometheus.NewRegistry()
		reg = r.prom
	}
	metrics, err := control.NewSplitMetrics(reg, r.registry)
	if err != nil {
		return nil, fmt.Errorf("metrics init failure: %w", err)
	}
	r.metrics = metrics
	r.observer = control.Observers(r.metrics, r.history)

	if cfg.EnableDebug {
		r.debug = control.NewDebugProbes()
		control.RegisterPlatformProbes(r.debug)
		r.debug.RegisterSplitProbes(r.metrics, r.history)
		r.debug.RegisterProbe("config", func() any { return r.store.GetSnapshot() })
	}

	r.store.OnReload(func(snap map[string]any) {
		r.logger.Infow("config reloaded", "config", snap)
	})
	r.logger.Debugw("runtime ready", "metrics", cfg.EnableMetrics, "debug", cfg.EnableDebug)
	return r, nil
}

// SplitOptions returns options routing split events to the runtime.
func (r *Runtime) SplitOptions() []split.Option {
	return []split.Option{
		split.WithObserver(r.observer),
		split.WithLogger(r.logger.Named("split")),
	}
}

// VecOptions returns host options derived from the current config.
func (r *Runtime) VecOptions() []pool.VecOption {
	if limit := r.store.Int(control.CfgMaxCapacity, 0); limit > 0 {
		return []pool.VecOption{pool.WithMaxCap(limit)}
	}
	return nil
}

// DefaultReserve returns the current default reservation.
func (r *Runtime) DefaultReserve() int {
	return r.store.Int(control.CfgDefaultReserve, r.config.DefaultReserve)
}

// Logger returns the runtime logger.
func (r *Runtime) Logger() log.Logger { return r.logger }

// Control returns the reloadable config store.
func (r *Runtime) Control() *control.ConfigStore { return r.store }

// Metrics returns the split metrics observer.
func (r *Runtime) Metrics() *control.SplitMetrics { return r.metrics }

// History returns the commit history.
func (r *Runtime) History() *control.History { return r.history }

// Gatherer returns the Prometheus registry, or nil when metrics are off.
func (r *Runtime) Gatherer() prometheus.Gatherer {
	if r.prom == nil {
		return nil
	}
	return r.prom
}

// DumpState merges debug probes with the metrics registry snapshot.
func (r *Runtime) DumpState() map[string]any {
	out := r.registry.GetSnapshot()
	if r.debug != nil {
		for k, v := range r.debug.DumpState() {
			out[k] = v
		}
	}
	return out
}

// NewVec allocates an empty host with the runtime's default reservation and
// capacity limit.
func NewVec[T any](r *Runtime) *pool.Vec[T] {
	return pool.NewVec[T](0, r.DefaultReserve(), r.VecOptions()...)
}

// Split is split.Split with the runtime's observer and logger attached.
func Split[T any](r *Runtime, host api.HostArray[T], additional int) (split.Content[T], *split.Extension[T], error) {
	return split.Split(host, additional, r.SplitOptions()...)
}
