// File: split/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package split

import (
	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/log"
)

type config struct {
	observer api.SplitObserver
	logger   log.Logger
}

// Option customizes a single Split call.
type Option func(*config)

// WithObserver reports split, commit and overflow events to o.
func WithObserver(o api.SplitObserver) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithLogger routes lifecycle logs to l.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		observer: api.NopObserver{},
		logger:   nopLogger,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

var nopLogger = log.Nop()
