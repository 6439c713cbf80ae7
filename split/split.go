// File: split/split.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package split

import (
	"errors"

	"github.com/momentics/splitvec/api"
)

// Split reserves additional elements on host and returns a Content view over
// [0, Len()) together with an Extension over [Len(), Len()+additional).
//
// Reservation failures are returned wrapped in api.ErrAllocation before any
// view is built; a host refusing the reservation because it is already
// split yields api.ErrHostBusy. If host implements api.Exclusive it is
// acquired after the reservation and stays acquired until the Extension is
// committed, so no further Reserve can move the buffer under the views.
func Split[T any](host api.HostArray[T], additional int, opts ...Option) (Content[T], *Extension[T], error) {
	if host == nil {
		return Content[T]{}, nil, api.NewError(api.ErrCodeInvalidArgument, "split: nil host")
	}
	if additional < 0 {
		return Content[T]{}, nil, api.NewError(api.ErrCodeInvalidArgument, "split: negative reservation").
			WithContext("additional", additional)
	}
	cfg := newConfig(opts)

	base := host.Len()
	if err := host.Reserve(additional); err != nil {
		if errors.Is(err, api.ErrHostBusy) {
			return Content[T]{}, nil, err
		}
		cfg.logger.Warnw("host reservation failed", "base", base, "additional", additional, "err", err)
		return Content[T]{}, nil, api.NewError(api.ErrCodeAllocation, "split: reserve").
			WithContext("base", base).
			WithContext("additional", additional).
			WithCause(err)
	}

	end := base + additional
	storage := host.Storage()
	if host.Len() != base || len(storage) < end {
		panic("split: host Reserve violated its capacity contract")
	}

	excl, _ := host.(api.Exclusive)
	if excl != nil {
		if err := excl.Acquire(); err != nil {
			return Content[T]{}, nil, err
		}
	}

	content := Content[T]{items: storage[:base:base]}
	ext := &Extension[T]{
		host:  host,
		excl:  excl,
		buf:   storage[base:end:end],
		base:  base,
		cfg:   cfg,
		state: stateFilling,
	}
	cfg.observer.OnSplit(base, additional)
	cfg.logger.Debugw("split", "base", base, "reserved", additional)
	return content, ext, nil
}
