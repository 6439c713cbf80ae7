// File: pool/vec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vec is the reference growable host array for split views.

package pool

import (
	"fmt"
	"slices"

	"github.com/momentics/splitvec/api"
)

// Vec is a growable contiguous array of T implementing api.HostArray and
// api.Exclusive. While a split is active Reserve fails with
// api.ErrHostBusy and every other mutator panics.
type Vec[T any] struct {
	data   []T
	maxCap int
	leased bool
}

type vecConfig struct {
	maxCap int
}

// VecOption customizes a Vec.
type VecOption func(*vecConfig)

// WithMaxCap bounds the capacity Reserve may allocate. Requests beyond n
// fail with api.ErrResourceExhausted. Zero means unbounded.
func WithMaxCap(n int) VecOption {
	return func(c *vecConfig) {
		c.maxCap = n
	}
}

// NewVec allocates a Vec holding length zero values with at least capacity
// slots.
func NewVec[T any](length, capacity int, opts ...VecOption) *Vec[T] {
	var cfg vecConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity < length {
		capacity = length
	}
	return &Vec[T]{
		data:   make([]T, length, capacity),
		maxCap: cfg.maxCap,
	}
}

// FromSlice wraps s without copying; the Vec takes ownership of it.
func FromSlice[T any](s []T, opts ...VecOption) *Vec[T] {
	var cfg vecConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Vec[T]{data: s, maxCap: cfg.maxCap}
}

func (v *Vec[T]) Len() int { return len(v.data) }
func (v *Vec[T]) Cap() int { return cap(v.data) }

// Items returns the initialized elements.
func (v *Vec[T]) Items() []T { return v.data }

// Storage returns the full allocation [0, Cap()).
func (v *Vec[T]) Storage() []T { return v.data[:cap(v.data)] }

// SetLen sets the length. It panics if n exceeds Cap() or a split is
// active.
func (v *Vec[T]) SetLen(n int) {
	v.mustBeFree("SetLen")
	v.data = v.data[:n]
}

// Reserve makes room for additional more elements, reallocating if needed.
// It fails with api.ErrHostBusy while a split is active.
func (v *Vec[T]) Reserve(additional int) error {
	if v.leased {
		return errBusy("Reserve", len(v.data))
	}
	if additional < 0 {
		return fmt.Errorf("%w: reserve %d", api.ErrInvalidArgument, additional)
	}
	need := len(v.data) + additional
	if need <= cap(v.data) {
		return nil
	}
	if v.maxCap <= 0 {
		v.data = slices.Grow(v.data, additional)
		return nil
	}
	if need > v.maxCap {
		return fmt.Errorf("%w: need %d elements, limit %d", api.ErrResourceExhausted, need, v.maxCap)
	}
	newCap := min(max(need, 2*cap(v.data)), v.maxCap)
	grown := make([]T, len(v.data), newCap)
	copy(grown, v.data)
	v.data = grown
	return nil
}

// Append adds items at the end, growing as needed.
func (v *Vec[T]) Append(items ...T) error {
	v.mustBeFree("Append")
	if err := v.Reserve(len(items)); err != nil {
		return err
	}
	v.data = append(v.data, items...)
	return nil
}

// Truncate shortens the Vec to n elements. Longer n is a no-op.
func (v *Vec[T]) Truncate(n int) {
	v.mustBeFree("Truncate")
	if n < len(v.data) {
		clear(v.data[n:])
		v.data = v.data[:n]
	}
}

// Reset empties the Vec, keeping its allocation.
func (v *Vec[T]) Reset() {
	v.Truncate(0)
}

// Acquire marks the Vec as split.
func (v *Vec[T]) Acquire() error {
	if v.leased {
		return errBusy("Acquire", len(v.data))
	}
	v.leased = true
	return nil
}

// Release ends the split.
func (v *Vec[T]) Release() { v.leased = false }

// Busy reports whether a split is outstanding.
func (v *Vec[T]) Busy() bool { return v.leased }

func errBusy(op string, length int) error {
	return api.NewError(api.ErrCodeHostBusy, "pool: host already split").
		WithContext("op", op).
		WithContext("len", length)
}

func (v *Vec[T]) mustBeFree(op string) {
	if v.leased {
		panic("pool: Vec." + op + " called during an active split")
	}
}

var (
	_ api.HostArray[byte] = (*Vec[byte])(nil)
	_ api.Exclusive       = (*Vec[byte])(nil)
)
