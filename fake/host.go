// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake host arrays and observers for testing split views.

package fake

import (
	"sync"

	"github.com/momentics/splitvec/api"
)

// Host is a plain slice host that never refuses interleaved access and can
// be told to fail reservations.
type Host[T any] struct {
	Data       []T
	ReserveErr error

	Reserves int
	SetLens  []int
}

// NewHost returns a Host holding a copy of items with the given capacity.
func NewHost[T any](items []T, capacity int) *Host[T] {
	capacity = max(capacity, len(items))
	data := make([]T, len(items), capacity)
	copy(data, items)
	return &Host[T]{Data: data}
}

func (h *Host[T]) Len() int     { return len(h.Data) }
func (h *Host[T]) Cap() int     { return cap(h.Data) }
func (h *Host[T]) Storage() []T { return h.Data[:cap(h.Data)] }
func (h *Host[T]) SetLen(n int) {
	h.SetLens = append(h.SetLens, n)
	h.Data = h.Data[:n]
}

// Reserve grows to exactly Len()+additional, or returns ReserveErr.
func (h *Host[T]) Reserve(additional int) error {
	h.Reserves++
	if h.ReserveErr != nil {
		return h.ReserveErr
	}
	if need := len(h.Data) + additional; need > cap(h.Data) {
		grown := make([]T, len(h.Data), need)
		copy(grown, h.Data)
		h.Data = grown
	}
	return nil
}

var _ api.HostArray[int] = (*Host[int])(nil)

// Event is one recorded observer callback.
type Event struct {
	Kind     string
	Base     int
	Written  int
	Reserved int
}

// Observer records split lifecycle events.
type Observer struct {
	mu     sync.Mutex
	Events []Event
}

func (o *Observer) OnSplit(base, reserved int) {
	o.record(Event{Kind: "split", Base: base, Reserved: reserved})
}

func (o *Observer) OnCommit(base, written, reserved int) {
	o.record(Event{Kind: "commit", Base: base, Written: written, Reserved: reserved})
}

func (o *Observer) OnCapacityExceeded(base, reserved int) {
	o.record(Event{Kind: "overflow", Base: base, Reserved: reserved})
}

// Kinds returns the recorded event kinds in order.
func (o *Observer) Kinds() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.Events))
	for i, e := range o.Events {
		out[i] = e.Kind
	}
	return out
}

func (o *Observer) record(e Event) {
	o.mu.Lock()
	o.Events = append(o.Events, e)
	o.mu.Unlock()
}

var _ api.SplitObserver = (*Observer)(nil)
