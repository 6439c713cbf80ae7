// Package api
// Author: momentics <momentics@gmail.com>
//
// Observation hooks for split lifecycle events.

package api

// SplitObserver receives lifecycle events of a split. Calls are made
// synchronously on the goroutine that owns the split.
type SplitObserver interface {
	// OnSplit fires once both views exist.
	OnSplit(base, reserved int)

	// OnCommit fires after the host length was set to base+written.
	OnCommit(base, written, reserved int)

	// OnCapacityExceeded fires when a write was rejected for lack of room.
	OnCapacityExceeded(base, reserved int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnSplit(int, int)            {}
func (NopObserver) OnCommit(int, int, int)      {}
func (NopObserver) OnCapacityExceeded(int, int) {}

var _ SplitObserver = NopObserver{}
