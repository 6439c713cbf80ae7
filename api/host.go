// File: api/host.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Host array contracts: the growable contiguous storage a split borrows from.

package api

// HostArray is a growable contiguous array that owns its backing allocation.
//
// Implementations guarantee Cap() >= Len() at all times. Storage must return
// the whole allocation [0, Cap()); elements past Len() may hold stale values
// and are never read by the split views.
type HostArray[T any] interface {
	// Len returns the number of initialized elements.
	Len() int

	// Cap returns the number of allocated elements.
	Cap() int

	// Reserve grows storage so Cap() >= Len()+additional. It may move the
	// backing allocation.
	Reserve(additional int) error

	// Storage returns the raw window over [0, Cap()).
	Storage() []T

	// SetLen sets the initialized length without checks. Callers guarantee
	// every element in [0, n) is initialized and n <= Cap().
	SetLen(n int)
}

// Exclusive is implemented by hosts that can refuse interleaved access
// while a split is outstanding.
type Exclusive interface {
	// Acquire marks the host as split. It fails with ErrHostBusy if a split
	// is already active.
	Acquire() error

	// Release ends the split started by Acquire.
	Release()
}
