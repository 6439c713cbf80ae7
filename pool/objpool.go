// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import "sync"

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

// VecPool recycles host arrays between splits so repeated fills reuse one
// allocation.
type VecPool[T any] struct {
	pool     *SyncPool[*Vec[T]]
	capacity int
}

// NewVecPool creates a pool handing out empty Vecs with at least capacity
// slots.
func NewVecPool[T any](capacity int, opts ...VecOption) *VecPool[T] {
	return &VecPool[T]{
		pool: NewSyncPool(func() *Vec[T] {
			return NewVec[T](0, capacity, opts...)
		}),
		capacity: capacity,
	}
}

// Get returns an empty Vec.
func (vp *VecPool[T]) Get() *Vec[T] {
	return vp.pool.Get()
}

// Put empties v and returns it to the pool. Vecs with an active split are
// dropped.
func (vp *VecPool[T]) Put(v *Vec[T]) {
	if v == nil || v.Busy() {
		return
	}
	v.Reset()
	vp.pool.Put(v)
}

var _ ObjectPool[*Vec[int]] = (*VecPool[int])(nil)
