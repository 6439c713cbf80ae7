// File: split/extension.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package split

import (
	"iter"

	"github.com/momentics/splitvec/api"
)

type state uint8

const (
	stateFilling state = iota
	stateCommitted
)

// Extension is an appendable view over the capacity reserved by Split.
// It never grows past its reservation. It is not safe for concurrent use.
type Extension[T any] struct {
	host    api.HostArray[T]
	excl    api.Exclusive
	buf     []T // [base, base+reserved) of the host storage
	base    int
	written int
	cfg     config
	state   state
}

// Push appends v. It fails with api.ErrCapacityExceeded when the
// reservation is full, leaving the extension unchanged.
func (e *Extension[T]) Push(v T) error {
	if e.state == stateCommitted {
		return e.errCommitted()
	}
	if e.written == len(e.buf) {
		return e.errOverflow(1)
	}
	e.buf[e.written] = v
	e.written++
	return nil
}

// MustPush is Push for callers that sized the reservation exactly.
// It panics on any error.
func (e *Extension[T]) MustPush(v T) {
	if err := e.Push(v); err != nil {
		panic(err)
	}
}

// ExtendFromSlice appends the elements of src in order and returns how many
// were written. On overflow the elements copied so far stay written.
//
// src may alias the Content slice or the extension's own Slice(): every
// source element is read before its destination slot is written, and the
// destination always lies past the end of any such source.
func (e *Extension[T]) ExtendFromSlice(src []T) (int, error) {
	if e.state == stateCommitted {
		return 0, e.errCommitted()
	}
	for i := range src {
		if e.written == len(e.buf) {
			return i, e.errOverflow(len(src) - i)
		}
		e.buf[e.written] = src[i]
		e.written++
	}
	return len(src), nil
}

// Extend appends values from seq until it is exhausted or the reservation
// is full. The element that did not fit is dropped.
func (e *Extension[T]) Extend(seq iter.Seq[T]) (int, error) {
	if e.state == stateCommitted {
		return 0, e.errCommitted()
	}
	n := 0
	for v := range seq {
		if e.written == len(e.buf) {
			return n, e.errOverflow(1)
		}
		e.buf[e.written] = v
		e.written++
		n++
	}
	return n, nil
}

// Slice returns the written elements [base, base+written). Elements may be
// modified in place; the result is capped so append cannot reach the
// unwritten part of the reservation. After Commit the elements belong to
// the host and Slice returns nil.
func (e *Extension[T]) Slice() []T {
	if e.state == stateCommitted {
		return nil
	}
	return e.buf[:e.written:e.written]
}

// At returns written element i.
func (e *Extension[T]) At(i int) T {
	if i < 0 || i >= e.written {
		panic("split: extension index out of range")
	}
	return e.buf[i]
}

// Len returns the number of written elements.
func (e *Extension[T]) Len() int { return e.written }

// Cap returns the reserved element count.
func (e *Extension[T]) Cap() int { return len(e.buf) }

// Remaining returns how many more elements fit.
func (e *Extension[T]) Remaining() int { return len(e.buf) - e.written }

// Base returns the host index of the first extension slot.
func (e *Extension[T]) Base() int { return e.base }

// Committed reports whether Commit already ran.
func (e *Extension[T]) Committed() bool { return e.state == stateCommitted }

// Commit folds the written elements into the host by setting its length to
// base+written, then releases the host. It runs once; later calls return
// api.ErrCommitted. Committing with nothing written restores the original
// length.
func (e *Extension[T]) Commit() error {
	if e.state == stateCommitted {
		return e.errCommitted()
	}
	e.state = stateCommitted
	if e.excl != nil {
		e.excl.Release()
	}
	e.host.SetLen(e.base + e.written)
	e.cfg.observer.OnCommit(e.base, e.written, len(e.buf))
	e.cfg.logger.Debugw("commit", "base", e.base, "written", e.written, "reserved", len(e.buf))
	return nil
}

func (e *Extension[T]) errOverflow(pending int) error {
	e.cfg.observer.OnCapacityExceeded(e.base, len(e.buf))
	e.cfg.logger.Warnw("extension capacity exceeded", "base", e.base, "reserved", len(e.buf), "pending", pending)
	return api.NewError(api.ErrCodeCapacityExceeded, "split: extension full").
		WithContext("base", e.base).
		WithContext("reserved", len(e.buf)).
		WithContext("pending", pending)
}

func (e *Extension[T]) errCommitted() error {
	return api.NewError(api.ErrCodeCommitted, "split: extension used after commit").
		WithContext("base", e.base)
}
