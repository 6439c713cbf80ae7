// File: split/content.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package split

import (
	"iter"
	"slices"
)

// Content is a read-only snapshot of a host's initialized prefix taken at
// split time. Committing the Extension does not change it.
type Content[T any] struct {
	items []T
}

// Len returns the snapshot length.
func (c Content[T]) Len() int { return len(c.items) }

// At returns element i. It panics if i is out of range.
func (c Content[T]) At(i int) T { return c.items[i] }

// Slice exposes the snapshot without copying. The result has cap == len, so
// appending to it reallocates instead of writing into the extension region.
// Its elements are the host's own storage and must not be modified; hand
// Clone, All or At to code that cannot be trusted with that.
func (c Content[T]) Slice() []T { return c.items }

// All iterates over index/value pairs.
func (c Content[T]) All() iter.Seq2[int, T] { return slices.All(c.items) }

// Clone returns an owned copy of the snapshot.
func (c Content[T]) Clone() []T { return slices.Clone(c.items) }

// Equal reports whether c holds exactly the elements of s, in order.
func Equal[T comparable](c Content[T], s []T) bool {
	return slices.Equal(c.items, s)
}
