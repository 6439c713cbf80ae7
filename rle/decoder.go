// File: rle/decoder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package rle

import (
	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/split"
)

// Op is either a literal run (Literal non-empty) or a back-reference
// copying Count elements from Distance positions back.
type Op[T any] struct {
	Literal  []T
	Distance int
	Count    int
}

// Size returns the number of elements the op appends.
func (op Op[T]) Size() int {
	if len(op.Literal) > 0 {
		return len(op.Literal)
	}
	return op.Count
}

// Decoder expands op streams into a host array.
type Decoder[T any] struct {
	opts []split.Option
}

// NewDecoder returns a decoder passing opts to every split it makes.
func NewDecoder[T any](opts ...split.Option) *Decoder[T] {
	return &Decoder[T]{opts: opts}
}

// Decode validates ops against the current host length, reserves their
// total size with a single split and appends their expansion. Invalid
// streams are rejected before the host is touched. It returns the number of
// elements appended.
func (d *Decoder[T]) Decode(host api.HostArray[T], ops []Op[T]) (int, error) {
	total, err := validate(host.Len(), ops)
	if err != nil {
		return 0, err
	}
	content, ext, err := split.Split(host, total, d.opts...)
	if err != nil {
		return 0, err
	}
	defer ext.Commit()

	for _, op := range ops {
		if len(op.Literal) > 0 {
			if _, err := ext.ExtendFromSlice(op.Literal); err != nil {
				return ext.Len(), err
			}
			continue
		}
		if err := copyBack(content, ext, op.Distance, op.Count); err != nil {
			return ext.Len(), err
		}
	}
	return ext.Len(), nil
}

func validate[T any](length int, ops []Op[T]) (int, error) {
	total := 0
	for i, op := range ops {
		if len(op.Literal) == 0 && (op.Distance <= 0 || op.Distance > length+total || op.Count < 0) {
			return 0, api.NewError(api.ErrCodeInvalidArgument, "rle: bad back-reference").
				WithContext("op", i).
				WithContext("distance", op.Distance).
				WithContext("count", op.Count).
				WithContext("available", length+total)
		}
		total += op.Size()
	}
	return total, nil
}

// copyBack appends count elements starting distance positions before the
// write cursor. The source window spans the content prefix and the already
// written part of the extension; each segment is fully written before it is
// read, so overlapping runs repeat with period distance.
func copyBack[T any](content split.Content[T], ext *split.Extension[T], distance, count int) error {
	base := content.Len()
	pos := base + ext.Len() - distance
	for count > 0 {
		var seg []T
		if pos < base {
			seg = content.Slice()[pos:min(base, pos+count)]
		} else {
			written := ext.Slice()
			seg = written[pos-base : min(len(written), pos-base+count)]
		}
		n, err := ext.ExtendFromSlice(seg)
		if err != nil {
			return err
		}
		pos += n
		count -= n
	}
	return nil
}
