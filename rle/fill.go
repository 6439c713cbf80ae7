// File: rle/fill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package rle

import (
	"fmt"
	"iter"
	"strings"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/split"
)

// Strategy selects how Fill writes the repeated run.
type Strategy int

const (
	// Naive reserves once and writes the host storage one element at a time.
	Naive Strategy = iota
	// Push splits the host and pushes each element from a cycling iterator.
	Push
	// Chunked splits the host and copies whole fragments, then the tail.
	Chunked
)

var strategyNames = [...]string{"naive", "push", "chunked"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", api.ErrInvalidArgument, name)
}

// Fill appends count elements to host, each copied from distance positions
// back. distance must be in [1, host.Len()].
func Fill[T any](host api.HostArray[T], distance, count int, strategy Strategy, opts ...split.Option) error {
	if distance <= 0 || distance > host.Len() || count < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "rle: bad back-reference").
			WithContext("distance", distance).
			WithContext("count", count).
			WithContext("len", host.Len())
	}
	switch strategy {
	case Naive:
		return fillNaive(host, distance, count)
	case Push:
		return fillPush(host, distance, count, opts)
	case Chunked:
		return fillChunked(host, distance, count, opts)
	default:
		return fmt.Errorf("%w: strategy %v", api.ErrInvalidArgument, strategy)
	}
}

func fillNaive[T any](host api.HostArray[T], distance, count int) error {
	if err := host.Reserve(count); err != nil {
		return err
	}
	excl, _ := host.(api.Exclusive)
	if excl != nil {
		if err := excl.Acquire(); err != nil {
			return err
		}
	}
	n := host.Len()
	buf := host.Storage()
	for i := 0; i < count; i++ {
		buf[n+i] = buf[n+i-distance]
	}
	if excl != nil {
		excl.Release()
	}
	host.SetLen(n + count)
	return nil
}

func fillPush[T any](host api.HostArray[T], distance, count int, opts []split.Option) error {
	content, ext, err := split.Split(host, count, opts...)
	if err != nil {
		return err
	}
	defer ext.Commit()

	tail := content.Slice()[content.Len()-distance:]
	_, err = ext.Extend(cycle(tail, count))
	return err
}

func fillChunked[T any](host api.HostArray[T], distance, count int, opts []split.Option) error {
	content, ext, err := split.Split(host, count, opts...)
	if err != nil {
		return err
	}
	defer ext.Commit()

	tail := content.Slice()[content.Len()-distance:]
	filled := 0
	for filled+len(tail) < count {
		if _, err := ext.ExtendFromSlice(tail); err != nil {
			return err
		}
		filled += len(tail)
	}
	_, err = ext.ExtendFromSlice(tail[:count-filled])
	return err
}

// cycle yields n elements repeating s.
func cycle[T any](s []T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(s[i%len(s)]) {
				return
			}
		}
	}
}
