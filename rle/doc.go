// Package rle
// Author: momentics <momentics@gmail.com>
//
// Back-reference expansion over split views. A back-reference (distance d,
// count n) appends n elements, each a copy of the element d positions
// before it; when n > d the copied run overlaps its own output and repeats
// with period d. Fill expands a single reference with a selectable
// strategy, Decoder applies a stream of literal and reference ops under one
// split.
package rle
