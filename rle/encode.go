// File: rle/encode.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package rle

const minMatch = 3

// Encode greedily compresses data into ops, searching back-references up to
// window elements back. Matches shorter than three elements stay literal.
func Encode[T comparable](data []T, window int) []Op[T] {
	var ops []Op[T]
	litStart := 0
	flush := func(end int) {
		if end > litStart {
			ops = append(ops, Op[T]{Literal: data[litStart:end:end]})
		}
	}
	for i := 0; i < len(data); {
		bestLen, bestDist := 0, 0
		for d := 1; d <= min(window, i); d++ {
			l := 0
			for i+l < len(data) && data[i+l] == data[i+l-d] {
				l++
			}
			if l > bestLen {
				bestLen, bestDist = l, d
			}
		}
		if bestLen < minMatch {
			i++
			continue
		}
		flush(i)
		ops = append(ops, Op[T]{Distance: bestDist, Count: bestLen})
		i += bestLen
		litStart = i
	}
	flush(len(data))
	return ops
}
