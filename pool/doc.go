// Package pool
// Author: momentics <momentics@gmail.com>
//
// Host arrays for split views: the generic growable Vec, a sync.Pool backed
// VecPool for reusing allocations across splits, and on Linux an anonymous
// mmap byte host. Growth policy lives here; the split package only reserves
// from a host and commits length into it.
package pool
