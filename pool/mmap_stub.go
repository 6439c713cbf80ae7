//go:build !linux
// +build !linux

// File: pool/mmap_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub mmap host for platforms without the Linux implementation.

package pool

import "github.com/momentics/splitvec/api"

// MmapBytes is unavailable on this platform.
type MmapBytes struct{}

// NewMmapBytes always fails with api.ErrNotSupported.
func NewMmapBytes(int) (*MmapBytes, error) { return nil, api.ErrNotSupported }

func (*MmapBytes) Len() int             { return 0 }
func (*MmapBytes) Cap() int             { return 0 }
func (*MmapBytes) Storage() []byte      { return nil }
func (*MmapBytes) SetLen(int)           {}
func (*MmapBytes) Bytes() []byte        { return nil }
func (*MmapBytes) Reserve(int) error    { return api.ErrNotSupported }
func (*MmapBytes) Append(...byte) error { return api.ErrNotSupported }
func (*MmapBytes) Acquire() error       { return api.ErrNotSupported }
func (*MmapBytes) Release()             {}
func (*MmapBytes) Close() error         { return nil }
