//go:build linux
// +build linux

// File: pool/mmap_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux anonymous-mmap byte host array.

package pool

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/splitvec/api"
)

// MmapBytes is a byte host array whose storage is an anonymous private
// mapping. Growing maps a larger region, copies the live bytes and unmaps
// the old one.
type MmapBytes struct {
	region []byte
	n      int
	leased bool
}

// NewMmapBytes maps at least capacity bytes, rounded up to the page size.
func NewMmapBytes(capacity int) (*MmapBytes, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d", api.ErrInvalidArgument, capacity)
	}
	m := &MmapBytes{}
	if capacity == 0 {
		return m, nil
	}
	region, err := mapRegion(capacity)
	if err != nil {
		return nil, err
	}
	m.region = region
	return m, nil
}

func mapRegion(size int) ([]byte, error) {
	page := unix.Getpagesize()
	size = (size + page - 1) / page * page
	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", api.ErrResourceExhausted, size, err)
	}
	return region, nil
}

func (m *MmapBytes) Len() int        { return m.n }
func (m *MmapBytes) Cap() int        { return len(m.region) }
func (m *MmapBytes) Storage() []byte { return m.region }
func (m *MmapBytes) SetLen(n int) {
	if m.leased {
		panic("pool: MmapBytes.SetLen called during an active split")
	}
	if n > len(m.region) {
		panic("pool: MmapBytes.SetLen beyond capacity")
	}
	m.n = n
}

// Bytes returns the initialized bytes.
func (m *MmapBytes) Bytes() []byte { return m.region[:m.n] }

// Reserve remaps so Cap() >= Len()+additional. It fails with
// api.ErrHostBusy while a split is active.
func (m *MmapBytes) Reserve(additional int) error {
	if m.leased {
		return errBusy("Reserve", m.n)
	}
	if additional < 0 {
		return fmt.Errorf("%w: reserve %d", api.ErrInvalidArgument, additional)
	}
	need := m.n + additional
	if need <= len(m.region) {
		return nil
	}
	region, err := mapRegion(max(need, 2*len(m.region)))
	if err != nil {
		return err
	}
	copy(region, m.region[:m.n])
	if m.region != nil {
		if err := unix.Munmap(m.region); err != nil {
			_ = unix.Munmap(region)
			return fmt.Errorf("pool: munmap: %w", err)
		}
	}
	m.region = region
	return nil
}

// Append copies b to the end, growing as needed.
func (m *MmapBytes) Append(b ...byte) error {
	if m.leased {
		panic("pool: MmapBytes.Append called during an active split")
	}
	if err := m.Reserve(len(b)); err != nil {
		return err
	}
	m.n += copy(m.region[m.n:], b)
	return nil
}

func (m *MmapBytes) Acquire() error {
	if m.leased {
		return errBusy("Acquire", m.n)
	}
	m.leased = true
	return nil
}

func (m *MmapBytes) Release() { m.leased = false }

// Close unmaps the region. Any view into it becomes invalid.
func (m *MmapBytes) Close() error {
	if m.leased {
		return api.NewError(api.ErrCodeHostBusy, "pool: close during active split")
	}
	if m.region == nil {
		return nil
	}
	err := unix.Munmap(m.region)
	m.region, m.n = nil, 0
	return err
}

var (
	_ api.HostArray[byte] = (*MmapBytes)(nil)
	_ api.Exclusive       = (*MmapBytes)(nil)
)
