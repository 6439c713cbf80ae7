// Package split
// Author: momentics <momentics@gmail.com>
//
// Split partitions the backing allocation of a growable array into two live,
// non-overlapping views: a read-only Content snapshot of the initialized
// prefix and an appendable Extension over reserved spare capacity.
//
// The host array is reserved exactly once, before any view exists. After
// that the views alias the buffer directly, so the Extension never grows:
// writing past the reservation fails with api.ErrCapacityExceeded. Appended
// elements become part of the host only when the Extension is committed,
// which sets the host length to base+written.
//
// Content.Slice and Extension.Slice return windows into the host storage
// without copying. Content is read-only by contract only: pass Clone, All
// or At to code that must not be able to write the host's prefix.
//
//	content, ext, err := split.Split(host, n)
//	if err != nil {
//		return err
//	}
//	defer ext.Commit()
//	_, err = ext.ExtendFromSlice(content.Slice())
package split
