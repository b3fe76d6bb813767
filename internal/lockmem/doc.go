// Package lockmem provides platform-specific helpers for obtaining an
// address-stable test region outside the Go heap and pinning it in physical
// memory.
//
// On Unix the region is an anonymous private mapping pinned with mlock(2).
// On Windows it comes from VirtualAlloc and is pinned with VirtualLock after
// the process working set has been raised to hold it. Other platforms fall
// back to heap memory and report locking as unsupported.
package lockmem

import "errors"

// ErrUnsupported is returned by Lock and Unlock on platforms without a pin
// primitive.
var ErrUnsupported = errors.New("lockmem: memory locking not supported on this platform")

// Limits describes the platform constraints relevant to pinning memory.
type Limits struct {
	PageSize  int    // bytes per page
	LockLimit uint64 // max lockable bytes for this process; 0 when unknown
	Unlimited bool   // true when the lock limit is infinite
}

// System bundles the platform primitives behind method values so callers can
// pass one value where an allocator, a pin and a privilege check are wanted.
type System struct{}

// Alloc obtains size zeroed bytes of address-stable memory.
func (System) Alloc(size int) ([]byte, error) { return Alloc(size) }

// Free releases memory obtained from Alloc.
func (System) Free(region []byte) error { return Free(region) }

// Lock pins region in physical memory.
func (System) Lock(region []byte) error { return Lock(region) }

// Unlock reverses Lock.
func (System) Unlock(region []byte) error { return Unlock(region) }

// Privileged reports whether the process may pin memory.
func (System) Privileged() bool { return Privileged() }
