//go:build !linux && !darwin && !freebsd && !windows

package lockmem

import (
	"fmt"
	"os"
)

// Alloc returns heap memory when no mapping primitive is available.
func Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("lockmem: invalid region size %d", size)
	}
	return make([]byte, size), nil
}

// Free is a no-op; the garbage collector reclaims heap regions.
func Free(region []byte) error { return nil }

// Lock always fails: running unpinned would produce unreliable fault data.
func Lock(region []byte) error { return ErrUnsupported }

// Unlock always fails.
func Unlock(region []byte) error { return ErrUnsupported }

// Privileged reports false; nothing can be pinned here.
func Privileged() bool { return false }

// PlatformLimits reports the page size only.
func PlatformLimits() (Limits, error) {
	return Limits{PageSize: os.Getpagesize()}, nil
}
