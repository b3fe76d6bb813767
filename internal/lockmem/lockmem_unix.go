//go:build linux || darwin || freebsd

package lockmem

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sys/unix"
)

// Alloc maps size bytes of anonymous private memory. The kernel zero-fills
// the pages and the mapping never moves while it exists.
func Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("lockmem: invalid region size %d", size)
	}
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Free unmaps a region returned by Alloc.
func Free(region []byte) error {
	if len(region) == 0 {
		return nil
	}
	err := unix.Munmap(region)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}

// Lock pins region with mlock(2).
func Lock(region []byte) error {
	if len(region) == 0 {
		return nil
	}
	return unix.Mlock(region)
}

// Unlock unpins region with munlock(2).
func Unlock(region []byte) error {
	if len(region) == 0 {
		return nil
	}
	return unix.Munlock(region)
}

// Privileged reports whether the effective user is root.
func Privileged() bool {
	return unix.Geteuid() == 0
}

// PlatformLimits reports the page size and RLIMIT_MEMLOCK.
func PlatformLimits() (Limits, error) {
	lim := Limits{PageSize: unix.Getpagesize()}
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_MEMLOCK, &rl); err != nil {
		return lim, err
	}
	// RLIM_INFINITY is all ones on Linux and MaxInt64 on the BSDs.
	if rl.Cur >= math.MaxInt64 {
		lim.Unlimited = true
		return lim, nil
	}
	lim.LockLimit = uint64(rl.Cur)
	return lim, nil
}
