//go:build windows

package lockmem

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetProcessWorkingSetSize = modkernel32.NewProc("SetProcessWorkingSetSize")
)

const (
	// Working set headroom above the locked region, matching what the
	// process needs besides the region itself.
	workingSetMinSlack = 400 * 1024
	workingSetMaxSlack = 800 * 1024
)

// Alloc commits size bytes with VirtualAlloc. Committed pages are zeroed.
func Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("lockmem: invalid region size %d", size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// Free releases a region returned by Alloc.
func Free(region []byte) error {
	if len(region) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&region[0])), 0, windows.MEM_RELEASE)
}

// Lock grows the working set to hold region and pins it with VirtualLock.
func Lock(region []byte) error {
	if len(region) == 0 {
		return nil
	}
	proc, err := windows.GetCurrentProcess()
	if err != nil {
		return err
	}
	size := uintptr(len(region))
	if err := setWorkingSetSize(proc, size+workingSetMinSlack, size+workingSetMaxSlack); err != nil {
		return fmt.Errorf("lockmem: grow working set: %w", err)
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&region[0])), size)
}

// Unlock unpins region with VirtualUnlock.
func Unlock(region []byte) error {
	if len(region) == 0 {
		return nil
	}
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&region[0])), uintptr(len(region)))
}

// Privileged reports whether the process token is elevated.
func Privileged() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// PlatformLimits reports the page size. Windows bounds locking by the
// working set, which Lock raises on demand.
func PlatformLimits() (Limits, error) {
	return Limits{PageSize: os.Getpagesize(), Unlimited: true}, nil
}

func setWorkingSetSize(proc windows.Handle, minSize, maxSize uintptr) error {
	r1, _, err := procSetProcessWorkingSetSize.Call(uintptr(proc), minSize, maxSize)
	if r1 == 0 {
		return err
	}
	return nil
}
