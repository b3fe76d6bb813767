package engine

import "github.com/joshuapare/memtest/internal/lockmem"

//go:generate mockgen -destination "mock_pin_test.go" -package $GOPACKAGE -write_package_comment=false github.com/joshuapare/memtest/engine MemoryPin

// MemoryPin pins a region against swapping and reverses the pin. The region
// slice carries both the address and the length of the range to pin.
type MemoryPin interface {
	// Lock pins at least len(region) bytes starting at &region[0].
	Lock(region []byte) error
	// Unlock reverses a successful Lock. It is called exactly once.
	Unlock(region []byte) error
}

// Allocator obtains zero-filled memory whose address does not change until
// it is freed.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(region []byte) error
}

// Source is a uniform 64-bit random generator. *math/rand/v2.Rand satisfies it.
type Source interface {
	Uint64() uint64
}

// Platform bundles the collaborators a session needs from the operating
// system. Nil fields are replaced by the system implementation.
type Platform struct {
	Pin        MemoryPin
	Alloc      Allocator
	Privileged func() bool
}

// SystemPlatform returns the platform backed by internal/lockmem.
func SystemPlatform() Platform {
	sys := lockmem.System{}
	return Platform{Pin: sys, Alloc: sys, Privileged: sys.Privileged}
}

func (p Platform) withDefaults() Platform {
	sys := SystemPlatform()
	if p.Pin == nil {
		p.Pin = sys.Pin
	}
	if p.Alloc == nil {
		p.Alloc = sys.Alloc
	}
	if p.Privileged == nil {
		p.Privileged = sys.Privileged
	}
	return p
}
