package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/joshuapare/memtest/pkg/types"
)

// Buffer is a contiguous run of 64-bit words pinned in physical memory.
//
// The region is allocated, zero-filled and locked by NewBuffer and is never
// resized or moved afterwards. Release unlocks and frees it exactly once.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Buffer struct {
	region   []byte
	words    []uint64
	base     types.Address
	pin      MemoryPin
	alloc    Allocator
	log      *slog.Logger
	released bool
}

// NewBuffer allocates size bytes, zero-fills them and pins them.
//
// It fails with ErrInsufficientPrivilege when the platform refuses to pin
// memory for this process, ErrInvalidSize when size is not a positive
// multiple of 16, ErrAllocFailure when no memory could be obtained and
// ErrLockFailure when the pin primitive fails. No memory is held after a
// failed call.
func NewBuffer(size int, opts Options) (*Buffer, error) {
	opts = opts.withDefaults()
	p := opts.Platform

	if !p.Privileged() {
		return nil, types.ErrInsufficientPrivilege
	}
	if !types.ValidSize(size) {
		return nil, types.ErrInvalidSize.Wrap(nil, fmt.Sprintf("got %d", size))
	}

	region, err := p.Alloc.Alloc(size)
	if err != nil {
		return nil, types.ErrAllocFailure.Wrap(err, fmt.Sprintf("%d bytes", size))
	}
	if len(region) != size {
		_ = p.Alloc.Free(region)
		return nil, types.ErrAllocFailure.Wrap(nil, fmt.Sprintf("got %d of %d bytes", len(region), size))
	}
	ptr := unsafe.Pointer(unsafe.SliceData(region))
	if uintptr(ptr)%types.WordSize != 0 {
		_ = p.Alloc.Free(region)
		return nil, types.ErrAllocFailure.Wrap(nil, "region is not word aligned")
	}

	b := &Buffer{
		region: region,
		words:  unsafe.Slice((*uint64)(ptr), size/types.WordSize),
		base:   types.Address(uintptr(ptr)),
		pin:    p.Pin,
		alloc:  p.Alloc,
		log:    opts.Logger,
	}
	clear(b.words)

	opts.notify("Locking memory...")
	if err := b.pin.Lock(b.region); err != nil {
		b.log.Error("lock failed", "size", size, "base", b.base.String(), "err", err)
		_ = b.alloc.Free(b.region)
		return nil, types.ErrLockFailure.Wrap(err, fmt.Sprintf("%d bytes", size))
	}
	opts.notify("Memory locked.")
	b.log.Debug("region locked", "size", size, "base", b.base.String())

	return b, nil
}

// Words returns the mutable word view of the region. The slice is invalid
// after Release.
func (b *Buffer) Words() []uint64 {
	return b.words
}

// Half returns the number of words in each half.
func (b *Buffer) Half() int {
	return len(b.words) / 2
}

// Base returns the logical address of the first word.
func (b *Buffer) Base() types.Address {
	return b.base
}

// Size returns the region size in bytes (0 after Release).
func (b *Buffer) Size() int {
	return len(b.region)
}

// Released reports whether Release has run.
func (b *Buffer) Released() bool {
	return b.released
}

// Release unlocks the region and frees it. Only the first call has an
// effect. An unlock failure is returned as ErrUnlockFailure but the memory is
// freed regardless.
func (b *Buffer) Release() error {
	if b.released {
		return nil
	}
	b.released = true

	region := b.region
	b.region, b.words = nil, nil

	var errs []error
	if err := b.pin.Unlock(region); err != nil {
		b.log.Warn("unlock failed, releasing anyway", "size", len(region), "base", b.base.String(), "err", err)
		errs = append(errs, types.ErrUnlockFailure.Wrap(err, fmt.Sprintf("%d bytes", len(region))))
	} else {
		b.log.Debug("region unlocked", "size", len(region), "base", b.base.String())
	}
	if err := b.alloc.Free(region); err != nil {
		errs = append(errs, fmt.Errorf("free test region: %w", err))
	}
	return errors.Join(errs...)
}
