// Package testutil provides in-memory stand-ins for the platform
// collaborators so engine tests run without root or real mlock.
package testutil

import (
	"errors"
	"unsafe"
)

// HeapAllocator hands out word-aligned heap memory and counts calls.
type HeapAllocator struct {
	Allocs int
	Frees  int
	Err    error // returned by Alloc when set
}

// Alloc returns size zeroed bytes backed by a []uint64.
func (a *HeapAllocator) Alloc(size int) ([]byte, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	if size <= 0 {
		return nil, errors.New("testutil: invalid size")
	}
	a.Allocs++
	words := make([]uint64, (size+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size), nil
}

// Free counts the call; the garbage collector reclaims the memory.
func (a *HeapAllocator) Free(region []byte) error {
	a.Frees++
	return nil
}

// Live reports allocations not yet freed.
func (a *HeapAllocator) Live() int {
	return a.Allocs - a.Frees
}

// RecordingPin records Lock and Unlock calls without touching the OS.
type RecordingPin struct {
	Locks     int
	Unlocks   int
	LockErr   error
	UnlockErr error

	// Lengths of the regions passed to Lock and Unlock, in call order.
	LockedLens   []int
	UnlockedLens []int
}

// Lock records the call and returns LockErr.
func (p *RecordingPin) Lock(region []byte) error {
	p.Locks++
	p.LockedLens = append(p.LockedLens, len(region))
	return p.LockErr
}

// Unlock records the call and returns UnlockErr.
func (p *RecordingPin) Unlock(region []byte) error {
	p.Unlocks++
	p.UnlockedLens = append(p.UnlockedLens, len(region))
	return p.UnlockErr
}

// Privileged returns a privilege check with a fixed answer.
func Privileged(ok bool) func() bool {
	return func() bool { return ok }
}

// SequenceSource returns Values in order, cycling when exhausted, and
// counts draws.
type SequenceSource struct {
	Values []uint64
	Draws  int
}

// Uint64 returns the next value of the sequence.
func (s *SequenceSource) Uint64() uint64 {
	if len(s.Values) == 0 {
		s.Draws++
		return 0
	}
	v := s.Values[s.Draws%len(s.Values)]
	s.Draws++
	return v
}
