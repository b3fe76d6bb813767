package engine

import (
	"testing"

	"github.com/joshuapare/memtest/internal/testutil"
)

// fakePlatform bundles the in-memory collaborators used by a test.
type fakePlatform struct {
	pin   *testutil.RecordingPin
	alloc *testutil.HeapAllocator
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		pin:   &testutil.RecordingPin{},
		alloc: &testutil.HeapAllocator{},
	}
}

func (f *fakePlatform) options() Options {
	return Options{
		Seed: 42,
		Platform: Platform{
			Pin:        f.pin,
			Alloc:      f.alloc,
			Privileged: testutil.Privileged(true),
		},
	}
}

// newTestBuffer creates a buffer of size bytes on fake memory.
func newTestBuffer(t testing.TB, size int) (*Buffer, *fakePlatform) {
	t.Helper()

	f := newFakePlatform()
	b, err := NewBuffer(size, f.options())
	if err != nil {
		t.Fatalf("NewBuffer(%d): %v", size, err)
	}
	t.Cleanup(func() { _ = b.Release() })
	return b, f
}

// newTestTarget wires a target over a fresh buffer and ledger.
func newTestTarget(t testing.TB, size int, src Source) (*Target, *Ledger) {
	t.Helper()

	b, _ := newTestBuffer(t, size)
	l := NewLedger()
	opts := Options{Rand: src}.withDefaults()
	return newTarget(b, l, opts), l
}

// openTestSession opens a session of size bytes on fake memory.
func openTestSession(t testing.TB, size int, opts Options) (*Session, *fakePlatform) {
	t.Helper()

	f := newFakePlatform()
	base := f.options()
	if opts.Seed == 0 && opts.Rand == nil {
		opts.Seed = base.Seed
	}
	if opts.Platform.Pin == nil {
		opts.Platform.Pin = f.pin
	}
	opts.Platform.Alloc = f.alloc
	opts.Platform.Privileged = base.Platform.Privileged

	s, err := Open(size, opts)
	if err != nil {
		t.Fatalf("Open(%d): %v", size, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, f
}
