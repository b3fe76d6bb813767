package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/mem"

	"github.com/joshuapare/memtest/pkg/types"
)

// availableMemory reports free memory; tests replace it.
var availableMemory = func() (total, available uint64, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Available, nil
}

// resolveSize turns the --size/--percent flags into a byte count. A percent
// is taken of available memory and rounded down to a valid region size; an
// explicit size is passed through so the engine reports invalid values.
func resolveSize(size string, percent float64) (int, error) {
	if percent != 0 {
		if percent < 0 || percent > 100 {
			return 0, fmt.Errorf("percent must be in (0, 100], got %g", percent)
		}
		_, avail, err := availableMemory()
		if err != nil {
			return 0, fmt.Errorf("failed to read system memory: %w", err)
		}
		n := types.AlignSize(uint64(float64(avail) * percent / 100))
		if n == 0 {
			return 0, errors.New("available memory too small for the requested percent")
		}
		return toInt(n)
	}

	n, err := humanize.ParseBytes(size)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", size, err)
	}
	return toInt(n)
}

func toInt(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, fmt.Errorf("size %s exceeds the address space", humanize.IBytes(n))
	}
	return int(n), nil
}

// sizeHint suggests the nearest valid sizes around an invalid one.
func sizeHint(size int) string {
	if size <= 0 {
		return fmt.Sprintf("use at least %d bytes", types.SizeAlignment)
	}
	lo := types.AlignSize(uint64(size))
	hi := lo + types.SizeAlignment
	if lo == 0 {
		return fmt.Sprintf("try %d", hi)
	}
	return fmt.Sprintf("try %d or %d", lo, hi)
}
