package types

// ============================================================================
// Test Region Constants
// ============================================================================
// These constants describe the geometry of the test region and the fixed
// shape of the pattern catalog.

const (
	// WordSize is the width of one test word in bytes (uint64).
	WordSize = 8

	// SizeAlignment is the granularity a requested size must honour so the
	// region splits into two equal halves of whole words.
	SizeAlignment = 2 * WordSize

	// PatternPasses is the number of sub-passes run by the solid bits and
	// checkerboard tests.
	PatternPasses = 64

	// CatalogSize is the number of tests in the default catalog.
	CatalogSize = 10
)

const (
	// AllOnes is the solid bits fill for even sub-passes.
	AllOnes uint64 = 0xFFFFFFFFFFFFFFFF

	// Checkerboard is the checkerboard fill for even sub-passes; odd
	// sub-passes use its complement 0xAAAAAAAAAAAAAAAA.
	Checkerboard uint64 = 0x5555555555555555
)

// ValidSize reports whether size is usable for a test region.
func ValidSize(size int) bool {
	return size > 0 && size%SizeAlignment == 0
}

// AlignSize rounds size down to the nearest valid region size. It returns 0
// when size is smaller than SizeAlignment.
func AlignSize(size uint64) uint64 {
	return size - size%SizeAlignment
}
