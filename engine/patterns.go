package engine

import (
	"github.com/joshuapare/memtest/pkg/types"
)

// PatternFunc mutates both halves of the target identically and verifies
// them, returning the mismatches summed over its passes. Faults are data: a
// pattern never fails.
type PatternFunc func(t *Target) int

// Pattern pairs a display name with its test procedure.
type Pattern struct {
	Name string
	Run  PatternFunc
}

// defaultCatalog is the fixed execution order of the built-in tests.
var defaultCatalog = [types.CatalogSize]Pattern{
	{Name: "Random Data", Run: testRandomData},
	{Name: "XOR", Run: testXOR},
	{Name: "ADD", Run: testAdd},
	{Name: "SUB", Run: testSub},
	{Name: "MUL", Run: testMul},
	{Name: "DIV", Run: testDiv},
	{Name: "OR", Run: testOR},
	{Name: "AND", Run: testAND},
	{Name: "Solid Bits", Run: testSolidBits},
	{Name: "Checkerboard", Run: testCheckerboard},
}

// DefaultCatalog returns a copy of the built-in test list in execution order.
func DefaultCatalog() []Pattern {
	c := defaultCatalog
	return c[:]
}

// CatalogNames returns the names of the built-in tests in execution order.
func CatalogNames() []string {
	names := make([]string, len(defaultCatalog))
	for i, p := range defaultCatalog {
		names[i] = p.Name
	}
	return names
}

// testRandomData writes a fresh random value to every word index.
func testRandomData(t *Target) int {
	lo, hi := t.Halves()
	for i := range lo {
		v := t.Random()
		lo[i] = v
		hi[i] = v
	}
	return t.Compare()
}

func testXOR(t *Target) int {
	d := t.Random()
	return apply(t, func(w uint64) uint64 { return w ^ d })
}

func testAdd(t *Target) int {
	d := t.Random()
	return apply(t, func(w uint64) uint64 { return satAdd(w, d) })
}

func testSub(t *Target) int {
	d := t.Random()
	return apply(t, func(w uint64) uint64 { return satSub(w, d) })
}

func testMul(t *Target) int {
	d := t.Random()
	return apply(t, func(w uint64) uint64 { return satMul(w, d) })
}

// testDiv redraws until the divisor is non-zero.
func testDiv(t *Target) int {
	d := t.Random()
	for d == 0 {
		d = t.Random()
	}
	return apply(t, func(w uint64) uint64 { return satDiv(w, d) })
}

func testOR(t *Target) int {
	d := t.Random()
	return apply(t, func(w uint64) uint64 { return w | d })
}

func testAND(t *Target) int {
	d := t.Random()
	return apply(t, func(w uint64) uint64 { return w & d })
}

// testSolidBits alternates all-ones and all-zeros fills.
func testSolidBits(t *Target) int {
	return alternate(t, "Solid Bits", types.AllOnes)
}

// testCheckerboard alternates 0x5555... and 0xAAAA... fills.
func testCheckerboard(t *Target) int {
	return alternate(t, "Checkerboard", types.Checkerboard)
}

// apply rewrites every word of both halves with f and compares once.
func apply(t *Target, f func(uint64) uint64) int {
	lo, hi := t.Halves()
	for i := range lo {
		lo[i] = f(lo[i])
		hi[i] = f(hi[i])
	}
	return t.Compare()
}

// alternate runs PatternPasses fills, using even on even sub-passes and its
// complement on odd ones, comparing after each.
func alternate(t *Target, name string, even uint64) int {
	lo, hi := t.Halves()
	total := 0
	for k := range types.PatternPasses {
		t.Step("%s %d of %d...", name, k+1, types.PatternPasses)
		v := even
		if k%2 == 1 {
			v = ^even
		}
		fill(lo, v)
		fill(hi, v)
		total += t.Compare()
	}
	return total
}

func fill(words []uint64, v uint64) {
	for i := range words {
		words[i] = v
	}
}
