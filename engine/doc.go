// Package engine implements the memory test core: a pinned test region, the
// half-buffer comparator, the per-address error ledger, the fixed pattern
// catalog and the runner that drives it.
//
// # Overview
//
// A session allocates a region of 64-bit words, zero-fills it and pins it in
// physical memory. Every test mutates the first and second halves of the
// region identically and then compares them word by word. On healthy memory
// the halves stay equal; a differing word marks a suspected fault at the
// first-half address, which is recorded in the ledger.
//
// # Usage
//
// Running every test:
//
//	err := engine.With(256<<20, engine.Options{}, func(s *engine.Session) error {
//	    for res := range s.Tests().All() {
//	        fmt.Printf("%s: %d errors\n", res.Name, res.Errors)
//	    }
//	    fmt.Println("total:", s.ErrorCount())
//	    return nil
//	})
//
// Driving the runner by hand, with lookahead for progress output:
//
//	s, err := engine.Open(size, opts)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	r := s.Tests()
//	for {
//	    name, ok := r.NextName()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("Running %s... ", name)
//	    res, _ := r.Next()
//	    fmt.Println(res.Errors)
//	}
//
// # Catalog
//
// The default catalog runs, in order: Random Data, XOR, ADD, SUB, MUL, DIV,
// OR, AND, Solid Bits and Checkerboard. Tests two to eight draw one random
// operand per test; arithmetic saturates instead of wrapping and DIV redraws
// a zero divisor. Solid Bits and Checkerboard run 64 fills each, alternating
// a constant and its complement.
//
// # Addresses
//
// Ledger keys are logical addresses, base+8*index, where base is the address
// of the region captured when it was created. They identify a location for
// reporting and are never dereferenced.
//
// # Errors
//
// Construction fails with the sentinels in pkg/types (insufficient privilege,
// invalid size, allocation or lock failure). Once a session exists the tests
// cannot fail; they only report mismatch counts. Close returns an unlock
// failure if the pin primitive fails but frees the region regardless.
//
// # Thread Safety
//
// Tests run on the caller's goroutine, one at a time. Close may be called
// from another goroutine; it waits for the running test to finish.
package engine
