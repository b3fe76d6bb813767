package engine

import "github.com/joshuapare/memtest/pkg/types"

// CompareHalves compares the first half of the buffer with the second half
// word by word. Every differing index i is recorded in the ledger at
// base+8*i and counted. The buffer is not modified.
//
// It returns the number of mismatches found by this pass; zero means the
// halves agree.
func CompareHalves(b *Buffer, l *Ledger) int {
	return compareHalves(b.words, b.base, l, nil)
}

func compareHalves(words []uint64, base types.Address, l *Ledger, onMismatch func(types.Mismatch)) int {
	half := len(words) / 2
	lo, hi := words[:half], words[half:2*half]

	count := 0
	for i, v := range lo {
		if v == hi[i] {
			continue
		}
		addr := base + types.Address(types.WordSize*i)
		l.Record(addr)
		count++
		if onMismatch != nil {
			onMismatch(types.Mismatch{Index: i, Address: addr, Low: v, High: hi[i]})
		}
	}
	return count
}
