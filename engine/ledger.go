package engine

import (
	"maps"
	"sort"

	"github.com/joshuapare/memtest/pkg/types"
)

// Ledger maps the logical address of each faulty word to the number of
// comparisons that flagged it. Entries are created on first mismatch and
// accumulate across every test of a session.
//
// NOT thread-safe. The session serializes access.
type Ledger struct {
	counts map[types.Address]uint32
	total  uint64
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{counts: make(map[types.Address]uint32)}
}

// Record counts one mismatch at addr and returns the new count.
func (l *Ledger) Record(addr types.Address) uint32 {
	l.counts[addr]++
	l.total++
	return l.counts[addr]
}

// Count returns the mismatches recorded at addr (0 if none).
func (l *Ledger) Count(addr types.Address) uint32 {
	return l.counts[addr]
}

// Len returns the number of distinct faulty addresses.
func (l *Ledger) Len() int {
	return len(l.counts)
}

// Total returns the sum of all counts.
func (l *Ledger) Total() uint64 {
	return l.total
}

// Snapshot returns a copy of the address to count mapping.
func (l *Ledger) Snapshot() map[types.Address]uint32 {
	return maps.Clone(l.counts)
}

// Entries returns the ledger sorted by address.
func (l *Ledger) Entries() []types.LedgerEntry {
	out := make([]types.LedgerEntry, 0, len(l.counts))
	for addr, n := range l.counts {
		out = append(out, types.LedgerEntry{Address: addr, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}
