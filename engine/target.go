package engine

import (
	"log/slog"

	"github.com/joshuapare/memtest/pkg/types"
)

// Target is the state a pattern test mutates and verifies: both halves of
// the locked buffer, the session ledger and the random source.
type Target struct {
	words  []uint64
	base   types.Address
	ledger *Ledger
	rand   Source
	opts   Options
	log    *slog.Logger

	// inject runs before every comparison. Tests use it to simulate faulty
	// cells; it is nil otherwise.
	inject func(words []uint64)
}

func newTarget(b *Buffer, l *Ledger, opts Options) *Target {
	return &Target{
		words:  b.words,
		base:   b.base,
		ledger: l,
		rand:   opts.Rand,
		opts:   opts,
		log:    opts.Logger,
	}
}

// Halves returns the two equally sized halves of the buffer.
func (t *Target) Halves() (lo, hi []uint64) {
	half := len(t.words) / 2
	return t.words[:half], t.words[half : 2*half]
}

// Random draws one value from the session's random source.
func (t *Target) Random() uint64 {
	return t.rand.Uint64()
}

// Compare runs one half comparison and records mismatches in the ledger.
func (t *Target) Compare() int {
	if t.inject != nil {
		t.inject(t.words)
	}
	var onMismatch func(types.Mismatch)
	if t.opts.Verbose {
		onMismatch = t.logMismatch
	}
	return compareHalves(t.words, t.base, t.ledger, onMismatch)
}

// Step reports a sub-pass label to the progress sink.
func (t *Target) Step(format string, args ...any) {
	t.opts.notify(format, args...)
}

func (t *Target) logMismatch(m types.Mismatch) {
	t.log.Debug("mismatch",
		"index", m.Index,
		"address", m.Address.String(),
		"low", m.Low,
		"high", m.High,
	)
}
