package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// ProgressFunc receives human-readable progress labels.
type ProgressFunc func(label string)

// Options configures a Session. The zero value runs the default catalog on
// the system platform with a randomly seeded generator and no output.
type Options struct {
	// Verbose enables progress labels and per-mismatch debug logging.
	Verbose bool

	// Logger receives lifecycle and mismatch records. Nil discards.
	Logger *slog.Logger

	// Progress is called with sub-pass and lifecycle labels when Verbose is set.
	Progress ProgressFunc

	// Rand overrides the random source. When nil a PCG generator is used,
	// seeded from Seed if non-zero and randomly otherwise.
	Rand Source
	Seed uint64

	// Platform overrides the pin, allocator and privilege collaborators.
	Platform Platform

	// Catalog overrides the ordered test list. Nil selects DefaultCatalog().
	Catalog []Pattern
}

// seedMix decorrelates the two PCG words derived from a single seed.
const seedMix = 0x9e3779b97f4a7c15

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Rand == nil {
		if o.Seed != 0 {
			o.Rand = rand.New(rand.NewPCG(o.Seed, o.Seed^seedMix))
		} else {
			o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	o.Platform = o.Platform.withDefaults()
	if o.Catalog == nil {
		o.Catalog = DefaultCatalog()
	} else {
		o.Catalog = append([]Pattern(nil), o.Catalog...)
	}
	return o
}

// notify sends a progress label when verbose output was requested.
func (o Options) notify(format string, args ...any) {
	if !o.Verbose || o.Progress == nil {
		return
	}
	o.Progress(fmt.Sprintf(format, args...))
}
