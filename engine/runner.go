package engine

import (
	"iter"
	"time"

	"github.com/joshuapare/memtest/pkg/types"
)

// Runner executes a session's catalog one test at a time, in order. It is
// lazy, finite and cannot be restarted: after the last test every call to
// Next reports false.
//
// A session owns exactly one Runner, returned by Session.Tests.
type Runner struct {
	s       *Session
	catalog []Pattern
	next    int
}

// Next runs the next pending test and returns its result. It returns false
// once the catalog is exhausted or the session has been closed.
func (r *Runner) Next() (types.TestResult, bool) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || r.next >= len(r.catalog) {
		return types.TestResult{}, false
	}
	p := r.catalog[r.next]
	r.next++

	start := time.Now()
	n := p.Run(s.target)
	res := types.TestResult{Name: p.Name, Errors: n}
	s.results = append(s.results, res)

	s.log.Debug("test finished",
		"test", p.Name,
		"errors", n,
		"elapsed", time.Since(start),
	)
	return res, true
}

// NextName returns the name of the next pending test without running it.
func (r *Runner) NextName() (string, bool) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || r.next >= len(r.catalog) {
		return "", false
	}
	return r.catalog[r.next].Name, true
}

// Remaining returns how many tests have not run yet.
func (r *Runner) Remaining() int {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	return len(r.catalog) - r.next
}

// All returns an iterator over the remaining results. Ranging over it
// advances the runner; breaking out early leaves the rest pending.
func (r *Runner) All() iter.Seq[types.TestResult] {
	return func(yield func(types.TestResult) bool) {
		for {
			res, ok := r.Next()
			if !ok || !yield(res) {
				return
			}
		}
	}
}
