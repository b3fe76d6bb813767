package engine

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/joshuapare/memtest/pkg/types"
)

// Session owns one locked buffer, one error ledger and the single runner
// that may mutate them.
//
// Tests run synchronously on the caller's goroutine. The only concurrent call
// a session tolerates is Close from another goroutine (for example a signal
// handler): it waits for the test in progress to finish, then releases the
// memory, and the runner reports exhaustion from then on.
type Session struct {
	id      string
	opts    Options
	log     *slog.Logger
	buf     *Buffer
	ledger  *Ledger
	target  *Target
	runner  *Runner
	size    int
	started time.Time

	mu       sync.Mutex
	closed   bool
	closeErr error
	results  []types.TestResult
}

// Open validates size, allocates and pins the test region and prepares the
// runner. The caller must Close the session; see also With.
func Open(size int, opts Options) (*Session, error) {
	opts = opts.withDefaults()

	id := xid.New().String()
	opts.Logger = opts.Logger.With("session", id)

	buf, err := NewBuffer(size, opts)
	if err != nil {
		opts.Logger.Debug("session not created", "size", size, "err", err)
		return nil, err
	}

	s := &Session{
		id:      id,
		opts:    opts,
		log:     opts.Logger,
		buf:     buf,
		ledger:  NewLedger(),
		size:    size,
		started: time.Now(),
	}
	s.target = newTarget(buf, s.ledger, opts)
	s.runner = &Runner{s: s, catalog: opts.Catalog}

	s.log.Info("session opened",
		"size", size,
		"words", len(buf.words),
		"tests", len(opts.Catalog),
	)
	return s, nil
}

// With opens a session, passes it to fn and closes it when fn returns or
// panics. Errors from fn and Close are joined.
func With(size int, opts Options, fn func(*Session) error) (err error) {
	s, err := Open(size, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(s)
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string {
	return s.id
}

// Tests returns the session's runner. Every call returns the same runner.
func (s *Session) Tests() *Runner {
	return s.runner
}

// AllocatedSize returns the size of the test region in bytes.
func (s *Session) AllocatedSize() int {
	return s.size
}

// Base returns the logical address of the first word of the region.
func (s *Session) Base() types.Address {
	return s.target.base
}

// ErrorCount returns the total mismatches recorded so far.
func (s *Session) ErrorCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Total()
}

// Errors returns a copy of the address to count ledger.
func (s *Session) Errors() map[types.Address]uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot()
}

// Faults returns the ledger sorted by address.
func (s *Session) Faults() []types.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Entries()
}

// Results returns the results produced so far, in execution order.
func (s *Session) Results() []types.TestResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.TestResult(nil), s.results...)
}

// Report assembles the session-level outputs.
func (s *Session) Report() *types.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := types.NewReport(s.id, s.size, s.target.base)
	for _, res := range s.results {
		r.AddResult(res)
	}
	r.SetFaults(s.ledger.Entries())
	r.Elapsed = time.Since(s.started)
	return r
}

// Close unlocks and frees the test region. It is safe to call more than
// once; later calls return the result of the first.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.closeErr
	}
	s.closed = true

	s.opts.notify("Unlocking memory...")
	s.closeErr = s.buf.Release()
	if s.closeErr == nil {
		s.opts.notify("Memory unlocked.")
	}
	s.target.words = nil

	s.log.Info("session closed",
		"tests_run", len(s.results),
		"errors", s.ledger.Total(),
		"faulty_addresses", s.ledger.Len(),
		"elapsed", time.Since(s.started),
	)
	return s.closeErr
}
