package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindPrivilege ErrKind = iota // process may not pin memory (not root / not elevated)
	ErrKindSize                     // requested size is not a positive multiple of 16
	ErrKindAlloc                    // backing memory could not be obtained
	ErrKindLock                     // pin primitive refused the region
	ErrKindUnlock                   // unpin primitive failed during teardown
	ErrKindState                    // invalid operation for current state (e.g., closed session)
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindPrivilege:
		return "privilege"
	case ErrKindSize:
		return "size"
	case ErrKindAlloc:
		return "alloc"
	case ErrKindLock:
		return "lock"
	case ErrKindUnlock:
		return "unlock"
	case ErrKindState:
		return "state"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so a wrapped
// instance carrying a cause still matches its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Wrap returns a copy of the sentinel e carrying cause and an optional detail.
func (e *Error) Wrap(cause error, detail string) *Error {
	msg := e.Msg
	if detail != "" {
		msg = msg + " (" + detail + ")"
	}
	return &Error{Kind: e.Kind, Msg: msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrInsufficientPrivilege indicates the process lacks rights to pin memory.
	ErrInsufficientPrivilege = &Error{Kind: ErrKindPrivilege, Msg: "insufficient privilege to lock memory (run as root/administrator)"}
	// ErrInvalidSize indicates a size that does not split into two halves of whole words.
	ErrInvalidSize = &Error{Kind: ErrKindSize, Msg: "allocation size must be a positive multiple of 16 bytes"}
	// ErrAllocFailure indicates the test region could not be allocated.
	ErrAllocFailure = &Error{Kind: ErrKindAlloc, Msg: "failed to allocate test region"}
	// ErrLockFailure indicates the test region could not be pinned.
	ErrLockFailure = &Error{Kind: ErrKindLock, Msg: "failed to lock test region in physical memory"}
	// ErrUnlockFailure indicates the region could not be unpinned; it is released regardless.
	ErrUnlockFailure = &Error{Kind: ErrKindUnlock, Msg: "failed to unlock test region"}
	// ErrSessionClosed indicates use of a session after Close.
	ErrSessionClosed = &Error{Kind: ErrKindState, Msg: "session is closed"}
)

// -----------------------------------------------------------------------------
// Results
// -----------------------------------------------------------------------------

// Address is the logical address of a word: base + 8*index. It identifies a
// location for reporting and is never dereferenced.
type Address uintptr

// String formats the address the way fault reports print it.
func (a Address) String() string {
	return fmt.Sprintf("0x%x", uintptr(a))
}

// TestResult is produced once per pattern test execution.
type TestResult struct {
	Name   string `json:"name"`
	Errors int    `json:"errors"` // mismatches summed over all passes; 0 means no faults
}

// Passed reports whether the test found no mismatches.
func (r TestResult) Passed() bool { return r.Errors == 0 }

// LedgerEntry is one faulty address and how many comparisons flagged it.
type LedgerEntry struct {
	Address Address `json:"address"`
	Count   uint32  `json:"count"`
}

// Mismatch describes one differing word pair found by a half comparison.
type Mismatch struct {
	Index   int     // word index within the first half
	Address Address // logical address of the first-half word
	Low     uint64  // value in the first half
	High    uint64  // value in the second half
}
