// Package types defines the value types shared by the memtest engine and the
// tools built on top of it: typed errors, per-test results, ledger entries and
// the session report.
//
// Design goals:
//   - Faults are data: a mismatch is a count and a ledger entry, never an error.
//   - Typed errors with stable categories (privilege/size/alloc/lock/unlock/state).
//   - Addresses are opaque identifiers for reporting, not pointers.
//
// This package has no dependencies beyond the standard library.
package types
