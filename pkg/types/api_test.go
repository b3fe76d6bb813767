package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrKind_String(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrKind
		expected string
	}{
		{name: "privilege", kind: ErrKindPrivilege, expected: "privilege"},
		{name: "size", kind: ErrKindSize, expected: "size"},
		{name: "alloc", kind: ErrKindAlloc, expected: "alloc"},
		{name: "lock", kind: ErrKindLock, expected: "lock"},
		{name: "unlock", kind: ErrKindUnlock, expected: "unlock"},
		{name: "state", kind: ErrKindState, expected: "state"},
		{name: "unknown", kind: ErrKind(42), expected: "kind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ErrKind(%d).String() = %q, want %q", int(tt.kind), got, tt.expected)
			}
		})
	}
}

func TestError_WrapMatchesSentinel(t *testing.T) {
	cause := errors.New("ENOMEM")
	err := ErrLockFailure.Wrap(cause, "4096 bytes")

	if !errors.Is(err, ErrLockFailure) {
		t.Fatalf("wrapped error should match its sentinel")
	}
	if errors.Is(err, ErrUnlockFailure) {
		t.Fatalf("wrapped lock error should not match unlock sentinel")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("wrapped error should expose its cause")
	}

	want := ErrLockFailure.Msg + " (4096 bytes): ENOMEM"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_MatchesThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("open session: %w", ErrInvalidSize)

	var typed *Error
	if !errors.As(err, &typed) {
		t.Fatalf("errors.As should find *Error")
	}
	if typed.Kind != ErrKindSize {
		t.Errorf("Kind = %v, want %v", typed.Kind, ErrKindSize)
	}
}

func TestError_NilReceiver(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Errorf("nil Error() = %q", e.Error())
	}
}

func TestValidSize(t *testing.T) {
	tests := []struct {
		size int
		want bool
	}{
		{0, false},
		{-16, false},
		{8, false},
		{15, false},
		{16, true},
		{24, false},
		{32, true},
		{1 << 20, true},
		{1<<20 + 8, false},
	}
	for _, tt := range tests {
		if got := ValidSize(tt.size); got != tt.want {
			t.Errorf("ValidSize(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestAlignSize(t *testing.T) {
	if got := AlignSize(1000); got != 992 {
		t.Errorf("AlignSize(1000) = %d, want 992", got)
	}
	if got := AlignSize(15); got != 0 {
		t.Errorf("AlignSize(15) = %d, want 0", got)
	}
	if got := AlignSize(4096); got != 4096 {
		t.Errorf("AlignSize(4096) = %d, want 4096", got)
	}
}

func TestAddress_String(t *testing.T) {
	if got := Address(0x7f00dead0008).String(); got != "0x7f00dead0008" {
		t.Errorf("Address.String() = %q", got)
	}
}
