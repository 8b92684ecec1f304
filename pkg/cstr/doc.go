// Package cstr provides borrowed views over null-terminated firmware strings.
//
// Two string kinds are supported:
//
//   - CStr8: Latin-1 code units (chars.Char8), one byte each
//   - CStr16: UCS-2 code units (chars.Char16), two bytes each
//
// Both types share the same invariant: the viewed sequence has at least one
// element, its last element is the NUL terminator, and no NUL appears before
// it. A view never owns memory; it is valid exactly as long as the memory it
// was built over stays alive and unmodified.
//
// # Constructors
//
// Checked constructors validate a bounded Go slice and report problems with
// a *PositionError wrapping ErrInvalidChar or ErrInteriorNul, or with
// ErrNotNulTerminated:
//
//	s, err := cstr.FromU16WithNul([]uint16{'A', 'B', 'C', 0})
//
// FromStrWithBuf transcodes Go text into caller-supplied storage:
//
//	buf := make([]uint16, 16)
//	s, err := cstr.FromStrWithBuf("volume", buf)
//
// FromPtr8 and FromPtr16 build a view from a raw pointer by scanning forward
// to the terminator. The scan is unbounded: the caller guarantees that a
// terminator is reachable in accessible memory. They exist for data handed
// over by firmware dispatch code and must not be used on untrusted input.
//
// # Concurrency
//
// Views are immutable values and may be shared between goroutines, provided
// nobody writes to the memory they cover.
package cstr
