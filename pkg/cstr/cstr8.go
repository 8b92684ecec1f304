package cstr

import (
	"bytes"
	"slices"
	"unsafe"

	"golang.org/x/text/encoding/charmap"

	"github.com/ssargent/fwinfo/pkg/chars"
)

// CStr8 is a view over a null-terminated Latin-1 string.
type CStr8 struct {
	b []byte // includes the terminator
}

// FromPtr8 wraps the string starting at p.
//
// The scan reads memory from p until the first zero byte. The caller must
// guarantee that p addresses a valid string in accessible memory; otherwise
// the behavior is undefined.
func FromPtr8(p *byte) CStr8 {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return FromBytesWithNulUnchecked(unsafe.Slice(p, n+1))
}

// FromBytesWithNul wraps b, which must end with its only zero byte.
func FromBytesWithNul(b []byte) (CStr8, error) {
	pos := bytes.IndexByte(b, 0)
	if pos < 0 {
		return CStr8{}, ErrNotNulTerminated
	}
	if pos != len(b)-1 {
		return CStr8{}, &PositionError{Err: ErrInteriorNul, Pos: pos}
	}
	return FromBytesWithNulUnchecked(b), nil
}

// FromBytesWithNulUnchecked wraps b without validation. The caller
// guarantees that b is a Latin-1 string whose only zero byte is the last one.
func FromBytesWithNulUnchecked(b []byte) CStr8 {
	return CStr8{b: b}
}

// FromStrWithBuf8 encodes input as Latin-1 into buf and appends a terminator.
// Runes above U+00FF fail with ErrInvalidChar at their code unit offset.
func FromStrWithBuf8(input string, buf []byte) (CStr8, error) {
	index := 0
	for _, r := range input {
		c, err := chars.Char8FromRune(r)
		if err != nil {
			return CStr8{}, &PositionError{Err: ErrInvalidChar, Pos: index}
		}
		if index >= len(buf) {
			return CStr8{}, ErrBufferTooSmall
		}
		buf[index] = byte(c)
		index++
	}
	if index >= len(buf) {
		return CStr8{}, ErrBufferTooSmall
	}
	buf[index] = 0
	return FromBytesWithNul(buf[:index+1])
}

// Pointer returns the address of the first code unit, or nil for the zero value.
func (s CStr8) Pointer() *byte {
	if len(s.b) == 0 {
		return nil
	}
	return &s.b[0]
}

// Bytes returns the string content without the terminator.
func (s CStr8) Bytes() []byte {
	if len(s.b) == 0 {
		return nil
	}
	return s.b[:len(s.b)-1]
}

// BytesWithNul returns the string content including the terminator.
func (s CStr8) BytesWithNul() []byte {
	return s.b
}

// Chars returns the content as code units, sharing memory with s.
func (s CStr8) Chars() []chars.Char8 {
	b := s.Bytes()
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*chars.Char8)(unsafe.Pointer(&b[0])), len(b))
}

// Len returns the number of code units before the terminator.
func (s CStr8) Len() int {
	return len(s.Bytes())
}

// Equal reports whether both views hold the same code units.
func (s CStr8) Equal(o CStr8) bool {
	return slices.Equal(s.b, o.b)
}

// String decodes the Latin-1 content to UTF-8.
func (s CStr8) String() string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(s.Bytes())
	if err != nil {
		// unreachable: every byte has a Latin-1 mapping
		return string(s.Bytes())
	}
	return string(out)
}
