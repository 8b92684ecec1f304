package cstr

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"github.com/ssargent/fwinfo/pkg/chars"
)

const surrogateMarker = 0xD800

// CStr16 is a view over a null-terminated UCS-2 string.
type CStr16 struct {
	c []chars.Char16 // includes the terminator
}

// RuneWriter receives decoded text one scalar at a time. *strings.Builder,
// *bytes.Buffer and *bufio.Writer all satisfy it.
type RuneWriter interface {
	WriteRune(r rune) (int, error)
}

// FromPtr16 wraps the string starting at p.
//
// The scan reads 16-bit units from p until the first NUL16. The caller must
// guarantee that p is correctly aligned and addresses a valid string in
// accessible memory; otherwise the behavior is undefined.
func FromPtr16(p *chars.Char16) CStr16 {
	n := 0
	for *(*chars.Char16)(unsafe.Add(unsafe.Pointer(p), n*2)) != chars.NUL16 {
		n++
	}
	return CStr16{c: unsafe.Slice(p, n+1)}
}

// FromU16WithNul wraps codes after validating every unit.
//
// The scan runs left to right. An illegal unit fails with ErrInvalidChar at
// its position before any terminator check is made. A NUL16 before the last
// element fails with ErrInteriorNul.
func FromU16WithNul(codes []uint16) (CStr16, error) {
	for pos, code := range codes {
		c, err := chars.Char16From(code)
		if err != nil {
			return CStr16{}, &PositionError{Err: ErrInvalidChar, Pos: pos}
		}
		if c == chars.NUL16 {
			if pos != len(codes)-1 {
				return CStr16{}, &PositionError{Err: ErrInteriorNul, Pos: pos}
			}
			return FromU16WithNulUnchecked(codes), nil
		}
	}
	return CStr16{}, ErrNotNulTerminated
}

// FromU16WithNulUnchecked wraps codes without validation. The caller
// guarantees that codes is a UCS-2 string whose only NUL is the last unit.
func FromU16WithNulUnchecked(codes []uint16) CStr16 {
	if len(codes) == 0 {
		return CStr16{}
	}
	return CStr16{c: unsafe.Slice((*chars.Char16)(unsafe.Pointer(&codes[0])), len(codes))}
}

// FromCharsWithNulUnchecked wraps an already typed code unit slice.
func FromCharsWithNulUnchecked(c []chars.Char16) CStr16 {
	return CStr16{c: c}
}

// FromStrWithBuf converts input into buf and returns a view over it.
//
// Each rune becomes one unit, or two surrogate units outside the basic
// multilingual plane, followed by a terminator. ErrBufferTooSmall is returned
// as soon as a unit would not fit. The written prefix is then validated with
// FromU16WithNul, so surrogates fail as ErrInvalidChar and an embedded NUL
// fails as ErrInteriorNul. A byte that is not valid UTF-8 fails as
// ErrInvalidChar at the unit it would have occupied; it is never replaced
// with U+FFFD.
func FromStrWithBuf(input string, buf []uint16) (CStr16, error) {
	index := 0
	put := func(u uint16) bool {
		if index >= len(buf) {
			return false
		}
		buf[index] = u
		index++
		return true
	}

	for i, r := range input {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(input[i:]); size == 1 {
				// a lone surrogate never validates
				if !put(surrogateMarker) {
					return CStr16{}, ErrBufferTooSmall
				}
				continue
			}
		}
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			if !put(uint16(r1)) || !put(uint16(r2)) {
				return CStr16{}, ErrBufferTooSmall
			}
			continue
		}
		if !put(uint16(r)) {
			return CStr16{}, ErrBufferTooSmall
		}
	}
	if !put(0) {
		return CStr16{}, ErrBufferTooSmall
	}

	// NotNulTerminated cannot happen here: a terminator was just written.
	return FromU16WithNul(buf[:index])
}

// Pointer returns the address of the first code unit, or nil for the zero value.
func (s CStr16) Pointer() *chars.Char16 {
	if len(s.c) == 0 {
		return nil
	}
	return &s.c[0]
}

// CharsWithNul returns the code units including the terminator.
func (s CStr16) CharsWithNul() []chars.Char16 {
	return s.c
}

// Chars returns the code units without the terminator.
func (s CStr16) Chars() []chars.Char16 {
	if len(s.c) == 0 {
		return nil
	}
	return s.c[:len(s.c)-1]
}

// U16sWithNul returns the raw units including the terminator.
func (s CStr16) U16sWithNul() []uint16 {
	if len(s.c) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&s.c[0])), len(s.c))
}

// U16s returns the raw units without the terminator.
func (s CStr16) U16s() []uint16 {
	u := s.U16sWithNul()
	if len(u) == 0 {
		return nil
	}
	return u[:len(u)-1]
}

// Len returns the number of code units before the terminator.
func (s CStr16) Len() int {
	return len(s.Chars())
}

// NumBytes returns the encoded size in bytes, terminator included.
func (s CStr16) NumBytes() int {
	return len(s.c) * 2
}

// Equal compares the full code unit sequences, terminators included.
func (s CStr16) Equal(o CStr16) bool {
	return slices.Equal(s.c, o.c)
}

// All yields every code unit except the terminator. Each call starts a new,
// independent pass.
func (s CStr16) All() iter.Seq[chars.Char16] {
	return func(yield func(chars.Char16) bool) {
		for _, c := range s.Chars() {
			if !yield(c) {
				return
			}
		}
	}
}

// Iter returns a fresh iterator positioned at the first code unit.
func (s CStr16) Iter() *Iter16 {
	return &Iter16{s: s}
}

// WriteRunes writes each code unit to w as a rune. It stops at the first
// error returned by w.
func (s CStr16) WriteRunes(w RuneWriter) error {
	for _, c := range s.Chars() {
		if _, err := w.WriteRune(c.Rune()); err != nil {
			return err
		}
	}
	return nil
}

func (s CStr16) String() string {
	var sb strings.Builder
	sb.Grow(s.Len())
	_ = s.WriteRunes(&sb)
	return sb.String()
}

func (s CStr16) GoString() string {
	return fmt.Sprintf("CStr16(%v)", s.U16sWithNul())
}

// Iter16 walks a CStr16 one code unit at a time.
type Iter16 struct {
	s   CStr16
	pos int
}

// Next returns the next code unit, or false once the terminator is reached.
func (it *Iter16) Next() (chars.Char16, bool) {
	if it.pos >= it.s.Len() {
		return 0, false
	}
	c := it.s.c[it.pos]
	it.pos++
	return c, true
}
