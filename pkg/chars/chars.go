// Package chars provides the validated code units that firmware strings are
// built from: an 8-bit Latin-1 unit and a 16-bit UCS-2 unit.
package chars

import (
	"errors"
	"fmt"
)

// ErrInvalidChar is returned when a raw value is not a legal code unit.
var ErrInvalidChar = errors.New("invalid character")

// Char8 is a Latin-1 code unit. Every byte value is legal.
type Char8 uint8

// Char16 is a UCS-2 code unit. Surrogate values (0xD800-0xDFFF) are never legal.
type Char16 uint16

const (
	// NUL8 terminates a Latin-1 string.
	NUL8 Char8 = 0
	// NUL16 terminates a UCS-2 string.
	NUL16 Char16 = 0
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Char8FromRune converts r to a Latin-1 unit.
func Char8FromRune(r rune) (Char8, error) {
	if r < 0 || r > 0xFF {
		return 0, fmt.Errorf("%w: %U is outside Latin-1", ErrInvalidChar, r)
	}
	return Char8(r), nil
}

// Rune returns the Unicode scalar for c.
func (c Char8) Rune() rune {
	return rune(c)
}

func (c Char8) String() string {
	return string(c.Rune())
}

// Char16From converts a raw 16-bit value, rejecting surrogates.
func Char16From(u uint16) (Char16, error) {
	if IsSurrogate(u) {
		return 0, fmt.Errorf("%w: %#04x is a surrogate", ErrInvalidChar, u)
	}
	return Char16(u), nil
}

// Char16FromRune converts r to a UCS-2 unit. Runes outside the basic
// multilingual plane and surrogate code points are rejected.
func Char16FromRune(r rune) (Char16, error) {
	if r < 0 || r > 0xFFFF {
		return 0, fmt.Errorf("%w: %U is outside UCS-2", ErrInvalidChar, r)
	}
	return Char16From(uint16(r))
}

// IsSurrogate reports whether u falls in the UTF-16 surrogate range.
func IsSurrogate(u uint16) bool {
	return u >= surrogateMin && u <= surrogateMax
}

// Rune returns the Unicode scalar for c.
func (c Char16) Rune() rune {
	return rune(c)
}

func (c Char16) String() string {
	return string(c.Rune())
}
