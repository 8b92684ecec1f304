// Package guid implements the 128-bit identifiers firmware uses to name
// protocols, tables and information records.
//
// A GUID is stored in the mixed-endian layout used on the wire: the first
// three groups little-endian, the last two as plain bytes.
package guid

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidGUID is returned by Parse for malformed input.
var ErrInvalidGUID = errors.New("invalid GUID")

// Size is the encoded size of a GUID in bytes.
const Size = 16

// GUID is a 128-bit identifier in firmware byte order.
type GUID [Size]byte

// Nil is the all-zero GUID.
var Nil GUID

// Identified is implemented by types paired with a fixed GUID. The pairing
// is checked at compile time; keeping GUIDs unique across types is up to
// the author of each type.
type Identified interface {
	GUID() GUID
}

// FromValues builds a GUID from its five canonical groups. Only the low 48
// bits of node are used.
func FromValues(timeLow uint32, timeMid, timeHighAndVersion, clockSeqAndVariant uint16, node uint64) GUID {
	var g GUID
	binary.LittleEndian.PutUint32(g[0:4], timeLow)
	binary.LittleEndian.PutUint16(g[4:6], timeMid)
	binary.LittleEndian.PutUint16(g[6:8], timeHighAndVersion)
	binary.BigEndian.PutUint16(g[8:10], clockSeqAndVariant)
	for i := 0; i < 6; i++ {
		g[10+i] = byte(node >> (40 - 8*i))
	}
	return g
}

// Parse reads the canonical form "12345678-9abc-def0-fedc-ba9876543210".
func Parse(s string) (GUID, error) {
	if len(s) != 36 {
		return Nil, fmt.Errorf("%w: %q is not a canonical GUID string (expected 36 bytes, found %d)",
			ErrInvalidGUID, s, len(s))
	}

	groups := [5]int{8, 4, 4, 4, 12}
	var raw [Size]byte
	offset, out := 0, 0
	for i, n := range groups {
		part := s[offset : offset+n]
		if _, err := hex.Decode(raw[out:out+n/2], []byte(part)); err != nil {
			return Nil, fmt.Errorf("%w: component %q is not a %d-bit hexadecimal string",
				ErrInvalidGUID, part, n*4)
		}
		offset += n
		out += n / 2
		if i < len(groups)-1 {
			if s[offset] != '-' {
				return Nil, fmt.Errorf("%w: expected '-' at offset %d", ErrInvalidGUID, offset)
			}
			offset++
		}
	}

	return FromValues(
		binary.BigEndian.Uint32(raw[0:4]),
		binary.BigEndian.Uint16(raw[4:6]),
		binary.BigEndian.Uint16(raw[6:8]),
		binary.BigEndian.Uint16(raw[8:10]),
		uint64(raw[10])<<40|uint64(raw[11])<<32|uint64(raw[12])<<24|
			uint64(raw[13])<<16|uint64(raw[14])<<8|uint64(raw[15]),
	), nil
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the canonical lower-case form.
func (g GUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.LittleEndian.Uint32(g[0:4]),
		binary.LittleEndian.Uint16(g[4:6]),
		binary.LittleEndian.Uint16(g[6:8]),
		binary.BigEndian.Uint16(g[8:10]),
		g[10:16])
}

// IsNil reports whether g is all zeros.
func (g GUID) IsNil() bool {
	return g == Nil
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
