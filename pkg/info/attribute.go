package info

import (
	"fmt"
	"strings"
)

// FileAttribute holds the attribute bits of a file.
type FileAttribute uint64

const (
	ReadOnly  FileAttribute = 0x01
	Hidden    FileAttribute = 0x02
	System    FileAttribute = 0x04
	Reserved  FileAttribute = 0x08
	Directory FileAttribute = 0x10
	Archive   FileAttribute = 0x20

	// ValidAttr masks every bit a caller may set.
	ValidAttr FileAttribute = 0x37
)

var attributeNames = []struct {
	bit  FileAttribute
	name string
}{
	{ReadOnly, "read-only"},
	{Hidden, "hidden"},
	{System, "system"},
	{Reserved, "reserved"},
	{Directory, "directory"},
	{Archive, "archive"},
}

// Has reports whether every bit of flag is set.
func (a FileAttribute) Has(flag FileAttribute) bool {
	return a&flag == flag
}

func (a FileAttribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	rest := a
	for _, n := range attributeNames {
		if a&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint64(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseFileAttribute parses names separated by '|' or ',', as produced by
// String. "none" and "" parse to zero.
func ParseFileAttribute(s string) (FileAttribute, error) {
	var a FileAttribute
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	for _, f := range fields {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "none" || f == "" {
			continue
		}
		found := false
		for _, n := range attributeNames {
			if n.name == f {
				a |= n.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown file attribute %q", f)
		}
	}
	return a, nil
}
