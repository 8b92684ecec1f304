package info

import (
	"fmt"

	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/guid"
)

// Record is the read side shared by every concrete record kind.
type Record interface {
	GUID() guid.GUID
	Name() cstr.CStr16
	Bytes() []byte
	Len() int
	EncodedSize() int
}

var (
	_ Record = (*FileInfo)(nil)
	_ Record = (*FileSystemInfo)(nil)
	_ Record = (*FileSystemVolumeLabel)(nil)

	_ guid.Identified = FileInfoHeader{}
	_ guid.Identified = FileSystemInfoHeader{}
	_ guid.Identified = FileSystemVolumeLabelHeader{}
)

// Kind describes one record schema.
type Kind struct {
	Name       string
	GUID       guid.GUID
	HeaderSize int
	Alignment  int
	Decode     func(buf []byte) (Record, error)
}

// Kinds lists the record schemas this package knows about.
func Kinds() []Kind {
	return []Kind{
		{
			Name:       "file",
			GUID:       FileInfoGUID,
			HeaderSize: HeaderSize[FileInfoHeader](),
			Alignment:  Alignment[FileInfoHeader](),
			Decode: func(buf []byte) (Record, error) {
				rec, err := DecodeFileInfo(buf)
				if err != nil {
					return nil, err
				}
				return rec, nil
			},
		},
		{
			Name:       "filesystem",
			GUID:       FileSystemInfoGUID,
			HeaderSize: HeaderSize[FileSystemInfoHeader](),
			Alignment:  Alignment[FileSystemInfoHeader](),
			Decode: func(buf []byte) (Record, error) {
				rec, err := DecodeFileSystemInfo(buf)
				if err != nil {
					return nil, err
				}
				return rec, nil
			},
		},
		{
			Name:       "volume-label",
			GUID:       FileSystemVolumeLabelGUID,
			HeaderSize: HeaderSize[FileSystemVolumeLabelHeader](),
			Alignment:  Alignment[FileSystemVolumeLabelHeader](),
			Decode: func(buf []byte) (Record, error) {
				rec, err := DecodeFileSystemVolumeLabel(buf)
				if err != nil {
					return nil, err
				}
				return rec, nil
			},
		},
	}
}

// LookupKind finds the kind paired with g.
func LookupKind(g guid.GUID) (Kind, error) {
	for _, k := range Kinds() {
		if k.GUID == g {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("%w: %s", ErrUnknownKind, g)
}

// LookupKindName finds a kind by name or by GUID string.
func LookupKindName(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.Name == name {
			return k, nil
		}
	}
	if g, err := guid.Parse(name); err == nil {
		return LookupKind(g)
	}
	return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// DecodeAligned decodes buf as kind k, copying it into aligned storage
// first when buf does not start on the alignment k needs.
func (k Kind) DecodeAligned(buf []byte) (Record, error) {
	if !IsAligned(buf, k.Alignment) {
		aligned := AlignedBuffer(len(buf), k.Alignment)
		copy(aligned, buf)
		buf = aligned
	}
	return k.Decode(buf)
}
