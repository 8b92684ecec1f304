package info

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/ssargent/fwinfo/pkg/chars"
	"github.com/ssargent/fwinfo/pkg/cstr"
)

// Named is a view over a record made of a header of type H followed by a
// null-terminated UCS-2 name. The start address and length are fixed when
// the view is built; every accessor derives from them.
type Named[H any] struct {
	start unsafe.Pointer
	size  int
	name  cstr.CStr16
}

// Construct writes header and name into buf and returns a view over the
// bytes written.
//
// buf must start on an Alignment[H]() boundary; Construct panics otherwise.
// If buf is shorter than the record, nothing is written and a *StorageError
// reports the required size. The name units are overlaid on the bytes
// following the header before they are initialized, which is sound only
// because chars.Char16 is plain data.
func Construct[H any](buf []byte, header H, name cstr.CStr16) (*Named[H], error) {
	mustBePlain[H]()
	if align := Alignment[H](); !IsAligned(buf, align) {
		panic(fmt.Sprintf("info: buffer at %p is not aligned to %d bytes", unsafe.SliceData(buf), align))
	}

	units := len(name.CharsWithNul())
	if units == 0 {
		return nil, ErrInvalidName
	}
	required := RequiredSize[H](units)
	if len(buf) < required {
		return nil, &StorageError{Required: required}
	}

	start := unsafe.Pointer(unsafe.SliceData(buf))
	*(*H)(start) = header

	dst := unsafe.Slice((*chars.Char16)(unsafe.Add(start, NameOffset[H]())), units)
	copy(dst, name.CharsWithNul())

	return &Named[H]{
		start: start,
		size:  required,
		name:  cstr.FromCharsWithNulUnchecked(dst),
	}, nil
}

// Reconstruct builds a view over a record at ptr.
//
// The name is found by scanning forward from the end of the header until a
// NUL16; there is no other bound on the record length. ptr must address an
// aligned, accessible record whose header is exactly H and whose name is
// terminated, and the memory must stay unmodified while the view is in use.
// Anything else is undefined behavior.
func Reconstruct[H any](ptr unsafe.Pointer) *Named[H] {
	mustBePlain[H]()
	name := cstr.FromPtr16((*chars.Char16)(unsafe.Add(ptr, NameOffset[H]())))
	return &Named[H]{
		start: ptr,
		size:  NameOffset[H]() + name.NumBytes(),
		name:  name,
	}
}

// Decode builds a view over a record held in buf without reading past
// len(buf). Bytes after the name terminator are ignored.
func Decode[H any](buf []byte) (*Named[H], error) {
	mustBePlain[H]()
	offset := NameOffset[H]()
	if len(buf) < offset+charSize {
		return nil, fmt.Errorf("%w: %d bytes cannot hold a %d byte header and a terminator",
			ErrTruncated, len(buf), offset)
	}
	if align := Alignment[H](); !IsAligned(buf, align) {
		return nil, fmt.Errorf("%w: record must start on a %d byte boundary", ErrMisaligned, align)
	}

	start := unsafe.Pointer(unsafe.SliceData(buf))
	codes := unsafe.Slice((*uint16)(unsafe.Add(start, offset)), (len(buf)-offset)/charSize)
	end := slices.Index(codes, 0)
	if end < 0 {
		return nil, fmt.Errorf("%w: name has no terminator within %d bytes", ErrTruncated, len(buf))
	}
	name, err := cstr.FromU16WithNul(codes[:end+1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidName, err)
	}

	return &Named[H]{
		start: start,
		size:  offset + name.NumBytes(),
		name:  name,
	}, nil
}

// Header returns the header stored at the start of the record.
func (n *Named[H]) Header() *H {
	return (*H)(n.start)
}

// Name returns the record name.
func (n *Named[H]) Name() cstr.CStr16 {
	return n.name
}

// Pointer returns the start address of the record.
func (n *Named[H]) Pointer() unsafe.Pointer {
	return n.start
}

// Len returns the exact number of bytes the record occupies.
func (n *Named[H]) Len() int {
	return n.size
}

// EncodedSize returns the record size rounded up to Alignment[H](), the
// value firmware reports in size fields.
func (n *Named[H]) EncodedSize() int {
	return alignUp(n.size, Alignment[H]())
}

// Bytes returns the record bytes, sharing memory with the view.
func (n *Named[H]) Bytes() []byte {
	return unsafe.Slice((*byte)(n.start), n.size)
}
