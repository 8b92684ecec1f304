package info

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/ssargent/fwinfo/pkg/chars"
)

const charSize = int(unsafe.Sizeof(chars.Char16(0)))

// HeaderSize returns the size of H in bytes.
func HeaderSize[H any]() int {
	var h H
	return int(unsafe.Sizeof(h))
}

// NameOffset returns the offset of the first name code unit.
func NameOffset[H any]() int {
	return alignUp(HeaderSize[H](), int(unsafe.Alignof(chars.Char16(0))))
}

// Alignment returns the alignment a buffer holding a record with header H
// must satisfy.
func Alignment[H any]() int {
	var h H
	return max(int(unsafe.Alignof(h)), int(unsafe.Alignof(chars.Char16(0))))
}

// RequiredSize returns the exact number of bytes a record with header H and
// the given number of name units, terminator included, occupies.
func RequiredSize[H any](nameUnits int) int {
	return NameOffset[H]() + nameUnits*charSize
}

// AlignedBuffer allocates size bytes starting on an align-byte boundary.
// align must be a power of two.
func AlignedBuffer(size, align int) []byte {
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("info: alignment %d is not a power of two", align))
	}
	if align <= 8 {
		words := make([]uint64, (size+7)/8)
		return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), len(words)*8)[:size:size]
	}
	raw := make([]byte, size+align-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int((uintptr(align) - addr%uintptr(align)) % uintptr(align))
	return raw[off : off+size : off+size]
}

// IsAligned reports whether buf starts on an align-byte boundary.
func IsAligned(buf []byte, align int) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%uintptr(align) == 0
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// mustBePlain panics unless H can live in untyped byte memory.
func mustBePlain[H any]() {
	t := reflect.TypeOf((*H)(nil)).Elem()
	if field, ok := plain(t); !ok {
		if field != "" {
			panic(fmt.Sprintf("info: header type %s is not plain data (field %s)", t, field))
		}
		panic(fmt.Sprintf("info: header type %s is not plain data", t))
	}
}

func plain(t reflect.Type) (string, bool) {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "", true
	case reflect.Array:
		return plain(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if sub, ok := plain(f.Type); !ok {
				if sub == "" {
					return f.Name, false
				}
				return f.Name + "." + sub, false
			}
		}
		return "", true
	default:
		return "", false
	}
}
