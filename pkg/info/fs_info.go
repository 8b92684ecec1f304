package info

import (
	"unsafe"

	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/guid"
)

// FileSystemInfoGUID selects the file system information schema.
var FileSystemInfoGUID = guid.MustParse("09576e93-6d3f-11d2-8e39-00a0c969723b")

// FileSystemInfoHeader is the fixed part of a file system information record.
type FileSystemInfoHeader struct {
	Size       uint64 // Encoded record size, label included
	ReadOnly   bool
	VolumeSize uint64
	FreeSpace  uint64
	BlockSize  uint32
}

// GUID implements guid.Identified.
func (FileSystemInfoHeader) GUID() guid.GUID {
	return FileSystemInfoGUID
}

// FileSystemMeta carries the caller-provided fields of a file system
// information record.
type FileSystemMeta struct {
	ReadOnly   bool
	VolumeSize uint64
	FreeSpace  uint64
	BlockSize  uint32
}

// FileSystemInfo describes a volume. Firmware only returns it for the root
// directory, and only the volume label may be changed through it.
type FileSystemInfo struct {
	*Named[FileSystemInfoHeader]
}

// NewFileSystemInfo builds a file system information record in buf and
// stores the record's encoded size in its header.
func NewFileSystemInfo(buf []byte, meta FileSystemMeta, volumeLabel cstr.CStr16) (*FileSystemInfo, error) {
	header := FileSystemInfoHeader{
		ReadOnly:   meta.ReadOnly,
		VolumeSize: meta.VolumeSize,
		FreeSpace:  meta.FreeSpace,
		BlockSize:  meta.BlockSize,
	}
	rec, err := Construct(buf, header, volumeLabel)
	if err != nil {
		return nil, err
	}
	rec.Header().Size = uint64(rec.EncodedSize())
	return &FileSystemInfo{rec}, nil
}

// FileSystemInfoFromPointer wraps a firmware-provided record.
// See Reconstruct for the obligations on ptr.
func FileSystemInfoFromPointer(ptr unsafe.Pointer) *FileSystemInfo {
	return &FileSystemInfo{Reconstruct[FileSystemInfoHeader](ptr)}
}

// DecodeFileSystemInfo wraps a file system information record held in buf.
func DecodeFileSystemInfo(buf []byte) (*FileSystemInfo, error) {
	rec, err := Decode[FileSystemInfoHeader](buf)
	if err != nil {
		return nil, err
	}
	return &FileSystemInfo{rec}, nil
}

// GUID returns FileSystemInfoGUID.
func (f *FileSystemInfo) GUID() guid.GUID {
	return FileSystemInfoGUID
}

// ReadOnly reports whether the volume only supports read access.
func (f *FileSystemInfo) ReadOnly() bool {
	return f.Header().ReadOnly
}

// VolumeSize is the number of bytes managed by the file system.
func (f *FileSystemInfo) VolumeSize() uint64 {
	return f.Header().VolumeSize
}

// FreeSpace is the number of bytes available to the file system.
func (f *FileSystemInfo) FreeSpace() uint64 {
	return f.Header().FreeSpace
}

// BlockSize is the nominal block size by which files grow.
func (f *FileSystemInfo) BlockSize() uint32 {
	return f.Header().BlockSize
}

func (f *FileSystemInfo) VolumeLabel() cstr.CStr16 {
	return f.Name()
}
