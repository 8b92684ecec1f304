package info

import (
	"unsafe"

	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/guid"
)

// FileInfoGUID selects the generic file information schema.
var FileInfoGUID = guid.MustParse("09576e92-6d3f-11d2-8e39-00a0c969723b")

// FileInfoHeader is the fixed part of a file information record.
type FileInfoHeader struct {
	Size             uint64 // Encoded record size, name included
	FileSize         uint64
	PhysicalSize     uint64
	CreateTime       Time
	LastAccessTime   Time
	ModificationTime Time
	Attribute        FileAttribute
}

// GUID implements guid.Identified.
func (FileInfoHeader) GUID() guid.GUID {
	return FileInfoGUID
}

// FileMeta carries the caller-provided fields of a file information record.
//
// When a record is used to update a file, the directory bit must match the
// file type, a zero time leaves the stored time unchanged, and FileSize of a
// directory as well as PhysicalSize are ignored.
type FileMeta struct {
	FileSize         uint64
	PhysicalSize     uint64
	CreateTime       Time
	LastAccessTime   Time
	ModificationTime Time
	Attribute        FileAttribute
}

// FileInfo is generic file information: sizes, times, attributes and name.
type FileInfo struct {
	*Named[FileInfoHeader]
}

// NewFileInfo builds a file information record in buf and stores the
// record's encoded size in its header.
func NewFileInfo(buf []byte, meta FileMeta, fileName cstr.CStr16) (*FileInfo, error) {
	header := FileInfoHeader{
		FileSize:         meta.FileSize,
		PhysicalSize:     meta.PhysicalSize,
		CreateTime:       meta.CreateTime,
		LastAccessTime:   meta.LastAccessTime,
		ModificationTime: meta.ModificationTime,
		Attribute:        meta.Attribute,
	}
	rec, err := Construct(buf, header, fileName)
	if err != nil {
		return nil, err
	}
	rec.Header().Size = uint64(rec.EncodedSize())
	return &FileInfo{rec}, nil
}

// FileInfoFromPointer wraps a firmware-provided file information record.
// See Reconstruct for the obligations on ptr.
func FileInfoFromPointer(ptr unsafe.Pointer) *FileInfo {
	return &FileInfo{Reconstruct[FileInfoHeader](ptr)}
}

// DecodeFileInfo wraps a file information record held in buf.
func DecodeFileInfo(buf []byte) (*FileInfo, error) {
	rec, err := Decode[FileInfoHeader](buf)
	if err != nil {
		return nil, err
	}
	return &FileInfo{rec}, nil
}

// GUID returns FileInfoGUID.
func (f *FileInfo) GUID() guid.GUID {
	return FileInfoGUID
}

// FileSize is the number of bytes stored in the file.
func (f *FileInfo) FileSize() uint64 {
	return f.Header().FileSize
}

// PhysicalSize is the space the file consumes on the volume.
func (f *FileInfo) PhysicalSize() uint64 {
	return f.Header().PhysicalSize
}

func (f *FileInfo) CreateTime() Time {
	return f.Header().CreateTime
}

func (f *FileInfo) LastAccessTime() Time {
	return f.Header().LastAccessTime
}

func (f *FileInfo) ModificationTime() Time {
	return f.Header().ModificationTime
}

func (f *FileInfo) Attribute() FileAttribute {
	return f.Header().Attribute
}

// FileName returns the name of the file.
func (f *FileInfo) FileName() cstr.CStr16 {
	return f.Name()
}
