package info

import (
	"unsafe"

	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/guid"
)

// FileSystemVolumeLabelGUID selects the volume label schema.
var FileSystemVolumeLabelGUID = guid.MustParse("db47d7d3-fe81-11d3-9a35-0090273fc14d")

// FileSystemVolumeLabelHeader is empty: the record is the label alone.
type FileSystemVolumeLabelHeader struct{}

// GUID implements guid.Identified.
func (FileSystemVolumeLabelHeader) GUID() guid.GUID {
	return FileSystemVolumeLabelGUID
}

// FileSystemVolumeLabel holds the label of a volume. Firmware only returns
// it for the root directory.
type FileSystemVolumeLabel struct {
	*Named[FileSystemVolumeLabelHeader]
}

// NewFileSystemVolumeLabel builds a volume label record in buf.
func NewFileSystemVolumeLabel(buf []byte, volumeLabel cstr.CStr16) (*FileSystemVolumeLabel, error) {
	rec, err := Construct(buf, FileSystemVolumeLabelHeader{}, volumeLabel)
	if err != nil {
		return nil, err
	}
	return &FileSystemVolumeLabel{rec}, nil
}

// FileSystemVolumeLabelFromPointer wraps a firmware-provided record.
// See Reconstruct for the obligations on ptr.
func FileSystemVolumeLabelFromPointer(ptr unsafe.Pointer) *FileSystemVolumeLabel {
	return &FileSystemVolumeLabel{Reconstruct[FileSystemVolumeLabelHeader](ptr)}
}

// DecodeFileSystemVolumeLabel wraps a volume label record held in buf.
func DecodeFileSystemVolumeLabel(buf []byte) (*FileSystemVolumeLabel, error) {
	rec, err := Decode[FileSystemVolumeLabelHeader](buf)
	if err != nil {
		return nil, err
	}
	return &FileSystemVolumeLabel{rec}, nil
}

// GUID returns FileSystemVolumeLabelGUID.
func (l *FileSystemVolumeLabel) GUID() guid.GUID {
	return FileSystemVolumeLabelGUID
}

func (l *FileSystemVolumeLabel) VolumeLabel() cstr.CStr16 {
	return l.Name()
}
