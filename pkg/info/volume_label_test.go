package info

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileSystemVolumeLabel(t *testing.T) {
	storage := AlignedBuffer(128, 8)
	name := mustName(t, "test_name")

	info, err := NewFileSystemVolumeLabel(storage, name)
	require.NoError(t, err)

	assert.True(t, info.VolumeLabel().Equal(name))
	assert.Equal(t, 20, info.Len())
	assert.Equal(t, 20, info.EncodedSize())
	assert.Equal(t, FileSystemVolumeLabelGUID, info.GUID())

	// the label starts at the first byte
	assert.Equal(t, []byte{'t', 0, 'e', 0}, storage[:4])
}

func TestFileSystemVolumeLabel_DecodeAfterEncode(t *testing.T) {
	storage := AlignedBuffer(32, 2)
	_, err := NewFileSystemVolumeLabel(storage, mustName(t, "DATA"))
	require.NoError(t, err)

	fromPtr := FileSystemVolumeLabelFromPointer(unsafe.Pointer(&storage[0]))
	assert.Equal(t, "DATA", fromPtr.VolumeLabel().String())

	decoded, err := DecodeFileSystemVolumeLabel(storage[:fromPtr.Len()])
	require.NoError(t, err)
	assert.True(t, decoded.VolumeLabel().Equal(fromPtr.VolumeLabel()))
}

func TestNewFileSystemVolumeLabel_InsufficientStorage(t *testing.T) {
	_, err := NewFileSystemVolumeLabel(AlignedBuffer(19, 2), mustName(t, "test_name"))
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 20, se.Required)
}
