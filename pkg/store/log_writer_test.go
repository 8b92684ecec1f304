package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/fwinfo/pkg/codec"
	"github.com/ssargent/fwinfo/pkg/info"
)

func TestNewLogWriter(t *testing.T) {
	filePath := tempJournalPath(t, "log_writer_test")

	writer, err := NewLogWriter(LogWriterConfig{FilePath: filePath, BufferSize: 4096})
	require.NoError(t, err)
	assert.NotNil(t, writer)

	assert.FileExists(t, filePath)
	assert.Equal(t, int64(0), writer.Size())
	assert.Equal(t, filePath, writer.Path())

	assert.NoError(t, writer.Close())
}

func TestNewLogWriter_DirectoryCreation(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "log_writer_dir_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	nestedDir := filepath.Join(tmpDir, "nested", "deep", "path")

	writer, err := NewLogWriter(LogWriterConfig{FilePath: filepath.Join(nestedDir, "test.journal")})
	require.NoError(t, err)
	assert.DirExists(t, nestedDir)
	assert.NoError(t, writer.Close())
}

func TestNewLogWriter_InvalidPath(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "log_writer_invalid_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// a regular file where a directory is expected
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	writer, err := NewLogWriter(LogWriterConfig{FilePath: filepath.Join(blocker, "test.journal")})
	assert.Error(t, err)
	assert.Nil(t, writer)
}

func TestLogWriter_Append(t *testing.T) {
	filePath := tempJournalPath(t, "log_writer_append_test")

	writer, err := NewLogWriter(LogWriterConfig{FilePath: filePath, BufferSize: 4096})
	require.NoError(t, err)
	defer writer.Close()

	rec := testFileInfo(t, "boot.efi", 10)
	offsets := make([]int64, 0, 3)
	for i := 0; i < 3; i++ {
		offset, err := writer.Append(rec.GUID(), rec.Bytes())
		require.NoError(t, err)
		offsets = append(offsets, offset)
	}

	step := int64(codec.HeaderSize + rec.Len())
	assert.Equal(t, []int64{0, step, 2 * step}, offsets)
	assert.Equal(t, 3*step, writer.Size())

	// immediate fsync mode leaves nothing buffered
	stat, err := os.Stat(filePath)
	require.NoError(t, err)
	assert.Equal(t, 3*step, stat.Size())
}

func TestLogWriter_ReopenAppendsAtEnd(t *testing.T) {
	filePath := tempJournalPath(t, "log_writer_reopen_test")
	label := testVolumeLabel(t, "ESP")

	writer, err := NewLogWriter(LogWriterConfig{FilePath: filePath})
	require.NoError(t, err)
	_, err = writer.Append(info.FileSystemVolumeLabelGUID, label.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	writer, err = NewLogWriter(LogWriterConfig{FilePath: filePath})
	require.NoError(t, err)
	defer writer.Close()

	offset, err := writer.Append(info.FileSystemVolumeLabelGUID, label.Bytes())
	require.NoError(t, err)
	assert.Equal(t, int64(codec.HeaderSize+label.Len()), offset)
}

func TestLogWriter_SyncAndFlush(t *testing.T) {
	filePath := tempJournalPath(t, "log_writer_sync_test")

	writer, err := NewLogWriter(LogWriterConfig{
		FilePath:      filePath,
		FsyncInterval: time.Hour, // Long interval to prevent auto-sync
		BufferSize:    4096,
	})
	require.NoError(t, err)
	defer writer.Close()

	_, err = writer.Append(info.FileSystemVolumeLabelGUID, testVolumeLabel(t, "DATA").Bytes())
	require.NoError(t, err)

	stat, err := os.Stat(filePath)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stat.Size(), "write should still be buffered")

	require.NoError(t, writer.Flush())
	stat, err = os.Stat(filePath)
	require.NoError(t, err)
	assert.Equal(t, writer.Size(), stat.Size())

	assert.NoError(t, writer.Sync())
}

func TestLogWriter_FsyncInterval(t *testing.T) {
	filePath := tempJournalPath(t, "log_writer_fsync_interval_test")

	writer, err := NewLogWriter(LogWriterConfig{
		FilePath:      filePath,
		FsyncInterval: 10 * time.Millisecond,
		BufferSize:    4096,
	})
	require.NoError(t, err)
	defer writer.Close()

	_, err = writer.Append(info.FileSystemVolumeLabelGUID, testVolumeLabel(t, "DATA").Bytes())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		stat, err := os.Stat(filePath)
		return err == nil && stat.Size() == writer.Size()
	}, time.Second, 10*time.Millisecond)
}

func TestLogWriter_AppendRejectsOversizedPayload(t *testing.T) {
	filePath := tempJournalPath(t, "log_writer_oversized_test")

	writer, err := NewLogWriter(LogWriterConfig{FilePath: filePath})
	require.NoError(t, err)
	defer writer.Close()

	_, err = writer.Append(info.FileSystemVolumeLabelGUID, make([]byte, MaxPayloadSize+1))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
	assert.Zero(t, writer.Size())

	offset, err := writer.Append(info.FileSystemVolumeLabelGUID, make([]byte, 8))
	require.NoError(t, err)
	assert.Zero(t, offset)
	assert.Equal(t, int64(codec.HeaderSize+8), writer.Size())
}
