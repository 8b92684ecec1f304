package store

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/fwinfo/pkg/codec"
	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/info"
)

func openTestJournal(t *testing.T, filePath string) *Journal {
	t.Helper()
	j, _, err := OpenJournal(JournalConfig{FilePath: filePath, BufferSize: 4096})
	require.NoError(t, err)
	return j
}

func TestJournal_AppendFind(t *testing.T) {
	j := openTestJournal(t, tempJournalPath(t, "journal_find_test"))
	defer j.Close()

	rec := testFileInfo(t, "startup.nsh", 77)
	entry, err := j.Append(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(0), entry.Offset)
	assert.Equal(t, uint32(codec.HeaderSize+rec.Len()), entry.Size)

	env, err := j.Find(info.FileInfoGUID, "startup.nsh")
	require.NoError(t, err)
	got, err := env.Record()
	require.NoError(t, err)

	fi, ok := got.(*info.FileInfo)
	require.True(t, ok)
	assert.Equal(t, uint64(77), fi.FileSize())
	assert.Equal(t, info.Archive, fi.Attribute())

	_, err = j.Find(info.FileInfoGUID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = j.Find(info.FileSystemVolumeLabelGUID, "startup.nsh")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournal_FindSeesBufferedWrites(t *testing.T) {
	j, _, err := OpenJournal(JournalConfig{
		FilePath:      tempJournalPath(t, "journal_buffered_test"),
		FsyncInterval: time.Hour,
		BufferSize:    1 << 16,
	})
	require.NoError(t, err)
	defer j.Close()

	_, err = j.Append(testVolumeLabel(t, "CACHE"))
	require.NoError(t, err)

	env, err := j.Find(info.FileSystemVolumeLabelGUID, "CACHE")
	require.NoError(t, err)
	assert.Equal(t, info.FileSystemVolumeLabelGUID, env.Kind)
}

func TestJournal_Scan(t *testing.T) {
	j := openTestJournal(t, tempJournalPath(t, "journal_scan_test"))
	defer j.Close()

	names := []string{"one", "two", "three"}
	for _, n := range names {
		_, err := j.Append(testVolumeLabel(t, n))
		require.NoError(t, err)
	}

	var seen []string
	err := j.Scan(func(offset int64, env *codec.Envelope) error {
		rec, err := env.Record()
		if err != nil {
			return err
		}
		seen = append(seen, rec.Name().String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, names, seen)

	stop := errors.New("stop")
	calls := 0
	err = j.Scan(func(int64, *codec.Envelope) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestJournal_ReopenRebuildsIndex(t *testing.T) {
	filePath := tempJournalPath(t, "journal_reopen_test")

	j := openTestJournal(t, filePath)
	_, err := j.Append(testFileInfo(t, "a", 1))
	require.NoError(t, err)
	_, err = j.Append(testFileInfo(t, "a", 2))
	require.NoError(t, err)
	_, err = j.Append(testVolumeLabel(t, "ESP"))
	require.NoError(t, err)
	require.NoError(t, j.Close())

	j, recovery, err := OpenJournal(JournalConfig{FilePath: filePath})
	require.NoError(t, err)
	defer j.Close()

	assert.Equal(t, int64(3), recovery.RecordsValidated)
	assert.Zero(t, recovery.BytesTruncated)
	assert.Equal(t, 2, j.Stats().Names)
	assert.Equal(t, []string{"a"}, j.Names(info.FileInfoGUID))

	env, err := j.Find(info.FileInfoGUID, "a")
	require.NoError(t, err)
	rec, err := env.Record()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rec.(*info.FileInfo).FileSize())
}

func TestJournal_RecoversDamagedTail(t *testing.T) {
	filePath := tempJournalPath(t, "journal_recovery_test")

	j := openTestJournal(t, filePath)
	_, err := j.Append(testVolumeLabel(t, "GOOD"))
	require.NoError(t, err)
	goodSize := j.Stats().DataSize
	require.NoError(t, j.Close())

	appendBytes(t, filePath, []byte{1, 2, 3, 4, 5, 6, 7})

	j, recovery, err := OpenJournal(JournalConfig{FilePath: filePath})
	require.NoError(t, err)
	defer j.Close()

	assert.Equal(t, int64(1), recovery.RecordsValidated)
	assert.Equal(t, int64(7), recovery.BytesTruncated)
	assert.Equal(t, goodSize, recovery.FileSizeAfter)

	stat, err := os.Stat(filePath)
	require.NoError(t, err)
	assert.Equal(t, goodSize, stat.Size())

	// appends after recovery stay readable
	_, err = j.Append(testVolumeLabel(t, "NEXT"))
	require.NoError(t, err)
	_, err = j.Find(info.FileSystemVolumeLabelGUID, "NEXT")
	assert.NoError(t, err)
}

func TestJournal_Closed(t *testing.T) {
	j := openTestJournal(t, tempJournalPath(t, "journal_closed_test"))
	require.NoError(t, j.Close())
	require.NoError(t, j.Close())

	_, err := j.Append(testVolumeLabel(t, "X"))
	assert.ErrorIs(t, err, ErrClosed)
	_, err = j.Find(info.FileSystemVolumeLabelGUID, "X")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, j.Scan(func(int64, *codec.Envelope) error { return nil }), ErrClosed)
	assert.Equal(t, JournalStats{}, j.Stats())
}

func TestJournal_ConcurrentAppendFind(t *testing.T) {
	j := openTestJournal(t, tempJournalPath(t, "journal_concurrent_test"))
	defer j.Close()

	labels := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	var wg sync.WaitGroup
	for _, l := range labels {
		rec := testVolumeLabel(t, l)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := j.Append(rec)
			assert.NoError(t, err)
			_, err = j.Find(info.FileSystemVolumeLabelGUID, rec.VolumeLabel().String())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, len(labels), j.Stats().Names)
}

func TestJournal_RejectsOversizedRecord(t *testing.T) {
	filePath := tempJournalPath(t, "journal_oversized_test")

	units := make([]uint16, MaxPayloadSize/2+16)
	for i := range units[:len(units)-1] {
		units[i] = 'A'
	}
	name, err := cstr.FromU16WithNul(units)
	require.NoError(t, err)
	big, err := info.NewFileSystemVolumeLabel(info.AlignedBuffer(name.NumBytes(), 2), name)
	require.NoError(t, err)

	j := openTestJournal(t, filePath)
	_, err = j.Append(testVolumeLabel(t, "first"))
	require.NoError(t, err)
	sizeBefore := j.Stats().DataSize

	_, err = j.Append(big)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
	assert.Equal(t, sizeBefore, j.Stats().DataSize)

	_, err = j.Append(testVolumeLabel(t, "after"))
	require.NoError(t, err)
	require.NoError(t, j.Close())

	j, recovery, err := OpenJournal(JournalConfig{FilePath: filePath})
	require.NoError(t, err)
	defer j.Close()

	assert.Equal(t, int64(2), recovery.RecordsValidated)
	assert.Zero(t, recovery.BytesTruncated)
	assert.Equal(t, []string{"after", "first"}, j.Names(info.FileSystemVolumeLabelGUID))
}

func TestJournal_EntryTimestampMatchesEnvelope(t *testing.T) {
	filePath := tempJournalPath(t, "journal_timestamp_test")

	j := openTestJournal(t, filePath)
	entry, err := j.Append(testVolumeLabel(t, "ESP"))
	require.NoError(t, err)

	env, err := j.Find(info.FileSystemVolumeLabelGUID, "ESP")
	require.NoError(t, err)
	assert.Equal(t, env.Timestamp, entry.Timestamp)
	assert.Equal(t, uint32(env.Size()), entry.Size)
	require.NoError(t, j.Close())

	j = openTestJournal(t, filePath)
	defer j.Close()

	rebuilt, ok := j.index.Get(info.FileSystemVolumeLabelGUID, "ESP")
	require.True(t, ok)
	assert.Equal(t, entry, rebuilt)
}
