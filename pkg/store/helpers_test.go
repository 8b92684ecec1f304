package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/info"
)

func tempJournalPath(t *testing.T, prefix string) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", prefix)
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })
	return filepath.Join(tmpDir, "records.journal")
}

func testName(t *testing.T, s string) cstr.CStr16 {
	t.Helper()
	name, err := cstr.FromStrWithBuf(s, make([]uint16, len(s)+1))
	require.NoError(t, err)
	return name
}

func testFileInfo(t *testing.T, name string, size uint64) *info.FileInfo {
	t.Helper()
	n := testName(t, name)
	buf := info.AlignedBuffer(info.RequiredSize[info.FileInfoHeader](len(n.CharsWithNul())), 8)
	rec, err := info.NewFileInfo(buf, info.FileMeta{FileSize: size, Attribute: info.Archive}, n)
	require.NoError(t, err)
	return rec
}

func testVolumeLabel(t *testing.T, label string) *info.FileSystemVolumeLabel {
	t.Helper()
	n := testName(t, label)
	rec, err := info.NewFileSystemVolumeLabel(info.AlignedBuffer(n.NumBytes(), 2), n)
	require.NoError(t, err)
	return rec
}
