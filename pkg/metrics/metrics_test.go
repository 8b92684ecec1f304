package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/fwinfo/pkg/cstr"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RecordEncoded("file", 104)
	m.RecordEncoded("file", 200)
	m.RecordEncoded("volume-label", 20)
	m.RecordDecoded("file", true)
	m.RecordDecoded("file", false)
	m.RecordDecoded("file", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recordsEncodedTotal.WithLabelValues("file")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsEncodedTotal.WithLabelValues("volume-label")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsDecodedTotal.WithLabelValues("file", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.recordsDecodedTotal.WithLabelValues("file", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.recordEncodedBytes))
}

func TestMetrics_StorageAndJournal(t *testing.T) {
	m := NewMetrics()

	m.RecordStorageOperation("journal", "append", true, time.Millisecond)
	m.RecordStorageOperation("catalog", "get", false, time.Millisecond)
	m.UpdateJournalStats(3, 512)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageOperationsTotal.WithLabelValues("journal", "append", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageOperationsTotal.WithLabelValues("catalog", "get", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.journalNames))
	assert.Equal(t, 512.0, testutil.ToFloat64(m.journalSizeBytes))
}

func TestRejectReason(t *testing.T) {
	_, invalid := cstr.FromU16WithNul([]uint16{'a', 0xD800, 0})
	_, interior := cstr.FromU16WithNul([]uint16{'a', 0, 'b', 0})
	_, unterminated := cstr.FromU16WithNul([]uint16{'a', 'b'})
	_, small := cstr.FromStrWithBuf("abc", make([]uint16, 2))

	tests := []struct {
		err  error
		want string
	}{
		{invalid, "invalid_char"},
		{interior, "interior_nul"},
		{unterminated, "not_nul_terminated"},
		{small, "buffer_too_small"},
		{fmt.Errorf("wrapped: %w", invalid), "invalid_char"},
		{errors.New("disk on fire"), "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RejectReason(tt.err), "%v", tt.err)
	}

	m := NewMetrics()
	m.StringRejected(invalid)
	m.StringRejected(small)
	m.StringRejected(small)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.stringsRejected.WithLabelValues("buffer_too_small")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "metrics_textfile_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	m := NewMetrics()
	m.RecordEncoded("filesystem", 64)

	path := filepath.Join(tmpDir, "fwinfo.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fwinfo_records_encoded_total{kind="filesystem"} 1`)

	expected := `
# HELP fwinfo_records_encoded_total Total number of records encoded
# TYPE fwinfo_records_encoded_total counter
fwinfo_records_encoded_total{kind="filesystem"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "fwinfo_records_encoded_total"))
}
