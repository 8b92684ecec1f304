package store

import (
	"time"

	"github.com/ssargent/fwinfo/pkg/codec"
)

// MaxPayloadSize bounds a single journal entry. A larger size field is
// treated as corruption rather than allocated.
const MaxPayloadSize = 16 << 20

// IndexEntry represents the location of an envelope in the journal
type IndexEntry struct {
	Offset    int64  // Byte offset within the file
	Size      uint32 // Size of the envelope in bytes
	Timestamp uint64 // Envelope timestamp
}

// LogWriterConfig holds configuration for the log writer
type LogWriterConfig struct {
	FilePath      string        // Path to the journal file
	FsyncInterval time.Duration // How often to fsync (0 = every write)
	BufferSize    int           // Write buffer size
}

// LogReaderConfig holds configuration for the log reader
type LogReaderConfig struct {
	FilePath    string // Path to the journal file
	StartOffset int64  // Offset to start reading from
}

// JournalConfig holds configuration for the record journal
type JournalConfig struct {
	FilePath      string
	FsyncInterval time.Duration
	BufferSize    int
}

// RecordIterator provides streaming access to envelopes
type RecordIterator interface {
	Next() bool
	Envelope() *codec.Envelope
	Offset() int64
	Err() error
	Close() error
}

// Errors
var (
	ErrNotFound   = &JournalError{"record not found"}
	ErrCorruption = &JournalError{"data corruption detected"}
	ErrClosed     = &JournalError{"journal is closed"}

	// ErrPayloadTooLarge is returned by Append for payloads over MaxPayloadSize.
	ErrPayloadTooLarge = &JournalError{"payload exceeds maximum journal entry size"}
)

// JournalError represents a journal error
type JournalError struct {
	Message string
}

func (e *JournalError) Error() string {
	return e.Message
}
