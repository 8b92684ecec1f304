package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ssargent/fwinfo/pkg/codec"
	"github.com/ssargent/fwinfo/pkg/guid"
	"github.com/ssargent/fwinfo/pkg/info"
)

// Journal is an append-only file of record envelopes with an in-memory
// index from (kind, name) to the latest envelope.
type Journal struct {
	config JournalConfig
	writer *LogWriter
	reader *LogReader
	index  *NameIndex
	mutex  sync.Mutex
	isOpen bool
}

// RecoveryResult describes what OpenJournal found in an existing file.
type RecoveryResult struct {
	RecordsValidated int64
	BytesTruncated   int64
	FileSizeBefore   int64
	FileSizeAfter    int64
	RecoveryTime     time.Duration
}

// JournalStats holds statistics about the journal
type JournalStats struct {
	Names    int
	DataSize int64
}

// OpenJournal opens or creates the journal at config.FilePath. A damaged
// tail left by a crash is truncated back to the last valid envelope.
func OpenJournal(config JournalConfig) (*Journal, *RecoveryResult, error) {
	recovery, err := recoverLogFile(config.FilePath)
	if err != nil {
		return nil, nil, err
	}

	writer, err := NewLogWriter(LogWriterConfig{
		FilePath:      config.FilePath,
		FsyncInterval: config.FsyncInterval,
		BufferSize:    config.BufferSize,
	})
	if err != nil {
		return nil, nil, err
	}

	reader, err := NewLogReader(LogReaderConfig{FilePath: config.FilePath})
	if err != nil {
		_ = writer.Close()
		return nil, nil, err
	}

	index := NewNameIndex()
	if err := index.BuildFromLog(reader); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		return nil, nil, err
	}

	return &Journal{
		config: config,
		writer: writer,
		reader: reader,
		index:  index,
		isOpen: true,
	}, recovery, nil
}

// Append writes rec to the journal and indexes it under its kind and name.
func (j *Journal) Append(rec info.Record) (IndexEntry, error) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if !j.isOpen {
		return IndexEntry{}, ErrClosed
	}

	env, err := codec.NewEnvelope(rec.GUID(), rec.Bytes())
	if err != nil {
		return IndexEntry{}, fmt.Errorf("append %s record: %w", rec.GUID(), err)
	}
	offset, err := j.writer.AppendEnvelope(env)
	if err != nil {
		return IndexEntry{}, fmt.Errorf("append %s record: %w", rec.GUID(), err)
	}

	entry := IndexEntry{
		Offset:    offset,
		Size:      uint32(env.Size()),
		Timestamp: env.Timestamp,
	}
	j.index.Put(rec.GUID(), rec.Name().String(), entry)
	return entry, nil
}

// Find returns the latest envelope of kind whose record is named name.
func (j *Journal) Find(kind guid.GUID, name string) (*codec.Envelope, error) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if !j.isOpen {
		return nil, ErrClosed
	}

	entry, ok := j.index.Get(kind, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}
	if err := j.writer.Flush(); err != nil {
		return nil, err
	}
	return j.reader.ReadAt(entry.Offset)
}

// Names lists the indexed record names of kind.
func (j *Journal) Names(kind guid.GUID) []string {
	return j.index.Names(kind)
}

// Scan calls fn for every envelope in file order. Scanning stops at the
// first error from fn, which Scan returns.
func (j *Journal) Scan(fn func(offset int64, env *codec.Envelope) error) error {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if !j.isOpen {
		return ErrClosed
	}
	if err := j.writer.Flush(); err != nil {
		return err
	}
	if err := j.reader.Seek(0); err != nil {
		return err
	}

	it := j.reader.Iterator()
	defer it.Close()
	for it.Next() {
		if err := fn(it.Offset(), it.Envelope()); err != nil {
			return err
		}
	}
	return it.Err()
}

// Stats returns journal statistics
func (j *Journal) Stats() JournalStats {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if !j.isOpen {
		return JournalStats{}
	}
	return JournalStats{
		Names:    j.index.Size(),
		DataSize: j.writer.Size(),
	}
}

// Path returns the journal file path
func (j *Journal) Path() string {
	return j.config.FilePath
}

// Close flushes and closes the journal
func (j *Journal) Close() error {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if !j.isOpen {
		return nil
	}
	j.isOpen = false

	if err := j.writer.Close(); err != nil {
		_ = j.reader.Close()
		return err
	}
	return j.reader.Close()
}

// recoverLogFile validates every envelope and truncates the file at the
// first damaged one.
func recoverLogFile(filePath string) (*RecoveryResult, error) {
	start := time.Now()

	stat, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &RecoveryResult{RecoveryTime: time.Since(start)}, nil
		}
		return nil, err
	}
	sizeBefore := stat.Size()

	reader, err := NewLogReader(LogReaderConfig{FilePath: filePath})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var validated, lastValid int64
	corrupted := false
	for {
		if _, err := reader.ReadNext(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if !errors.Is(err, ErrCorruption) {
				return nil, err
			}
			corrupted = true
			break
		}
		validated++
		lastValid = reader.Offset()
	}

	result := &RecoveryResult{
		RecordsValidated: validated,
		FileSizeBefore:   sizeBefore,
		FileSizeAfter:    sizeBefore,
	}

	if corrupted {
		if err := os.Truncate(filePath, lastValid); err != nil {
			return nil, fmt.Errorf("truncate damaged journal tail: %w", err)
		}
		result.FileSizeAfter = lastValid
		result.BytesTruncated = sizeBefore - lastValid
	}

	result.RecoveryTime = time.Since(start)
	return result, nil
}
