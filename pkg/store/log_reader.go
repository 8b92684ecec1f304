package store

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ssargent/fwinfo/pkg/codec"
	"github.com/ssargent/fwinfo/pkg/info"
)

// LogReader provides sequential access to envelopes in a journal file.
// A LogReader must not be shared between goroutines.
type LogReader struct {
	file   *os.File
	reader *bufio.Reader
	codec  *codec.EnvelopeCodec
	offset int64
	config LogReaderConfig
}

// NewLogReader creates a new log reader for the specified file
func NewLogReader(config LogReaderConfig) (*LogReader, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, err
	}

	if config.StartOffset > 0 {
		if _, err := file.Seek(config.StartOffset, io.SeekStart); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	return &LogReader{
		file:   file,
		reader: bufio.NewReader(file),
		codec:  codec.NewEnvelopeCodec(),
		offset: config.StartOffset,
		config: config,
	}, nil
}

// ReadNext reads the envelope at the current offset. It returns io.EOF at a
// clean end of file and ErrCorruption for a torn or damaged envelope.
func (r *LogReader) ReadNext() (*codec.Envelope, error) {
	env, n, err := r.read(r.reader, r.offset)
	if err != nil {
		return nil, err
	}
	r.offset += int64(n)
	return env, nil
}

// ReadAt reads the envelope at offset without moving the sequential position.
func (r *LogReader) ReadAt(offset int64) (*codec.Envelope, error) {
	section := io.NewSectionReader(r.file, offset, 1<<62)
	env, _, err := r.read(section, offset)
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no envelope at offset %d", ErrCorruption, offset)
	}
	return env, err
}

// read decodes one envelope from src into an 8-byte aligned buffer so the
// payload can be decoded in place.
func (r *LogReader) read(src io.Reader, offset int64) (*codec.Envelope, int, error) {
	var header [codec.HeaderSize]byte
	if _, err := io.ReadFull(src, header[:]); err != nil {
		if err == io.EOF {
			return nil, 0, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, 0, fmt.Errorf("%w: torn header at offset %d", ErrCorruption, offset)
		}
		return nil, 0, err
	}

	size := binary.LittleEndian.Uint32(header[20:24])
	if size > MaxPayloadSize {
		return nil, 0, fmt.Errorf("%w: payload size %d at offset %d", ErrCorruption, size, offset)
	}

	data := info.AlignedBuffer(codec.HeaderSize+int(size), 8)
	copy(data, header[:])
	if _, err := io.ReadFull(src, data[codec.HeaderSize:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, 0, fmt.Errorf("%w: torn payload at offset %d", ErrCorruption, offset)
		}
		return nil, 0, err
	}

	env, err := r.codec.Decode(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCorruption, err)
	}
	if err := env.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w at offset %d: %w", ErrCorruption, offset, err)
	}

	return env, len(data), nil
}

// Seek sets the read offset
func (r *LogReader) Seek(offset int64) error {
	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		return err
	}

	r.reader.Reset(r.file)
	r.offset = offset
	return nil
}

// Offset returns the current read offset
func (r *LogReader) Offset() int64 {
	return r.offset
}

// Iterator returns a streaming iterator for envelopes
func (r *LogReader) Iterator() RecordIterator {
	return &logRecordIterator{reader: r}
}

// Close closes the log reader
func (r *LogReader) Close() error {
	return r.file.Close()
}

// logRecordIterator implements RecordIterator for streaming access
type logRecordIterator struct {
	reader   *LogReader
	envelope *codec.Envelope
	offset   int64
	err      error
}

func (it *logRecordIterator) Next() bool {
	if it.err != nil {
		return false
	}
	it.offset = it.reader.Offset()
	it.envelope, it.err = it.reader.ReadNext()
	return it.err == nil
}

func (it *logRecordIterator) Envelope() *codec.Envelope {
	return it.envelope
}

// Offset returns the offset of the current envelope.
func (it *logRecordIterator) Offset() int64 {
	return it.offset
}

// Err returns the error that stopped iteration, or nil at end of file.
func (it *logRecordIterator) Err() error {
	if errors.Is(it.err, io.EOF) {
		return nil
	}
	return it.err
}

func (it *logRecordIterator) Close() error {
	// the underlying reader is owned by the caller
	return nil
}
