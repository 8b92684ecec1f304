package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/ssargent/fwinfo/pkg/guid"
	"github.com/ssargent/fwinfo/pkg/info"
)

// HeaderSize is the encoded size of the envelope header:
// CRC32(4) + Kind(16) + PayloadSize(4) + Timestamp(8).
const HeaderSize = 32

var (
	// ErrTruncated is returned when data ends before the header or payload.
	ErrTruncated = errors.New("envelope truncated")

	// ErrChecksum is returned by Validate when the stored CRC does not match.
	ErrChecksum = errors.New("envelope checksum mismatch")
)

// Envelope frames one named record together with the GUID of its kind.
type Envelope struct {
	CRC32       uint32    // CRC32 checksum for integrity
	Kind        guid.GUID // record kind
	PayloadSize uint32    // Size of the payload in bytes
	Timestamp   uint64    // Unix timestamp in nanoseconds
	Payload     []byte    // Encoded record bytes
}

// EnvelopeCodec handles serialization and deserialization of envelopes
type EnvelopeCodec struct{}

// NewEnvelopeCodec creates a new envelope codec instance
func NewEnvelopeCodec() *EnvelopeCodec {
	return &EnvelopeCodec{}
}

// Encode serializes a record payload into the envelope format
// Format: [CRC32(4)][Kind(16)][PayloadSize(4)][Timestamp(8)][Payload]
func (c *EnvelopeCodec) Encode(kind guid.GUID, payload []byte) ([]byte, error) {
	e, err := NewEnvelope(kind, payload)
	if err != nil {
		return nil, err
	}
	return e.MarshalBinary()
}

// Decode deserializes an envelope. The payload aliases data.
func (c *EnvelopeCodec) Decode(data []byte) (*Envelope, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrTruncated, len(data))
	}

	e := &Envelope{}
	e.CRC32 = binary.LittleEndian.Uint32(data[0:4])
	copy(e.Kind[:], data[4:20])
	e.PayloadSize = binary.LittleEndian.Uint32(data[20:24])
	e.Timestamp = binary.LittleEndian.Uint64(data[24:32])

	if uint64(len(data)) < HeaderSize+uint64(e.PayloadSize) {
		return nil, fmt.Errorf("%w: %d < %d", ErrTruncated, len(data), HeaderSize+uint64(e.PayloadSize))
	}
	e.Payload = data[HeaderSize : HeaderSize+int(e.PayloadSize)]

	return e, nil
}

// NewEnvelope creates an envelope stamped with the current time.
func NewEnvelope(kind guid.GUID, payload []byte) (*Envelope, error) {
	if uint64(len(payload)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("payload too large: %d bytes", len(payload))
	}
	e := &Envelope{
		Kind:        kind,
		PayloadSize: uint32(len(payload)),
		Timestamp:   uint64(time.Now().UnixNano()),
		Payload:     payload,
	}
	e.CRC32 = e.checksum()
	return e, nil
}

// MarshalBinary writes the envelope using its stored CRC.
func (e *Envelope) MarshalBinary() ([]byte, error) {
	buf := make([]byte, e.Size())
	binary.LittleEndian.PutUint32(buf[0:], e.CRC32)
	copy(buf[4:20], e.Kind[:])
	binary.LittleEndian.PutUint32(buf[20:], e.PayloadSize)
	binary.LittleEndian.PutUint64(buf[24:], e.Timestamp)
	copy(buf[HeaderSize:], e.Payload)
	return buf, nil
}

// Validate checks the integrity of an envelope using CRC32
func (e *Envelope) Validate() error {
	if sum := e.checksum(); e.CRC32 != sum {
		return fmt.Errorf("%w: %08x != %08x", ErrChecksum, e.CRC32, sum)
	}
	return nil
}

// Size returns the total size of the envelope when encoded
func (e *Envelope) Size() int {
	return HeaderSize + len(e.Payload)
}

// Time returns the envelope timestamp.
func (e *Envelope) Time() time.Time {
	return time.Unix(0, int64(e.Timestamp))
}

// Record decodes the payload as the record kind named by the envelope.
func (e *Envelope) Record() (info.Record, error) {
	kind, err := info.LookupKind(e.Kind)
	if err != nil {
		return nil, err
	}
	return kind.DecodeAligned(e.Payload)
}

// checksum covers every field except the CRC itself.
func (e *Envelope) checksum() uint32 {
	var hdr [HeaderSize - 4]byte
	copy(hdr[0:16], e.Kind[:])
	binary.LittleEndian.PutUint32(hdr[16:], e.PayloadSize)
	binary.LittleEndian.PutUint64(hdr[20:], e.Timestamp)

	crc := crc32.NewIEEE()
	crc.Write(hdr[:])
	crc.Write(e.Payload)
	return crc.Sum32()
}
