// Package codec frames firmware information records for storage.
//
// An envelope pairs the raw bytes of one named record with the GUID of its
// kind so a reader can pick the right decoder without outside context.
//
// # Envelope Format
//
//	[CRC32(4)][Kind(16)][PayloadSize(4)][Timestamp(8)][Payload]
//
// Fields:
//   - CRC32: IEEE checksum over every following header field and the payload (little-endian)
//   - Kind: the record kind GUID in firmware byte order
//   - PayloadSize: payload length in bytes (little-endian)
//   - Timestamp: Unix time in nanoseconds when the envelope was created (little-endian)
//   - Payload: the record bytes exactly as info.Named.Bytes returns them
//
// The header is 32 bytes, so a payload that starts on an 8-byte boundary
// inside an aligned buffer stays aligned for the widest record header.
//
// # Usage
//
//	c := codec.NewEnvelopeCodec()
//	encoded, err := c.Encode(info.FileInfoGUID, rec.Bytes())
//	...
//	env, err := c.Decode(encoded)
//	if err := env.Validate(); err != nil {
//	    return err // corrupted
//	}
//	rec, err := env.Record()
//
// Decode only checks lengths. Validate checks the checksum, and Record
// decodes the payload with the bounded decoder of the matching kind.
//
// # Thread Safety
//
// EnvelopeCodec holds no state and may be shared. An Envelope returned by
// Decode aliases the input slice.
package codec
