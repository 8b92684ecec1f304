//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"

	"github.com/ssargent/fwinfo/pkg/guid"
)

// FuzzEnvelopeCodec_RoundTrip tests encode/decode round-trip with random payloads
func FuzzEnvelopeCodec_RoundTrip(f *testing.F) {
	codec := NewEnvelopeCodec()

	f.Add([]byte(""), []byte{})
	f.Add(guid.ACPI[:], []byte("payload"))
	f.Add(make([]byte, 16), []byte{0x00, 0x01, 0x02})

	f.Fuzz(func(t *testing.T, kind, payload []byte) {
		if len(payload) > 100000 {
			t.Skip("Input too large for fuzz test")
		}
		var g guid.GUID
		copy(g[:], kind)

		encoded, err := codec.Encode(g, payload)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		env, err := codec.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if err := env.Validate(); err != nil {
			t.Fatalf("Envelope validation failed: %v", err)
		}
		if env.Kind != g {
			t.Errorf("Kind mismatch: got %s, want %s", env.Kind, g)
		}
		if !bytes.Equal(env.Payload, payload) {
			t.Errorf("Payload mismatch: got %d bytes, want %d", len(env.Payload), len(payload))
		}
	})
}

// FuzzEnvelopeCodec_Decode feeds arbitrary bytes to Decode and Record.
func FuzzEnvelopeCodec_Decode(f *testing.F) {
	codec := NewEnvelopeCodec()
	seed, _ := codec.Encode(guid.ACPI, []byte("x"))
	f.Add(seed)
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		env, err := codec.Decode(data)
		if err != nil {
			return
		}
		if env.Size() > len(data) {
			t.Fatalf("envelope size %d exceeds input %d", env.Size(), len(data))
		}
		_, _ = env.Record()
	})
}
