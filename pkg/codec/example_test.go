package codec_test

import (
	"fmt"
	"log"

	"github.com/ssargent/fwinfo/pkg/codec"
	"github.com/ssargent/fwinfo/pkg/cstr"
	"github.com/ssargent/fwinfo/pkg/info"
)

// ExampleEnvelopeCodec demonstrates framing a volume label record
func ExampleEnvelopeCodec() {
	name, err := cstr.FromStrWithBuf("ESP", make([]uint16, 4))
	if err != nil {
		log.Fatal(err)
	}
	label, err := info.NewFileSystemVolumeLabel(info.AlignedBuffer(16, 2), name)
	if err != nil {
		log.Fatal(err)
	}

	c := codec.NewEnvelopeCodec()
	encoded, err := c.Encode(info.FileSystemVolumeLabelGUID, label.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Encoded %d bytes\n", len(encoded))

	env, err := c.Decode(encoded)
	if err != nil {
		log.Fatal(err)
	}
	if err := env.Validate(); err != nil {
		log.Fatal(err)
	}

	rec, err := env.Record()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Kind: %s\n", env.Kind)
	fmt.Printf("Label: %s\n", rec.Name())

	// Output:
	// Encoded 40 bytes
	// Kind: db47d7d3-fe81-11d3-9a35-0090273fc14d
	// Label: ESP
}
