package storage

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/fwinfo/pkg/codec"
	"github.com/ssargent/fwinfo/pkg/guid"
	"github.com/ssargent/fwinfo/pkg/info"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("catalog entry not found")

// Catalog is a pebble database of record envelopes keyed by KSUID. KSUIDs
// sort by creation time, so iteration visits entries oldest first.
type Catalog struct {
	db    *pebble.DB
	codec *codec.EnvelopeCodec
}

// Entry is one catalog item.
type Entry struct {
	ID       ksuid.KSUID
	Envelope *codec.Envelope
}

// Open opens or creates the catalog in dir.
func Open(dir string) (*Catalog, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", dir, err)
	}
	return &Catalog{db: db, codec: codec.NewEnvelopeCodec()}, nil
}

// Put stores payload as a record of the given kind under a new id.
func (c *Catalog) Put(kind guid.GUID, payload []byte) (ksuid.KSUID, error) {
	data, err := c.codec.Encode(kind, payload)
	if err != nil {
		return ksuid.Nil, err
	}

	id := ksuid.New()
	if err := c.db.Set(id.Bytes(), data, pebble.NoSync); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// PutRecord stores rec under a new id.
func (c *Catalog) PutRecord(rec info.Record) (ksuid.KSUID, error) {
	return c.Put(rec.GUID(), rec.Bytes())
}

// Get returns the envelope stored under id. The envelope owns its memory.
func (c *Catalog) Get(id ksuid.KSUID) (*codec.Envelope, error) {
	data, closer, err := c.db.Get(id.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer closer.Close()

	return c.decode(data)
}

// Delete removes the entry stored under id. Deleting a missing id is not
// an error.
func (c *Catalog) Delete(id ksuid.KSUID) error {
	return c.db.Delete(id.Bytes(), pebble.NoSync)
}

// List calls fn for every entry, oldest first, until fn returns an error.
func (c *Catalog) List(fn func(Entry) error) error {
	iter, err := c.db.NewIter(nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return fmt.Errorf("catalog key %x: %w", iter.Key(), err)
		}
		env, err := c.decode(iter.Value())
		if err != nil {
			return fmt.Errorf("catalog entry %s: %w", id, err)
		}
		if err := fn(Entry{ID: id, Envelope: env}); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// decode copies data out of pebble-owned memory into an aligned buffer so
// the payload can be decoded in place after the value is released.
func (c *Catalog) decode(data []byte) (*codec.Envelope, error) {
	owned := info.AlignedBuffer(len(data), 8)
	copy(owned, data)

	env, err := c.codec.Decode(owned)
	if err != nil {
		return nil, err
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return env, nil
}
