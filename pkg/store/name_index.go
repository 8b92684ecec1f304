package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/ssargent/fwinfo/pkg/guid"
)

// NameIndex maps (kind, name) pairs to the latest envelope carrying them.
type NameIndex struct {
	entries map[string]IndexEntry
	mutex   sync.RWMutex
}

// NewNameIndex creates an empty index
func NewNameIndex() *NameIndex {
	return &NameIndex{
		entries: make(map[string]IndexEntry),
	}
}

func indexKey(kind guid.GUID, name string) string {
	return kind.String() + "/" + name
}

// Put adds or replaces the entry for kind and name
func (idx *NameIndex) Put(kind guid.GUID, name string, entry IndexEntry) {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()
	idx.entries[indexKey(kind, name)] = entry
}

// Get retrieves the entry for kind and name
func (idx *NameIndex) Get(kind guid.GUID, name string) (IndexEntry, bool) {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()
	entry, ok := idx.entries[indexKey(kind, name)]
	return entry, ok
}

// Size returns the number of distinct names in the index
func (idx *NameIndex) Size() int {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()
	return len(idx.entries)
}

// Clear removes all entries from the index
func (idx *NameIndex) Clear() {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()
	idx.entries = make(map[string]IndexEntry)
}

// Names returns the indexed names of one kind, sorted.
func (idx *NameIndex) Names(kind guid.GUID) []string {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	prefix := kind.String() + "/"
	var names []string
	for key := range idx.entries {
		if name, ok := strings.CutPrefix(key, prefix); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// BuildFromLog scans a journal from the start and populates the index.
// Envelopes whose payload does not decode as their kind are skipped.
func (idx *NameIndex) BuildFromLog(reader *LogReader) error {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	idx.entries = make(map[string]IndexEntry)

	if err := reader.Seek(0); err != nil {
		return err
	}

	it := reader.Iterator()
	defer it.Close()

	for it.Next() {
		env := it.Envelope()
		rec, err := env.Record()
		if err != nil {
			continue
		}
		idx.entries[indexKey(env.Kind, rec.Name().String())] = IndexEntry{
			Offset:    it.Offset(),
			Size:      uint32(env.Size()),
			Timestamp: env.Timestamp,
		}
	}

	return it.Err()
}
