package supply

import (
	"sync"

	"github.com/sells-group/addressdata/internal/model"
)

// RecordCache maps canonical key strings to parsed records. It is shared
// across supply tasks and append-only: once a key has a record, that record
// stays for the life of the cache. All methods are safe for concurrent use.
type RecordCache struct {
	mu      sync.RWMutex
	records map[string]*model.Record
}

// NewRecordCache creates an empty cache.
func NewRecordCache() *RecordCache {
	return &RecordCache{records: make(map[string]*model.Record)}
}

// Get returns the record cached under key, if any.
func (c *RecordCache) Get(key string) (*model.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[key]
	return rec, ok
}

// Insert stores rec under key unless the key is already populated, and
// returns the surviving entry. First writer wins: a duplicate insert for
// the same key discards rec and returns the existing record.
func (c *RecordCache) Insert(key string, rec *model.Record) *model.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.records[key]; ok {
		return existing
	}
	c.records[key] = rec
	return rec
}

// Len reports the number of cached records.
func (c *RecordCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
