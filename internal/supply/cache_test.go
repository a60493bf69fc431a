package supply

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/addressdata/internal/model"
)

func TestRecordCache_InsertAndGet(t *testing.T) {
	cache := NewRecordCache()

	_, ok := cache.Get("data/US")
	assert.False(t, ok)

	rec := &model.Record{ID: "data/US"}
	assert.Same(t, rec, cache.Insert("data/US", rec))

	got, ok := cache.Get("data/US")
	require.True(t, ok)
	assert.Same(t, rec, got)
	assert.Equal(t, 1, cache.Len())
}

func TestRecordCache_FirstWriterWins(t *testing.T) {
	cache := NewRecordCache()

	first := &model.Record{ID: "data/US"}
	second := &model.Record{ID: "data/US"}

	assert.Same(t, first, cache.Insert("data/US", first))
	assert.Same(t, first, cache.Insert("data/US", second))

	got, ok := cache.Get("data/US")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 1, cache.Len())
}

func TestRecordCache_ConcurrentInserts(t *testing.T) {
	cache := NewRecordCache()

	const writers = 32
	survivors := make([]*model.Record, writers)

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("data/R%d", i%4)
			survivors[i] = cache.Insert(key, &model.Record{ID: key})
		}()
	}
	wg.Wait()

	// All writers of the same key observed the same surviving record.
	assert.Equal(t, 4, cache.Len())
	for i := range writers {
		cached, ok := cache.Get(fmt.Sprintf("data/R%d", i%4))
		require.True(t, ok)
		assert.Same(t, cached, survivors[i])
	}
}
