package supply

import (
	"context"

	"github.com/sells-group/addressdata/internal/fetcher"
	"github.com/sells-group/addressdata/internal/model"
)

// Supplier composes supply tasks over one shared record cache and one
// fetcher. Records resolved by any task are visible to every later task,
// so repeated lookups under the same supplier fetch each key at most once.
type Supplier struct {
	cache *RecordCache
	fetch fetcher.Fetcher
}

// NewSupplier creates a supplier backed by f with a fresh cache.
func NewSupplier(f fetcher.Fetcher) *Supplier {
	return &Supplier{cache: NewRecordCache(), fetch: f}
}

// Cache exposes the shared record cache.
func (s *Supplier) Cache() *RecordCache { return s.cache }

// Supply resolves metadata for key and its ancestors: it queues the
// canonical encoding of every prefix depth 1..key.Depth() on a new task
// and starts retrieval. The continuation fires exactly once, possibly
// before Supply returns when everything is already cached.
func (s *Supplier) Supply(ctx context.Context, key model.LookupKey, supplied Callback) *Task {
	task := NewTask(key, s.cache, supplied)
	for d := 1; d <= key.Depth(); d++ {
		task.Queue(key.KeyString(d))
	}
	task.Retrieve(ctx, s.fetch)
	return task
}

// Result is a continuation-independent copy of a task's outcome. The
// records are cache-owned and safe to retain.
type Result struct {
	Success bool
	Key     model.LookupKey
	Records [model.MaxDepth]*model.Record
}

// Resolve is the blocking form of Supply: it waits for the continuation
// and returns a copy of the assembled hierarchy.
func (s *Supplier) Resolve(ctx context.Context, key model.LookupKey) Result {
	var res Result
	task := s.Supply(ctx, key, func(success bool, key model.LookupKey, hierarchy *Hierarchy) {
		res = Result{Success: success, Key: key, Records: hierarchy.Records}
	})
	<-task.Done()
	return res
}
