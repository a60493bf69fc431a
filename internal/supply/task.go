// Package supply resolves hierarchical address-metadata records. A Task
// fans a set of canonical keys out through cache-or-fetch-then-parse,
// joins the completions, and delivers one aggregated result to a
// continuation. A Supplier composes tasks over a shared record cache.
package supply

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/addressdata/internal/fetcher"
	"github.com/sells-group/addressdata/internal/model"
)

// Hierarchy is the per-level result assembled by one task: one optional
// record per hierarchy depth, index 0 being the country level. The array
// passed to a continuation is owned by the task and only valid until the
// continuation returns; the records it points at are owned by the cache
// and may be retained.
type Hierarchy struct {
	Records [model.MaxDepth]*model.Record
}

// Callback receives a task's aggregated outcome exactly once. success is
// false when any queued key hit a transport failure or malformed data;
// a key the host legitimately has no data for does not count against it.
type Callback func(success bool, key model.LookupKey, hierarchy *Hierarchy)

// Task resolves a caller-chosen set of canonical keys against a shared
// record cache and a fetcher. Queue the keys first, then call Retrieve
// once; the continuation fires after every queued key has resolved.
type Task struct {
	key      model.LookupKey
	cache    *RecordCache
	supplied Callback

	queued map[string]struct{}

	done      chan struct{}
	completed chan completion

	hierarchy Hierarchy
}

type completion struct {
	key     string
	rec     *model.Record
	failure bool
}

// NewTask creates a task bound to a target key, a shared cache, and a
// continuation. The target key is passed through to the continuation
// unchanged; the queued key strings alone decide what gets resolved.
func NewTask(key model.LookupKey, cache *RecordCache, supplied Callback) *Task {
	return &Task{
		key:      key,
		cache:    cache,
		supplied: supplied,
		queued:   make(map[string]struct{}),
		done:     make(chan struct{}),
	}
}

// Queue registers one canonical key string to resolve on the next
// Retrieve call. Queuing the same key twice is a no-op. Calling Queue
// after Retrieve has started is out of contract and ignored.
func (t *Task) Queue(key string) {
	select {
	case <-t.done:
		return
	default:
	}
	if t.completed != nil {
		return
	}
	t.queued[key] = struct{}{}
}

// Done is closed once the continuation has returned. It lets callers that
// hand the task to asynchronous fetchers wait for the terminal callback.
func (t *Task) Done() <-chan struct{} { return t.done }

// Retrieve resolves every queued key: cache hits synchronously, the rest
// through f concurrently. It returns without waiting; the continuation
// fires from whichever resolution completes last, or before Retrieve
// returns when nothing needs a fetch. Each key resolves independently:
// one key's failure never stops the others, it only drags the aggregate
// success flag down. With zero queued keys the continuation fires
// immediately with success and an empty hierarchy.
func (t *Task) Retrieve(ctx context.Context, f fetcher.Fetcher) {
	pending := len(t.queued)
	t.completed = make(chan completion, pending)

	if pending == 0 {
		t.supplied(true, t.key, &t.hierarchy)
		close(t.done)
		return
	}

	// The join goroutine is the sole writer of the hierarchy and the
	// aggregate flag once fan-out starts; it alone observes the count
	// reaching zero and fires the continuation.
	go t.join(pending)

	for key := range t.queued {
		if rec, ok := t.cache.Get(key); ok {
			t.completed <- completion{key: key, rec: rec}
			continue
		}
		go t.resolve(ctx, f, key)
	}
}

// resolve drives one key through fetch-then-parse and reports the outcome.
func (t *Task) resolve(ctx context.Context, f fetcher.Fetcher, key string) {
	data, err := f.Fetch(ctx, key)
	if err != nil {
		zap.L().Debug("supply: fetch failed",
			zap.String("key", key),
			zap.Error(err),
		)
		t.completed <- completion{key: key, failure: true}
		return
	}

	rec, err := model.ParseRecord(data)
	if err != nil {
		zap.L().Warn("supply: malformed record",
			zap.String("key", key),
			zap.Error(err),
		)
		t.completed <- completion{key: key, failure: true}
		return
	}

	// A missing or mismatched id means the host has no data for this
	// node. That is a valid outcome, not a failure.
	if rec.ID != key {
		t.completed <- completion{key: key}
		return
	}

	if model.KeyDepth(key) == 1 {
		rec = rec.MergeDefaults()
	}
	rec = t.cache.Insert(key, rec)
	t.completed <- completion{key: key, rec: rec}
}

// join collects exactly pending completions, assembles the hierarchy, and
// fires the continuation once.
func (t *Task) join(pending int) {
	success := true
	for ; pending > 0; pending-- {
		c := <-t.completed
		if c.failure {
			success = false
			continue
		}
		if c.rec == nil {
			continue
		}
		if d := model.KeyDepth(c.key); d >= 1 && d <= model.MaxDepth {
			t.hierarchy.Records[d-1] = c.rec
		}
	}
	t.supplied(success, t.key, &t.hierarchy)
	close(t.done)
}
