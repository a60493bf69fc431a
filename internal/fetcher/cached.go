package fetcher

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/addressdata/internal/storage"
)

// CachingFetcher layers a blob store in front of another fetcher:
// reads go to the store first, and every successful fetch is written
// back so later processes resolve the key offline.
type CachingFetcher struct {
	next  Fetcher
	store storage.Storage
}

// NewCachingFetcher wraps next with the given blob store.
func NewCachingFetcher(next Fetcher, store storage.Storage) *CachingFetcher {
	return &CachingFetcher{next: next, store: store}
}

// Fetch returns the stored blob for key when present, otherwise fetches
// through and stores the result. A store write failure is logged but does
// not fail the fetch, since the data is already in hand.
func (c *CachingFetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		zap.L().Warn("blob store read failed, fetching through",
			zap.String("key", key),
			zap.Error(err),
		)
	} else if data != nil {
		return data, nil
	}

	data, err = c.next.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := c.store.Put(ctx, key, data); err != nil {
		zap.L().Warn("blob store write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return data, nil
}
