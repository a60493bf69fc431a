package fetcher

import (
	"context"

	"github.com/rotisserie/eris"
)

// StaticFetcher serves blobs from an in-memory map. It backs offline mode
// (fed from the embedded region dataset) and tests. A key absent from the
// map is a fetch failure, mirroring a host that cannot be reached for it.
type StaticFetcher struct {
	data map[string]string
}

// NewStaticFetcher creates a fetcher over the given key→blob map. The map
// must not be mutated afterwards.
func NewStaticFetcher(data map[string]string) *StaticFetcher {
	return &StaticFetcher{data: data}
}

// Fetch returns the mapped blob for key.
func (s *StaticFetcher) Fetch(_ context.Context, key string) ([]byte, error) {
	blob, ok := s.data[key]
	if !ok {
		return nil, eris.Errorf("fetcher: no data for %s", key)
	}
	return []byte(blob), nil
}
