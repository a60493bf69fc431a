// Package fetcher supplies raw serialized metadata blobs for canonical
// lookup keys.
package fetcher

import "context"

// Fetcher defines the interface for retrieving the raw serialized record
// for one canonical key.
type Fetcher interface {
	// Fetch returns the raw bytes for key. It must return a non-nil error
	// on transport or storage failure; what the bytes decode to is the
	// caller's concern. Implementations must be safe for concurrent use.
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Func adapts a function to the Fetcher interface.
type Func func(ctx context.Context, key string) ([]byte, error)

func (f Func) Fetch(ctx context.Context, key string) ([]byte, error) {
	return f(ctx, key)
}
