package interfaces

import (
	"context"
	"errors"
)

// ErrStorageFull is returned by a key-value store when a write exceeds its quota.
var ErrStorageFull = errors.New("storage quota exceeded")

// IKeyValueStore is the local persistence primitive: opaque values under string keys.
//
// Get reports found=false for a missing key; a missing key is not an error.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
