// Package metadata implements the durable key/value storage used for the
// session. Every repository is bound to one origin; keys written under one
// origin are invisible to every other.
package metadata

import (
	"context"
)

// Repository is the key/value contract the session store persists through.
type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
