// Package metadata is the client's durable key/value storage. The session
// service keeps the current token and account here.
package metadata

import (
	"context"
)

// Repository is a string-keyed byte-valued store.
//
// Get returns (nil, nil) for an absent key. SetMany and DeleteMany apply
// all keys or none. Clear wipes every key, including ones the session
// service did not write.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, values map[string][]byte) error
	DeleteMany(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
