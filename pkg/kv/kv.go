// Package kv provides the durable key-value storage used for cart
// persistence. Values are opaque strings; callers own serialization.
package kv

import "context"

// Store is a minimal string key-value store.
type Store interface {
	// Load returns the stored value and whether the key exists.
	Load(ctx context.Context, key string) (string, bool, error)
	// Save stores the value under key, overwriting any previous value.
	Save(ctx context.Context, key, value string) error
}
