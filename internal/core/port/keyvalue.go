package port

import "context"

// KeyValue is the durable storage the campaign store and the session mirror
// their state into. Values are opaque JSON documents.
type KeyValue interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written or was deleted.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set creates or replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
