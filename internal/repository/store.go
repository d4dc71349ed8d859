package repository

import "context"

// Store is a string key/value store. Values are always written whole; there
// are no partial updates and no transactions.
type Store interface {
	// Get returns the value for key. found is false when the key was never set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Health checks the backend connection
	Health(ctx context.Context) error
}
