package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SecureStore is the persistent key/value store holding the session. Values
// are sealed at rest. SetMany and DeleteMany apply all entries or none.
type SecureStore interface {
	// Get returns the value stored under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	SetMany(ctx context.Context, entries map[string][]byte) error
	// DeleteMany removes the keys. Missing keys are not an error.
	DeleteMany(ctx context.Context, keys ...string) error
}
