package storage

import "errors"

// ErrNotFound is returned when a key has no value in the store.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-key/string-value persistence layer. The cache and the
// custom product collection are each kept under a single key as a JSON
// document, so implementations only need Get/Set/Remove.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
