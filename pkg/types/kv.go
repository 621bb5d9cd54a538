package types

import "errors"

// KVStore is the get/set primitive the persistence adapter writes through.
// Values are opaque bytes; Set overwrites unconditionally.
type KVStore interface {
	// Get returns the value stored under key.
	// Returns ErrStorageNotFound if nothing is stored under key.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Storage errors.
var (
	ErrStorageNotFound = errors.New("no books in storage")
	ErrCorruptData     = errors.New("stored books are corrupt")
	ErrInvalidKey      = errors.New("invalid storage key")
	ErrStoreClosed     = errors.New("store is closed")
)
