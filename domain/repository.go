package domain

import "errors"

// ErrNotFound is used when an entity is absent from a repository.
var ErrNotFound = errors.New("entity not found")

// Repository provides access to an entity store. Implementations must be
// safe for concurrent use. Each operation is atomic on its own; there is no
// cross-call transaction, so a find followed by a store may interleave with
// other writers of the same key.
type Repository[K comparable, V any] interface {
	// Store inserts or overwrites the value stored under key.
	Store(key K, value V) error

	// Find returns the value stored under key, or ErrNotFound.
	Find(key K) (V, error)

	// FindAll returns a snapshot of all stored values, in no particular
	// order.
	FindAll() ([]V, error)
}
