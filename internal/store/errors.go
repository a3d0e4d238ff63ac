package store

import "errors"

var (
	// ErrNotFound is returned when no item carries the requested id.
	ErrNotFound = errors.New("item not found")
	// ErrInvalidInput is returned for an empty (or blank) title.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateID is returned when an insert reuses an id already in the store.
	ErrDuplicateID = errors.New("duplicate item id")
)
