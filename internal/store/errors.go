package store

import "errors"

var (
	// ErrNotFound is returned when an identifier is absent from its collection.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write would break uniqueness or leave
	// dangling references behind.
	ErrConflict = errors.New("conflict")

	// ErrValidation is returned for impossible field values.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned for missing or wrong credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
