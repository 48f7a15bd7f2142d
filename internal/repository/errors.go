package repository

import "errors"

var (
	// ErrNotFound is returned when a requested ticket doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when the backing document cannot be parsed.
	// There is no partial-recovery or repair logic; callers treat this
	// as fatal.
	ErrCorrupt = errors.New("corrupt store")

	// ErrDuplicateID is returned when inserting a ticket whose id
	// already exists
	ErrDuplicateID = errors.New("duplicate ticket id")
)
