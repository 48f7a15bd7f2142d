package ticket

import "errors"

var (
	// ErrNotFound indicates the referenced ticket doesn't exist.
	ErrNotFound = errors.New("ticket not found")
	// ErrMissingTitle indicates a create request without a title.
	ErrMissingTitle = errors.New("title required")
	// ErrMissingID indicates an update or close request without a ticket id.
	ErrMissingID = errors.New("ticket id required")
)
